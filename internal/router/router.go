// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/restaurant-reservation/internal/config"
	"github.com/iliyamo/restaurant-reservation/internal/handler"
	"github.com/iliyamo/restaurant-reservation/internal/middleware"
)

// Handlers groups everything the router needs to wire up.
type Handlers struct {
	Booking      *handler.BookingHandler
	Auth         *handler.AuthHandler
	Reservations *handler.AdminReservationHandler
	Users        *handler.AdminUsersHandler
}

// RegisterRoutes wires all endpoints onto the Echo instance.  Public
// booking routes carry the response cache on availability reads; the
// rate limiter applies everywhere.  Admin routes require a valid JWT and
// an admin or superadmin role, account listing superadmin only.
func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers, rdb *redis.Client) {
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Public booking flow.
	cache := middleware.ResponseCache(config.LoadCacheConfig(), rdb)
	e.GET("/v1/slots", h.Booking.Slots, cache)
	e.GET("/v1/availability", h.Booking.Availability, cache)
	e.POST("/v1/reservations", h.Booking.CreateReservation)

	// Staff authentication; no session required.
	auth := e.Group("/v1/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/logout", h.Auth.Logout)

	// Any authenticated staff member.
	me := e.Group("/v1")
	me.Use(middleware.JWTAuth(cfg.JWTSecret))
	me.Use(middleware.RequireRole("admin", "superadmin"))
	me.GET("/me", h.Auth.Me)

	// Admin dashboard: reservation management.
	admin := e.Group("/v1/admin")
	admin.Use(middleware.JWTAuth(cfg.JWTSecret))
	admin.Use(middleware.RequireRole("admin", "superadmin"))
	admin.GET("/reservations", h.Reservations.List)
	admin.PATCH("/reservations/:id/status", h.Reservations.UpdateStatus)
	admin.DELETE("/reservations/:id", h.Reservations.Delete)

	// Superadmin dashboard: staff account listing.
	super := e.Group("/v1/admin/users")
	super.Use(middleware.JWTAuth(cfg.JWTSecret))
	super.Use(middleware.RequireRole("superadmin"))
	super.GET("", h.Users.List)
}
