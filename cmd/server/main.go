package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-reservation/internal/config"
	"github.com/iliyamo/restaurant-reservation/internal/database"
	"github.com/iliyamo/restaurant-reservation/internal/handler"
	"github.com/iliyamo/restaurant-reservation/internal/model"
	"github.com/iliyamo/restaurant-reservation/internal/queue"
	"github.com/iliyamo/restaurant-reservation/internal/repository"
	"github.com/iliyamo/restaurant-reservation/internal/router"
	"github.com/iliyamo/restaurant-reservation/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()
	restaurant := config.LoadRestaurant()

	// Storage: MySQL when configured, in-memory otherwise.
	var (
		resStore   repository.ReservationStore
		adminStore repository.AdminStore
	)
	if cfg.DBHost != "" {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("database connect failed: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := database.EnsureSchema(ctx, db); err != nil {
			cancel()
			log.Fatalf("schema setup failed: %v", err)
		}
		cancel()
		resStore = repository.NewMySQLReservationStore(db)
		adminStore = repository.NewMySQLAdminStore(db)
		log.Printf("storage: mysql (%s/%s)", cfg.DBHost, cfg.DBName)
	} else {
		resStore = repository.NewMemoryReservationStore()
		adminStore = repository.NewMemoryAdminStore()
		log.Printf("storage: in-memory (state is lost on restart)")
	}

	avail := service.NewAvailability(resStore, restaurant)
	lifecycle := service.NewLifecycle(resStore, avail, restaurant)
	directory := service.NewDirectory(adminStore, cfg.BcryptCost)
	composer := service.Composer{Restaurant: restaurant}

	// Bootstrap superadmin account from the environment, if configured.
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := directory.SeedSuperAdmin(ctx, cfg.SuperAdminUser, cfg.SuperAdminPass); err != nil {
			cancel()
			log.Fatalf("superadmin seed failed: %v", err)
		}
		cancel()
	}

	// Post-commit side effects.  Both hooks run fire-and-forget: the
	// booking is finalized before either completes and their failures
	// only produce log lines.
	channels := queue.ChannelsFromEnv()
	lifecycle.SetHooks(service.Hooks{
		Booked: func(r model.Reservation) {
			log.Printf("confirmation message for %s: %s", r.ID, composer.ConfirmationMessage(r))
		},
		Confirmed: func(r model.Reservation) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = queue.PublishReservationConfirmed(ctx, queue.ReservationConfirmedEvent{
				ReservationID: r.ID,
				Name:          r.Name,
				Phone:         r.Phone,
				Guests:        r.Guests,
				Date:          r.Date,
				Time:          r.Time,
				Tables:        avail.TablesNeeded(r.Guests),
				Message:       composer.ConfirmationMessage(r),
				Channels:      channels,
				ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
			})
		},
	})

	// Drain the notification queue in the background; the consumer runs
	// its own reconnect loop for as long as the process lives.
	go func() {
		if err := queue.StartNotificationConsumer(); err != nil {
			log.Printf("notification consumer stopped: %v", err)
		}
	}()

	tokens := repository.NewMemoryTokenStore()
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable: rate limiting and response cache disabled")
	}

	e := echo.New()
	router.RegisterRoutes(e, cfg, router.Handlers{
		Booking:      handler.NewBookingHandler(lifecycle, avail, restaurant),
		Auth:         handler.NewAuthHandler(cfg, directory, tokens),
		Reservations: handler.NewAdminReservationHandler(lifecycle),
		Users:        handler.NewAdminUsersHandler(directory),
	}, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, tables=%d)", addr, cfg.Env, restaurant.TotalTables)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
