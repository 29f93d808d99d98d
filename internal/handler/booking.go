package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-reservation/internal/config"
	"github.com/iliyamo/restaurant-reservation/internal/model"
	"github.com/iliyamo/restaurant-reservation/internal/service"
)

// BookingHandler serves the public booking flow: slot discovery,
// availability checks and reservation creation.  No authentication is
// required; capacity enforcement lives in the lifecycle manager.
type BookingHandler struct {
	Lifecycle  *service.Lifecycle
	Avail      *service.Availability
	Restaurant config.Restaurant
}

func NewBookingHandler(l *service.Lifecycle, a *service.Availability, r config.Restaurant) *BookingHandler {
	return &BookingHandler{Lifecycle: l, Avail: a, Restaurant: r}
}

// ----- DTOs -----

type createReservationReq struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Guests int    `json:"guests"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

type reservationResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Guests    int       `json:"guests"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toReservationResp(r model.Reservation) reservationResp {
	return reservationResp{
		ID:        r.ID,
		Name:      r.Name,
		Phone:     r.Phone,
		Guests:    r.Guests,
		Date:      r.Date,
		Time:      r.Time,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// CreateReservation handles POST /v1/reservations.  Validation failures
// return 400, capacity shortfalls 409; on success a 201 with the stored
// record, always created in status Pending.
func (h *BookingHandler) CreateReservation(c echo.Context) error {
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Lifecycle.Create(ctx, service.CreateRequest{
		Name:   req.Name,
		Phone:  req.Phone,
		Guests: req.Guests,
		Date:   req.Date,
		Time:   req.Time,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, service.ErrCapacityExceeded):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create reservation failed"})
	}
	return c.JSON(http.StatusCreated, toReservationResp(res))
}

// Availability handles GET /v1/availability?date=YYYY-MM-DD&time=HH:MM.
// With a time it reports free tables for that single slot; without one
// it reports every configured slot so the booking form can grey out
// full slots.
func (h *BookingHandler) Availability(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date is required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if slot := c.QueryParam("time"); slot != "" {
		if !h.Restaurant.ValidSlot(slot) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown time slot"})
		}
		free, err := h.Avail.TablesAvailable(ctx, date, slot)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "availability query failed"})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"date":             date,
			"time":             slot,
			"tables_available": free,
			"seats_available":  free * h.Restaurant.SeatsPerTable,
		})
	}

	slots, err := h.Avail.ForDate(ctx, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "availability query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"date": date, "slots": slots})
}

// Slots handles GET /v1/slots and returns the fixed slot list along with
// the restaurant's capacity configuration and display details.
func (h *BookingHandler) Slots(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"restaurant": echo.Map{
			"name":    h.Restaurant.Name,
			"address": h.Restaurant.Address,
		},
		"total_tables":    h.Restaurant.TotalTables,
		"seats_per_table": h.Restaurant.SeatsPerTable,
		"time_slots":      h.Restaurant.TimeSlots,
	})
}
