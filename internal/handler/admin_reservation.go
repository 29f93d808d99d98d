package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-reservation/internal/model"
	"github.com/iliyamo/restaurant-reservation/internal/repository"
	"github.com/iliyamo/restaurant-reservation/internal/service"
)

// AdminReservationHandler exposes the staff dashboard operations:
// listing, status transitions and deletion.  JWT authentication and role
// checks run in middleware before any of these methods.
type AdminReservationHandler struct {
	Lifecycle *service.Lifecycle
}

func NewAdminReservationHandler(l *service.Lifecycle) *AdminReservationHandler {
	return &AdminReservationHandler{Lifecycle: l}
}

type updateStatusReq struct {
	Status string `json:"status"`
}

// List handles GET /v1/admin/reservations with optional ?date= and
// ?status= filters.
func (h *AdminReservationHandler) List(c echo.Context) error {
	var statusFilter *model.Status
	if raw := c.QueryParam("status"); raw != "" {
		s, ok := model.ParseStatus(raw)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
		}
		statusFilter = &s
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Lifecycle.List(ctx, c.QueryParam("date"), statusFilter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list reservations failed"})
	}
	out := make([]reservationResp, 0, len(list))
	for _, r := range list {
		out = append(out, toReservationResp(r))
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": out, "count": len(out)})
}

// UpdateStatus handles PATCH /v1/admin/reservations/:id/status.  The body
// names the target status; the lifecycle manager decides whether the
// transition is legal from the current state.
func (h *AdminReservationHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	target, ok := model.ParseStatus(req.Status)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Lifecycle.Transition(ctx, c.Param("id"), target)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		case errors.Is(err, service.ErrInvalidTransition):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update status failed"})
	}
	return c.JSON(http.StatusOK, toReservationResp(res))
}

// Delete handles DELETE /v1/admin/reservations/:id.  Removal is
// unconditional and irreversible, regardless of current status.
func (h *AdminReservationHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Lifecycle.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete reservation failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
