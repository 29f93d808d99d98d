package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-reservation/internal/service"
)

// AdminUsersHandler exposes the superadmin-only view over staff
// accounts.  Role enforcement happens in the router, not here.
type AdminUsersHandler struct {
	Directory *service.Directory
}

func NewAdminUsersHandler(d *service.Directory) *AdminUsersHandler {
	return &AdminUsersHandler{Directory: d}
}

type adminUserResp struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// List handles GET /v1/admin/users.  Password hashes never leave the
// server.
func (h *AdminUsersHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Directory.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list accounts failed"})
	}
	out := make([]adminUserResp, 0, len(users))
	for _, u := range users {
		out = append(out, adminUserResp{
			Username:  u.Username,
			Role:      string(u.Role),
			CreatedAt: u.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"users": out, "count": len(out)})
}
