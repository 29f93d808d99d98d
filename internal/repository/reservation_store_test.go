package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-reservation/internal/model"
)

func newTestReservation(id, date, slot string, guests int) model.Reservation {
	now := time.Now().UTC()
	return model.Reservation{
		ID:        id,
		Name:      "Asha Rao",
		Phone:     "9876543210",
		Guests:    guests,
		Date:      date,
		Time:      slot,
		Status:    model.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMemoryReservationStore(t *testing.T) {
	ctx := context.Background()

	t.Run("get missing id returns ErrNotFound", func(t *testing.T) {
		s := NewMemoryReservationStore()
		_, err := s.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("create then get", func(t *testing.T) {
		s := NewMemoryReservationStore()
		r := newTestReservation("r1", "2030-05-01", "19:00", 4)
		require.NoError(t, s.Create(ctx, r))

		got, err := s.GetByID(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, r, got)
	})

	t.Run("list filters by date and status", func(t *testing.T) {
		s := NewMemoryReservationStore()
		require.NoError(t, s.Create(ctx, newTestReservation("r1", "2030-05-01", "19:00", 4)))
		require.NoError(t, s.Create(ctx, newTestReservation("r2", "2030-05-01", "11:00", 2)))
		require.NoError(t, s.Create(ctx, newTestReservation("r3", "2030-05-02", "19:00", 6)))
		_, err := s.UpdateStatus(ctx, "r2", model.StatusCancelled)
		require.NoError(t, err)

		all, err := s.List(ctx, ReservationFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 3)

		byDate, err := s.List(ctx, ReservationFilter{Date: "2030-05-01"})
		require.NoError(t, err)
		require.Len(t, byDate, 2)
		// Ordered by slot within the day.
		assert.Equal(t, "r2", byDate[0].ID)
		assert.Equal(t, "r1", byDate[1].ID)

		cancelled := model.StatusCancelled
		byStatus, err := s.List(ctx, ReservationFilter{Status: &cancelled})
		require.NoError(t, err)
		require.Len(t, byStatus, 1)
		assert.Equal(t, "r2", byStatus[0].ID)

		pending := model.StatusPending
		both, err := s.List(ctx, ReservationFilter{Date: "2030-05-01", Status: &pending})
		require.NoError(t, err)
		require.Len(t, both, 1)
		assert.Equal(t, "r1", both[0].ID)
	})

	t.Run("update status bumps UpdatedAt", func(t *testing.T) {
		s := NewMemoryReservationStore()
		r := newTestReservation("r1", "2030-05-01", "19:00", 4)
		r.UpdatedAt = r.UpdatedAt.Add(-time.Hour)
		require.NoError(t, s.Create(ctx, r))

		got, err := s.UpdateStatus(ctx, "r1", model.StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, got.Status)
		assert.True(t, got.UpdatedAt.After(r.UpdatedAt))

		_, err = s.UpdateStatus(ctx, "missing", model.StatusConfirmed)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete removes regardless of status", func(t *testing.T) {
		s := NewMemoryReservationStore()
		require.NoError(t, s.Create(ctx, newTestReservation("r1", "2030-05-01", "19:00", 4)))
		_, err := s.UpdateStatus(ctx, "r1", model.StatusConfirmed)
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, "r1"))
		_, err = s.GetByID(ctx, "r1")
		assert.ErrorIs(t, err, ErrNotFound)

		assert.ErrorIs(t, s.Delete(ctx, "r1"), ErrNotFound)
	})
}

func TestMemoryAdminStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create rejects duplicate usernames case-insensitively", func(t *testing.T) {
		s := NewMemoryAdminStore()
		u := model.AdminUser{Username: "nikhil", PasswordHash: "x", Role: model.RoleAdmin, CreatedAt: time.Now().UTC()}
		require.NoError(t, s.Create(ctx, u))

		u2 := u
		u2.Username = "Nikhil"
		assert.ErrorIs(t, s.Create(ctx, u2), ErrUsernameTaken)
	})

	t.Run("lookup and list", func(t *testing.T) {
		s := NewMemoryAdminStore()
		require.NoError(t, s.Create(ctx, model.AdminUser{Username: "zed", Role: model.RoleAdmin}))
		require.NoError(t, s.Create(ctx, model.AdminUser{Username: "amy", Role: model.RoleSuperAdmin}))

		got, err := s.GetByUsername(ctx, "ZED")
		require.NoError(t, err)
		assert.Equal(t, "zed", got.Username)

		_, err = s.GetByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)

		list, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "amy", list[0].Username) // ordered by username
		assert.Equal(t, "zed", list[1].Username)
	})
}

func TestMemoryTokenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("validate known token", func(t *testing.T) {
		s := NewMemoryTokenStore()
		require.NoError(t, s.Store(ctx, "nikhil", "hash1", time.Now().UTC().Add(time.Hour)))

		user, err := s.Validate(ctx, "hash1")
		require.NoError(t, err)
		assert.Equal(t, "nikhil", user)
	})

	t.Run("unknown, expired and revoked tokens are invalid", func(t *testing.T) {
		s := NewMemoryTokenStore()
		_, err := s.Validate(ctx, "unknown")
		assert.ErrorIs(t, err, ErrTokenInvalid)

		require.NoError(t, s.Store(ctx, "nikhil", "expired", time.Now().UTC().Add(-time.Minute)))
		_, err = s.Validate(ctx, "expired")
		assert.ErrorIs(t, err, ErrTokenInvalid)

		require.NoError(t, s.Store(ctx, "nikhil", "revoked", time.Now().UTC().Add(time.Hour)))
		require.NoError(t, s.Revoke(ctx, "revoked"))
		_, err = s.Validate(ctx, "revoked")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("revoke all for one user", func(t *testing.T) {
		s := NewMemoryTokenStore()
		exp := time.Now().UTC().Add(time.Hour)
		require.NoError(t, s.Store(ctx, "nikhil", "h1", exp))
		require.NoError(t, s.Store(ctx, "nikhil", "h2", exp))
		require.NoError(t, s.Store(ctx, "asha", "h3", exp))

		require.NoError(t, s.RevokeAll(ctx, "nikhil"))
		_, err := s.Validate(ctx, "h1")
		assert.ErrorIs(t, err, ErrTokenInvalid)
		_, err = s.Validate(ctx, "h2")
		assert.ErrorIs(t, err, ErrTokenInvalid)
		_, err = s.Validate(ctx, "h3")
		assert.NoError(t, err)
	})
}
