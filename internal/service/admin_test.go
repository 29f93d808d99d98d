package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/restaurant-reservation/internal/model"
	"github.com/iliyamo/restaurant-reservation/internal/repository"
	"github.com/iliyamo/restaurant-reservation/internal/utils"
)

func newDirectory(t *testing.T) *Directory {
	t.Helper()
	// MinCost keeps the bcrypt work factor cheap in tests.
	return NewDirectory(repository.NewMemoryAdminStore(), bcrypt.MinCost)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("short password is rejected", func(t *testing.T) {
		d := newDirectory(t)
		_, err := d.Register(ctx, "bob", "abcde")
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("six characters is the accepted minimum", func(t *testing.T) {
		d := newDirectory(t)
		u, err := d.Register(ctx, "bob", "abcdef")
		require.NoError(t, err)
		assert.Equal(t, "bob", u.Username)
		assert.Equal(t, model.RoleAdmin, u.Role, "signup always produces an admin")
		assert.True(t, utils.VerifyPassword(u.PasswordHash, "abcdef"))
		assert.NotEqual(t, "abcdef", u.PasswordHash)
	})

	t.Run("empty username is rejected", func(t *testing.T) {
		d := newDirectory(t)
		_, err := d.Register(ctx, "   ", "abcdef")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("usernames are unique and lowercased", func(t *testing.T) {
		d := newDirectory(t)
		_, err := d.Register(ctx, "Nikhil", "secret1")
		require.NoError(t, err)

		_, err = d.Register(ctx, "nikhil", "secret2")
		assert.ErrorIs(t, err, repository.ErrUsernameTaken)

		u, err := d.Account(ctx, "NIKHIL")
		require.NoError(t, err)
		assert.Equal(t, "nikhil", u.Username)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	d := newDirectory(t)
	_, err := d.Register(ctx, "nikhil", "secret1")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		u, err := d.Authenticate(ctx, "nikhil", "secret1")
		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, u.Role)
	})

	t.Run("wrong password and unknown user look the same", func(t *testing.T) {
		_, errWrong := d.Authenticate(ctx, "nikhil", "nope-nope")
		_, errGhost := d.Authenticate(ctx, "ghost", "secret1")
		assert.ErrorIs(t, errWrong, ErrAuthenticationFailed)
		assert.ErrorIs(t, errGhost, ErrAuthenticationFailed)
		assert.Equal(t, errWrong, errGhost, "login must not leak which usernames exist")
	})
}

func TestSeedSuperAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a superadmin once", func(t *testing.T) {
		d := newDirectory(t)
		require.NoError(t, d.SeedSuperAdmin(ctx, "root", "toor123"))
		u, err := d.Account(ctx, "root")
		require.NoError(t, err)
		assert.Equal(t, model.RoleSuperAdmin, u.Role)

		// Re-seeding on the next startup is a no-op.
		require.NoError(t, d.SeedSuperAdmin(ctx, "root", "toor123"))
		list, err := d.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("empty credentials skip seeding", func(t *testing.T) {
		d := newDirectory(t)
		require.NoError(t, d.SeedSuperAdmin(ctx, "", ""))
		list, err := d.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestListAll(t *testing.T) {
	ctx := context.Background()
	d := newDirectory(t)
	require.NoError(t, d.SeedSuperAdmin(ctx, "root", "toor123"))
	_, err := d.Register(ctx, "bob", "abcdef")
	require.NoError(t, err)

	list, err := d.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "bob", list[0].Username)
	assert.Equal(t, "root", list[1].Username)
}
