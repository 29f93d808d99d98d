package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iliyamo/restaurant-reservation/internal/model"
	"github.com/iliyamo/restaurant-reservation/internal/repository"
	"github.com/iliyamo/restaurant-reservation/internal/utils"
)

// MinPasswordLen is the minimum accepted password length for staff
// accounts.
const MinPasswordLen = 6

// Directory manages the staff accounts used by the admin dashboards.  It
// is entirely separate from the reservation core: nothing here touches
// reservations and nothing in the lifecycle manager touches accounts.
type Directory struct {
	store      repository.AdminStore
	bcryptCost int
	now        func() time.Time
}

// NewDirectory returns a directory over the given account store.
func NewDirectory(store repository.AdminStore, bcryptCost int) *Directory {
	return &Directory{
		store:      store,
		bcryptCost: bcryptCost,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Register creates a new account with role admin.  Signup can never
// produce a superadmin.  Usernames are normalized to lower case.
func (d *Directory) Register(ctx context.Context, username, password string) (model.AdminUser, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return model.AdminUser{}, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if len(password) < MinPasswordLen {
		return model.AdminUser{}, fmt.Errorf("%w: minimum %d characters", ErrWeakPassword, MinPasswordLen)
	}
	hash, err := utils.HashPassword(password, d.bcryptCost)
	if err != nil {
		return model.AdminUser{}, err
	}
	u := model.AdminUser{
		Username:     username,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		CreatedAt:    d.now(),
	}
	if err := d.store.Create(ctx, u); err != nil {
		return model.AdminUser{}, err
	}
	return u, nil
}

// Authenticate looks up the account and verifies the password.  Unknown
// usernames and wrong passwords both return ErrAuthenticationFailed.
func (d *Directory) Authenticate(ctx context.Context, username, password string) (model.AdminUser, error) {
	u, err := d.store.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.AdminUser{}, ErrAuthenticationFailed
		}
		return model.AdminUser{}, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return model.AdminUser{}, ErrAuthenticationFailed
	}
	return u, nil
}

// Account returns the stored record for a username, or
// repository.ErrNotFound.
func (d *Directory) Account(ctx context.Context, username string) (model.AdminUser, error) {
	return d.store.GetByUsername(ctx, username)
}

// ListAll returns every staff account.  Access control for this
// superadmin-only view is enforced at the routing layer.
func (d *Directory) ListAll(ctx context.Context) ([]model.AdminUser, error) {
	return d.store.List(ctx)
}

// SeedSuperAdmin creates the bootstrap superadmin account if it does not
// exist yet.  Safe to call on every startup.
func (d *Directory) SeedSuperAdmin(ctx context.Context, username, password string) error {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return nil
	}
	hash, err := utils.HashPassword(password, d.bcryptCost)
	if err != nil {
		return err
	}
	u := model.AdminUser{
		Username:     username,
		PasswordHash: hash,
		Role:         model.RoleSuperAdmin,
		CreatedAt:    d.now(),
	}
	if err := d.store.Create(ctx, u); err != nil && !errors.Is(err, repository.ErrUsernameTaken) {
		return err
	}
	return nil
}
