package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/restaurant-reservation/internal/model"
)

// MySQLAdminStore persists staff accounts in the `admin_users` table.
// Usernames are normalized to lower case before storage and lookup.
type MySQLAdminStore struct {
	db *sql.DB
}

// NewMySQLAdminStore returns a store bound to the given database.
func NewMySQLAdminStore(db *sql.DB) *MySQLAdminStore {
	return &MySQLAdminStore{db: db}
}

func (s *MySQLAdminStore) Create(ctx context.Context, u model.AdminUser) error {
	const q = "INSERT INTO admin_users (username, password_hash, role, created_at) VALUES (?,?,?,?)"
	_, err := s.db.ExecContext(ctx, q,
		strings.ToLower(u.Username), u.PasswordHash, string(u.Role), u.CreatedAt)
	if err != nil {
		// MySQL duplicate-key errors carry code 1062.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (s *MySQLAdminStore) GetByUsername(ctx context.Context, username string) (model.AdminUser, error) {
	const q = "SELECT username, password_hash, role, created_at FROM admin_users WHERE username=? LIMIT 1"
	var (
		u    model.AdminUser
		role string
	)
	err := s.db.QueryRowContext(ctx, q, strings.ToLower(username)).
		Scan(&u.Username, &u.PasswordHash, &role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return model.AdminUser{}, ErrNotFound
	}
	if err != nil {
		return model.AdminUser{}, err
	}
	u.Role = model.Role(role)
	return u, nil
}

func (s *MySQLAdminStore) List(ctx context.Context) ([]model.AdminUser, error) {
	const q = "SELECT username, password_hash, role, created_at FROM admin_users ORDER BY username"
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.AdminUser{}
	for rows.Next() {
		var (
			u    model.AdminUser
			role string
		)
		if err := rows.Scan(&u.Username, &u.PasswordHash, &role, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.Role = model.Role(role)
		out = append(out, u)
	}
	return out, rows.Err()
}
