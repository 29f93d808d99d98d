package model

import "time"

// Role names the two staff roles known to the system.  Signup
// always produces an admin; superadmin accounts are seeded at
// startup and never created through the API.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// AdminUser represents a staff account able to log in to the
// admin dashboard.  The plain password is never stored; only its
// bcrypt hash.
//
// Fields:
//  Username     – unique login name, the record key.
//  PasswordHash – bcrypt hash of the password.
//  Role         – admin or superadmin.
//  CreatedAt    – timestamp of account creation (UTC).
type AdminUser struct {
	Username     string    // admin_users.username
	PasswordHash string    // admin_users.password_hash
	Role         Role      // admin_users.role
	CreatedAt    time.Time // admin_users.created_at
}
