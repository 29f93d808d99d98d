package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the two tables if they do not exist yet.  There is
// no relationship between them; reservations are keyed by id and admin
// accounts by username.  The reservation date is stored as its YYYY-MM-DD
// string because capacity accounting compares dates textually.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS reservations (
			id               CHAR(36)     NOT NULL PRIMARY KEY,
			name             VARCHAR(255) NOT NULL,
			phone            VARCHAR(32)  NOT NULL,
			guests           INT          NOT NULL,
			reservation_date CHAR(10)     NOT NULL,
			time_slot        CHAR(5)      NOT NULL,
			status           VARCHAR(16)  NOT NULL,
			created_at       DATETIME     NOT NULL,
			updated_at       DATETIME     NOT NULL,
			INDEX idx_slot (reservation_date, time_slot)
		)`,
		`CREATE TABLE IF NOT EXISTS admin_users (
			username      VARCHAR(64)  NOT NULL PRIMARY KEY,
			password_hash VARCHAR(255) NOT NULL,
			role          VARCHAR(16)  NOT NULL,
			created_at    DATETIME     NOT NULL
		)`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
