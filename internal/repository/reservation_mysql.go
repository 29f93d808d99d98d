package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/restaurant-reservation/internal/model"
)

// MySQLReservationStore persists reservations in the `reservations` table,
// one row per record keyed by id.  It is selected when a database is
// configured; all timestamps are stored in UTC.
type MySQLReservationStore struct {
	db *sql.DB
}

// NewMySQLReservationStore returns a store bound to the given database.
func NewMySQLReservationStore(db *sql.DB) *MySQLReservationStore {
	return &MySQLReservationStore{db: db}
}

const reservationCols = "id, name, phone, guests, reservation_date, time_slot, status, created_at, updated_at"

func (s *MySQLReservationStore) Create(ctx context.Context, r model.Reservation) error {
	const q = `INSERT INTO reservations
		(id, name, phone, guests, reservation_date, time_slot, status, created_at, updated_at)
		VALUES (?,?,?,?,?,?,?,?,?)`
	_, err := s.db.ExecContext(ctx, q,
		r.ID, r.Name, r.Phone, r.Guests, r.Date, r.Time, string(r.Status), r.CreatedAt, r.UpdatedAt)
	return err
}

func (s *MySQLReservationStore) GetByID(ctx context.Context, id string) (model.Reservation, error) {
	const q = "SELECT " + reservationCols + " FROM reservations WHERE id=? LIMIT 1"
	r, err := scanReservation(s.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return model.Reservation{}, ErrNotFound
	}
	return r, err
}

func (s *MySQLReservationStore) List(ctx context.Context, f ReservationFilter) ([]model.Reservation, error) {
	q := "SELECT " + reservationCols + " FROM reservations"
	var (
		where []string
		args  []interface{}
	)
	if f.Date != "" {
		where = append(where, "reservation_date=?")
		args = append(args, f.Date)
	}
	if f.Status != nil {
		where = append(where, "status=?")
		args = append(args, string(*f.Status))
	}
	for i, w := range where {
		if i == 0 {
			q += " WHERE " + w
		} else {
			q += " AND " + w
		}
	}
	q += " ORDER BY reservation_date, time_slot, created_at"

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Reservation{}
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *MySQLReservationStore) UpdateStatus(ctx context.Context, id string, status model.Status) (model.Reservation, error) {
	const q = "UPDATE reservations SET status=?, updated_at=? WHERE id=?"
	res, err := s.db.ExecContext(ctx, q, string(status), nowUTC(), id)
	if err != nil {
		return model.Reservation{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Distinguish "missing row" from "status already equal": query back.
		if _, gerr := s.GetByID(ctx, id); gerr != nil {
			return model.Reservation{}, gerr
		}
	}
	return s.GetByID(ctx, id)
}

func (s *MySQLReservationStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM reservations WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (model.Reservation, error) {
	var (
		r      model.Reservation
		status string
	)
	err := row.Scan(&r.ID, &r.Name, &r.Phone, &r.Guests, &r.Date, &r.Time, &status, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return model.Reservation{}, err
	}
	r.Status = model.Status(status)
	return r, nil
}
