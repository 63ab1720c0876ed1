package repository

import (
	"context"
	"fmt"
	"time"

	"bike-service/internal/data/entity"
	"bike-service/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	FindByStatus(ctx context.Context, status entity.BookingStatus) ([]*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	Count(ctx context.Context) (int64, error)

	// Business queries
	CountInWindow(ctx context.Context, date, from, to time.Time, excludeID *uuid.UUID) (int64, error)
	ExistsPlateForOtherUser(ctx context.Context, plate string, userID uuid.UUID, excludeID *uuid.UUID) (bool, error)
	FindActiveByMechanic(ctx context.Context, mechanicID uuid.UUID) ([]*entity.Booking, error)
	AssignMechanic(ctx context.Context, bookingID, mechanicID uuid.UUID) error
	SetCompleted(ctx context.Context, bookingID uuid.UUID, total float64) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, user_id, bike_id, mechanic_id, booking_address, bike_description,
		bike_number, booking_date, booking_time, status, total, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.BikeID,
		&booking.MechanicID,
		&booking.BookingAddress,
		&booking.BikeDescription,
		&booking.BikeNumber,
		&booking.BookingDate,
		&booking.BookingTime,
		&booking.Status,
		&booking.Total,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) collect(rows pgx.Rows) ([]*entity.Booking, error) {
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, bike_id, mechanic_id, booking_address, bike_description,
		                      bike_number, booking_date, booking_time, status, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.BikeID,
		booking.MechanicID,
		booking.BookingAddress,
		booking.BikeDescription,
		booking.BikeNumber,
		booking.BookingDate,
		booking.BookingTime,
		booking.Status,
		booking.Total,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
			zap.String("bike_number", booking.BikeNumber),
		)
		return fmt.Errorf("create booking for user %s: %w", booking.UserID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY booking_date, booking_time`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find all bookings: %w", err)
	}

	return r.collect(rows)
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}

	return r.collect(rows)
}

func (r *bookingRepository) FindByStatus(ctx context.Context, status entity.BookingStatus) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = $1 ORDER BY booking_date, booking_time`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		r.log.Error("Failed to find bookings by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find bookings by status %s: %w", string(status), err)
	}

	return r.collect(rows)
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET bike_id = $2, booking_address = $3, bike_description = $4, bike_number = $5,
		    booking_date = $6, booking_time = $7, status = $8, total = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.BikeID,
		booking.BookingAddress,
		booking.BikeDescription,
		booking.BikeNumber,
		booking.BookingDate,
		booking.BookingTime,
		booking.Status,
		booking.Total,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM bookings WHERE user_id = $1`

	result, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to delete bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete bookings for user %s: %w", userID.String(), err)
	}

	r.log.Info("User bookings deleted",
		zap.String("user_id", userID.String()),
		zap.Int64("count", result.RowsAffected()),
	)
	return nil
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}

// CountInWindow counts bookings on the given calendar date whose time of day
// falls inside [from, to]. The one being updated, if any, is excluded.
func (r *bookingRepository) CountInWindow(ctx context.Context, date, from, to time.Time, excludeID *uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE booking_date = $1
		  AND booking_time >= $2
		  AND booking_time <= $3
		  AND ($4::uuid IS NULL OR id <> $4)
	`

	var count int64
	err := r.db.QueryRow(ctx, query, date, from, to, excludeID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings in window",
			zap.Error(err),
			zap.Time("date", date),
		)
		return 0, fmt.Errorf("count bookings in window on %s: %w", date.Format("2006-01-02"), err)
	}

	return count, nil
}

// ExistsPlateForOtherUser reports whether the plate number is already used by
// a booking that belongs to a different customer.
func (r *bookingRepository) ExistsPlateForOtherUser(ctx context.Context, plate string, userID uuid.UUID, excludeID *uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE bike_number = $1
			  AND user_id <> $2
			  AND ($3::uuid IS NULL OR id <> $3)
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, plate, userID, excludeID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check plate number",
			zap.Error(err),
			zap.String("bike_number", plate),
		)
		return false, fmt.Errorf("check plate number %s: %w", plate, err)
	}

	return exists, nil
}

// FindActiveByMechanic returns the mechanic's current assignment set: bookings
// holding its foreign key that have not reached a terminal status.
func (r *bookingRepository) FindActiveByMechanic(ctx context.Context, mechanicID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE mechanic_id = $1 AND status IN ('pending', 'in_progress')
		ORDER BY booking_date, booking_time
	`

	rows, err := r.db.Query(ctx, query, mechanicID)
	if err != nil {
		r.log.Error("Failed to find active bookings by mechanic",
			zap.Error(err),
			zap.String("mechanic_id", mechanicID.String()),
		)
		return nil, fmt.Errorf("find active bookings for mechanic %s: %w", mechanicID.String(), err)
	}

	return r.collect(rows)
}

func (r *bookingRepository) AssignMechanic(ctx context.Context, bookingID, mechanicID uuid.UUID) error {
	query := `UPDATE bookings SET mechanic_id = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, mechanicID)
	if err != nil {
		r.log.Error("Failed to assign mechanic",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("mechanic_id", mechanicID.String()),
		)
		return fmt.Errorf("assign mechanic %s to booking %s: %w", mechanicID.String(), bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

// SetCompleted moves a booking to complete and records its total in one
// statement, so the two writes cannot be observed apart.
func (r *bookingRepository) SetCompleted(ctx context.Context, bookingID uuid.UUID, total float64) error {
	query := `UPDATE bookings SET status = 'complete', total = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, total)
	if err != nil {
		r.log.Error("Failed to complete booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.Float64("total", total),
		)
		return fmt.Errorf("complete booking %s: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}
