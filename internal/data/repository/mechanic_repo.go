package repository

import (
	"context"
	"fmt"

	"bike-service/internal/data/entity"
	"bike-service/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MechanicRepository interface {
	Create(ctx context.Context, mechanic *entity.Mechanic) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Mechanic, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Mechanic, error)
	FindAll(ctx context.Context) ([]*entity.Mechanic, error)
	FindAssigned(ctx context.Context) ([]*entity.Mechanic, error)
	FindUnassigned(ctx context.Context) ([]*entity.Mechanic, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type mechanicRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMechanicRepository(db database.PgxIface, log *zap.Logger) MechanicRepository {
	return &mechanicRepository{
		db:  db,
		log: log.With(zap.String("repository", "mechanic")),
	}
}

const mechanicColumns = `id, name, phone_number, user_id, created_at, updated_at`

// activeAssignmentFilter matches mechanics that currently hold at least one
// non-terminal booking.
const activeAssignmentFilter = `
	EXISTS (
		SELECT 1 FROM bookings b
		WHERE b.mechanic_id = mechanics.id AND b.status IN ('pending', 'in_progress')
	)`

func scanMechanic(row pgx.Row) (*entity.Mechanic, error) {
	var mechanic entity.Mechanic
	err := row.Scan(
		&mechanic.ID,
		&mechanic.Name,
		&mechanic.PhoneNumber,
		&mechanic.UserID,
		&mechanic.CreatedAt,
		&mechanic.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &mechanic, nil
}

func (r *mechanicRepository) collect(rows pgx.Rows) ([]*entity.Mechanic, error) {
	defer rows.Close()

	var mechanics []*entity.Mechanic
	for rows.Next() {
		mechanic, err := scanMechanic(rows)
		if err != nil {
			r.log.Error("Failed to scan mechanic row", zap.Error(err))
			return nil, fmt.Errorf("scan mechanic row: %w", err)
		}
		mechanics = append(mechanics, mechanic)
	}

	return mechanics, rows.Err()
}

func (r *mechanicRepository) Create(ctx context.Context, mechanic *entity.Mechanic) error {
	query := `
		INSERT INTO mechanics (id, name, phone_number, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		mechanic.ID,
		mechanic.Name,
		mechanic.PhoneNumber,
		mechanic.UserID,
		mechanic.CreatedAt,
		mechanic.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create mechanic",
			zap.Error(err),
			zap.String("name", mechanic.Name),
		)
		return fmt.Errorf("create mechanic %s: %w", mechanic.Name, err)
	}

	return nil
}

func (r *mechanicRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Mechanic, error) {
	query := `SELECT ` + mechanicColumns + ` FROM mechanics WHERE id = $1`

	mechanic, err := scanMechanic(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find mechanic by ID",
			zap.Error(err),
			zap.String("mechanic_id", id.String()),
		)
		return nil, fmt.Errorf("find mechanic by ID %s: %w", id.String(), err)
	}

	return mechanic, nil
}

func (r *mechanicRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Mechanic, error) {
	query := `SELECT ` + mechanicColumns + ` FROM mechanics WHERE user_id = $1`

	mechanic, err := scanMechanic(r.db.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find mechanic by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find mechanic by user ID %s: %w", userID.String(), err)
	}

	return mechanic, nil
}

func (r *mechanicRepository) FindAll(ctx context.Context) ([]*entity.Mechanic, error) {
	query := `SELECT ` + mechanicColumns + ` FROM mechanics ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find mechanics", zap.Error(err))
		return nil, fmt.Errorf("find all mechanics: %w", err)
	}

	return r.collect(rows)
}

func (r *mechanicRepository) FindAssigned(ctx context.Context) ([]*entity.Mechanic, error) {
	query := `SELECT ` + mechanicColumns + ` FROM mechanics WHERE ` + activeAssignmentFilter + ` ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find assigned mechanics", zap.Error(err))
		return nil, fmt.Errorf("find assigned mechanics: %w", err)
	}

	return r.collect(rows)
}

func (r *mechanicRepository) FindUnassigned(ctx context.Context) ([]*entity.Mechanic, error) {
	query := `SELECT ` + mechanicColumns + ` FROM mechanics WHERE NOT ` + activeAssignmentFilter + ` ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find unassigned mechanics", zap.Error(err))
		return nil, fmt.Errorf("find unassigned mechanics: %w", err)
	}

	return r.collect(rows)
}

func (r *mechanicRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM mechanics WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete mechanic",
			zap.Error(err),
			zap.String("mechanic_id", id.String()),
		)
		return fmt.Errorf("delete mechanic %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("mechanic %s not found", id.String())
	}

	r.log.Info("Mechanic deleted", zap.String("mechanic_id", id.String()))
	return nil
}

func (r *mechanicRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM mechanics`).Scan(&count); err != nil {
		r.log.Error("Failed to count mechanics", zap.Error(err))
		return 0, fmt.Errorf("count mechanics: %w", err)
	}
	return count, nil
}
