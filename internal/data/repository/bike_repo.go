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

type BikeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BikeProduct, error)
	Count(ctx context.Context) (int64, error)
}

type bikeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBikeRepository(db database.PgxIface, log *zap.Logger) BikeRepository {
	return &bikeRepository{
		db:  db,
		log: log.With(zap.String("repository", "bike")),
	}
}

func (r *bikeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BikeProduct, error) {
	query := `
		SELECT id, bike_name, bike_model, bike_price, created_at, updated_at
		FROM bike_products
		WHERE id = $1
	`

	var bike entity.BikeProduct
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bike.ID,
		&bike.BikeName,
		&bike.BikeModel,
		&bike.BikePrice,
		&bike.CreatedAt,
		&bike.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find bike product by ID",
			zap.Error(err),
			zap.String("bike_id", id.String()),
		)
		return nil, fmt.Errorf("find bike product by ID %s: %w", id.String(), err)
	}

	return &bike, nil
}

func (r *bikeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bike_products`).Scan(&count); err != nil {
		r.log.Error("Failed to count bike products", zap.Error(err))
		return 0, fmt.Errorf("count bike products: %w", err)
	}
	return count, nil
}
