package repository

import (
	"context"
	"fmt"

	"bike-service/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartLine is a cart item joined with its part price, which is all the
// cost calculation needs.
type CartLine struct {
	PartID   uuid.UUID
	Price    float64
	Quantity int
}

type CartRepository interface {
	FindLinesByUserID(ctx context.Context, userID uuid.UUID) ([]*CartLine, error)
}

type cartRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCartRepository(db database.PgxIface, log *zap.Logger) CartRepository {
	return &cartRepository{
		db:  db,
		log: log.With(zap.String("repository", "cart")),
	}
}

func (r *cartRepository) FindLinesByUserID(ctx context.Context, userID uuid.UUID) ([]*CartLine, error) {
	query := `
		SELECT c.part_id, p.price, c.quantity
		FROM cart_items c
		JOIN bike_parts p ON p.id = c.part_id
		WHERE c.user_id = $1
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find cart lines by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find cart lines for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var lines []*CartLine
	for rows.Next() {
		var line CartLine
		if err := rows.Scan(&line.PartID, &line.Price, &line.Quantity); err != nil {
			r.log.Error("Failed to scan cart line", zap.Error(err))
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		lines = append(lines, &line)
	}

	return lines, rows.Err()
}
