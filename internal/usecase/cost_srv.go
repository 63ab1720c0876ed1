package usecase

import (
	"context"
	"fmt"

	"bike-service/internal/data/entity"
	"bike-service/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CostCalculator computes the amount due for a customer at completion time:
// cart parts plus the price of every bike product the customer has booked.
type CostCalculator interface {
	GetTotal(ctx context.Context, userID uuid.UUID) (float64, error)
}

type costService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCostService(repo *repository.Repository, log *zap.Logger) CostCalculator {
	return &costService{
		repo: repo,
		log:  log.With(zap.String("service", "cost")),
	}
}

func (s *costService) GetTotal(ctx context.Context, userID uuid.UUID) (float64, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("find user %s: %w", userID.String(), err)
	}
	if user == nil {
		return 0, ErrUserNotFound
	}

	lines, err := s.repo.Cart.FindLinesByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("load cart for user %s: %w", userID.String(), err)
	}

	var cartTotal float64
	for _, line := range lines {
		cartTotal += line.Price * float64(line.Quantity)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("load bookings for user %s: %w", userID.String(), err)
	}

	var bookedTotal float64
	for _, booking := range bookings {
		if booking.Status == entity.BookingStatusCanceled {
			continue
		}

		bike, err := s.repo.Bike.FindByID(ctx, booking.BikeID)
		if err != nil {
			return 0, fmt.Errorf("load bike %s: %w", booking.BikeID.String(), err)
		}
		if bike != nil {
			bookedTotal += bike.BikePrice
		}
	}

	total := cartTotal + bookedTotal

	s.log.Info("Total amount calculated",
		zap.String("user_id", userID.String()),
		zap.Float64("cart_total", cartTotal),
		zap.Float64("booked_total", bookedTotal),
		zap.Float64("total", total),
	)

	return total, nil
}
