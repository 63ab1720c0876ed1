package usecase

import (
	"context"
	"fmt"
	"time"

	"bike-service/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// conflictWindow is the half-width of the capacity and assignment conflict
// window around a requested slot.
const conflictWindow = 2 * time.Hour

// CapacityChecker bounds how many bookings may share a time window. It is a
// greedy headcount check: it does not prove a specific mechanic is free,
// only that the slot is not globally oversubscribed. Callers still run the
// per-mechanic conflict check before assigning.
type CapacityChecker interface {
	CheckCapacity(ctx context.Context, date, timeOfDay time.Time, excludeBookingID *uuid.UUID) (bool, error)
}

type capacityChecker struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCapacityChecker(repo *repository.Repository, log *zap.Logger) CapacityChecker {
	return &capacityChecker{
		repo: repo,
		log:  log.With(zap.String("service", "capacity")),
	}
}

// windowBounds returns [t-2h, t+2h] clamped to the calendar date of t.
func windowBounds(timeOfDay time.Time) (time.Time, time.Time) {
	dayStart := time.Date(timeOfDay.Year(), timeOfDay.Month(), timeOfDay.Day(), 0, 0, 0, 0, timeOfDay.Location())
	dayEnd := time.Date(timeOfDay.Year(), timeOfDay.Month(), timeOfDay.Day(), 23, 59, 0, 0, timeOfDay.Location())

	from := timeOfDay.Add(-conflictWindow)
	if from.Before(dayStart) {
		from = dayStart
	}

	to := timeOfDay.Add(conflictWindow)
	if to.After(dayEnd) {
		to = dayEnd
	}

	return from, to
}

func (c *capacityChecker) CheckCapacity(ctx context.Context, date, timeOfDay time.Time, excludeBookingID *uuid.UUID) (bool, error) {
	totalMechanics, err := c.repo.Mechanic.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count mechanics: %w", err)
	}

	from, to := windowBounds(timeOfDay)

	existing, err := c.repo.Booking.CountInWindow(ctx, date, from, to, excludeBookingID)
	if err != nil {
		return false, fmt.Errorf("count bookings in window: %w", err)
	}

	if existing >= totalMechanics {
		c.log.Warn("Capacity exceeded for slot",
			zap.String("date", date.Format("2006-01-02")),
			zap.String("time", timeOfDay.Format("15:04")),
			zap.Int64("existing", existing),
			zap.Int64("mechanics", totalMechanics),
		)
		return false, nil
	}

	return true, nil
}
