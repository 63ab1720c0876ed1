package usecase

import (
	"context"
	"fmt"
	"time"

	"bike-service/internal/data/entity"
	"bike-service/internal/data/repository"
	"bike-service/internal/dto/response"
	"bike-service/internal/jobs"
	"bike-service/internal/metrics"
	"bike-service/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationScheduler enqueues a delayed, fire-and-forget notification
// job for a booking.
type NotificationScheduler interface {
	Schedule(kind jobs.JobKind, bookingID uuid.UUID, delay time.Duration)
}

type AssignmentService interface {
	AssignMechanic(ctx context.Context, mechanicID, bookingID string) (*response.BookingResponse, error)
	MarkInProgress(ctx context.Context, mechanicID string) (*response.BookingResponse, error)
	MarkComplete(ctx context.Context, mechanicID string) (*response.BookingResponse, error)
}

type assignmentService struct {
	repo      *repository.Repository
	cost      CostCalculator
	scheduler NotificationScheduler
	delay     time.Duration
	log       *zap.Logger
}

func NewAssignmentService(repo *repository.Repository, cost CostCalculator, scheduler NotificationScheduler, delay time.Duration, log *zap.Logger) AssignmentService {
	return &assignmentService{
		repo:      repo,
		cost:      cost,
		scheduler: scheduler,
		delay:     delay,
		log:       log.With(zap.String("service", "assignment")),
	}
}

// AssignMechanic links a pending booking to a mechanic. The booking must
// not already carry a mechanic, and the mechanic's active workload must
// leave the slot free of same-date bookings within two hours.
func (s *assignmentService) AssignMechanic(ctx context.Context, mechanicID, bookingID string) (*response.BookingResponse, error) {
	mID, err := uuid.Parse(mechanicID)
	if err != nil {
		return nil, fmt.Errorf("invalid mechanic ID format %s: %w", mechanicID, err)
	}

	bID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	mechanic, err := s.repo.Mechanic.FindByID(ctx, mID)
	if err != nil {
		return nil, fmt.Errorf("find mechanic: %w", err)
	}
	if mechanic == nil {
		return nil, ErrMechanicNotFound
	}

	booking, err := s.repo.Booking.FindByID(ctx, bID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrInvalidBooking
	}

	if booking.Status != entity.BookingStatusPending {
		return nil, ErrBookingNotPending
	}

	// A booking with any mechanic link is off the table, including a
	// repeat assign of the same mechanic.
	if booking.MechanicID != nil {
		return nil, ErrAlreadyAssigned
	}

	active, err := s.repo.Booking.FindActiveByMechanic(ctx, mID)
	if err != nil {
		return nil, fmt.Errorf("load mechanic workload: %w", err)
	}

	target := utils.MinutesOfDay(booking.BookingTime)
	for _, existing := range active {
		if !utils.SameDate(existing.BookingDate, booking.BookingDate) {
			continue
		}
		delta := utils.MinutesOfDay(existing.BookingTime) - target
		if delta < 0 {
			delta = -delta
		}
		// Same 2h half-width as the capacity window, per mechanic.
		if delta < int(conflictWindow/time.Minute) {
			return nil, ErrTimeConflict
		}
	}

	if err := s.repo.Booking.AssignMechanic(ctx, bID, mID); err != nil {
		s.log.Error("Failed to assign mechanic",
			zap.Error(err),
			zap.String("mechanic_id", mechanicID),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("assign mechanic: %w", err)
	}

	metrics.IncAssignment()
	s.log.Info("Mechanic assigned",
		zap.String("mechanic_id", mechanicID),
		zap.String("booking_id", bookingID),
	)

	s.scheduler.Schedule(jobs.JobMechanicAssigned, bID, s.delay)

	booking.MechanicID = &mID
	resp := s.buildResponse(ctx, booking, mechanic)
	return &resp, nil
}

// MarkInProgress moves the mechanic's earliest pending assignment to
// in_progress and notifies the customer. Other assignments the mechanic
// holds, running or not, are left alone.
func (s *assignmentService) MarkInProgress(ctx context.Context, mechanicID string) (*response.BookingResponse, error) {
	mechanic, active, err := s.activeWorkload(ctx, mechanicID)
	if err != nil {
		return nil, err
	}

	booking := firstInStatus(active, entity.BookingStatusPending)
	if booking == nil {
		return nil, ErrNoPendingBooking
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusInProgress); err != nil {
		s.log.Error("Failed to mark booking in progress",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return nil, fmt.Errorf("mark in progress: %w", err)
	}

	metrics.IncStatusTransition(string(entity.BookingStatusInProgress))
	s.log.Info("Booking in progress",
		zap.String("mechanic_id", mechanicID),
		zap.String("booking_id", booking.ID.String()),
	)

	s.scheduler.Schedule(jobs.JobInProgress, booking.ID, s.delay)

	booking.Status = entity.BookingStatusInProgress
	resp := s.buildResponse(ctx, booking, mechanic)
	return &resp, nil
}

// MarkComplete finishes the mechanic's earliest in_progress assignment.
// The customer's total is computed before any write, so a cost failure
// leaves the booking untouched; status and total then land in a single
// update.
func (s *assignmentService) MarkComplete(ctx context.Context, mechanicID string) (*response.BookingResponse, error) {
	mechanic, active, err := s.activeWorkload(ctx, mechanicID)
	if err != nil {
		return nil, err
	}

	booking := firstInStatus(active, entity.BookingStatusInProgress)
	if booking == nil {
		// The mechanic's active work is all still pending.
		return nil, ErrStillPending
	}

	total, err := s.cost.GetTotal(ctx, booking.UserID)
	if err != nil {
		s.log.Error("Failed to compute booking total",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("user_id", booking.UserID.String()),
		)
		return nil, fmt.Errorf("%w: %v", ErrCostCalculation, err)
	}

	if err := s.repo.Booking.SetCompleted(ctx, booking.ID, total); err != nil {
		s.log.Error("Failed to complete booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return nil, fmt.Errorf("complete booking: %w", err)
	}

	metrics.IncStatusTransition(string(entity.BookingStatusComplete))
	s.log.Info("Booking completed",
		zap.String("mechanic_id", mechanicID),
		zap.String("booking_id", booking.ID.String()),
		zap.Float64("total", total),
	)

	s.scheduler.Schedule(jobs.JobCompleted, booking.ID, s.delay)

	booking.Status = entity.BookingStatusComplete
	booking.Total = &total
	resp := s.buildResponse(ctx, booking, mechanic)
	return &resp, nil
}

// activeWorkload resolves the mechanic and their active assignment set,
// ordered by date then time.
func (s *assignmentService) activeWorkload(ctx context.Context, mechanicID string) (*entity.Mechanic, []*entity.Booking, error) {
	mID, err := uuid.Parse(mechanicID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid mechanic ID format %s: %w", mechanicID, err)
	}

	mechanic, err := s.repo.Mechanic.FindByID(ctx, mID)
	if err != nil {
		return nil, nil, fmt.Errorf("find mechanic: %w", err)
	}
	if mechanic == nil {
		return nil, nil, ErrMechanicNotFound
	}

	active, err := s.repo.Booking.FindActiveByMechanic(ctx, mID)
	if err != nil {
		return nil, nil, fmt.Errorf("load mechanic workload: %w", err)
	}
	if len(active) == 0 {
		return nil, nil, ErrNoAssignment
	}

	return mechanic, active, nil
}

// firstInStatus returns the earliest booking in the given status, or nil
// when the workload holds none.
func firstInStatus(bookings []*entity.Booking, status entity.BookingStatus) *entity.Booking {
	for _, booking := range bookings {
		if booking.Status == status {
			return booking
		}
	}
	return nil
}

func (s *assignmentService) buildResponse(ctx context.Context, booking *entity.Booking, mechanic *entity.Mechanic) response.BookingResponse {
	user, _ := s.repo.User.FindByID(ctx, booking.UserID)
	bike, _ := s.repo.Bike.FindByID(ctx, booking.BikeID)
	return response.BookingToResponse(booking, user, bike, mechanic)
}
