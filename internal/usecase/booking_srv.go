package usecase

import (
	"context"
	"fmt"
	"time"

	"bike-service/internal/data/entity"
	"bike-service/internal/data/repository"
	"bike-service/internal/dto/request"
	"bike-service/internal/dto/response"
	"bike-service/internal/metrics"
	"bike-service/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	UpdateBooking(ctx context.Context, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	GetAllBookings(ctx context.Context) ([]response.BookingResponse, error)
	GetBookingsByUser(ctx context.Context, userID string) ([]response.BookingResponse, error)
	GetBookingsByStatus(ctx context.Context, status entity.BookingStatus) ([]response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) error
	DeleteBooking(ctx context.Context, bookingID string) error
}

type bookingService struct {
	repo     *repository.Repository
	capacity CapacityChecker
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, capacity CapacityChecker, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		capacity: capacity,
		log:      log.With(zap.String("service", "booking")),
	}
}

// parsedSlot is the validated date/time pair of a booking request.
type parsedSlot struct {
	date      time.Time
	timeOfDay time.Time
}

// validateSlot runs the shared create/update checks: the customer exists,
// the plate is not bound to another customer, the slot parses, is not in
// the past, and has mechanic capacity left.
func (s *bookingService) validateSlot(ctx context.Context, userID uuid.UUID, plate, dateStr, timeStr string, excludeID *uuid.UUID) (*parsedSlot, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	plateTaken, err := s.repo.Booking.ExistsPlateForOtherUser(ctx, plate, userID, excludeID)
	if err != nil {
		return nil, fmt.Errorf("check plate number: %w", err)
	}
	if plateTaken {
		return nil, ErrPlateTaken
	}

	date, err := utils.ParseBookingDate(dateStr)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	timeOfDay, err := utils.ParseBookingTime(timeStr)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	if utils.CombineDateTime(date, timeOfDay).Before(time.Now()) {
		return nil, ErrPastBookingTime
	}

	allowed, err := s.capacity.CheckCapacity(ctx, date, timeOfDay, excludeID)
	if err != nil {
		return nil, fmt.Errorf("check capacity: %w", err)
	}
	if !allowed {
		return nil, ErrCapacityExceeded
	}

	return &parsedSlot{date: date, timeOfDay: timeOfDay}, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrMissingFields, utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", req.UserID, err)
	}

	bikeID, err := uuid.Parse(req.BikeID)
	if err != nil {
		return nil, fmt.Errorf("invalid bike ID format %s: %w", req.BikeID, err)
	}

	slot, err := s.validateSlot(ctx, userID, req.BikeNumber, req.BookingDate, req.BookingTime, nil)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:          userID,
		BikeID:          bikeID,
		BookingAddress:  req.BookingAddress,
		BikeDescription: req.BikeDescription,
		BikeNumber:      req.BikeNumber,
		BookingDate:     slot.date,
		BookingTime:     slot.timeOfDay,
		Status:          entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", req.UserID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.IncBookingCreated()
	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", req.UserID),
		zap.String("date", req.BookingDate),
		zap.String("time", req.BookingTime),
	)

	resp := s.buildBookingResponse(ctx, booking)
	return &resp, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrMissingFields, utils.FormatValidationErrors(errs))
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", req.BookingID, err)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", req.UserID, err)
	}

	bikeID, err := uuid.Parse(req.BikeID)
	if err != nil {
		return nil, fmt.Errorf("invalid bike ID format %s: %w", req.BikeID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	// Only a pending slot may be moved.
	if booking.Status != entity.BookingStatusPending {
		return nil, ErrBookingNotPending
	}

	// An update never moves a booking between users.
	if userID != booking.UserID {
		return nil, ErrNotBookingOwner
	}

	slot, err := s.validateSlot(ctx, userID, req.BikeNumber, req.BookingDate, req.BookingTime, &bookingID)
	if err != nil {
		return nil, err
	}

	booking.BikeID = bikeID
	booking.BookingAddress = req.BookingAddress
	booking.BikeDescription = req.BikeDescription
	booking.BikeNumber = req.BikeNumber
	booking.BookingDate = slot.date
	booking.BookingTime = slot.timeOfDay
	booking.UpdatedAt = time.Now()

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
		)
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.log.Info("Booking updated",
		zap.String("booking_id", req.BookingID),
		zap.String("date", req.BookingDate),
		zap.String("time", req.BookingTime),
	)

	resp := s.buildBookingResponse(ctx, booking)
	return &resp, nil
}

func (s *bookingService) GetAllBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all bookings: %w", err)
	}
	return s.buildBookingResponses(ctx, bookings), nil
}

func (s *bookingService) GetBookingsByUser(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get bookings for user %s: %w", userID, err)
	}
	return s.buildBookingResponses(ctx, bookings), nil
}

func (s *bookingService) GetBookingsByStatus(ctx context.Context, status entity.BookingStatus) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("get bookings by status %s: %w", string(status), err)
	}
	return s.buildBookingResponses(ctx, bookings), nil
}

// CancelBooking is legal from pending or in_progress. The canceled booking
// drops out of its mechanic's derived assignment set automatically; no
// notification is fired for cancellation.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return ErrBookingNotFound
	}

	if booking.Status.Terminal() {
		return ErrNotCancelable
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, entity.BookingStatusCanceled); err != nil {
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	metrics.IncStatusTransition(string(entity.BookingStatusCanceled))
	s.log.Info("Booking canceled", zap.String("booking_id", bookingID))

	return nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return ErrBookingNotFound
	}

	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking %s: %w", bookingID, err)
	}

	return nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) buildBookingResponse(ctx context.Context, booking *entity.Booking) response.BookingResponse {
	user, _ := s.repo.User.FindByID(ctx, booking.UserID)
	bike, _ := s.repo.Bike.FindByID(ctx, booking.BikeID)

	var mechanic *entity.Mechanic
	if booking.MechanicID != nil {
		mechanic, _ = s.repo.Mechanic.FindByID(ctx, *booking.MechanicID)
	}

	return response.BookingToResponse(booking, user, bike, mechanic)
}

func (s *bookingService) buildBookingResponses(ctx context.Context, bookings []*entity.Booking) []response.BookingResponse {
	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = s.buildBookingResponse(ctx, booking)
	}
	return responses
}
