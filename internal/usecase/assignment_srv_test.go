package usecase

import (
	"context"
	"testing"
	"time"

	"bike-service/internal/data/entity"
	"bike-service/internal/jobs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func pendingBooking(userID uuid.UUID) *entity.Booking {
	date, _ := time.Parse("2006-01-02", "2030-05-10")
	timeOfDay, _ := time.Parse("15:04", "10:00")
	return &entity.Booking{
		Base:        entity.Base{ID: uuid.New()},
		UserID:      userID,
		BikeID:      uuid.New(),
		BookingDate: date,
		BookingTime: timeOfDay,
		Status:      entity.BookingStatusPending,
	}
}

func activeBookingAt(mechanicID uuid.UUID, dateStr, timeStr string, status entity.BookingStatus) *entity.Booking {
	date, _ := time.Parse("2006-01-02", dateStr)
	timeOfDay, _ := time.Parse("15:04", timeStr)
	return &entity.Booking{
		Base:        entity.Base{ID: uuid.New()},
		UserID:      uuid.New(),
		BikeID:      uuid.New(),
		MechanicID:  &mechanicID,
		BookingDate: date,
		BookingTime: timeOfDay,
		Status:      status,
	}
}

func newAssignmentFixture() (*mockBookingRepo, *mockMechanicRepo, *mockUserRepo, *mockBikeRepo, *mockCost, *mockScheduler, AssignmentService) {
	bookingRepo := new(mockBookingRepo)
	mechanicRepo := new(mockMechanicRepo)
	userRepo := new(mockUserRepo)
	bikeRepo := new(mockBikeRepo)
	cost := new(mockCost)
	scheduler := new(mockScheduler)

	repo := testRepo(bookingRepo, mechanicRepo, userRepo, bikeRepo, new(mockCartRepo))
	service := NewAssignmentService(repo, cost, scheduler, time.Second, testLogger())

	// Response enrichment lookups are best-effort.
	userRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	bikeRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	return bookingRepo, mechanicRepo, userRepo, bikeRepo, cost, scheduler, service
}

func TestAssignMechanic_Success(t *testing.T) {
	bookingRepo, mechanicRepo, _, _, _, scheduler, service := newAssignmentFixture()

	mechanic := &entity.Mechanic{Base: entity.Base{ID: uuid.New()}, Name: "Jo", PhoneNumber: "123"}
	booking := pendingBooking(uuid.New())

	mechanicRepo.On("FindByID", mock.Anything, mechanic.ID).Return(mechanic, nil)
	bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	bookingRepo.On("FindActiveByMechanic", mock.Anything, mechanic.ID).Return([]*entity.Booking{}, nil)
	bookingRepo.On("AssignMechanic", mock.Anything, booking.ID, mechanic.ID).Return(nil)
	scheduler.On("Schedule", jobs.JobMechanicAssigned, booking.ID, time.Second).Return()

	resp, err := service.AssignMechanic(context.Background(), mechanic.ID.String(), booking.ID.String())

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, mechanic.ID.String(), *resp.MechanicID)
	bookingRepo.AssertCalled(t, "AssignMechanic", mock.Anything, booking.ID, mechanic.ID)
	scheduler.AssertCalled(t, "Schedule", jobs.JobMechanicAssigned, booking.ID, time.Second)
}

func TestAssignMechanic_MechanicNotFound(t *testing.T) {
	_, mechanicRepo, _, _, _, _, service := newAssignmentFixture()

	mechanicID := uuid.New()
	mechanicRepo.On("FindByID", mock.Anything, mechanicID).Return(nil, nil)

	_, err := service.AssignMechanic(context.Background(), mechanicID.String(), uuid.New().String())

	assert.ErrorIs(t, err, ErrMechanicNotFound)
}

func TestAssignMechanic_UnknownBooking(t *testing.T) {
	bookingRepo, mechanicRepo, _, _, _, _, service := newAssignmentFixture()

	mechanic := &entity.Mechanic{Base: entity.Base{ID: uuid.New()}}
	bookingID := uuid.New()

	mechanicRepo.On("FindByID", mock.Anything, mechanic.ID).Return(mechanic, nil)
	bookingRepo.On("FindByID", mock.Anything, bookingID).Return(nil, nil)

	_, err := service.AssignMechanic(context.Background(), mechanic.ID.String(), bookingID.String())

	assert.ErrorIs(t, err, ErrInvalidBooking)
}

func TestAssignMechanic_NotPending(t *testing.T) {
	bookingRepo, mechanicRepo, _, _, _, _, service := newAssignmentFixture()

	mechanic := &entity.Mechanic{Base: entity.Base{ID: uuid.New()}}
	booking := pendingBooking(uuid.New())
	booking.Status = entity.BookingStatusCanceled

	mechanicRepo.On("FindByID", mock.Anything, mechanic.ID).Return(mechanic, nil)
	bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	_, err := service.AssignMechanic(context.Background(), mechanic.ID.String(), booking.ID.String())

	assert.ErrorIs(t, err, ErrBookingNotPending)
}

func TestAssignMechanic_AlreadyAssigned(t *testing.T) {
	bookingRepo, mechanicRepo, _, _, _, _, service := newAssignmentFixture()

	mechanic := &entity.Mechanic{Base: entity.Base{ID: uuid.New()}}
	booking := pendingBooking(uuid.New())
	// Even a repeat assign of the same mechanic must be refused.
	booking.MechanicID = &mechanic.ID

	mechanicRepo.On("FindByID", mock.Anything, mechanic.ID).Return(mechanic, nil)
	bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	_, err := service.AssignMechanic(context.Background(), mechanic.ID.String(), booking.ID.String())

	assert.ErrorIs(t, err, ErrAlreadyAssigned)
	bookingRepo.AssertNotCalled(t, "AssignMechanic", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignMechanic_TimeConflict(t *testing.T) {
	bookingRepo, mechanicRepo, _, _, _, _, service := newAssignmentFixture()

	mechanic := &entity.Mechanic{Base: entity.Base{ID: uuid.New()}}
	booking := pendingBooking(uuid.New()) // 2030-05-10 10:00
	existing := activeBookingAt(mechanic.ID, "2030-05-10", "11:30", entity.BookingStatusInProgress)

	mechanicRepo.On("FindByID", mock.Anything, mechanic.ID).Return(mechanic, nil)
	bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	bookingRepo.On("FindActiveByMechanic", mock.Anything, mechanic.ID).Return([]*entity.Booking{existing}, nil)

	_, err := service.AssignMechanic(context.Background(), mechanic.ID.String(), booking.ID.String())

	assert.ErrorIs(t, err, ErrTimeConflict)
	bookingRepo.AssertNotCalled(t, "AssignMechanic", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignMechanic_NoConflictAcrossDatesOrOutsideWindow(t *testing.T) {
	bookingRepo, mechanicRepo, _, _, _, scheduler, service := newAssignmentFixture()

	mechanic := &entity.Mechanic{Base: entity.Base{ID: uuid.New()}}
	booking := pendingBooking(uuid.New()) // 2030-05-10 10:00
	otherDay := activeBookingAt(mechanic.ID, "2030-05-11", "10:30", entity.BookingStatusPending)
	farApart := activeBookingAt(mechanic.ID, "2030-05-10", "12:00", entity.BookingStatusPending) // exactly 2h away

	mechanicRepo.On("FindByID", mock.Anything, mechanic.ID).Return(mechanic, nil)
	bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	bookingRepo.On("FindActiveByMechanic", mock.Anything, mechanic.ID).Return([]*entity.Booking{otherDay, farApart}, nil)
	bookingRepo.On("AssignMechanic", mock.Anything, booking.ID, mechanic.ID).Return(nil)
	scheduler.On("Schedule", jobs.JobMechanicAssigned, booking.ID, time.Second).Return()

	_, err := service.AssignMechanic(context.Background(), mechanic.ID.String(), booking.ID.String())

	assert.NoError(t, err)
}

func TestMarkInProgress_NoAssignment(t *testing.T) {
	bookingRepo, mechanicRepo, _, _, _, _, service := newAssignmentFixture()

	mechanic := &entity.Mechanic{Base: entity.Base{ID: uuid.New()}}
	mechanicRepo.On("FindByID", mock.Anything, mechanic.ID).Return(mechanic, nil)
	bookingRepo.On("FindActiveByMechanic", mock.Anything, mechanic.ID).Return([]*entity.Booking{}, nil)

	_, err := service.MarkInProgress(context.Background(), mechanic.ID.String())

	assert.ErrorIs(t, err, ErrNoAssignment)
}

func TestMarkInProgress_Success(t *testing.T) {
	bookingRepo, mechanicRepo, _, _, _, scheduler, service := newAssignmentFixture()

	mechanic := &entity.Mechanic{Base: entity.Base{ID: uuid.New()}}
	booking := activeBookingAt(mechanic.ID, "2030-05-10", "10:00", entity.BookingStatusPending)

	mechanicRepo.On("FindByID", mock.Anything, mechanic.ID).Return(mechanic, nil)
	bookingRepo.On("FindActiveByMechanic", mock.Anything, mechanic.ID).Return([]*entity.Booking{booking}, nil)
	bookingRepo.On("UpdateStatus", mock.Anything, booking.ID, entity.BookingStatusInProgress).Return(nil)
	scheduler.On("Schedule", jobs.JobInProgress, booking.ID, time.Second).Return()

	resp, err := service.MarkInProgress(context.Background(), mechanic.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusInProgress), resp.Status)
	scheduler.AssertCalled(t, "Schedule", jobs.JobInProgress, booking.ID, time.Second)
}

func TestMarkInProgress_SkipsRunningWork(t *testing.T) {
	bookingRepo, mechanicRepo, _, _, _, scheduler, service := newAssignmentFixture()

	mechanic := &entity.Mechanic{Base: entity.Base{ID: uuid.New()}}
	running := activeBookingAt(mechanic.ID, "2030-05-10", "08:00", entity.BookingStatusInProgress)
	pending := activeBookingAt(mechanic.ID, "2030-05-10", "13:00", entity.BookingStatusPending)

	mechanicRepo.On("FindByID", mock.Anything, mechanic.ID).Return(mechanic, nil)
	bookingRepo.On("FindActiveByMechanic", mock.Anything, mechanic.ID).Return([]*entity.Booking{running, pending}, nil)
	bookingRepo.On("UpdateStatus", mock.Anything, pending.ID, entity.BookingStatusInProgress).Return(nil)
	scheduler.On("Schedule", jobs.JobInProgress, pending.ID, time.Second).Return()

	resp, err := service.MarkInProgress(context.Background(), mechanic.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, pending.ID.String(), resp.ID)
	bookingRepo.AssertCalled(t, "UpdateStatus", mock.Anything, pending.ID, entity.BookingStatusInProgress)
	bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, running.ID, mock.Anything)
}

func TestMarkInProgress_NoPendingBooking(t *testing.T) {
	bookingRepo, mechanicRepo, _, _, _, _, service := newAssignmentFixture()

	mechanic := &entity.Mechanic{Base: entity.Base{ID: uuid.New()}}
	running := activeBookingAt(mechanic.ID, "2030-05-10", "08:00", entity.BookingStatusInProgress)

	mechanicRepo.On("FindByID", mock.Anything, mechanic.ID).Return(mechanic, nil)
	bookingRepo.On("FindActiveByMechanic", mock.Anything, mechanic.ID).Return([]*entity.Booking{running}, nil)

	_, err := service.MarkInProgress(context.Background(), mechanic.ID.String())

	assert.ErrorIs(t, err, ErrNoPendingBooking)
	bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestMarkComplete_StillPending(t *testing.T) {
	bookingRepo, mechanicRepo, _, _, _, _, service := newAssignmentFixture()

	mechanic := &entity.Mechanic{Base: entity.Base{ID: uuid.New()}}
	booking := activeBookingAt(mechanic.ID, "2030-05-10", "10:00", entity.BookingStatusPending)

	mechanicRepo.On("FindByID", mock.Anything, mechanic.ID).Return(mechanic, nil)
	bookingRepo.On("FindActiveByMechanic", mock.Anything, mechanic.ID).Return([]*entity.Booking{booking}, nil)

	_, err := service.MarkComplete(context.Background(), mechanic.ID.String())

	assert.ErrorIs(t, err, ErrStillPending)
	bookingRepo.AssertNotCalled(t, "SetCompleted", mock.Anything, mock.Anything, mock.Anything)
}

func TestMarkComplete_SkipsPendingWork(t *testing.T) {
	bookingRepo, mechanicRepo, _, _, cost, scheduler, service := newAssignmentFixture()

	mechanic := &entity.Mechanic{Base: entity.Base{ID: uuid.New()}}
	pending := activeBookingAt(mechanic.ID, "2030-05-10", "09:00", entity.BookingStatusPending)
	running := activeBookingAt(mechanic.ID, "2030-05-10", "14:00", entity.BookingStatusInProgress)

	mechanicRepo.On("FindByID", mock.Anything, mechanic.ID).Return(mechanic, nil)
	bookingRepo.On("FindActiveByMechanic", mock.Anything, mechanic.ID).Return([]*entity.Booking{pending, running}, nil)
	cost.On("GetTotal", mock.Anything, running.UserID).Return(75.0, nil)
	bookingRepo.On("SetCompleted", mock.Anything, running.ID, 75.0).Return(nil)
	scheduler.On("Schedule", jobs.JobCompleted, running.ID, time.Second).Return()

	resp, err := service.MarkComplete(context.Background(), mechanic.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, running.ID.String(), resp.ID)
	bookingRepo.AssertCalled(t, "SetCompleted", mock.Anything, running.ID, 75.0)
	bookingRepo.AssertNotCalled(t, "SetCompleted", mock.Anything, pending.ID, mock.Anything)
}

func TestMarkComplete_CostFailureLeavesBookingUntouched(t *testing.T) {
	bookingRepo, mechanicRepo, _, _, cost, _, service := newAssignmentFixture()

	mechanic := &entity.Mechanic{Base: entity.Base{ID: uuid.New()}}
	booking := activeBookingAt(mechanic.ID, "2030-05-10", "10:00", entity.BookingStatusInProgress)

	mechanicRepo.On("FindByID", mock.Anything, mechanic.ID).Return(mechanic, nil)
	bookingRepo.On("FindActiveByMechanic", mock.Anything, mechanic.ID).Return([]*entity.Booking{booking}, nil)
	cost.On("GetTotal", mock.Anything, booking.UserID).Return(0.0, assert.AnError)

	_, err := service.MarkComplete(context.Background(), mechanic.ID.String())

	assert.ErrorIs(t, err, ErrCostCalculation)
	bookingRepo.AssertNotCalled(t, "SetCompleted", mock.Anything, mock.Anything, mock.Anything)
}

func TestMarkComplete_Success(t *testing.T) {
	bookingRepo, mechanicRepo, _, _, cost, scheduler, service := newAssignmentFixture()

	mechanic := &entity.Mechanic{Base: entity.Base{ID: uuid.New()}}
	booking := activeBookingAt(mechanic.ID, "2030-05-10", "10:00", entity.BookingStatusInProgress)

	mechanicRepo.On("FindByID", mock.Anything, mechanic.ID).Return(mechanic, nil)
	bookingRepo.On("FindActiveByMechanic", mock.Anything, mechanic.ID).Return([]*entity.Booking{booking}, nil)
	cost.On("GetTotal", mock.Anything, booking.UserID).Return(149.50, nil)
	bookingRepo.On("SetCompleted", mock.Anything, booking.ID, 149.50).Return(nil)
	scheduler.On("Schedule", jobs.JobCompleted, booking.ID, time.Second).Return()

	resp, err := service.MarkComplete(context.Background(), mechanic.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusComplete), resp.Status)
	assert.NotNil(t, resp.Total)
	assert.Equal(t, 149.50, *resp.Total)
	scheduler.AssertCalled(t, "Schedule", jobs.JobCompleted, booking.ID, time.Second)
}
