package usecase

import (
	"context"
	"time"

	"bike-service/internal/data/entity"
	"bike-service/internal/data/repository"
	"bike-service/internal/jobs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	return m.Called(ctx, b).Error(0)
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}
func (m *mockBookingRepo) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}
func (m *mockBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}
func (m *mockBookingRepo) FindByStatus(ctx context.Context, status entity.BookingStatus) ([]*entity.Booking, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}
func (m *mockBookingRepo) Update(ctx context.Context, b *entity.Booking) error {
	return m.Called(ctx, b).Error(0)
}
func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *mockBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockBookingRepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}
func (m *mockBookingRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockBookingRepo) CountInWindow(ctx context.Context, date, from, to time.Time, excludeID *uuid.UUID) (int64, error) {
	args := m.Called(ctx, date, from, to, excludeID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockBookingRepo) ExistsPlateForOtherUser(ctx context.Context, plate string, userID uuid.UUID, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, plate, userID, excludeID)
	return args.Bool(0), args.Error(1)
}
func (m *mockBookingRepo) FindActiveByMechanic(ctx context.Context, mechanicID uuid.UUID) ([]*entity.Booking, error) {
	args := m.Called(ctx, mechanicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}
func (m *mockBookingRepo) AssignMechanic(ctx context.Context, bookingID, mechanicID uuid.UUID) error {
	return m.Called(ctx, bookingID, mechanicID).Error(0)
}
func (m *mockBookingRepo) SetCompleted(ctx context.Context, bookingID uuid.UUID, total float64) error {
	return m.Called(ctx, bookingID, total).Error(0)
}

type mockMechanicRepo struct {
	mock.Mock
}

func (m *mockMechanicRepo) Create(ctx context.Context, mech *entity.Mechanic) error {
	return m.Called(ctx, mech).Error(0)
}
func (m *mockMechanicRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Mechanic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Mechanic), args.Error(1)
}
func (m *mockMechanicRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Mechanic, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Mechanic), args.Error(1)
}
func (m *mockMechanicRepo) FindAll(ctx context.Context) ([]*entity.Mechanic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Mechanic), args.Error(1)
}
func (m *mockMechanicRepo) FindAssigned(ctx context.Context) ([]*entity.Mechanic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Mechanic), args.Error(1)
}
func (m *mockMechanicRepo) FindUnassigned(ctx context.Context) ([]*entity.Mechanic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Mechanic), args.Error(1)
}
func (m *mockMechanicRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockMechanicRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}
func (m *mockUserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role entity.UserRole) error {
	return m.Called(ctx, id, role).Error(0)
}
func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockUserRepo) CountByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

type mockBikeRepo struct {
	mock.Mock
}

func (m *mockBikeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.BikeProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BikeProduct), args.Error(1)
}
func (m *mockBikeRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockCartRepo struct {
	mock.Mock
}

func (m *mockCartRepo) FindLinesByUserID(ctx context.Context, userID uuid.UUID) ([]*repository.CartLine, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.CartLine), args.Error(1)
}

type mockScheduler struct {
	mock.Mock
}

func (m *mockScheduler) Schedule(kind jobs.JobKind, bookingID uuid.UUID, delay time.Duration) {
	m.Called(kind, bookingID, delay)
}

type mockCapacity struct {
	mock.Mock
}

func (m *mockCapacity) CheckCapacity(ctx context.Context, date, timeOfDay time.Time, excludeBookingID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, date, timeOfDay, excludeBookingID)
	return args.Bool(0), args.Error(1)
}

type mockCost struct {
	mock.Mock
}

func (m *mockCost) GetTotal(ctx context.Context, userID uuid.UUID) (float64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(float64), args.Error(1)
}

// testRepo bundles mocks into the aggregate the services take.
func testRepo(booking *mockBookingRepo, mechanic *mockMechanicRepo, user *mockUserRepo, bike *mockBikeRepo, cart *mockCartRepo) *repository.Repository {
	return &repository.Repository{
		User:     user,
		Booking:  booking,
		Mechanic: mechanic,
		Bike:     bike,
		Cart:     cart,
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
