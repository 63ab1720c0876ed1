package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	"bike-service/internal/data/entity"
	"bike-service/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Stubs embed the repository interfaces and override only what a job
// touches; an unexpected call panics and fails the test.

type stubBookingRepo struct {
	repository.BookingRepository
	booking *entity.Booking
}

func (s *stubBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return s.booking, nil
}

type stubUserRepo struct {
	repository.UserRepository
	user *entity.User
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return s.user, nil
}

type stubMechanicRepo struct {
	repository.MechanicRepository
	mechanic *entity.Mechanic
}

func (s *stubMechanicRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Mechanic, error) {
	return s.mechanic, nil
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(to, subject, htmlBody string) error {
	return m.Called(to, subject, htmlBody).Error(0)
}

func fixture(booking *entity.Booking, user *entity.User, mechanic *entity.Mechanic) (*mockMailer, *Dispatcher) {
	mail := new(mockMailer)
	repo := &repository.Repository{
		Booking:  &stubBookingRepo{booking: booking},
		User:     &stubUserRepo{user: user},
		Mechanic: &stubMechanicRepo{mechanic: mechanic},
	}
	return mail, NewDispatcher(repo, mail, zap.NewNop())
}

func TestRun_InProgressSendsToCustomer(t *testing.T) {
	booking := &entity.Booking{Base: entity.Base{ID: uuid.New()}, UserID: uuid.New(), Status: entity.BookingStatusInProgress}
	user := &entity.User{Base: entity.Base{ID: booking.UserID}, Email: "ana@example.com"}

	mail, d := fixture(booking, user, nil)
	mail.On("Send", "ana@example.com", "Bike Servicing In Progress", mock.Anything).Return(nil)

	d.run(JobInProgress, booking.ID)

	mail.AssertNumberOfCalls(t, "Send", 1)
}

func TestRun_BookingGoneExitsSilently(t *testing.T) {
	mail, d := fixture(nil, nil, nil)

	d.run(JobInProgress, uuid.New())

	mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_MissingEmailExitsSilently(t *testing.T) {
	booking := &entity.Booking{Base: entity.Base{ID: uuid.New()}, UserID: uuid.New()}
	user := &entity.User{Base: entity.Base{ID: booking.UserID}, Email: ""}

	mail, d := fixture(booking, user, nil)

	d.run(JobInProgress, booking.ID)

	mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_DeliveryFailureIsDropped(t *testing.T) {
	booking := &entity.Booking{Base: entity.Base{ID: uuid.New()}, UserID: uuid.New()}
	user := &entity.User{Base: entity.Base{ID: booking.UserID}, Email: "ana@example.com"}

	mail, d := fixture(booking, user, nil)
	mail.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	d.run(JobInProgress, booking.ID)

	// No retry: exactly one attempt.
	mail.AssertNumberOfCalls(t, "Send", 1)
}

func TestRun_AssignedRendersMechanicDetails(t *testing.T) {
	mechanicID := uuid.New()
	booking := &entity.Booking{Base: entity.Base{ID: uuid.New()}, UserID: uuid.New(), MechanicID: &mechanicID}
	user := &entity.User{Base: entity.Base{ID: booking.UserID}, Email: "ana@example.com"}
	mechanic := &entity.Mechanic{Base: entity.Base{ID: mechanicID}, Name: "Jo", PhoneNumber: "555-0101"}

	mail, d := fixture(booking, user, mechanic)
	mail.On("Send", "ana@example.com", "Bike Servicing Assigned to Mechanic", mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "Jo") && strings.Contains(body, "555-0101")
	})).Return(nil)

	d.run(JobMechanicAssigned, booking.ID)

	mail.AssertNumberOfCalls(t, "Send", 1)
}

func TestRun_AssignedSkipsWhenLinkClearedByFireTime(t *testing.T) {
	booking := &entity.Booking{Base: entity.Base{ID: uuid.New()}, UserID: uuid.New(), MechanicID: nil}
	user := &entity.User{Base: entity.Base{ID: booking.UserID}, Email: "ana@example.com"}

	mail, d := fixture(booking, user, nil)

	d.run(JobMechanicAssigned, booking.ID)

	mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_CompletedRendersPersistedTotal(t *testing.T) {
	total := 149.5
	booking := &entity.Booking{
		Base:   entity.Base{ID: uuid.New()},
		UserID: uuid.New(),
		Status: entity.BookingStatusComplete,
		Total:  &total,
	}
	user := &entity.User{Base: entity.Base{ID: booking.UserID}, Email: "ana@example.com"}

	mail, d := fixture(booking, user, nil)
	mail.On("Send", "ana@example.com", "Bike Servicing Completed", mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "149.50")
	})).Return(nil)

	d.run(JobCompleted, booking.ID)

	mail.AssertNumberOfCalls(t, "Send", 1)
}

func TestSchedule_FiresAfterDelay(t *testing.T) {
	booking := &entity.Booking{Base: entity.Base{ID: uuid.New()}, UserID: uuid.New()}
	user := &entity.User{Base: entity.Base{ID: booking.UserID}, Email: "ana@example.com"}

	mail, d := fixture(booking, user, nil)

	done := make(chan struct{})
	mail.On("Send", mock.Anything, mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		close(done)
	}).Return(nil)

	d.Schedule(JobInProgress, booking.ID, 10*time.Millisecond)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled job did not fire")
	}
}
