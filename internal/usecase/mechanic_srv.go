package usecase

import (
	"context"
	"fmt"

	"bike-service/internal/data/entity"
	"bike-service/internal/data/repository"
	"bike-service/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MechanicService interface {
	GetAllMechanics(ctx context.Context) ([]response.MechanicResponse, error)
	GetMechanic(ctx context.Context, mechanicID string) (*response.MechanicResponse, error)
	GetAssignedMechanics(ctx context.Context) ([]response.MechanicResponse, error)
	GetUnassignedMechanics(ctx context.Context) ([]response.MechanicResponse, error)
	DeleteMechanic(ctx context.Context, mechanicID string) error
}

type mechanicService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMechanicService(repo *repository.Repository, log *zap.Logger) MechanicService {
	return &mechanicService{
		repo: repo,
		log:  log.With(zap.String("service", "mechanic")),
	}
}

func (s *mechanicService) GetAllMechanics(ctx context.Context) ([]response.MechanicResponse, error) {
	mechanics, err := s.repo.Mechanic.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all mechanics: %w", err)
	}
	return s.buildMechanicResponses(ctx, mechanics)
}

func (s *mechanicService) GetMechanic(ctx context.Context, mechanicID string) (*response.MechanicResponse, error) {
	id, err := uuid.Parse(mechanicID)
	if err != nil {
		return nil, fmt.Errorf("invalid mechanic ID format %s: %w", mechanicID, err)
	}

	mechanic, err := s.repo.Mechanic.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find mechanic: %w", err)
	}
	if mechanic == nil {
		return nil, ErrMechanicNotFound
	}

	resp, err := s.buildMechanicResponse(ctx, mechanic)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *mechanicService) GetAssignedMechanics(ctx context.Context) ([]response.MechanicResponse, error) {
	mechanics, err := s.repo.Mechanic.FindAssigned(ctx)
	if err != nil {
		return nil, fmt.Errorf("get assigned mechanics: %w", err)
	}
	return s.buildMechanicResponses(ctx, mechanics)
}

func (s *mechanicService) GetUnassignedMechanics(ctx context.Context) ([]response.MechanicResponse, error) {
	mechanics, err := s.repo.Mechanic.FindUnassigned(ctx)
	if err != nil {
		return nil, fmt.Errorf("get unassigned mechanics: %w", err)
	}
	return s.buildMechanicResponses(ctx, mechanics)
}

func (s *mechanicService) DeleteMechanic(ctx context.Context, mechanicID string) error {
	id, err := uuid.Parse(mechanicID)
	if err != nil {
		return fmt.Errorf("invalid mechanic ID format %s: %w", mechanicID, err)
	}

	mechanic, err := s.repo.Mechanic.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find mechanic: %w", err)
	}
	if mechanic == nil {
		return ErrMechanicNotFound
	}

	if err := s.repo.Mechanic.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete mechanic",
			zap.Error(err),
			zap.String("mechanic_id", mechanicID),
		)
		return fmt.Errorf("delete mechanic %s: %w", mechanicID, err)
	}

	s.log.Info("Mechanic deleted", zap.String("mechanic_id", mechanicID))
	return nil
}

// ==================== HELPER METHODS ====================

// buildMechanicResponse attaches the mechanic's active workload, derived
// from the bookings that reference them and are not yet finished.
func (s *mechanicService) buildMechanicResponse(ctx context.Context, mechanic *entity.Mechanic) (response.MechanicResponse, error) {
	active, err := s.repo.Booking.FindActiveByMechanic(ctx, mechanic.ID)
	if err != nil {
		return response.MechanicResponse{}, fmt.Errorf("load assignments for mechanic %s: %w", mechanic.ID.String(), err)
	}

	assignments := make([]response.BookingResponse, len(active))
	for i, booking := range active {
		user, _ := s.repo.User.FindByID(ctx, booking.UserID)
		bike, _ := s.repo.Bike.FindByID(ctx, booking.BikeID)
		assignments[i] = response.BookingToResponse(booking, user, bike, mechanic)
	}

	return response.MechanicToResponse(mechanic, assignments), nil
}

func (s *mechanicService) buildMechanicResponses(ctx context.Context, mechanics []*entity.Mechanic) ([]response.MechanicResponse, error) {
	responses := make([]response.MechanicResponse, len(mechanics))
	for i, mechanic := range mechanics {
		resp, err := s.buildMechanicResponse(ctx, mechanic)
		if err != nil {
			return nil, err
		}
		responses[i] = resp
	}
	return responses, nil
}
