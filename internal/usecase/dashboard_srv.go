package usecase

import (
	"context"
	"fmt"

	"bike-service/internal/data/entity"
	"bike-service/internal/data/repository"
	"bike-service/internal/dto/response"

	"go.uber.org/zap"
)

type DashboardService interface {
	GetTotalCounts(ctx context.Context) (*response.DashboardCountsResponse, error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log.With(zap.String("service", "dashboard")),
	}
}

func (s *dashboardService) GetTotalCounts(ctx context.Context) (*response.DashboardCountsResponse, error) {
	users, err := s.repo.User.CountByRole(ctx, entity.RoleCustomer)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	bookings, err := s.repo.Booking.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	mechanics, err := s.repo.Mechanic.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count mechanics: %w", err)
	}

	bikes, err := s.repo.Bike.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bikes: %w", err)
	}

	return &response.DashboardCountsResponse{
		TotalUsers:     users,
		TotalBookings:  bookings,
		TotalMechanics: mechanics,
		TotalBikes:     bikes,
	}, nil
}
