package usecase

import (
	"bike-service/internal/data/repository"
	"bike-service/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	User       UserService
	Booking    BookingService
	Mechanic   MechanicService
	Assignment AssignmentService
	Dashboard  DashboardService
}

func NewService(repo *repository.Repository, scheduler NotificationScheduler, config *utils.Config, log *zap.Logger) *Service {
	capacity := NewCapacityChecker(repo, log)
	cost := NewCostService(repo, log)

	return &Service{
		User:       NewUserService(repo, log),
		Booking:    NewBookingService(repo, capacity, log),
		Mechanic:   NewMechanicService(repo, log),
		Assignment: NewAssignmentService(repo, cost, scheduler, config.Jobs.NotifyDelay, log),
		Dashboard:  NewDashboardService(repo, log),
	}
}
