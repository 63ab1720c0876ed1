package adaptor

import (
	"bike-service/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	User      *UserHandler
	Booking   *BookingHandler
	Mechanic  *MechanicHandler
	Dashboard *DashboardHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		User:      NewUserHandler(service.User, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Mechanic:  NewMechanicHandler(service.Mechanic, service.Assignment, log),
		Dashboard: NewDashboardHandler(service.Dashboard, log),
	}
}
