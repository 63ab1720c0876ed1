package repository

import (
	"bike-service/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Booking  BookingRepository
	Mechanic MechanicRepository
	Bike     BikeRepository
	Cart     CartRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Mechanic: NewMechanicRepository(db, log),
		Bike:     NewBikeRepository(db, log),
		Cart:     NewCartRepository(db, log),
	}
}
