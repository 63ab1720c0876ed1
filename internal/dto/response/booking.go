package response

import (
	"bike-service/internal/data/entity"
	"bike-service/pkg/utils"
)

type UserDetails struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type BikeDetails struct {
	BikeName  string  `json:"bike_name"`
	BikeModel string  `json:"bike_model"`
	BikePrice float64 `json:"bike_price"`
}

type MechanicDetails struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

type BookingResponse struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	UserDetails     *UserDetails     `json:"user_details,omitempty"`
	BikeID          string           `json:"bike_id"`
	BikeDetails     *BikeDetails     `json:"bike_details,omitempty"`
	MechanicID      *string          `json:"mechanic_id,omitempty"`
	MechanicDetails *MechanicDetails `json:"mechanic_details,omitempty"`
	BikeDescription string           `json:"bike_description"`
	BookingDate     string           `json:"booking_date"`
	BookingTime     string           `json:"booking_time"`
	Status          string           `json:"status"`
	Total           *float64         `json:"total,omitempty"`
	BikeNumber      string           `json:"bike_number"`
	BookingAddress  string           `json:"booking_address"`
}

// BookingToResponse converts a booking and its (optional) related records.
func BookingToResponse(booking *entity.Booking, user *entity.User, bike *entity.BikeProduct, mechanic *entity.Mechanic) BookingResponse {
	resp := BookingResponse{
		ID:              booking.ID.String(),
		UserID:          booking.UserID.String(),
		BikeID:          booking.BikeID.String(),
		BikeDescription: booking.BikeDescription,
		BookingDate:     booking.BookingDate.Format(utils.DateLayout),
		BookingTime:     booking.BookingTime.Format(utils.TimeLayout),
		Status:          string(booking.Status),
		Total:           booking.Total,
		BikeNumber:      booking.BikeNumber,
		BookingAddress:  booking.BookingAddress,
	}

	if booking.MechanicID != nil {
		id := booking.MechanicID.String()
		resp.MechanicID = &id
	}

	if user != nil {
		resp.UserDetails = &UserDetails{
			FullName:    user.FullName,
			Email:       user.Email,
			PhoneNumber: user.PhoneNumber,
		}
	}

	if bike != nil {
		resp.BikeDetails = &BikeDetails{
			BikeName:  bike.BikeName,
			BikeModel: bike.BikeModel,
			BikePrice: bike.BikePrice,
		}
	}

	if mechanic != nil {
		resp.MechanicDetails = &MechanicDetails{
			Name:        mechanic.Name,
			PhoneNumber: mechanic.PhoneNumber,
		}
	}

	return resp
}
