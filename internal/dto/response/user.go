package response

import (
	"bike-service/internal/data/entity"
)

type UserResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID.String(),
		FullName:    user.FullName,
		PhoneNumber: user.PhoneNumber,
		Email:       user.Email,
		Role:        string(user.Role),
	}
}

type DashboardCountsResponse struct {
	TotalUsers     int64 `json:"total_users"`
	TotalBookings  int64 `json:"total_bookings"`
	TotalMechanics int64 `json:"total_mechanics"`
	TotalBikes     int64 `json:"total_bikes"`
}
