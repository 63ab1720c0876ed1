package response

import (
	"bike-service/internal/data/entity"
)

type MechanicResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	PhoneNumber string            `json:"phone_number"`
	UserID      *string           `json:"user_id,omitempty"`
	Assignments []BookingResponse `json:"assignments"`
}

// MechanicToResponse converts a mechanic and its derived assignment set.
func MechanicToResponse(mechanic *entity.Mechanic, assignments []BookingResponse) MechanicResponse {
	resp := MechanicResponse{
		ID:          mechanic.ID.String(),
		Name:        mechanic.Name,
		PhoneNumber: mechanic.PhoneNumber,
		Assignments: assignments,
	}

	if mechanic.UserID != nil {
		id := mechanic.UserID.String()
		resp.UserID = &id
	}

	if resp.Assignments == nil {
		resp.Assignments = []BookingResponse{}
	}

	return resp
}
