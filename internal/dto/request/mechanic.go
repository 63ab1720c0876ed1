package request

type AssignMechanicRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}
