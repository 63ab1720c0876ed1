package request

type CreateBookingRequest struct {
	UserID          string   `json:"user_id" validate:"required,uuid"`
	BikeID          string   `json:"bike_id" validate:"required,uuid"`
	BikeDescription string   `json:"bike_description" validate:"required,max=1000"`
	BookingDate     string   `json:"booking_date" validate:"required"`
	BookingTime     string   `json:"booking_time" validate:"required"`
	BikeNumber      string   `json:"bike_number" validate:"required,max=50"`
	BookingAddress  string   `json:"booking_address" validate:"required,max=255"`
	Total           *float64 `json:"total,omitempty"`
}

type UpdateBookingRequest struct {
	BookingID       string   `json:"booking_id" validate:"required,uuid"`
	UserID          string   `json:"user_id" validate:"required,uuid"`
	BikeID          string   `json:"bike_id" validate:"required,uuid"`
	BikeDescription string   `json:"bike_description" validate:"required,max=1000"`
	BookingDate     string   `json:"booking_date" validate:"required"`
	BookingTime     string   `json:"booking_time" validate:"required"`
	BikeNumber      string   `json:"bike_number" validate:"required,max=50"`
	BookingAddress  string   `json:"booking_address" validate:"required,max=255"`
	Total           *float64 `json:"total,omitempty"`
}
