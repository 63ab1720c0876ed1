package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusComplete   BookingStatus = "complete"
	BookingStatusCanceled   BookingStatus = "canceled"
)

// Terminal reports whether no further transition is allowed from s.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusComplete || s == BookingStatusCanceled
}

type Booking struct {
	Base
	UserID          uuid.UUID     `db:"user_id"`
	BikeID          uuid.UUID     `db:"bike_id"`
	MechanicID      *uuid.UUID    `db:"mechanic_id"` // nil until a mechanic is assigned
	BookingAddress  string        `db:"booking_address"`
	BikeDescription string        `db:"bike_description"`
	BikeNumber      string        `db:"bike_number"`
	BookingDate     time.Time     `db:"booking_date"` // calendar date only
	BookingTime     time.Time     `db:"booking_time"` // time of day only
	Status          BookingStatus `db:"status"`
	Total           *float64      `db:"total"` // set on completion
}
