package entity

import (
	"github.com/google/uuid"
)

// Mechanic is a technician that can be assigned to bookings. The set of
// bookings currently assigned to a mechanic is derived from the bookings
// table (mechanic_id + non-terminal status), never stored here.
type Mechanic struct {
	Base
	Name        string     `db:"name"`
	PhoneNumber string     `db:"phone_number"`
	UserID      *uuid.UUID `db:"user_id"` // linked account, one mechanic per account
}
