package usecase

import "errors"

// Domain rule violations and lookup failures. Handlers branch on these with
// errors.Is; anything else is treated as an unexpected server-side failure.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrMechanicNotFound = errors.New("mechanic not found")
	ErrBikeNotFound     = errors.New("bike not found")

	// Booking creation / update
	ErrMissingFields     = errors.New("please enter all fields")
	ErrInvalidDateFormat = errors.New("invalid booking date format, use yyyy-MM-dd")
	ErrInvalidTimeFormat = errors.New("invalid booking time format, use HH:mm")
	ErrPastBookingTime   = errors.New("booking time cannot be in the past")
	ErrPlateTaken        = errors.New("bike number already booked")
	ErrCapacityExceeded  = errors.New("all available mechanics are booked for this time")
	ErrNotBookingOwner   = errors.New("booking does not belong to this user")

	// Assignment
	ErrInvalidBooking    = errors.New("invalid booking id provided")
	ErrBookingNotPending = errors.New("booking status is not pending, mechanic cannot be assigned")
	ErrAlreadyAssigned   = errors.New("booking is already assigned to a mechanic")
	ErrTimeConflict      = errors.New("mechanic already has a booking within two hours of this slot")

	// Accounts
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAlreadyMechanic    = errors.New("user is already registered as a mechanic")

	// Status transitions
	ErrNoAssignment     = errors.New("mechanic is not assigned to any booking")
	ErrNoPendingBooking = errors.New("mechanic has no pending booking to start")
	ErrStillPending     = errors.New("booking is still pending, it must be in-progress before completion")
	ErrNotCancelable    = errors.New("booking cannot be canceled from its current status")
	ErrCostCalculation  = errors.New("failed to calculate total amount")
)
