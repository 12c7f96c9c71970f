package booking

import "errors"

var (
	ErrOfferingNotFound    = errors.New("offering not found")
	ErrInvalidGuestCount   = errors.New("guest count must be a positive integer")
	ErrReservationNotFound = errors.New("reservation not found")
)
