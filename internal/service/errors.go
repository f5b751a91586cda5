package service

import "errors"

// Sentinel errors returned by the booking and query services. Handlers map
// these to HTTP status codes and stable reason codes; nothing downgrades a
// typed failure into a generic success.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrExperienceNotFound   = errors.New("experience not found")
	ErrSlotNotFound         = errors.New("slot not found")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrDuplicateBooking     = errors.New("customer already has a reservation for this slot")
	ErrInsufficientCapacity = errors.New("not enough seats available for this slot")
	ErrPriceMismatch        = errors.New("expected total does not match the server-computed price")
)
