package reservations

import "errors"

// Sentinel errors returned by the reservation core. Handlers map these to
// HTTP status codes with errors.Is.
var (
	ErrTrainNotFound        = errors.New("train not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInsufficientCapacity = errors.New("not enough seats available")
	ErrInvalidTransition    = errors.New("booking is not in a valid state for this operation")
	ErrNotOwner             = errors.New("booking belongs to another user")

	// ErrCapacityOverflow means releasing a seat would push available_seats
	// past total_seats. It indicates a double release and is never expected
	// during normal operation.
	ErrCapacityOverflow = errors.New("capacity overflow: available seats would exceed total seats")

	ErrInvalidInput = errors.New("invalid input")
)
