package domain

import "errors"

var (
	ErrVenueNotFound       = errors.New("venue not found")
	ErrCapacityExceeded    = errors.New("venue capacity exceeded")
	ErrAlreadyEmpty        = errors.New("venue already empty")
	ErrMaximumBelowCurrent = errors.New("maximum below current occupancy")
	ErrInvalidMaximum      = errors.New("maximum must be positive")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrTicketAlreadyUsed   = errors.New("ticket already used")
	ErrTicketRefunded      = errors.New("ticket refunded")
	ErrFetchTimeout        = errors.New("capacity fetch timed out")
)
