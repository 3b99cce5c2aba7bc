package ticket

import "errors"

var (
	// ErrInvalidGuest indicates a guest line is not "name, age" with a positive integer age.
	ErrInvalidGuest = errors.New("ticket: invalid input, please provide valid input in the format: name, age")
	// ErrInvalidGuestCount indicates the number of guests is not a positive integer.
	ErrInvalidGuestCount = errors.New("ticket: number of guests must be a positive integer")
	// ErrTicketNotFound indicates no stored ticket carries the requested ID.
	ErrTicketNotFound = errors.New("ticket: ticket not found")
	// ErrEmptyPricing indicates a Pricing table without brackets.
	ErrEmptyPricing = errors.New("ticket: pricing must have at least one bracket")
)
