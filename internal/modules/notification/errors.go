package notification

import "errors"

var (
	ErrMissingFields = errors.New("to, subject and text are required")
	ErrInvalidSlot   = errors.New("slotType must be am or pm")
	ErrInvalidDate   = errors.New("date must be formatted YYYY-MM-DD")
)
