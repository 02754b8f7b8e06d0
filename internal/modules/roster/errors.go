package roster

import "errors"

var (
	ErrDuplicateEmail = errors.New("a voice actor with this email already exists")
	ErrInvalidWeekday = errors.New("day_of_week must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidDate    = errors.New("date must be formatted YYYY-MM-DD")
)
