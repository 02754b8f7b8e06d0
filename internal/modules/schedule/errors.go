package schedule

import (
	"errors"
	"fmt"

	"castboard/internal/domain"
)

var (
	ErrSecondActorRequired = errors.New("a second voice actor is required")
	ErrDirectorRequired    = errors.New("a director is required")
	ErrSelfPairing         = errors.New("a voice actor cannot be paired with themselves")
	ErrInvalidSlot         = errors.New("slot_type must be am or pm")
	ErrInvalidDate         = errors.New("date must be formatted YYYY-MM-DD")
)

// ConflictError reports that a voice actor already holds the requested
// slot somewhere else on the same date. Position is 1 or 2, matching the
// pair position in the rejected request.
type ConflictError struct {
	VoiceActorID int64
	Position     int
	Slot         domain.SlotType
	RoomLabel    string
	BookingID    int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("voice actor %d is already booked for the %s slot in %s",
		e.VoiceActorID, e.Slot, e.RoomLabel)
}
