package domain

import "time"

// Room belongs to exactly one Studio. Deleting a studio removes its rooms.
type Room struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	StudioID   int64     `json:"studio_id" gorm:"not null;index"`
	Name       *string   `json:"name"`
	RoomNumber *string   `json:"room_number"`
	Notes      *string   `json:"notes" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Label is the display name used in conflict messages and email drafts.
func (r *Room) Label() string {
	switch {
	case r.Name != nil && *r.Name != "":
		return *r.Name
	case r.RoomNumber != nil && *r.RoomNumber != "":
		return "Room " + *r.RoomNumber
	default:
		return "Room"
	}
}
