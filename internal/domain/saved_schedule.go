package domain

import "time"

// SavedSchedule is a named pointer to a date's booking set, not a copy.
// The bookings behind it are always re-derived by querying Booking by date.
type SavedSchedule struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Date      string    `json:"date" gorm:"size:10;not null"`
	CreatedBy *string   `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
