package domain

import "time"

// VoiceActor is a bookable performer. Email is required: it is both the
// notification address and the dedup key when matching BCC recipients
// back to actors.
type VoiceActor struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"not null;index"`
	Phone        *string   `json:"phone"`
	Code         *string   `json:"code" gorm:"size:16"`
	DietaryNotes *string   `json:"dietary_notes" gorm:"type:text"`
	Notes        *string   `json:"notes" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
