package domain

import "time"

// EmailLog is the append-only audit trail for outbound confirmation
// emails, one row per BCC recipient. Rows are never updated or deleted.
// VoiceActorID is null for sends that could not be matched to an actor
// (including failure rows logged against the director's address).
type EmailLog struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	VoiceActorID *int64    `json:"voice_actor_id" gorm:"index"`
	Email        string    `json:"email" gorm:"not null;index"`
	Subject      string    `json:"subject" gorm:"not null"`
	SentAt       time.Time `json:"sent_at" gorm:"not null;index"`
	Success      bool      `json:"success" gorm:"not null"`
	ErrorMessage *string   `json:"error_message" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
}
