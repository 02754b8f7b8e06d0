package domain

import "time"

type Director struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Notes     *string   `json:"notes" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	WeeklyAvailability []DirectorWeeklyAvailability `json:"weekly_availability,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	DateOverrides      []DirectorDateOverride       `json:"date_overrides,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
