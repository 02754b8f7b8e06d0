package domain

import "time"

// Studio is a recording facility. Its default AM/PM windows are UTC
// wall-clock strings used to prefill room slots; both may be empty.
type Studio struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Address     *string   `json:"address"`
	Notes       *string   `json:"notes" gorm:"type:text"`
	AMStartTime *string   `json:"am_start_time" gorm:"column:am_start_time;size:5"`
	AMEndTime   *string   `json:"am_end_time" gorm:"column:am_end_time;size:5"`
	PMStartTime *string   `json:"pm_start_time" gorm:"column:pm_start_time;size:5"`
	PMEndTime   *string   `json:"pm_end_time" gorm:"column:pm_end_time;size:5"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Rooms []Room `json:"rooms,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
