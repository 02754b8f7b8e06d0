package domain

import "time"

// DirectorWeeklyAvailability is a recurring window keyed by weekday
// (0 = Sunday). One row per director per weekday, upsert semantics.
//
// Availability records are editable reference data only: the booking
// conflict gate does not consult them.
type DirectorWeeklyAvailability struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	DirectorID  int64     `json:"director_id" gorm:"not null;uniqueIndex:idx_director_weekday,priority:1"`
	DayOfWeek   int       `json:"day_of_week" gorm:"not null;uniqueIndex:idx_director_weekday,priority:2"`
	AMStartTime *string   `json:"am_start_time" gorm:"column:am_start_time;size:5"`
	AMEndTime   *string   `json:"am_end_time" gorm:"column:am_end_time;size:5"`
	PMStartTime *string   `json:"pm_start_time" gorm:"column:pm_start_time;size:5"`
	PMEndTime   *string   `json:"pm_end_time" gorm:"column:pm_end_time;size:5"`
	Notes       *string   `json:"notes" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DirectorDateOverride replaces the weekly window for one calendar date.
type DirectorDateOverride struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	DirectorID   int64     `json:"director_id" gorm:"not null;index"`
	Date         string    `json:"date" gorm:"size:10;not null"`
	OverrideType *string   `json:"override_type"`
	AMStartTime  *string   `json:"am_start_time" gorm:"column:am_start_time;size:5"`
	AMEndTime    *string   `json:"am_end_time" gorm:"column:am_end_time;size:5"`
	PMStartTime  *string   `json:"pm_start_time" gorm:"column:pm_start_time;size:5"`
	PMEndTime    *string   `json:"pm_end_time" gorm:"column:pm_end_time;size:5"`
	Notes        *string   `json:"notes" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
