package roster

// Availability wall-clock fields are Pacific local times on the wire;
// the service converts to UTC before they reach the repository.

type VoiceActorRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        *string `json:"phone"`
	Code         *string `json:"code"`
	DietaryNotes *string `json:"dietary_notes"`
	Notes        *string `json:"notes"`
}

type DirectorRequest struct {
	Name  string  `json:"name" binding:"required"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}

type WeeklyAvailabilityRequest struct {
	DayOfWeek   *int    `json:"day_of_week" binding:"required"`
	AMStartTime *string `json:"am_start_time"`
	AMEndTime   *string `json:"am_end_time"`
	PMStartTime *string `json:"pm_start_time"`
	PMEndTime   *string `json:"pm_end_time"`
	Notes       *string `json:"notes"`
}

type DateOverrideRequest struct {
	Date         string  `json:"date" binding:"required"`
	OverrideType *string `json:"override_type"`
	AMStartTime  *string `json:"am_start_time"`
	AMEndTime    *string `json:"am_end_time"`
	PMStartTime  *string `json:"pm_start_time"`
	PMEndTime    *string `json:"pm_end_time"`
	Notes        *string `json:"notes"`
}

type WeeklyAvailabilityView struct {
	ID          int64   `json:"id"`
	DirectorID  int64   `json:"director_id"`
	DayOfWeek   int     `json:"day_of_week"`
	AMStartTime *string `json:"am_start_time"`
	AMEndTime   *string `json:"am_end_time"`
	PMStartTime *string `json:"pm_start_time"`
	PMEndTime   *string `json:"pm_end_time"`
	Notes       *string `json:"notes"`
}

type DateOverrideView struct {
	ID           int64   `json:"id"`
	DirectorID   int64   `json:"director_id"`
	Date         string  `json:"date"`
	OverrideType *string `json:"override_type"`
	AMStartTime  *string `json:"am_start_time"`
	AMEndTime    *string `json:"am_end_time"`
	PMStartTime  *string `json:"pm_start_time"`
	PMEndTime    *string `json:"pm_end_time"`
	Notes        *string `json:"notes"`
}
