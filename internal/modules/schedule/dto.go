package schedule

import "castboard/internal/domain"

// SaveBookingRequest creates a booking when BookingID is zero and
// overwrites the existing row otherwise. StartTime/EndTime are Pacific
// local wall-times; either side left empty falls back to the slot's
// default window.
type SaveBookingRequest struct {
	BookingID     int64           `json:"booking_id"`
	RoomID        int64           `json:"room_id" binding:"required"`
	Date          string          `json:"date" binding:"required"`
	SlotType      domain.SlotType `json:"slot_type" binding:"required"`
	VoiceActorID  int64           `json:"voice_actor_id" binding:"required"`
	VoiceActorID2 int64           `json:"voice_actor_id_2"`
	DirectorID    int64           `json:"director_id"`
	StartTime     *string         `json:"start_time"`
	EndTime       *string         `json:"end_time"`
	Notes         *string         `json:"notes"`
}

// BookingView is a booking with its wall-times converted back to Pacific
// local for display.
type BookingView struct {
	ID            int64   `json:"id"`
	RoomID        int64   `json:"room_id"`
	Date          string  `json:"date"`
	VoiceActorID  int64   `json:"voice_actor_id"`
	VoiceActorID2 int64   `json:"voice_actor_id_2"`
	DirectorID    int64   `json:"director_id"`
	AMStartTime   *string `json:"am_start_time"`
	AMEndTime     *string `json:"am_end_time"`
	PMStartTime   *string `json:"pm_start_time"`
	PMEndTime     *string `json:"pm_end_time"`
	Notes         *string `json:"notes"`
	AMEmailsSent  bool    `json:"am_emails_sent"`
	PMEmailsSent  bool    `json:"pm_emails_sent"`
}

type SlotDefaults struct {
	AMStartTime string `json:"am_start_time"`
	AMEndTime   string `json:"am_end_time"`
	PMStartTime string `json:"pm_start_time"`
	PMEndTime   string `json:"pm_end_time"`
}

// DayView is everything the schedule grid needs to render one date.
type DayView struct {
	Date        string              `json:"date"`
	Studios     []domain.Studio     `json:"studios"`
	VoiceActors []domain.VoiceActor `json:"voice_actors"`
	Directors   []domain.Director   `json:"directors"`
	Bookings    []BookingView       `json:"bookings"`
	Defaults    SlotDefaults        `json:"defaults"`
}

type SaveScheduleRequest struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required"`
}

// SavedScheduleView pairs the saved pointer with the bookings currently
// on its date. The bookings are re-derived on every load, never copied.
type SavedScheduleView struct {
	Schedule *domain.SavedSchedule `json:"schedule"`
	Bookings []BookingView         `json:"bookings"`
}
