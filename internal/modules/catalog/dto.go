package catalog

import "castboard/internal/domain"

// Wall-clock fields on these payloads are Pacific local times; the
// service converts to UTC on write and back on read.

type StudioRequest struct {
	Name        string  `json:"name" binding:"required"`
	Address     *string `json:"address"`
	Notes       *string `json:"notes"`
	AMStartTime *string `json:"am_start_time"`
	AMEndTime   *string `json:"am_end_time"`
	PMStartTime *string `json:"pm_start_time"`
	PMEndTime   *string `json:"pm_end_time"`
}

type StudioView struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Address     *string       `json:"address"`
	Notes       *string       `json:"notes"`
	AMStartTime *string       `json:"am_start_time"`
	AMEndTime   *string       `json:"am_end_time"`
	PMStartTime *string       `json:"pm_start_time"`
	PMEndTime   *string       `json:"pm_end_time"`
	Rooms       []domain.Room `json:"rooms,omitempty"`
}

type RoomRequest struct {
	Name       *string `json:"name"`
	RoomNumber *string `json:"room_number"`
	Notes      *string `json:"notes"`
}
