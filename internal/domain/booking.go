package domain

import "time"

type SlotType string

const (
	SlotAM SlotType = "am"
	SlotPM SlotType = "pm"
)

func (s SlotType) Valid() bool {
	return s == SlotAM || s == SlotPM
}

// Booking assigns a pair of voice actors and a director to one room slot
// on one date. Time-of-day columns hold UTC HH:MM wall-clock strings with
// no date component.
//
// A row occupies exactly one slot: either both AM times are set and the
// PM pair is null, or the other way round. The schedule service writes
// only one pair per save; the two pairs are queried as mutually exclusive
// subsets of this table.
type Booking struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	VoiceActorID  int64     `json:"voice_actor_id" gorm:"not null;index:idx_bookings_actor_date,priority:1"`
	VoiceActorID2 int64     `json:"voice_actor_id_2" gorm:"column:voice_actor_id_2;not null"`
	DirectorID    int64     `json:"director_id" gorm:"not null"`
	RoomID        int64     `json:"room_id" gorm:"not null;index"`
	Date          string    `json:"date" gorm:"size:10;not null;index:idx_bookings_actor_date,priority:2"`
	AMStartTime   *string   `json:"am_start_time" gorm:"column:am_start_time;size:5"`
	AMEndTime     *string   `json:"am_end_time" gorm:"column:am_end_time;size:5"`
	PMStartTime   *string   `json:"pm_start_time" gorm:"column:pm_start_time;size:5"`
	PMEndTime     *string   `json:"pm_end_time" gorm:"column:pm_end_time;size:5"`
	Notes         *string   `json:"notes" gorm:"type:text"`
	AMEmailsSent  bool      `json:"am_emails_sent" gorm:"column:am_emails_sent;not null;default:false"`
	PMEmailsSent  bool      `json:"pm_emails_sent" gorm:"column:pm_emails_sent;not null;default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HasSlot reports whether both start and end time are populated for the
// given slot type.
func (b *Booking) HasSlot(slot SlotType) bool {
	start, end := b.SlotTimes(slot)
	return start != nil && end != nil
}

// SlotTimes returns the UTC start/end pair for the given slot type.
func (b *Booking) SlotTimes(slot SlotType) (start, end *string) {
	if slot == SlotAM {
		return b.AMStartTime, b.AMEndTime
	}
	return b.PMStartTime, b.PMEndTime
}

// Involves reports whether the actor holds either position in the pair.
func (b *Booking) Involves(actorID int64) bool {
	return b.VoiceActorID == actorID || b.VoiceActorID2 == actorID
}

// EmailsSent reports the confirmation flag for the given slot type.
func (b *Booking) EmailsSent(slot SlotType) bool {
	if slot == SlotAM {
		return b.AMEmailsSent
	}
	return b.PMEmailsSent
}
