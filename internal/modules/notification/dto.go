package notification

import (
	"encoding/json"

	"castboard/internal/domain"
)

// BccList unmarshals from either a single string or an array of strings.
type BccList []string

func (b *BccList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*b = nil
		} else {
			*b = BccList{single}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*b = BccList(many)
	return nil
}

// ShiftEmailRequest is the dispatch payload. VoiceActorIDs pairs
// positionally with Bcc: entry i is the actor behind bcc address i, or
// null when the address could not be matched to an actor.
type ShiftEmailRequest struct {
	To            string          `json:"to"`
	Bcc           BccList         `json:"bcc"`
	Subject       string          `json:"subject"`
	Text          string          `json:"text"`
	VoiceActorIDs []*int64        `json:"voiceActorIds"`
	BookingID     int64           `json:"bookingId"`
	SlotType      domain.SlotType `json:"slotType"`
}

// Shift is one notification-eligible room+slot instance: its booking has
// both actors and the director all resolving to live rows.
type Shift struct {
	BookingID   int64           `json:"bookingId"`
	RoomID      int64           `json:"roomId"`
	RoomLabel   string          `json:"roomLabel"`
	StudioName  string          `json:"studioName"`
	StudioAddr  *string         `json:"studioAddress"`
	Date        string          `json:"date"`
	SlotType    domain.SlotType `json:"slotType"`
	StartTime   string          `json:"startTime"`
	EndTime     string          `json:"endTime"`
	VoiceActor  ShiftPerson     `json:"voiceActor"`
	VoiceActor2 ShiftPerson     `json:"voiceActor2"`
	Director    ShiftPerson     `json:"director"`
	EmailsSent  bool            `json:"emailsSent"`
}

type ShiftPerson struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}

// EmailDraft is a composed confirmation ready for review or dispatch.
type EmailDraft struct {
	To            string          `json:"to"`
	Bcc           []string        `json:"bcc"`
	Subject       string          `json:"subject"`
	Text          string          `json:"text"`
	VoiceActorIDs []*int64        `json:"voiceActorIds"`
	BookingID     int64           `json:"bookingId"`
	SlotType      domain.SlotType `json:"slotType"`
}
