package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"castboard/internal/domain"
	"castboard/internal/pkg/mailer"
	"castboard/internal/pkg/timezone"
)

type Service struct {
	mail      mailer.Mailer
	bookings  BookingStore
	actors    VoiceActorStore
	directors DirectorStore
	rooms     RoomStore
	studios   StudioStore
	log       EmailLogStore
}

func NewService(
	mail mailer.Mailer,
	bookings BookingStore,
	actors VoiceActorStore,
	directors DirectorStore,
	rooms RoomStore,
	studios StudioStore,
	log EmailLogStore,
) *Service {
	return &Service{
		mail:      mail,
		bookings:  bookings,
		actors:    actors,
		directors: directors,
		rooms:     rooms,
		studios:   studios,
		log:       log,
	}
}

// SendShiftEmail dispatches one confirmation: To is the director, Bcc the
// two voice actors. The provider call is atomic across the recipient
// list. On success one audit row is written per BCC entry, paired
// positionally with VoiceActorIDs, and the booking's slot flag flips. On
// failure a single failed row is written against the To address, the
// flag stays untouched, and the provider error is returned.
func (s *Service) SendShiftEmail(ctx context.Context, req ShiftEmailRequest) error {
	if req.To == "" || req.Subject == "" || req.Text == "" {
		return ErrMissingFields
	}

	err := s.mail.Send(ctx, mailer.Message{
		To:      req.To,
		Bcc:     req.Bcc,
		Subject: req.Subject,
		Text:    req.Text,
	})
	if err != nil {
		msg := err.Error()
		_ = s.log.Append(ctx, &domain.EmailLog{
			Email:        req.To,
			Subject:      req.Subject,
			SentAt:       time.Now().UTC(),
			Success:      false,
			ErrorMessage: &msg,
		})
		return err
	}

	for i, email := range req.Bcc {
		if email == "" {
			continue
		}
		var actorID *int64
		if i < len(req.VoiceActorIDs) {
			actorID = req.VoiceActorIDs[i]
		}
		if err := s.log.Append(ctx, &domain.EmailLog{
			VoiceActorID: actorID,
			Email:        email,
			Subject:      req.Subject,
			SentAt:       time.Now().UTC(),
			Success:      true,
		}); err != nil {
			return err
		}
	}

	if req.BookingID != 0 && req.SlotType.Valid() {
		return s.bookings.MarkEmailsSent(ctx, req.BookingID, req.SlotType, true)
	}
	return nil
}

// CompleteShifts returns the notification-eligible room+slot instances
// for a date: bookings whose two actors and director all resolve to
// existing rows. Any failed lookup excludes the shift rather than
// erroring, so one stale reference does not hide the rest of the day.
func (s *Service) CompleteShifts(ctx context.Context, date string) ([]Shift, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}

	bookings, err := s.bookings.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	shifts := make([]Shift, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		for _, slot := range []domain.SlotType{domain.SlotAM, domain.SlotPM} {
			if !b.HasSlot(slot) {
				continue
			}
			shift, ok := s.buildShift(ctx, b, slot)
			if ok {
				shifts = append(shifts, shift)
			}
		}
	}
	return shifts, nil
}

func (s *Service) buildShift(ctx context.Context, b *domain.Booking, slot domain.SlotType) (Shift, bool) {
	va1, err := s.actors.GetByID(ctx, b.VoiceActorID)
	if err != nil {
		return Shift{}, false
	}
	va2, err := s.actors.GetByID(ctx, b.VoiceActorID2)
	if err != nil {
		return Shift{}, false
	}
	director, err := s.directors.GetByID(ctx, b.DirectorID)
	if err != nil {
		return Shift{}, false
	}
	room, err := s.rooms.GetByID(ctx, b.RoomID)
	if err != nil {
		return Shift{}, false
	}
	studio, err := s.studios.GetByID(ctx, room.StudioID)
	if err != nil {
		return Shift{}, false
	}

	start, end := b.SlotTimes(slot)
	directorEmail := ""
	if director.Email != nil {
		directorEmail = *director.Email
	}

	return Shift{
		BookingID:   b.ID,
		RoomID:      room.ID,
		RoomLabel:   room.Label(),
		StudioName:  studio.Name,
		StudioAddr:  studio.Address,
		Date:        b.Date,
		SlotType:    slot,
		StartTime:   deref(timezone.ToLocal(start)),
		EndTime:     deref(timezone.ToLocal(end)),
		VoiceActor:  ShiftPerson{ID: va1.ID, Name: va1.Name, Email: va1.Email, Phone: va1.Phone},
		VoiceActor2: ShiftPerson{ID: va2.ID, Name: va2.Name, Email: va2.Email, Phone: va2.Phone},
		Director:    ShiftPerson{ID: director.ID, Name: director.Name, Email: directorEmail, Phone: director.Phone},
		EmailsSent:  b.EmailsSent(slot),
	}, true
}

// ComposeShiftEmail renders the confirmation draft for a shift: subject
// with the check-in window, body with location, director contact and the
// session-day instructions.
func (s *Service) ComposeShiftEmail(shift Shift) EmailDraft {
	weekday, month, day := dateParts(shift.Date)
	checkIn := minusMinutes(shift.StartTime, 15)

	subject := fmt.Sprintf("Recording Session Confirmation - %s, %s %d%s (%s - %s)",
		weekday, month, day, daySuffix(day), checkIn, shift.EndTime)

	location := shift.StudioName
	if shift.StudioAddr != nil && *shift.StudioAddr != "" {
		location += "\n" + *shift.StudioAddr
	}
	directorPhone := "[Director phone]"
	if shift.Director.Phone != nil && *shift.Director.Phone != "" {
		directorPhone = *shift.Director.Phone
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Hey there!\n\n")
	fmt.Fprintf(&body, "We're confirming your upcoming recording session on %s, %s %d%s at %s - %s.\n\n",
		weekday, month, day, daySuffix(day), shift.StartTime, shift.EndTime)
	fmt.Fprintf(&body, "Location: %s\n\n", location)
	fmt.Fprintf(&body, "On the day of your session:\n\n")
	fmt.Fprintf(&body, "- Please arrive 15 minutes early to check in (%s).\n", checkIn)
	fmt.Fprintf(&body, "- Stay hydrated and well rested.\n")
	fmt.Fprintf(&body, "- Contact %s at %s once you've arrived to be let in.\n\n", shift.Director.Name, directorPhone)
	fmt.Fprintf(&body, "We're looking forward to working with you!\n")

	bcc := make([]string, 0, 2)
	ids := make([]*int64, 0, 2)
	for _, actor := range []ShiftPerson{shift.VoiceActor, shift.VoiceActor2} {
		if actor.Email == "" {
			continue
		}
		id := actor.ID
		bcc = append(bcc, actor.Email)
		ids = append(ids, &id)
	}

	return EmailDraft{
		To:            shift.Director.Email,
		Bcc:           bcc,
		Subject:       subject,
		Text:          body.String(),
		VoiceActorIDs: ids,
		BookingID:     shift.BookingID,
		SlotType:      shift.SlotType,
	}
}

// EmailHistory returns the successful audit rows for a set of addresses,
// newest first. The dispatch screen uses it to mark actors who already
// got a confirmation.
func (s *Service) EmailHistory(ctx context.Context, emails []string) ([]domain.EmailLog, error) {
	if len(emails) == 0 {
		return []domain.EmailLog{}, nil
	}
	return s.log.SuccessfulByEmails(ctx, emails)
}

func dateParts(date string) (weekday, month string, day int) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", "", 0
	}
	return t.Weekday().String(), t.Month().String(), t.Day()
}

func daySuffix(day int) string {
	if day > 3 && day < 21 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// minusMinutes shifts an HH:MM wall-time backwards, wrapping through
// midnight.
func minusMinutes(wall string, minutes int) string {
	var h, m int
	if _, err := fmt.Sscanf(wall, "%d:%d", &h, &m); err != nil {
		return wall
	}
	total := (h*60 + m - minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
