package schedule

import (
	"context"
	"time"

	"castboard/internal/domain"
	"castboard/internal/pkg/timezone"
)

// Default slot windows in Pacific local time. The PM window crosses
// midnight; stored times are wall-clock strings so that is fine.
const (
	DefaultAMStart = "09:00"
	DefaultAMEnd   = "17:30"
	DefaultPMStart = "17:30"
	DefaultPMEnd   = "02:00"
)

const (
	EventBookingCreated = "booking_created"
	EventBookingUpdated = "booking_updated"
	EventBookingDeleted = "booking_deleted"
)

type Service struct {
	bookings  BookingStore
	studios   StudioStore
	rooms     RoomStore
	actors    VoiceActorStore
	directors DirectorStore
	saved     SavedScheduleStore
	hub       Broadcaster
}

func NewService(
	bookings BookingStore,
	studios StudioStore,
	rooms RoomStore,
	actors VoiceActorStore,
	directors DirectorStore,
	saved SavedScheduleStore,
	hub Broadcaster,
) *Service {
	return &Service{
		bookings:  bookings,
		studios:   studios,
		rooms:     rooms,
		actors:    actors,
		directors: directors,
		saved:     saved,
		hub:       hub,
	}
}

// FindConflict reports the first booking on the date that would double-book
// the actor for the slot, or nil when the actor is free.
//
// excludeBookingID skips the row being edited so a booking never conflicts
// with itself; excludeRoomID skips the target room, whose slot the save is
// about to overwrite. Zero disables either exclusion. A booking only
// counts as a conflict when both wall-times of the requested slot are
// populated; holding the other slot is not a conflict.
func (s *Service) FindConflict(ctx context.Context, actorID int64, date string, slot domain.SlotType, excludeBookingID, excludeRoomID int64) (*domain.Booking, error) {
	rows, err := s.bookings.FindByActorAndDate(ctx, actorID, date)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		b := &rows[i]
		if excludeBookingID != 0 && b.ID == excludeBookingID {
			continue
		}
		if excludeRoomID != 0 && b.RoomID == excludeRoomID {
			continue
		}
		if !b.HasSlot(slot) {
			continue
		}
		return b, nil
	}
	return nil, nil
}

// SaveBooking validates the pairing, runs the conflict check for both
// actors, converts the slot window to UTC, and writes the row with
// exactly one slot pair populated.
//
// The conflict check and the write are separate statements; two
// concurrent saves for the same actor and slot can both pass the check.
// At this scale (a handful of coordinators) that window is acceptable.
func (s *Service) SaveBooking(ctx context.Context, req SaveBookingRequest) (*BookingView, error) {
	if !req.SlotType.Valid() {
		return nil, ErrInvalidSlot
	}
	if !validDate(req.Date) {
		return nil, ErrInvalidDate
	}
	if req.VoiceActorID2 == 0 {
		return nil, ErrSecondActorRequired
	}
	if req.DirectorID == 0 {
		return nil, ErrDirectorRequired
	}
	if req.VoiceActorID == req.VoiceActorID2 {
		return nil, ErrSelfPairing
	}

	if _, err := s.rooms.GetByID(ctx, req.RoomID); err != nil {
		return nil, err
	}

	for position, actorID := range []int64{req.VoiceActorID, req.VoiceActorID2} {
		conflict, err := s.FindConflict(ctx, actorID, req.Date, req.SlotType, req.BookingID, req.RoomID)
		if err != nil {
			return nil, err
		}
		if conflict != nil {
			return nil, &ConflictError{
				VoiceActorID: actorID,
				Position:     position + 1,
				Slot:         req.SlotType,
				RoomLabel:    s.roomLabel(ctx, conflict.RoomID),
				BookingID:    conflict.ID,
			}
		}
	}

	ds, de := defaultWindow(req.SlotType)
	start, end := req.StartTime, req.EndTime
	if start == nil || *start == "" {
		start = &ds
	}
	if end == nil || *end == "" {
		end = &de
	}
	utcStart := timezone.ToUTC(start)
	utcEnd := timezone.ToUTC(end)

	var booking *domain.Booking
	event := EventBookingCreated
	if req.BookingID != 0 {
		existing, err := s.bookings.GetByID(ctx, req.BookingID)
		if err != nil {
			return nil, err
		}
		booking = existing
		event = EventBookingUpdated
	} else {
		booking = &domain.Booking{}
	}

	booking.RoomID = req.RoomID
	booking.Date = req.Date
	booking.VoiceActorID = req.VoiceActorID
	booking.VoiceActorID2 = req.VoiceActorID2
	booking.DirectorID = req.DirectorID
	booking.Notes = req.Notes

	// One slot pair per row: writing one side always clears the other,
	// along with the cleared side's confirmation flag.
	if req.SlotType == domain.SlotAM {
		booking.AMStartTime, booking.AMEndTime = utcStart, utcEnd
		booking.PMStartTime, booking.PMEndTime = nil, nil
		booking.PMEmailsSent = false
	} else {
		booking.PMStartTime, booking.PMEndTime = utcStart, utcEnd
		booking.AMStartTime, booking.AMEndTime = nil, nil
		booking.AMEmailsSent = false
	}

	var err error
	if req.BookingID != 0 {
		err = s.bookings.Update(ctx, booking)
	} else {
		err = s.bookings.Create(ctx, booking)
	}
	if err != nil {
		return nil, err
	}

	view := toBookingView(booking)
	s.hub.Broadcast(event, view)
	return &view, nil
}

func (s *Service) DeleteBooking(ctx context.Context, id int64) error {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	s.hub.Broadcast(EventBookingDeleted, toBookingView(booking))
	return nil
}

// LoadDay assembles everything the grid needs for one date.
func (s *Service) LoadDay(ctx context.Context, date string) (*DayView, error) {
	if !validDate(date) {
		return nil, ErrInvalidDate
	}

	studios, err := s.studios.GetAllWithRooms(ctx)
	if err != nil {
		return nil, err
	}
	actors, err := s.actors.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	directors, err := s.directors.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	views := make([]BookingView, 0, len(bookings))
	for i := range bookings {
		views = append(views, toBookingView(&bookings[i]))
	}

	return &DayView{
		Date:        date,
		Studios:     studios,
		VoiceActors: actors,
		Directors:   directors,
		Bookings:    views,
		Defaults: SlotDefaults{
			AMStartTime: DefaultAMStart,
			AMEndTime:   DefaultAMEnd,
			PMStartTime: DefaultPMStart,
			PMEndTime:   DefaultPMEnd,
		},
	}, nil
}

// BookingDates returns every date with at least one booking, newest first.
func (s *Service) BookingDates(ctx context.Context) ([]string, error) {
	return s.bookings.DistinctDates(ctx)
}

func (s *Service) ListSaved(ctx context.Context) ([]domain.SavedSchedule, error) {
	return s.saved.GetAll(ctx)
}

func (s *Service) SaveSchedule(ctx context.Context, req SaveScheduleRequest, createdBy *string) (*domain.SavedSchedule, error) {
	if !validDate(req.Date) {
		return nil, ErrInvalidDate
	}
	schedule := &domain.SavedSchedule{
		Name:      req.Name,
		Date:      req.Date,
		CreatedBy: createdBy,
	}
	if err := s.saved.Create(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// GetSaved loads the saved pointer and re-derives its bookings from the
// live table.
func (s *Service) GetSaved(ctx context.Context, id int64) (*SavedScheduleView, error) {
	schedule, err := s.saved.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.GetByDate(ctx, schedule.Date)
	if err != nil {
		return nil, err
	}
	views := make([]BookingView, 0, len(bookings))
	for i := range bookings {
		views = append(views, toBookingView(&bookings[i]))
	}
	return &SavedScheduleView{Schedule: schedule, Bookings: views}, nil
}

func (s *Service) DeleteSaved(ctx context.Context, id int64) error {
	if _, err := s.saved.GetByID(ctx, id); err != nil {
		return err
	}
	return s.saved.Delete(ctx, id)
}

func (s *Service) roomLabel(ctx context.Context, roomID int64) string {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return "another room"
	}
	return room.Label()
}

func defaultWindow(slot domain.SlotType) (start, end string) {
	if slot == domain.SlotAM {
		return DefaultAMStart, DefaultAMEnd
	}
	return DefaultPMStart, DefaultPMEnd
}

func toBookingView(b *domain.Booking) BookingView {
	return BookingView{
		ID:            b.ID,
		RoomID:        b.RoomID,
		Date:          b.Date,
		VoiceActorID:  b.VoiceActorID,
		VoiceActorID2: b.VoiceActorID2,
		DirectorID:    b.DirectorID,
		AMStartTime:   timezone.ToLocal(b.AMStartTime),
		AMEndTime:     timezone.ToLocal(b.AMEndTime),
		PMStartTime:   timezone.ToLocal(b.PMStartTime),
		PMEndTime:     timezone.ToLocal(b.PMEndTime),
		Notes:         b.Notes,
		AMEmailsSent:  b.AMEmailsSent,
		PMEmailsSent:  b.PMEmailsSent,
	}
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
