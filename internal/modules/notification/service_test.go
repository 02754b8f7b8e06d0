package notification

import (
	"context"
	"errors"
	"testing"

	"castboard/internal/domain"
	"castboard/internal/pkg/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingStore) GetByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingStore) MarkEmailsSent(ctx context.Context, bookingID int64, slot domain.SlotType, sent bool) error {
	args := m.Called(ctx, bookingID, slot, sent)
	return args.Error(0)
}

type MockVoiceActorStore struct {
	mock.Mock
}

func (m *MockVoiceActorStore) GetByID(ctx context.Context, id int64) (*domain.VoiceActor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VoiceActor), args.Error(1)
}

type MockDirectorStore struct {
	mock.Mock
}

func (m *MockDirectorStore) GetByID(ctx context.Context, id int64) (*domain.Director, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Director), args.Error(1)
}

type MockRoomStore struct {
	mock.Mock
}

func (m *MockRoomStore) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type MockStudioStore struct {
	mock.Mock
}

func (m *MockStudioStore) GetByID(ctx context.Context, id int64) (*domain.Studio, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Studio), args.Error(1)
}

type MockEmailLogStore struct {
	mock.Mock
}

func (m *MockEmailLogStore) Append(ctx context.Context, entry *domain.EmailLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEmailLogStore) SuccessfulByEmails(ctx context.Context, emails []string) ([]domain.EmailLog, error) {
	args := m.Called(ctx, emails)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmailLog), args.Error(1)
}

type fixture struct {
	mail      *MockMailer
	bookings  *MockBookingStore
	actors    *MockVoiceActorStore
	directors *MockDirectorStore
	rooms     *MockRoomStore
	studios   *MockStudioStore
	log       *MockEmailLogStore
	service   *Service
}

func newFixture() *fixture {
	f := &fixture{
		mail:      new(MockMailer),
		bookings:  new(MockBookingStore),
		actors:    new(MockVoiceActorStore),
		directors: new(MockDirectorStore),
		rooms:     new(MockRoomStore),
		studios:   new(MockStudioStore),
		log:       new(MockEmailLogStore),
	}
	f.service = NewService(f.mail, f.bookings, f.actors, f.directors, f.rooms, f.studios, f.log)
	return f
}

func str(s string) *string { return &s }

func i64(v int64) *int64 { return &v }

func TestService_SendShiftEmail_MissingFields(t *testing.T) {
	f := newFixture()
	err := f.service.SendShiftEmail(context.Background(), ShiftEmailRequest{
		To: "director@studio.io", Subject: "", Text: "body",
	})
	assert.ErrorIs(t, err, ErrMissingFields)
	f.mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestService_SendShiftEmail_Success(t *testing.T) {
	f := newFixture()
	f.mail.On("Send", mock.Anything, mock.Anything).Return(nil)

	var logged []*domain.EmailLog
	f.log.On("Append", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			logged = append(logged, args.Get(1).(*domain.EmailLog))
		}).
		Return(nil)
	f.bookings.On("MarkEmailsSent", mock.Anything, int64(10), domain.SlotAM, true).Return(nil)

	err := f.service.SendShiftEmail(context.Background(), ShiftEmailRequest{
		To:            "director@studio.io",
		Bcc:           BccList{"a@cast.io", "b@cast.io"},
		Subject:       "Recording Session Confirmation",
		Text:          "body",
		VoiceActorIDs: []*int64{i64(5), nil},
		BookingID:     10,
		SlotType:      domain.SlotAM,
	})

	require.NoError(t, err)
	require.Len(t, logged, 2)
	assert.Equal(t, "a@cast.io", logged[0].Email)
	require.NotNil(t, logged[0].VoiceActorID)
	assert.Equal(t, int64(5), *logged[0].VoiceActorID)
	assert.Nil(t, logged[1].VoiceActorID)
	assert.True(t, logged[0].Success)
	f.bookings.AssertExpectations(t)
}

func TestService_SendShiftEmail_ProviderFailure(t *testing.T) {
	f := newFixture()
	sendErr := errors.New("smtp: 550 rejected")
	f.mail.On("Send", mock.Anything, mock.Anything).Return(sendErr)

	var logged *domain.EmailLog
	f.log.On("Append", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			logged = args.Get(1).(*domain.EmailLog)
		}).
		Return(nil)

	err := f.service.SendShiftEmail(context.Background(), ShiftEmailRequest{
		To:        "director@studio.io",
		Bcc:       BccList{"a@cast.io"},
		Subject:   "Recording Session Confirmation",
		Text:      "body",
		BookingID: 10,
		SlotType:  domain.SlotAM,
	})

	assert.ErrorIs(t, err, sendErr)
	require.NotNil(t, logged)
	assert.False(t, logged.Success)
	assert.Equal(t, "director@studio.io", logged.Email)
	require.NotNil(t, logged.ErrorMessage)
	assert.Contains(t, *logged.ErrorMessage, "550")
	f.bookings.AssertNotCalled(t, "MarkEmailsSent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func eligibleBooking() domain.Booking {
	return domain.Booking{
		ID:            10,
		RoomID:        3,
		VoiceActorID:  5,
		VoiceActorID2: 6,
		DirectorID:    2,
		Date:          "2026-03-20",
		AMStartTime:   str("16:00"),
		AMEndTime:     str("23:30"),
	}
}

func primeLookups(f *fixture) {
	f.actors.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.VoiceActor{ID: 5, Name: "Ana", Email: "a@cast.io"}, nil)
	f.actors.On("GetByID", mock.Anything, int64(6)).
		Return(&domain.VoiceActor{ID: 6, Name: "Ben", Email: "b@cast.io"}, nil)
	f.directors.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.Director{ID: 2, Name: "Dana", Email: str("dana@studio.io"), Phone: str("555-0100")}, nil)
	f.rooms.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.Room{ID: 3, StudioID: 1, Name: str("Booth A")}, nil)
	f.studios.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Studio{ID: 1, Name: "Northside", Address: str("12 Pine St")}, nil)
}

func TestService_CompleteShifts_Eligible(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByDate", mock.Anything, "2026-03-20").
		Return([]domain.Booking{eligibleBooking()}, nil)
	primeLookups(f)

	shifts, err := f.service.CompleteShifts(context.Background(), "2026-03-20")

	require.NoError(t, err)
	require.Len(t, shifts, 1)
	shift := shifts[0]
	assert.Equal(t, int64(10), shift.BookingID)
	assert.Equal(t, domain.SlotAM, shift.SlotType)
	assert.Equal(t, "Booth A", shift.RoomLabel)
	assert.Equal(t, "Northside", shift.StudioName)
	assert.Equal(t, "Dana", shift.Director.Name)
	assert.False(t, shift.EmailsSent)
	assert.NotEmpty(t, shift.StartTime)
}

func TestService_CompleteShifts_ExcludesBrokenLookups(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByDate", mock.Anything, "2026-03-20").
		Return([]domain.Booking{eligibleBooking()}, nil)

	// The second actor no longer exists: the shift drops out instead of
	// erroring.
	f.actors.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.VoiceActor{ID: 5, Name: "Ana", Email: "a@cast.io"}, nil)
	f.actors.On("GetByID", mock.Anything, int64(6)).
		Return(nil, gorm.ErrRecordNotFound)

	shifts, err := f.service.CompleteShifts(context.Background(), "2026-03-20")

	require.NoError(t, err)
	assert.Empty(t, shifts)
}

func TestService_ComposeShiftEmail(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByDate", mock.Anything, "2026-03-20").
		Return([]domain.Booking{eligibleBooking()}, nil)
	primeLookups(f)

	shifts, err := f.service.CompleteShifts(context.Background(), "2026-03-20")
	require.NoError(t, err)
	require.Len(t, shifts, 1)

	draft := f.service.ComposeShiftEmail(shifts[0])

	assert.Equal(t, "dana@studio.io", draft.To)
	assert.Equal(t, []string{"a@cast.io", "b@cast.io"}, draft.Bcc)
	require.Len(t, draft.VoiceActorIDs, 2)
	assert.Equal(t, int64(5), *draft.VoiceActorIDs[0])
	assert.Contains(t, draft.Subject, "Recording Session Confirmation - Friday, March 20th")
	assert.Contains(t, draft.Text, "Northside")
	assert.Contains(t, draft.Text, "12 Pine St")
	assert.Contains(t, draft.Text, "Dana")
	assert.Contains(t, draft.Text, "555-0100")
	assert.Equal(t, domain.SlotAM, draft.SlotType)
	assert.Equal(t, int64(10), draft.BookingID)
}

func TestMinusMinutes_WrapsMidnight(t *testing.T) {
	assert.Equal(t, "23:50", minusMinutes("00:05", 15))
	assert.Equal(t, "08:45", minusMinutes("09:00", 15))
	assert.Equal(t, "bad", minusMinutes("bad", 15))
}
