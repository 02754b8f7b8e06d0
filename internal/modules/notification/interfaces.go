package notification

import (
	"context"

	"castboard/internal/domain"
)

type BookingStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByDate(ctx context.Context, date string) ([]domain.Booking, error)
	MarkEmailsSent(ctx context.Context, bookingID int64, slot domain.SlotType, sent bool) error
}

type VoiceActorStore interface {
	GetByID(ctx context.Context, id int64) (*domain.VoiceActor, error)
}

type DirectorStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Director, error)
}

type RoomStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type StudioStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Studio, error)
}

type EmailLogStore interface {
	Append(ctx context.Context, entry *domain.EmailLog) error
	SuccessfulByEmails(ctx context.Context, emails []string) ([]domain.EmailLog, error)
}
