package schedule

import (
	"context"

	"castboard/internal/domain"
)

type BookingStore interface {
	Create(ctx context.Context, b *domain.Booking) error
	Update(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByDate(ctx context.Context, date string) ([]domain.Booking, error)
	FindByActorAndDate(ctx context.Context, actorID int64, date string) ([]domain.Booking, error)
	DistinctDates(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id int64) error
}

type StudioStore interface {
	GetAllWithRooms(ctx context.Context) ([]domain.Studio, error)
}

type RoomStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type VoiceActorStore interface {
	GetAll(ctx context.Context) ([]domain.VoiceActor, error)
}

type DirectorStore interface {
	GetAll(ctx context.Context) ([]domain.Director, error)
}

type SavedScheduleStore interface {
	GetAll(ctx context.Context) ([]domain.SavedSchedule, error)
	GetByID(ctx context.Context, id int64) (*domain.SavedSchedule, error)
	Create(ctx context.Context, schedule *domain.SavedSchedule) error
	Delete(ctx context.Context, id int64) error
}

// Broadcaster pushes grid deltas to connected clients. The websocket hub
// implements it; tests use a no-op.
type Broadcaster interface {
	Broadcast(event string, payload interface{})
}
