package repository

import (
	"context"
	"errors"
	"time"

	"castboard/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateSlot surfaces a storage-level unique violation on the
// bookings table. The schema does not ship such a constraint: conflict
// checking is a read-then-write sequence with a known race window, and
// operators who want a hard guarantee can add a unique index themselves.
// When one exists, Postgres rejections map here instead of leaking a
// driver error.
var ErrDuplicateSlot = errors.New("booking slot already taken")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateSlot
	}
	return err
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetByDate returns every booking on the date ordered by room.
func (r *BookingRepository) GetByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("room_id ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) GetByRoomAndDate(ctx context.Context, roomID int64, date string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("room_id = ? AND date = ?", roomID, date).
		Find(&bookings).Error
	return bookings, err
}

// FindByActorAndDate is the conflict scan: every booking on the date in
// which the actor holds either position of the pair.
func (r *BookingRepository) FindByActorAndDate(ctx context.Context, actorID int64, date string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("date = ? AND (voice_actor_id = ? OR voice_actor_id_2 = ?)", date, actorID, actorID).
		Find(&bookings).Error
	return bookings, err
}

// DistinctDates returns every date with at least one booking, newest first.
func (r *BookingRepository) DistinctDates(ctx context.Context) ([]string, error) {
	var dates []string
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Distinct("date").
		Order("date DESC").
		Pluck("date", &dates).Error
	return dates, err
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Booking{}, id).Error
}

// MarkEmailsSent flips the per-slot confirmation flag. Only the
// notification dispatch path calls this with sent=true; nothing in the
// booking lifecycle resets it.
func (r *BookingRepository) MarkEmailsSent(ctx context.Context, bookingID int64, slot domain.SlotType, sent bool) error {
	column := "am_emails_sent"
	if slot == domain.SlotPM {
		column = "pm_emails_sent"
	}
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Updates(map[string]interface{}{
			column:       sent,
			"updated_at": time.Now(),
		}).Error
}
