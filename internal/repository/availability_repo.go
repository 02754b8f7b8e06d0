package repository

import (
	"context"
	"errors"

	"castboard/internal/domain"

	"gorm.io/gorm"
)

// DirectorAvailabilityRepository persists the two availability
// sub-entities: recurring weekly windows and per-date overrides.
type DirectorAvailabilityRepository struct {
	db *gorm.DB
}

func NewDirectorAvailabilityRepository(db *gorm.DB) *DirectorAvailabilityRepository {
	return &DirectorAvailabilityRepository{db: db}
}

// WeeklyByDirector returns the recurring windows ordered by weekday.
func (r *DirectorAvailabilityRepository) WeeklyByDirector(ctx context.Context, directorID int64) ([]domain.DirectorWeeklyAvailability, error) {
	var rows []domain.DirectorWeeklyAvailability
	err := r.db.WithContext(ctx).
		Where("director_id = ?", directorID).
		Order("day_of_week ASC").
		Find(&rows).Error
	return rows, err
}

// UpsertWeekly writes the window for (director, weekday), replacing any
// existing row for that key.
func (r *DirectorAvailabilityRepository) UpsertWeekly(ctx context.Context, row *domain.DirectorWeeklyAvailability) error {
	var existing domain.DirectorWeeklyAvailability
	err := r.db.WithContext(ctx).
		Where("director_id = ? AND day_of_week = ?", row.DirectorID, row.DayOfWeek).
		First(&existing).Error
	switch {
	case err == nil:
		row.ID = existing.ID
		row.CreatedAt = existing.CreatedAt
		return r.db.WithContext(ctx).Save(row).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.db.WithContext(ctx).Create(row).Error
	default:
		return err
	}
}

func (r *DirectorAvailabilityRepository) DeleteWeekly(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.DirectorWeeklyAvailability{}, id).Error
}

// OverridesByDirector returns date overrides ordered by date.
func (r *DirectorAvailabilityRepository) OverridesByDirector(ctx context.Context, directorID int64) ([]domain.DirectorDateOverride, error) {
	var rows []domain.DirectorDateOverride
	err := r.db.WithContext(ctx).
		Where("director_id = ?", directorID).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *DirectorAvailabilityRepository) GetOverride(ctx context.Context, id int64) (*domain.DirectorDateOverride, error) {
	var row domain.DirectorDateOverride
	err := r.db.WithContext(ctx).First(&row, id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *DirectorAvailabilityRepository) CreateOverride(ctx context.Context, row *domain.DirectorDateOverride) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *DirectorAvailabilityRepository) UpdateOverride(ctx context.Context, row *domain.DirectorDateOverride) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *DirectorAvailabilityRepository) DeleteOverride(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.DirectorDateOverride{}, id).Error
}
