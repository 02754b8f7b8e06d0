package repository

import (
	"context"

	"castboard/internal/domain"

	"gorm.io/gorm"
)

type SavedScheduleRepository struct {
	db *gorm.DB
}

func NewSavedScheduleRepository(db *gorm.DB) *SavedScheduleRepository {
	return &SavedScheduleRepository{db: db}
}

func (r *SavedScheduleRepository) GetAll(ctx context.Context) ([]domain.SavedSchedule, error) {
	var schedules []domain.SavedSchedule
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&schedules).Error
	return schedules, err
}

func (r *SavedScheduleRepository) GetByID(ctx context.Context, id int64) (*domain.SavedSchedule, error) {
	var schedule domain.SavedSchedule
	err := r.db.WithContext(ctx).First(&schedule, id).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *SavedScheduleRepository) Create(ctx context.Context, schedule *domain.SavedSchedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *SavedScheduleRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.SavedSchedule{}, id).Error
}
