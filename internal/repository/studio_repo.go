package repository

import (
	"context"

	"castboard/internal/domain"

	"gorm.io/gorm"
)

type StudioRepository struct {
	db *gorm.DB
}

func NewStudioRepository(db *gorm.DB) *StudioRepository {
	return &StudioRepository{db: db}
}

// GetAll returns every studio ordered by name.
func (r *StudioRepository) GetAll(ctx context.Context) ([]domain.Studio, error) {
	var studios []domain.Studio
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&studios).Error
	return studios, err
}

// GetAllWithRooms returns every studio with its rooms, both name-ordered.
func (r *StudioRepository) GetAllWithRooms(ctx context.Context) ([]domain.Studio, error) {
	var studios []domain.Studio
	err := r.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		}).
		Order("name ASC").
		Find(&studios).Error
	return studios, err
}

func (r *StudioRepository) GetByID(ctx context.Context, id int64) (*domain.Studio, error) {
	var studio domain.Studio
	err := r.db.WithContext(ctx).First(&studio, id).Error
	if err != nil {
		return nil, err
	}
	return &studio, nil
}

func (r *StudioRepository) Create(ctx context.Context, studio *domain.Studio) error {
	return r.db.WithContext(ctx).Create(studio).Error
}

func (r *StudioRepository) Update(ctx context.Context, studio *domain.Studio) error {
	return r.db.WithContext(ctx).Save(studio).Error
}

// Delete removes the studio and its rooms in one transaction. The studio
// owns its rooms; nothing else does.
func (r *StudioRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("studio_id = ?", id).Delete(&domain.Room{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Studio{}, id).Error
	})
}
