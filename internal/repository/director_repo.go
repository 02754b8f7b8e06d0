package repository

import (
	"context"

	"castboard/internal/domain"

	"gorm.io/gorm"
)

type DirectorRepository struct {
	db *gorm.DB
}

func NewDirectorRepository(db *gorm.DB) *DirectorRepository {
	return &DirectorRepository{db: db}
}

func (r *DirectorRepository) GetAll(ctx context.Context) ([]domain.Director, error) {
	var directors []domain.Director
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&directors).Error
	return directors, err
}

func (r *DirectorRepository) GetByID(ctx context.Context, id int64) (*domain.Director, error) {
	var director domain.Director
	err := r.db.WithContext(ctx).First(&director, id).Error
	if err != nil {
		return nil, err
	}
	return &director, nil
}

func (r *DirectorRepository) Create(ctx context.Context, director *domain.Director) error {
	return r.db.WithContext(ctx).Create(director).Error
}

func (r *DirectorRepository) Update(ctx context.Context, director *domain.Director) error {
	return r.db.WithContext(ctx).Save(director).Error
}

// Delete removes the director along with their availability records.
func (r *DirectorRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("director_id = ?", id).Delete(&domain.DirectorWeeklyAvailability{}).Error; err != nil {
			return err
		}
		if err := tx.Where("director_id = ?", id).Delete(&domain.DirectorDateOverride{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Director{}, id).Error
	})
}
