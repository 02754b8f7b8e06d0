package repository

import (
	"context"
	"strings"

	"castboard/internal/domain"

	"gorm.io/gorm"
)

type VoiceActorRepository struct {
	db *gorm.DB
}

func NewVoiceActorRepository(db *gorm.DB) *VoiceActorRepository {
	return &VoiceActorRepository{db: db}
}

func (r *VoiceActorRepository) GetAll(ctx context.Context) ([]domain.VoiceActor, error) {
	var actors []domain.VoiceActor
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&actors).Error
	return actors, err
}

func (r *VoiceActorRepository) GetByID(ctx context.Context, id int64) (*domain.VoiceActor, error) {
	var actor domain.VoiceActor
	err := r.db.WithContext(ctx).First(&actor, id).Error
	if err != nil {
		return nil, err
	}
	return &actor, nil
}

// GetByEmail matches case-insensitively; email is the dedup key when
// mapping BCC recipients back to actors.
func (r *VoiceActorRepository) GetByEmail(ctx context.Context, email string) (*domain.VoiceActor, error) {
	var actor domain.VoiceActor
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&actor).Error
	if err != nil {
		return nil, err
	}
	return &actor, nil
}

func (r *VoiceActorRepository) Create(ctx context.Context, actor *domain.VoiceActor) error {
	return r.db.WithContext(ctx).Create(actor).Error
}

func (r *VoiceActorRepository) Update(ctx context.Context, actor *domain.VoiceActor) error {
	return r.db.WithContext(ctx).Save(actor).Error
}

func (r *VoiceActorRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.VoiceActor{}, id).Error
}
