package repository

import (
	"context"

	"castboard/internal/domain"

	"gorm.io/gorm"
)

// EmailLogRepository appends to the email audit trail. There are no
// update or delete operations: the log is append-only by design of the
// dispatch flow.
type EmailLogRepository struct {
	db *gorm.DB
}

func NewEmailLogRepository(db *gorm.DB) *EmailLogRepository {
	return &EmailLogRepository{db: db}
}

func (r *EmailLogRepository) Append(ctx context.Context, entry *domain.EmailLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// SuccessfulBySubject returns successful sends with the subject,
// newest first.
func (r *EmailLogRepository) SuccessfulBySubject(ctx context.Context, subject string) ([]domain.EmailLog, error) {
	var logs []domain.EmailLog
	err := r.db.WithContext(ctx).
		Where("subject = ? AND success = ?", subject, true).
		Order("sent_at DESC").
		Find(&logs).Error
	return logs, err
}

// SuccessfulByEmails returns successful sends to any of the addresses,
// newest first.
func (r *EmailLogRepository) SuccessfulByEmails(ctx context.Context, emails []string) ([]domain.EmailLog, error) {
	if len(emails) == 0 {
		return []domain.EmailLog{}, nil
	}
	var logs []domain.EmailLog
	err := r.db.WithContext(ctx).
		Where("email IN ? AND success = ?", emails, true).
		Order("sent_at DESC").
		Find(&logs).Error
	return logs, err
}
