package auth

import (
	"context"

	"castboard/internal/domain"
)

type StaffRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Staff, error)
}

type tokenIssuer interface {
	GenerateToken(staffID int64, email string) (string, error)
}
