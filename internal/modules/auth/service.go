package auth

import (
	"context"
	"errors"

	"castboard/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service signs in seeded staff accounts. There is no self-registration:
// scheduling is a small trusted team and accounts are provisioned out of
// band.
type Service struct {
	staff StaffRepository
	jwt   tokenIssuer
}

func NewService(staff StaffRepository, jwt tokenIssuer) *Service {
	return &Service{staff: staff, jwt: jwt}
}

func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.Staff, error) {
	staff, err := s.staff.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(staff.ID, staff.Email)
	if err != nil {
		return "", nil, err
	}

	return token, staff, nil
}

// HashPassword is used by seeding and account provisioning.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
