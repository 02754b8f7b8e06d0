package auth

import (
	"context"
	"testing"

	"castboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(staffID int64, email string) (string, error) {
	args := m.Called(staffID, email)
	return args.String(0), args.Error(1)
}

func TestService_Login_Success(t *testing.T) {
	hash, err := HashPassword("sekrit123")
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	staffRepo.On("GetByEmail", mock.Anything, "ops@castboard.io").Return(&domain.Staff{
		ID:           7,
		Email:        "ops@castboard.io",
		Name:         "Scheduler",
		PasswordHash: hash,
	}, nil)

	issuer := new(MockTokenIssuer)
	issuer.On("GenerateToken", int64(7), "ops@castboard.io").Return("tok", nil)

	service := NewService(staffRepo, issuer)
	token, staff, err := service.Login(context.Background(), "ops@castboard.io", "sekrit123")

	require.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.Equal(t, int64(7), staff.ID)
}

func TestService_Login_WrongPassword(t *testing.T) {
	hash, err := HashPassword("sekrit123")
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	staffRepo.On("GetByEmail", mock.Anything, "ops@castboard.io").Return(&domain.Staff{
		ID:           7,
		Email:        "ops@castboard.io",
		PasswordHash: hash,
	}, nil)

	service := NewService(staffRepo, new(MockTokenIssuer))
	_, _, err = service.Login(context.Background(), "ops@castboard.io", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	staffRepo := new(MockStaffRepository)
	staffRepo.On("GetByEmail", mock.Anything, "nobody@castboard.io").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(staffRepo, new(MockTokenIssuer))
	_, _, err := service.Login(context.Background(), "nobody@castboard.io", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
