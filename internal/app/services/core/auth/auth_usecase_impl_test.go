package auth

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) EmailTakenByOther(ctx context.Context, email string, excludeUserID int64) (bool, error) {
	args := m.Called(ctx, email, excludeUserID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, userID int64, updateData map[string]interface{}) error {
	return m.Called(ctx, userID, updateData).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) Issue(ctx context.Context, identity *models.Identity) (string, error) {
	args := m.Called(ctx, identity)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) Decode(ctx context.Context, token string) (*models.Identity, error) {
	args := m.Called(ctx, token)
	identity, _ := args.Get(0).(*models.Identity)
	return identity, args.Error(1)
}

type MockLoginLimiter struct {
	mock.Mock
}

func (m *MockLoginLimiter) Allow(ctx context.Context, subject string) (bool, int, error) {
	args := m.Called(ctx, subject)
	return args.Bool(0), args.Int(1), args.Error(2)
}

func customErrorOf(t *testing.T, err error) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	return customErr
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := utils.HashPassword("password")
	require.NoError(t, err)
	stored := &models.User{ID: 3, Name: "Dr. Ana", Email: "ana@clinic.test", Password: hash, Type: constvars.RoleProfessional}

	t.Run("Valid credentials issue a token", func(t *testing.T) {
		users, tokens, limiter := new(MockUserRepository), new(MockTokenManager), new(MockLoginLimiter)
		limiter.On("Allow", ctx, "ana@clinic.test|10.0.0.1").Return(true, 0, nil)
		users.On("FindByEmail", ctx, "ana@clinic.test").Return(stored, nil)
		tokens.On("Issue", ctx, &models.Identity{ID: 3, Email: "ana@clinic.test", Role: constvars.RoleProfessional}).Return("signed", nil)

		result, err := NewAuthUsecase(users, tokens, limiter, zap.NewNop()).Login(ctx, &requests.Login{Email: "ana@clinic.test", Password: "password"}, "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, "signed", result.Token)
		assert.Equal(t, int64(3), result.User.ID)
		tokens.AssertExpectations(t)
	})

	t.Run("Missing fields are a bad request", func(t *testing.T) {
		users, tokens, limiter := new(MockUserRepository), new(MockTokenManager), new(MockLoginLimiter)

		_, err := NewAuthUsecase(users, tokens, limiter, zap.NewNop()).Login(ctx, &requests.Login{Email: "ana@clinic.test"}, "10.0.0.1")
		assert.Equal(t, constvars.StatusBadRequest, customErrorOf(t, err).StatusCode)
		limiter.AssertNotCalled(t, "Allow", mock.Anything, mock.Anything)
	})

	t.Run("Wrong password and unknown email look the same", func(t *testing.T) {
		users, tokens, limiter := new(MockUserRepository), new(MockTokenManager), new(MockLoginLimiter)
		limiter.On("Allow", ctx, mock.Anything).Return(true, 0, nil)
		users.On("FindByEmail", ctx, "ana@clinic.test").Return(stored, nil)
		users.On("FindByEmail", ctx, "ghost@clinic.test").Return(nil, nil)
		usecase := NewAuthUsecase(users, tokens, limiter, zap.NewNop())

		_, wrongPassword := usecase.Login(ctx, &requests.Login{Email: "ana@clinic.test", Password: "nope"}, "10.0.0.1")
		_, unknownEmail := usecase.Login(ctx, &requests.Login{Email: "ghost@clinic.test", Password: "nope"}, "10.0.0.1")

		assert.Equal(t, constvars.StatusUnauthorized, customErrorOf(t, wrongPassword).StatusCode)
		assert.Equal(t, customErrorOf(t, wrongPassword).ClientMessage, customErrorOf(t, unknownEmail).ClientMessage)
		tokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	})

	t.Run("Throttled subject is rejected before lookup", func(t *testing.T) {
		users, tokens, limiter := new(MockUserRepository), new(MockTokenManager), new(MockLoginLimiter)
		limiter.On("Allow", ctx, "ana@clinic.test|10.0.0.1").Return(false, 120, nil)

		_, err := NewAuthUsecase(users, tokens, limiter, zap.NewNop()).Login(ctx, &requests.Login{Email: "Ana@clinic.test", Password: "password"}, "10.0.0.1")
		customErr := customErrorOf(t, err)
		assert.Equal(t, constvars.StatusTooManyRequests, customErr.StatusCode)
		assert.Equal(t, 120, customErr.RetryAfter)
		users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})
}

func TestAuthUsecase_Me(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the caller without password", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", ctx, int64(3)).Return(&models.User{ID: 3, Name: "Dr. Ana", Password: "hash"}, nil)

		me, err := NewAuthUsecase(users, new(MockTokenManager), new(MockLoginLimiter), zap.NewNop()).Me(ctx, &models.Identity{ID: 3, Role: constvars.RoleProfessional})
		require.NoError(t, err)
		assert.Equal(t, "Dr. Ana", me.Name)
	})

	t.Run("Deleted user is not found", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", ctx, int64(3)).Return(nil, nil)

		_, err := NewAuthUsecase(users, new(MockTokenManager), new(MockLoginLimiter), zap.NewNop()).Me(ctx, &models.Identity{ID: 3, Role: constvars.RoleProfessional})
		assert.Equal(t, constvars.StatusNotFound, customErrorOf(t, err).StatusCode)
	})
}
