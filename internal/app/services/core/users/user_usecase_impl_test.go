package users

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
	args := m.Called(ctx, userID, updateData)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var (
	adminIdentity        = &models.Identity{ID: 1, Email: "admin@clinic.test", Role: constvars.RoleAdmin}
	professionalIdentity = &models.Identity{ID: 5, Email: "pro@clinic.test", Role: constvars.RoleProfessional}
)

func stringPtr(s string) *string { return &s }

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	return customErr.StatusCode
}

func TestUserUsecase_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Admin lists users without passwords", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindAll", ctx).Return([]models.User{{ID: 1, Name: "Admin", Password: "hash", Type: constvars.RoleAdmin}}, nil)

		result, err := NewUserUsecase(repo, zap.NewNop()).FindAll(ctx, adminIdentity)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Admin", result[0].Name)
	})

	t.Run("Professional is forbidden before storage", func(t *testing.T) {
		repo := new(MockUserRepository)

		_, err := NewUserUsecase(repo, zap.NewNop()).FindAll(ctx, professionalIdentity)
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
		repo.AssertNotCalled(t, "FindAll", mock.Anything)
	})
}

func TestUserUsecase_Create(t *testing.T) {
	ctx := context.Background()
	request := &requests.CreateUser{Name: "New", Email: "new@clinic.test", Password: "secret", Type: constvars.RoleProfessional}

	t.Run("Password is stored hashed", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("EmailTakenByOther", ctx, request.Email, int64(0)).Return(false, nil)
		repo.On("Create", ctx, mock.MatchedBy(func(user *models.User) bool {
			return user.Password != "secret" && utils.CheckPasswordHash("secret", user.Password)
		})).Return(int64(9), nil)

		created, err := NewUserUsecase(repo, zap.NewNop()).Create(ctx, adminIdentity, request)
		require.NoError(t, err)
		assert.Equal(t, int64(9), created.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Duplicate email is rejected", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("EmailTakenByOther", ctx, request.Email, int64(0)).Return(true, nil)

		_, err := NewUserUsecase(repo, zap.NewNop()).Create(ctx, adminIdentity, request)
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUserUsecase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Professional edits own profile", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", ctx, int64(5)).Return(&models.User{ID: 5}, nil)
		repo.On("Update", ctx, int64(5), map[string]interface{}{"phone": "555"}).Return(nil)

		err := NewUserUsecase(repo, zap.NewNop()).Update(ctx, professionalIdentity, 5, &requests.UpdateUser{Phone: stringPtr("555")})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Professional cannot edit someone else", func(t *testing.T) {
		repo := new(MockUserRepository)

		err := NewUserUsecase(repo, zap.NewNop()).Update(ctx, professionalIdentity, 6, &requests.UpdateUser{Name: stringPtr("x")})
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Professional type change is ignored", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", ctx, int64(5)).Return(&models.User{ID: 5}, nil)

		err := NewUserUsecase(repo, zap.NewNop()).Update(ctx, professionalIdentity, 5, &requests.UpdateUser{Type: stringPtr(constvars.RoleAdmin)})
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Admin changes type of another user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", ctx, int64(5)).Return(&models.User{ID: 5}, nil)
		repo.On("Update", ctx, int64(5), map[string]interface{}{"type": constvars.RoleAssistant}).Return(nil)

		err := NewUserUsecase(repo, zap.NewNop()).Update(ctx, adminIdentity, 5, &requests.UpdateUser{Type: stringPtr(constvars.RoleAssistant)})
		require.NoError(t, err)
	})

	t.Run("Unknown user is not found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", ctx, int64(77)).Return(nil, nil)

		err := NewUserUsecase(repo, zap.NewNop()).Update(ctx, adminIdentity, 77, &requests.UpdateUser{Name: stringPtr("x")})
		assert.Equal(t, constvars.StatusNotFound, statusOf(t, err))
	})

	t.Run("Email taken by another user is rejected", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", ctx, int64(5)).Return(&models.User{ID: 5}, nil)
		repo.On("EmailTakenByOther", ctx, "taken@clinic.test", int64(5)).Return(true, nil)

		err := NewUserUsecase(repo, zap.NewNop()).Update(ctx, professionalIdentity, 5, &requests.UpdateUser{Email: stringPtr("taken@clinic.test")})
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
	})
}

func TestUserUsecase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Professional cannot delete users", func(t *testing.T) {
		repo := new(MockUserRepository)
		err := NewUserUsecase(repo, zap.NewNop()).Delete(ctx, professionalIdentity, 6)
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Admin deletes existing user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", ctx, int64(6)).Return(&models.User{ID: 6}, nil)
		repo.On("Delete", ctx, int64(6)).Return(nil)

		require.NoError(t, NewUserUsecase(repo, zap.NewNop()).Delete(ctx, adminIdentity, 6))
		repo.AssertExpectations(t)
	})
}
