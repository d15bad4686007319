package therapy_types

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockTherapyTypeRepository struct {
	mock.Mock
}

func (m *MockTherapyTypeRepository) FindAll(ctx context.Context) ([]models.TherapyType, error) {
	args := m.Called(ctx)
	therapyTypes, _ := args.Get(0).([]models.TherapyType)
	return therapyTypes, args.Error(1)
}

func (m *MockTherapyTypeRepository) FindByID(ctx context.Context, therapyTypeID int64) (*models.TherapyType, error) {
	args := m.Called(ctx, therapyTypeID)
	therapyType, _ := args.Get(0).(*models.TherapyType)
	return therapyType, args.Error(1)
}

func (m *MockTherapyTypeRepository) Create(ctx context.Context, therapyType *models.TherapyType) (int64, error) {
	args := m.Called(ctx, therapyType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTherapyTypeRepository) Update(ctx context.Context, therapyTypeID int64, updateData map[string]interface{}) error {
	return m.Called(ctx, therapyTypeID, updateData).Error(0)
}

func (m *MockTherapyTypeRepository) Delete(ctx context.Context, therapyTypeID int64) error {
	return m.Called(ctx, therapyTypeID).Error(0)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}

var (
	assistantIdentity    = &models.Identity{ID: 2, Email: "assistant@clinic.test", Role: constvars.RoleAssistant}
	professionalIdentity = &models.Identity{ID: 5, Email: "pro@clinic.test", Role: constvars.RoleProfessional}
)

func TestTherapyTypeUsecase_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Cached list skips postgres", func(t *testing.T) {
		repo, redisRepo := new(MockTherapyTypeRepository), new(MockRedisRepository)
		redisRepo.On("Get", ctx, constvars.RedisKeyTherapyTypesList).
			Return(`[{"id":1,"name":"ABA","specialty":"psychology"}]`, nil)

		uc := NewTherapyTypeUsecase(repo, redisRepo, zap.NewNop())
		therapyTypes, err := uc.FindAll(ctx, professionalIdentity)
		require.NoError(t, err)
		require.Len(t, therapyTypes, 1)
		assert.Equal(t, "ABA", therapyTypes[0].Name)
		repo.AssertNotCalled(t, "FindAll", mock.Anything)
	})

	t.Run("Cache miss loads and stores the list", func(t *testing.T) {
		repo, redisRepo := new(MockTherapyTypeRepository), new(MockRedisRepository)
		list := []models.TherapyType{{ID: 1, Name: "Bobath"}}
		redisRepo.On("Get", ctx, constvars.RedisKeyTherapyTypesList).Return("", nil)
		repo.On("FindAll", ctx).Return(list, nil)
		redisRepo.On("Set", ctx, constvars.RedisKeyTherapyTypesList, list, 30*time.Minute).Return(nil)

		uc := NewTherapyTypeUsecase(repo, redisRepo, zap.NewNop())
		therapyTypes, err := uc.FindAll(ctx, professionalIdentity)
		require.NoError(t, err)
		assert.Equal(t, list, therapyTypes)
		redisRepo.AssertExpectations(t)
	})
}

func TestTherapyTypeUsecase_Update(t *testing.T) {
	ctx := context.Background()
	repo, redisRepo := new(MockTherapyTypeRepository), new(MockRedisRepository)
	repo.On("FindByID", ctx, int64(4)).Return(&models.TherapyType{ID: 4}, nil)
	repo.On("Update", ctx, int64(4), map[string]interface{}{"specialty": "physiotherapy"}).Return(nil)
	redisRepo.On("Delete", ctx, constvars.RedisKeyTherapyTypesList).Return(nil)

	specialty := "physiotherapy"
	uc := NewTherapyTypeUsecase(repo, redisRepo, zap.NewNop())
	require.NoError(t, uc.Update(ctx, assistantIdentity, 4, &requests.UpdateTherapyType{Specialty: &specialty}))
	redisRepo.AssertExpectations(t)
}
