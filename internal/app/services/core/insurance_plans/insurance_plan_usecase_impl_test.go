package insurance_plans

import (
	"clinic-service/internal/app/models"
	sharedredis "clinic-service/internal/app/services/shared/redis"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockInsurancePlanRepository struct {
	mock.Mock
}

func (m *MockInsurancePlanRepository) FindAll(ctx context.Context) ([]models.InsurancePlan, error) {
	args := m.Called(ctx)
	plans, _ := args.Get(0).([]models.InsurancePlan)
	return plans, args.Error(1)
}

func (m *MockInsurancePlanRepository) FindByID(ctx context.Context, planID int64) (*models.InsurancePlan, error) {
	args := m.Called(ctx, planID)
	plan, _ := args.Get(0).(*models.InsurancePlan)
	return plan, args.Error(1)
}

func (m *MockInsurancePlanRepository) Create(ctx context.Context, plan *models.InsurancePlan) (int64, error) {
	args := m.Called(ctx, plan)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInsurancePlanRepository) Update(ctx context.Context, planID int64, updateData map[string]interface{}) error {
	return m.Called(ctx, planID, updateData).Error(0)
}

func (m *MockInsurancePlanRepository) Delete(ctx context.Context, planID int64) error {
	return m.Called(ctx, planID).Error(0)
}

var (
	adminIdentity        = &models.Identity{ID: 1, Email: "admin@clinic.test", Role: constvars.RoleAdmin}
	professionalIdentity = &models.Identity{ID: 5, Email: "pro@clinic.test", Role: constvars.RoleProfessional}
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	return customErr.StatusCode
}

func setup(t *testing.T) (*miniredis.Miniredis, *MockInsurancePlanRepository, *insurancePlanUsecase) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := new(MockInsurancePlanRepository)
	usecase := NewInsurancePlanUsecase(repo, sharedredis.NewRedisRepository(client), zap.NewNop()).(*insurancePlanUsecase)
	return server, repo, usecase
}

func TestInsurancePlanUsecase_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Second read is served from the cache", func(t *testing.T) {
		server, repo, usecase := setup(t)
		repo.On("FindAll", ctx).Return([]models.InsurancePlan{{ID: 1, Name: "Unimed"}}, nil).Once()

		first, err := usecase.FindAll(ctx, professionalIdentity)
		require.NoError(t, err)
		second, err := usecase.FindAll(ctx, professionalIdentity)
		require.NoError(t, err)

		assert.Equal(t, first[0].Name, second[0].Name)
		assert.True(t, server.Exists(constvars.RedisKeyInsurancePlansList))
		repo.AssertNumberOfCalls(t, "FindAll", 1)
	})

	t.Run("Redis outage falls back to postgres", func(t *testing.T) {
		server, repo, usecase := setup(t)
		server.Close()
		repo.On("FindAll", ctx).Return([]models.InsurancePlan{{ID: 1}}, nil)

		plans, err := usecase.FindAll(ctx, professionalIdentity)
		require.NoError(t, err)
		assert.Len(t, plans, 1)
	})
}

func TestInsurancePlanUsecase_Mutations(t *testing.T) {
	ctx := context.Background()

	t.Run("Professional cannot create", func(t *testing.T) {
		_, repo, usecase := setup(t)
		_, err := usecase.Create(ctx, professionalIdentity, &requests.CreateInsurancePlan{Name: "X"})
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Create invalidates the cached list", func(t *testing.T) {
		server, repo, usecase := setup(t)
		require.NoError(t, server.Set(constvars.RedisKeyInsurancePlansList, `[]`))
		repo.On("Create", ctx, mock.MatchedBy(func(plan *models.InsurancePlan) bool {
			return plan.Name == "Bradesco" && plan.PsychologyValue == 0
		})).Return(int64(9), nil)

		created, err := usecase.Create(ctx, adminIdentity, &requests.CreateInsurancePlan{Name: "Bradesco"})
		require.NoError(t, err)
		assert.Equal(t, int64(9), created.ID)
		assert.False(t, server.Exists(constvars.RedisKeyInsurancePlansList))
	})

	t.Run("Update of a missing plan is not found", func(t *testing.T) {
		_, repo, usecase := setup(t)
		repo.On("FindByID", ctx, int64(3)).Return(nil, nil)

		name := "Y"
		err := usecase.Update(ctx, adminIdentity, 3, &requests.UpdateInsurancePlan{Name: &name})
		assert.Equal(t, constvars.StatusNotFound, statusOf(t, err))
	})

	t.Run("Empty update is rejected", func(t *testing.T) {
		_, repo, usecase := setup(t)
		repo.On("FindByID", ctx, int64(3)).Return(&models.InsurancePlan{ID: 3}, nil)

		err := usecase.Update(ctx, adminIdentity, 3, &requests.UpdateInsurancePlan{})
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
	})

	t.Run("Delete invalidates the cached list", func(t *testing.T) {
		server, repo, usecase := setup(t)
		require.NoError(t, server.Set(constvars.RedisKeyInsurancePlansList, `[]`))
		repo.On("FindByID", ctx, int64(3)).Return(&models.InsurancePlan{ID: 3}, nil)
		repo.On("Delete", ctx, int64(3)).Return(nil)

		require.NoError(t, usecase.Delete(ctx, adminIdentity, 3))
		assert.False(t, server.Exists(constvars.RedisKeyInsurancePlansList))
	})
}
