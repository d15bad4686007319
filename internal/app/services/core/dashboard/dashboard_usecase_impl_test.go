package dashboard

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/app/services/core/scopes"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/queries"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) Count(ctx context.Context, query string, hasWhere bool, predicate models.Predicate, args ...interface{}) (int64, error) {
	called := m.Called(ctx, query, hasWhere, predicate, args)
	return called.Get(0).(int64), called.Error(1)
}

func (m *MockDashboardRepository) FindUpcomingAppointments(ctx context.Context, predicate models.Predicate, limit int) ([]responses.UpcomingAppointment, error) {
	args := m.Called(ctx, predicate, limit)
	appointments, _ := args.Get(0).([]responses.UpcomingAppointment)
	return appointments, args.Error(1)
}

type MockOwnershipRepository struct {
	mock.Mock
}

func (m *MockOwnershipRepository) FindOwner(ctx context.Context, family models.ResourceFamily, id int64) (*models.Ownership, error) {
	args := m.Called(ctx, family, id)
	ownership, _ := args.Get(0).(*models.Ownership)
	return ownership, args.Error(1)
}

var (
	adminIdentity        = &models.Identity{ID: 1, Email: "admin@clinic.test", Role: constvars.RoleAdmin}
	professionalIdentity = &models.Identity{ID: 5, Email: "pro@clinic.test", Role: constvars.RoleProfessional}

	ownPatients     = models.Predicate{Column: "p.responsible_id", OwnerID: 5}
	ownAppointments = models.Predicate{Column: "a.professional_id", OwnerID: 5}
	ownEvolutions   = models.Predicate{Column: "e.professional_id", OwnerID: 5}
	fixedNow        = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
)

func newUsecase(repo *MockDashboardRepository) *dashboardUsecase {
	uc := NewDashboardUsecase(repo, scopes.NewScopeFilter(new(MockOwnershipRepository), zap.NewNop()), zap.NewNop()).(*dashboardUsecase)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func noArgs() []interface{} { return []interface{}(nil) }

func TestDashboardUsecase_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("Professional counts are narrowed", func(t *testing.T) {
		repo := new(MockDashboardRepository)
		repo.On("Count", ctx, queries.CountPatients, false, ownPatients, noArgs()).Return(int64(3), nil)
		repo.On("Count", ctx, queries.CountAppointments, false, ownAppointments, noArgs()).Return(int64(8), nil)
		repo.On("Count", ctx, queries.CountEvolutions, false, ownEvolutions, noArgs()).Return(int64(5), nil)
		repo.On("Count", ctx, queries.CountCompletedAppointments, true, ownAppointments, noArgs()).Return(int64(2), nil)

		stats, err := newUsecase(repo).Stats(ctx, professionalIdentity)
		require.NoError(t, err)
		assert.Equal(t, responses.DashboardStats{TotalPatients: 3, TotalAppointments: 8, TotalEvolutions: 5, CompletedAppointments: 2}, *stats)
		repo.AssertExpectations(t)
	})

	t.Run("Admin counts are clinic wide", func(t *testing.T) {
		repo := new(MockDashboardRepository)
		repo.On("Count", ctx, mock.Anything, mock.Anything, models.Predicate{}, noArgs()).Return(int64(10), nil)

		stats, err := newUsecase(repo).Stats(ctx, adminIdentity)
		require.NoError(t, err)
		assert.Equal(t, int64(10), stats.TotalPatients)
		repo.AssertNumberOfCalls(t, "Count", 4)
	})

	t.Run("Anonymous caller is rejected", func(t *testing.T) {
		_, err := newUsecase(new(MockDashboardRepository)).Stats(ctx, nil)
		assert.Error(t, err)
	})
}

func TestDashboardUsecase_UpcomingAppointments(t *testing.T) {
	ctx := context.Background()
	repo := new(MockDashboardRepository)
	repo.On("FindUpcomingAppointments", ctx, ownAppointments, 10).
		Return([]responses.UpcomingAppointment{{ID: 1}}, nil)

	appointments, err := newUsecase(repo).UpcomingAppointments(ctx, professionalIdentity)
	require.NoError(t, err)
	assert.Len(t, appointments, 1)
}

func TestDashboardUsecase_Alerts(t *testing.T) {
	ctx := context.Background()

	t.Run("Professional gets today and inactive patient alerts", func(t *testing.T) {
		repo := new(MockDashboardRepository)
		repo.On("Count", ctx, queries.CountTodayScheduledAppointments, true, ownAppointments, noArgs()).Return(int64(2), nil)
		repo.On("Count", ctx, queries.CountPatientsWithoutEvolution, true, ownPatients, []interface{}{30}).Return(int64(4), nil)

		alerts, err := newUsecase(repo).Alerts(ctx, professionalIdentity)
		require.NoError(t, err)
		require.Len(t, alerts, 2)
		assert.Equal(t, responses.Alert{ID: 1, Type: "info", Message: "You have 2 appointment(s) scheduled for today", CreatedAt: fixedNow}, alerts[0])
		assert.Equal(t, "warning", alerts[1].Type)
		assert.Equal(t, "4 patient(s) without an evolution in the last 30 days", alerts[1].Message)
	})

	t.Run("Staff alerts skip empty counts", func(t *testing.T) {
		repo := new(MockDashboardRepository)
		repo.On("Count", ctx, queries.CountTodayScheduledAppointments, true, models.Predicate{}, noArgs()).Return(int64(0), nil)
		repo.On("Count", ctx, queries.CountPatientsCreatedSince, true, models.Predicate{}, []interface{}{7}).Return(int64(3), nil)

		alerts, err := newUsecase(repo).Alerts(ctx, adminIdentity)
		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.Equal(t, 1, alerts[0].ID)
		assert.Equal(t, "3 new patient(s) registered this week", alerts[0].Message)
	})
}
