package appointments

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/app/services/core/scopes"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context, predicate models.Predicate) ([]models.Appointment, error) {
	args := m.Called(ctx, predicate)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) (int64, error) {
	args := m.Called(ctx, appointment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, appointmentID int64, updateData map[string]interface{}) error {
	return m.Called(ctx, appointmentID, updateData).Error(0)
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, appointmentID int64) error {
	return m.Called(ctx, appointmentID).Error(0)
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
	assistantIdentity    = &models.Identity{ID: 2, Email: "assistant@clinic.test", Role: constvars.RoleAssistant}
	professionalIdentity = &models.Identity{ID: 5, Email: "pro@clinic.test", Role: constvars.RoleProfessional}
)

func ownedBy(id int64) *models.Ownership { return &models.Ownership{OwnerID: &id} }

func int64Ptr(v int64) *int64 { return &v }

func stringPtr(s string) *string { return &s }

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	return customErr.StatusCode
}

func newUsecase(repo *MockAppointmentRepository, ownership *MockOwnershipRepository) *appointmentUsecase {
	return NewAppointmentUsecase(repo, scopes.NewScopeFilter(ownership, zap.NewNop()), zap.NewNop()).(*appointmentUsecase)
}

func TestAppointmentUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Professional books for own patient and is forced as owner", func(t *testing.T) {
		repo, ownership := new(MockAppointmentRepository), new(MockOwnershipRepository)
		ownership.On("FindOwner", ctx, scopes.Patients, int64(10)).Return(ownedBy(5), nil)
		repo.On("Create", ctx, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.ProfessionalID == 5 && a.Frequency == "single" && a.Status == "scheduled"
		})).Return(int64(30), nil)

		created, err := newUsecase(repo, ownership).Create(ctx, professionalIdentity, &requests.CreateAppointment{
			PatientID: 10, ProfessionalID: int64Ptr(42), TherapyTypeID: 1, Date: "2026-10-20", Time: "09:00",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(30), created.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Professional cannot book for a foreign patient", func(t *testing.T) {
		repo, ownership := new(MockAppointmentRepository), new(MockOwnershipRepository)
		ownership.On("FindOwner", ctx, scopes.Patients, int64(11)).Return(ownedBy(6), nil)

		_, err := newUsecase(repo, ownership).Create(ctx, professionalIdentity, &requests.CreateAppointment{
			PatientID: 11, TherapyTypeID: 1, Date: "2026-10-20", Time: "09:00",
		})
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Assistant books for the requested professional", func(t *testing.T) {
		repo, ownership := new(MockAppointmentRepository), new(MockOwnershipRepository)
		ownership.On("FindOwner", ctx, scopes.Patients, int64(11)).Return(ownedBy(6), nil)
		ownership.On("FindOwner", ctx, scopes.Professionals, int64(6)).Return(ownedBy(6), nil)
		repo.On("Create", ctx, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.ProfessionalID == 6 && a.Frequency == "weekly"
		})).Return(int64(31), nil)

		_, err := newUsecase(repo, ownership).Create(ctx, assistantIdentity, &requests.CreateAppointment{
			PatientID: 11, ProfessionalID: int64Ptr(6), TherapyTypeID: 1, Date: "2026-10-20", Time: "09:00", Frequency: stringPtr("weekly"),
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Assistant cannot book for an admin", func(t *testing.T) {
		repo, ownership := new(MockAppointmentRepository), new(MockOwnershipRepository)
		ownership.On("FindOwner", ctx, scopes.Patients, int64(11)).Return(ownedBy(6), nil)
		ownership.On("FindOwner", ctx, scopes.Professionals, int64(1)).Return(nil, nil)

		_, err := newUsecase(repo, ownership).Create(ctx, assistantIdentity, &requests.CreateAppointment{
			PatientID: 11, ProfessionalID: int64Ptr(1), TherapyTypeID: 1, Date: "2026-10-20", Time: "09:00",
		})
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Missing therapy type surfaces as bad request", func(t *testing.T) {
		repo, ownership := new(MockAppointmentRepository), new(MockOwnershipRepository)
		ownership.On("FindOwner", ctx, scopes.Patients, int64(10)).Return(ownedBy(5), nil)
		repo.On("Create", ctx, mock.Anything).Return(int64(0), exceptions.ErrPostgresDBInsertData(&pq.Error{Code: "23503"}))

		_, err := newUsecase(repo, ownership).Create(ctx, professionalIdentity, &requests.CreateAppointment{
			PatientID: 10, TherapyTypeID: 99, Date: "2026-10-20", Time: "09:00",
		})
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
	})
}

func TestAppointmentUsecase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Professional edits only status and notes", func(t *testing.T) {
		repo, ownership := new(MockAppointmentRepository), new(MockOwnershipRepository)
		ownership.On("FindOwner", ctx, scopes.Appointments, int64(30)).Return(ownedBy(5), nil)
		repo.On("Update", ctx, int64(30), map[string]interface{}{"status": "completed"}).Return(nil)

		err := newUsecase(repo, ownership).Update(ctx, professionalIdentity, 30, &requests.UpdateAppointment{
			Status: stringPtr("completed"), Date: stringPtr("2027-01-01"),
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Professional sending only restricted fields gets bad request", func(t *testing.T) {
		repo, ownership := new(MockAppointmentRepository), new(MockOwnershipRepository)
		ownership.On("FindOwner", ctx, scopes.Appointments, int64(30)).Return(ownedBy(5), nil)

		err := newUsecase(repo, ownership).Update(ctx, professionalIdentity, 30, &requests.UpdateAppointment{Date: stringPtr("2027-01-01")})
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
	})

	t.Run("Professional cannot touch a foreign appointment", func(t *testing.T) {
		repo, ownership := new(MockAppointmentRepository), new(MockOwnershipRepository)
		ownership.On("FindOwner", ctx, scopes.Appointments, int64(31)).Return(ownedBy(6), nil)

		err := newUsecase(repo, ownership).Update(ctx, professionalIdentity, 31, &requests.UpdateAppointment{Status: stringPtr("cancelled")})
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Assistant edits every field", func(t *testing.T) {
		repo, ownership := new(MockAppointmentRepository), new(MockOwnershipRepository)
		ownership.On("FindOwner", ctx, scopes.Appointments, int64(31)).Return(ownedBy(6), nil)
		repo.On("Update", ctx, int64(31), map[string]interface{}{"date": "2027-01-01", "time": "10:00"}).Return(nil)

		err := newUsecase(repo, ownership).Update(ctx, assistantIdentity, 31, &requests.UpdateAppointment{
			Date: stringPtr("2027-01-01"), Time: stringPtr("10:00"),
		})
		require.NoError(t, err)
	})

	t.Run("Assistant cannot move an appointment to a non professional", func(t *testing.T) {
		repo, ownership := new(MockAppointmentRepository), new(MockOwnershipRepository)
		ownership.On("FindOwner", ctx, scopes.Appointments, int64(31)).Return(ownedBy(6), nil)
		ownership.On("FindOwner", ctx, scopes.Professionals, int64(2)).Return(nil, nil)

		err := newUsecase(repo, ownership).Update(ctx, assistantIdentity, 31, &requests.UpdateAppointment{ProfessionalID: int64Ptr(2)})
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAppointmentUsecase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Professional cannot delete own appointment", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		err := newUsecase(repo, new(MockOwnershipRepository)).Delete(ctx, professionalIdentity, 30)
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Assistant deletes", func(t *testing.T) {
		repo, ownership := new(MockAppointmentRepository), new(MockOwnershipRepository)
		ownership.On("FindOwner", ctx, scopes.Appointments, int64(30)).Return(ownedBy(5), nil)
		repo.On("Delete", ctx, int64(30)).Return(nil)

		require.NoError(t, newUsecase(repo, ownership).Delete(ctx, assistantIdentity, 30))
	})
}
