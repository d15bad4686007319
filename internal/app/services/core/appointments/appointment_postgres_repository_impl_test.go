package appointments

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/queries"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var appointmentColumns = []string{
	"id", "patient_id", "patient_name", "professional_id", "professional_name", "therapy_type_id", "therapy_type_name",
	"date", "time", "frequency", "status", "notes", "created_at", "updated_at",
}

func TestAppointmentPostgresRepository_FindAll(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mockDB.ExpectQuery(regexp.QuoteMeta(queries.GetAllAppointments + " WHERE a.professional_id = $1" + queries.GetAllAppointmentsOrderBy)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(appointmentColumns).
			AddRow(int64(30), int64(10), "João", int64(5), "Dr. Ana", int64(1), "Psicologia", "2026-10-20", "09:00:00", "single", "scheduled", nil, now, now))

	appointments, err := NewAppointmentPostgresRepository(db, zap.NewNop()).FindAll(context.Background(), models.Predicate{Column: queries.AppointmentScopeColumn, OwnerID: 5})
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, "Psicologia", appointments[0].TherapyTypeName)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestAppointmentPostgresRepository_FindByID(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mockDB.ExpectQuery(regexp.QuoteMeta(queries.GetAppointmentByID)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	appointment, err := NewAppointmentPostgresRepository(db, zap.NewNop()).FindByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, appointment)
}
