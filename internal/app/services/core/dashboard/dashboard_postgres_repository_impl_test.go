package dashboard

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/queries"
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDashboardPostgresRepository_Count(t *testing.T) {
	ctx := context.Background()

	t.Run("Predicate placeholder follows the query's own", func(t *testing.T) {
		db, mockDB, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mockDB.ExpectQuery(regexp.QuoteMeta(queries.CountPatientsWithoutEvolution+" AND p.responsible_id = $2")).
			WithArgs(30, int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))

		count, err := NewDashboardPostgresRepository(db, zap.NewNop()).Count(ctx, queries.CountPatientsWithoutEvolution, true,
			models.Predicate{Column: "p.responsible_id", OwnerID: 5}, 30)
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Empty predicate leaves the query untouched", func(t *testing.T) {
		db, mockDB, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mockDB.ExpectQuery(regexp.QuoteMeta(queries.CountPatients) + "$").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(12)))

		count, err := NewDashboardPostgresRepository(db, zap.NewNop()).Count(ctx, queries.CountPatients, false, models.Predicate{})
		require.NoError(t, err)
		assert.Equal(t, int64(12), count)
	})
}

func TestDashboardPostgresRepository_FindUpcomingAppointments(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expected := queries.GetUpcomingAppointments + " AND a.professional_id = $1" + queries.GetUpcomingAppointmentsOrderBy + "10"
	mockDB.ExpectQuery(regexp.QuoteMeta(expected)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient", "professional", "therapy", "date", "time", "status"}).
			AddRow(int64(1), "Ana", "Dr. Lima", "ABA", "2026-10-18", "09:00:00", "scheduled"))

	appointments, err := NewDashboardPostgresRepository(db, zap.NewNop()).FindUpcomingAppointments(context.Background(),
		models.Predicate{Column: "a.professional_id", OwnerID: 5}, 10)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, "Ana", appointments[0].PatientName)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
