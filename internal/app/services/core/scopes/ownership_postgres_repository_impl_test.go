package scopes

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOwnershipPostgresRepository_FindOwner(t *testing.T) {
	ctx := context.Background()

	t.Run("Owned record returns owner id", func(t *testing.T) {
		db, mockDB, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mockDB.ExpectQuery(regexp.QuoteMeta(Patients.OwnerQuery)).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"responsible_id"}).AddRow(int64(5)))

		ownership, err := NewOwnershipPostgresRepository(db, zap.NewNop()).FindOwner(ctx, Patients, 3)
		require.NoError(t, err)
		require.NotNil(t, ownership)
		require.NotNil(t, ownership.OwnerID)
		assert.Equal(t, int64(5), *ownership.OwnerID)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Unlinked record returns nil owner", func(t *testing.T) {
		db, mockDB, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mockDB.ExpectQuery(regexp.QuoteMeta(Companions.OwnerQuery)).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"responsible_id"}).AddRow(nil))

		ownership, err := NewOwnershipPostgresRepository(db, zap.NewNop()).FindOwner(ctx, Companions, 4)
		require.NoError(t, err)
		require.NotNil(t, ownership)
		assert.Nil(t, ownership.OwnerID)
	})

	t.Run("Missing record returns nil", func(t *testing.T) {
		db, mockDB, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mockDB.ExpectQuery(regexp.QuoteMeta(Evolutions.OwnerQuery)).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"professional_id"}))

		ownership, err := NewOwnershipPostgresRepository(db, zap.NewNop()).FindOwner(ctx, Evolutions, 99)
		require.NoError(t, err)
		assert.Nil(t, ownership)
	})

	t.Run("Driver error is wrapped", func(t *testing.T) {
		db, mockDB, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mockDB.ExpectQuery(regexp.QuoteMeta(Appointments.OwnerQuery)).
			WithArgs(int64(1)).
			WillReturnError(errors.New("connection refused"))

		_, err = NewOwnershipPostgresRepository(db, zap.NewNop()).FindOwner(ctx, Appointments, 1)
		assert.Error(t, err)
	})
}
