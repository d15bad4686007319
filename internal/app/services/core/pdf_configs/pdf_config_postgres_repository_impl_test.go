package pdf_configs

import (
	"clinic-service/internal/pkg/constvars"
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

var pdfConfigColumns = []string{
	"id", "admin_id", "clinic_name", "clinic_address", "logo_path", "header_text", "footer_text", "font_family",
	"font_size", "primary_color", "show_description", "show_observations", "show_professional", "show_date",
	"created_at", "updated_at",
}

func TestPDFConfigPostgresRepository_FindByAdminID(t *testing.T) {
	ctx := context.Background()

	t.Run("Scans the stored configuration", func(t *testing.T) {
		db, mockDB, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Now()
		mockDB.ExpectQuery(regexp.QuoteMeta(queries.GetPDFConfigByAdminID)).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(pdfConfigColumns).
				AddRow(int64(4), int64(1), "Clínica Azul", nil, "logos/a.png", nil, nil, "Arial", 12, "#2563EB", true, false, true, true, now, now))

		cfg, err := NewPDFConfigPostgresRepository(db, zap.NewNop()).FindByAdminID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "Clínica Azul", cfg.ClinicName)
		assert.Equal(t, "logos/a.png", *cfg.LogoPath)
		assert.False(t, cfg.ShowObservations)
	})

	t.Run("No configuration yet", func(t *testing.T) {
		db, mockDB, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mockDB.ExpectQuery(regexp.QuoteMeta(queries.GetPDFConfigByAdminID)).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(pdfConfigColumns))

		cfg, err := NewPDFConfigPostgresRepository(db, zap.NewNop()).FindByAdminID(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})
}

func TestPDFConfigPostgresRepository_CreateDefault(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mockDB.ExpectQuery(regexp.QuoteMeta(queries.InsertDefaultPDFConfig)).
		WithArgs(int64(1), constvars.PDFConfigDefaultClinicName, constvars.PDFConfigDefaultFontFamily,
			constvars.PDFConfigDefaultFontSize, constvars.PDFConfigDefaultPrimaryColor).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

	id, err := NewPDFConfigPostgresRepository(db, zap.NewNop()).CreateDefault(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
