package pdf_configs

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/queries"
	"clinic-service/internal/pkg/utils"
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"
)

type pdfConfigPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewPDFConfigPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.PDFConfigRepository {
	return &pdfConfigPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

func (r *pdfConfigPostgresRepository) FindByAdminID(ctx context.Context, adminID int64) (*models.PDFConfig, error) {
	return r.findOne(ctx, "FindByAdminID", queries.GetPDFConfigByAdminID, adminID)
}

// FindFirst returns the configuration used for exports, which is the
// oldest one saved.
func (r *pdfConfigPostgresRepository) FindFirst(ctx context.Context) (*models.PDFConfig, error) {
	return r.findOne(ctx, "FindFirst", queries.GetFirstPDFConfig)
}

func (r *pdfConfigPostgresRepository) findOne(ctx context.Context, method, query string, args ...interface{}) (*models.PDFConfig, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("pdfConfigPostgresRepository."+method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var cfg models.PDFConfig
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID, &cfg.AdminID, &cfg.ClinicName, &cfg.ClinicAddress, &cfg.LogoPath,
		&cfg.HeaderText, &cfg.FooterText, &cfg.FontFamily, &cfg.FontSize, &cfg.PrimaryColor,
		&cfg.ShowDescription, &cfg.ShowObservations, &cfg.ShowProfessional, &cfg.ShowDate,
		&cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.Log.Error("pdfConfigPostgresRepository."+method+" error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &cfg, nil
}

func (r *pdfConfigPostgresRepository) CreateDefault(ctx context.Context, adminID int64) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("pdfConfigPostgresRepository.CreateDefault called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, adminID),
	)

	var id int64
	err := r.DB.QueryRowContext(ctx, queries.InsertDefaultPDFConfig,
		adminID,
		constvars.PDFConfigDefaultClinicName,
		constvars.PDFConfigDefaultFontFamily,
		constvars.PDFConfigDefaultFontSize,
		constvars.PDFConfigDefaultPrimaryColor,
	).Scan(&id)
	if err != nil {
		r.Log.Error("pdfConfigPostgresRepository.CreateDefault error inserting config",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBInsertData(err)
	}
	return id, nil
}

func (r *pdfConfigPostgresRepository) Update(ctx context.Context, configID int64, updateData map[string]interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("pdfConfigPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, configID),
	)

	query, args := utils.BuildUpdateQuery(queries.PDFConfigTable, updateData, configID, true)
	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		r.Log.Error("pdfConfigPostgresRepository.Update error updating config",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}
