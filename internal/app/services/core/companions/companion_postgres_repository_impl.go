package companions

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

type companionPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewCompanionPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.CompanionRepository {
	return &companionPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCompanion(row rowScanner) (*models.Companion, error) {
	var companion models.Companion
	err := row.Scan(
		&companion.ID, &companion.Name, &companion.Phone, &companion.Email,
		&companion.PatientID, &companion.PatientName,
		&companion.CreatedAt, &companion.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &companion, nil
}

func (r *companionPostgresRepository) FindAll(ctx context.Context, predicate models.Predicate) ([]models.Companion, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("companionPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query, args := utils.ApplyPredicate(queries.GetAllCompanions, false, predicate, nil)
	rows, err := r.DB.QueryContext(ctx, query+queries.GetAllCompanionsOrderBy, args...)
	if err != nil {
		r.Log.Error("companionPostgresRepository.FindAll error querying companions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	companions := make([]models.Companion, 0)
	for rows.Next() {
		companion, err := scanCompanion(rows)
		if err != nil {
			r.Log.Error("companionPostgresRepository.FindAll error scanning companion",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		companions = append(companions, *companion)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	r.Log.Info("companionPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(companions)),
	)
	return companions, nil
}

func (r *companionPostgresRepository) FindByID(ctx context.Context, companionID int64) (*models.Companion, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("companionPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, companionID),
	)

	companion, err := scanCompanion(r.DB.QueryRowContext(ctx, queries.GetCompanionByID, companionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.Log.Error("companionPostgresRepository.FindByID error querying companion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return companion, nil
}

func (r *companionPostgresRepository) Create(ctx context.Context, companion *models.Companion) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("companionPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var id int64
	err := r.DB.QueryRowContext(ctx, queries.InsertCompanion,
		companion.Name, companion.Phone, companion.Email, companion.PatientID,
	).Scan(&id)
	if err != nil {
		r.Log.Error("companionPostgresRepository.Create error inserting companion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBInsertData(err)
	}
	return id, nil
}

func (r *companionPostgresRepository) Update(ctx context.Context, companionID int64, updateData map[string]interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("companionPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, companionID),
	)

	query, args := utils.BuildUpdateQuery(queries.CompanionsTable, updateData, companionID, true)
	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		r.Log.Error("companionPostgresRepository.Update error updating companion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *companionPostgresRepository) Delete(ctx context.Context, companionID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("companionPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, companionID),
	)

	if _, err := r.DB.ExecContext(ctx, queries.DeleteCompanionByID, companionID); err != nil {
		r.Log.Error("companionPostgresRepository.Delete error deleting companion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}
