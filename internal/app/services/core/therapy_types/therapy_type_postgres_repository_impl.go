package therapy_types

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

type therapyTypePostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewTherapyTypePostgresRepository(db *sql.DB, logger *zap.Logger) contracts.TherapyTypeRepository {
	return &therapyTypePostgresRepository{
		DB:  db,
		Log: logger,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTherapyType(row rowScanner) (*models.TherapyType, error) {
	var therapyType models.TherapyType
	err := row.Scan(
		&therapyType.ID, &therapyType.Name, &therapyType.Description,
		&therapyType.Specialty, &therapyType.CreatedAt, &therapyType.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &therapyType, nil
}

func (r *therapyTypePostgresRepository) FindAll(ctx context.Context) ([]models.TherapyType, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("therapyTypePostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := r.DB.QueryContext(ctx, queries.GetAllTherapyTypes)
	if err != nil {
		r.Log.Error("therapyTypePostgresRepository.FindAll error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	therapyTypes := make([]models.TherapyType, 0)
	for rows.Next() {
		therapyType, err := scanTherapyType(rows)
		if err != nil {
			r.Log.Error("therapyTypePostgresRepository.FindAll error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		therapyTypes = append(therapyTypes, *therapyType)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return therapyTypes, nil
}

func (r *therapyTypePostgresRepository) FindByID(ctx context.Context, therapyTypeID int64) (*models.TherapyType, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("therapyTypePostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, therapyTypeID),
	)

	therapyType, err := scanTherapyType(r.DB.QueryRowContext(ctx, queries.GetTherapyTypeByID, therapyTypeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.Log.Error("therapyTypePostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return therapyType, nil
}

func (r *therapyTypePostgresRepository) Create(ctx context.Context, therapyType *models.TherapyType) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("therapyTypePostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var id int64
	err := r.DB.QueryRowContext(ctx, queries.InsertTherapyType,
		therapyType.Name, therapyType.Description, therapyType.Specialty,
	).Scan(&id)
	if err != nil {
		r.Log.Error("therapyTypePostgresRepository.Create error inserting therapy type",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBInsertData(err)
	}
	return id, nil
}

func (r *therapyTypePostgresRepository) Update(ctx context.Context, therapyTypeID int64, updateData map[string]interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("therapyTypePostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, therapyTypeID),
	)

	query, args := utils.BuildUpdateQuery(queries.TherapyTypesTable, updateData, therapyTypeID, true)
	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		r.Log.Error("therapyTypePostgresRepository.Update error updating therapy type",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *therapyTypePostgresRepository) Delete(ctx context.Context, therapyTypeID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("therapyTypePostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, therapyTypeID),
	)

	if _, err := r.DB.ExecContext(ctx, queries.DeleteTherapyTypeByID, therapyTypeID); err != nil {
		r.Log.Error("therapyTypePostgresRepository.Delete error deleting therapy type",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}
