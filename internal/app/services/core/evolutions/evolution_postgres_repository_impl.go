package evolutions

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

type evolutionPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewEvolutionPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.EvolutionRepository {
	return &evolutionPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvolution(row rowScanner) (*models.Evolution, error) {
	var evolution models.Evolution
	err := row.Scan(
		&evolution.ID, &evolution.PatientID, &evolution.PatientName,
		&evolution.ProfessionalID, &evolution.ProfessionalName,
		&evolution.Date, &evolution.Description, &evolution.Observations,
		&evolution.CreatedAt, &evolution.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &evolution, nil
}

func (r *evolutionPostgresRepository) FindAll(ctx context.Context, predicate models.Predicate) ([]models.Evolution, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("evolutionPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query, args := utils.ApplyPredicate(queries.GetAllEvolutions, false, predicate, nil)
	return r.findMany(ctx, requestID, query+queries.GetAllEvolutionsOrderBy, args...)
}

func (r *evolutionPostgresRepository) FindByPatientID(ctx context.Context, patientID int64) ([]models.Evolution, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("evolutionPostgresRepository.FindByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)
	return r.findMany(ctx, requestID, queries.GetEvolutionsByPatientID, patientID)
}

func (r *evolutionPostgresRepository) findMany(ctx context.Context, requestID, query string, args ...interface{}) ([]models.Evolution, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.Log.Error("evolutionPostgresRepository.findMany error querying evolutions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	evolutions := make([]models.Evolution, 0)
	for rows.Next() {
		evolution, err := scanEvolution(rows)
		if err != nil {
			r.Log.Error("evolutionPostgresRepository.findMany error scanning evolution",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		evolutions = append(evolutions, *evolution)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	r.Log.Info("evolutionPostgresRepository.findMany succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(evolutions)),
	)
	return evolutions, nil
}

func (r *evolutionPostgresRepository) FindByID(ctx context.Context, evolutionID int64) (*models.Evolution, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("evolutionPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, evolutionID),
	)

	evolution, err := scanEvolution(r.DB.QueryRowContext(ctx, queries.GetEvolutionByID, evolutionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.Log.Error("evolutionPostgresRepository.FindByID error querying evolution",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return evolution, nil
}

func (r *evolutionPostgresRepository) Create(ctx context.Context, evolution *models.Evolution) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("evolutionPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var id int64
	err := r.DB.QueryRowContext(ctx, queries.InsertEvolution,
		evolution.PatientID, evolution.ProfessionalID, evolution.Date, evolution.Description, evolution.Observations,
	).Scan(&id)
	if err != nil {
		r.Log.Error("evolutionPostgresRepository.Create error inserting evolution",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBInsertData(err)
	}

	r.Log.Info("evolutionPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)
	return id, nil
}

func (r *evolutionPostgresRepository) Update(ctx context.Context, evolutionID int64, updateData map[string]interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("evolutionPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, evolutionID),
	)

	query, args := utils.BuildUpdateQuery(queries.EvolutionsTable, updateData, evolutionID, true)
	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		r.Log.Error("evolutionPostgresRepository.Update error updating evolution",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *evolutionPostgresRepository) Delete(ctx context.Context, evolutionID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("evolutionPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, evolutionID),
	)

	if _, err := r.DB.ExecContext(ctx, queries.DeleteEvolutionByID, evolutionID); err != nil {
		r.Log.Error("evolutionPostgresRepository.Delete error deleting evolution",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}
