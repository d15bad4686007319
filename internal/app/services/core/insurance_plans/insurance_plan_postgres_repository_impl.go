package insurance_plans

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

type insurancePlanPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewInsurancePlanPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.InsurancePlanRepository {
	return &insurancePlanPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInsurancePlan(row rowScanner) (*models.InsurancePlan, error) {
	var plan models.InsurancePlan
	err := row.Scan(
		&plan.ID, &plan.Name, &plan.PsychologyValue, &plan.PhysiotherapyValue,
		&plan.OccupationalTherapyValue, &plan.SpeechTherapyValue,
		&plan.Phone, &plan.Email, &plan.StartDate, &plan.CreatedAt, &plan.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *insurancePlanPostgresRepository) FindAll(ctx context.Context) ([]models.InsurancePlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("insurancePlanPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := r.DB.QueryContext(ctx, queries.GetAllInsurancePlans)
	if err != nil {
		r.Log.Error("insurancePlanPostgresRepository.FindAll error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	plans := make([]models.InsurancePlan, 0)
	for rows.Next() {
		plan, err := scanInsurancePlan(rows)
		if err != nil {
			r.Log.Error("insurancePlanPostgresRepository.FindAll error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		plans = append(plans, *plan)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return plans, nil
}

func (r *insurancePlanPostgresRepository) FindByID(ctx context.Context, planID int64) (*models.InsurancePlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("insurancePlanPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, planID),
	)

	plan, err := scanInsurancePlan(r.DB.QueryRowContext(ctx, queries.GetInsurancePlanByID, planID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.Log.Error("insurancePlanPostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return plan, nil
}

func (r *insurancePlanPostgresRepository) Create(ctx context.Context, plan *models.InsurancePlan) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("insurancePlanPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var id int64
	err := r.DB.QueryRowContext(ctx, queries.InsertInsurancePlan,
		plan.Name, plan.PsychologyValue, plan.PhysiotherapyValue, plan.OccupationalTherapyValue,
		plan.SpeechTherapyValue, plan.Phone, plan.Email, plan.StartDate,
	).Scan(&id)
	if err != nil {
		r.Log.Error("insurancePlanPostgresRepository.Create error inserting plan",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBInsertData(err)
	}
	return id, nil
}

func (r *insurancePlanPostgresRepository) Update(ctx context.Context, planID int64, updateData map[string]interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("insurancePlanPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, planID),
	)

	query, args := utils.BuildUpdateQuery(queries.InsurancePlansTable, updateData, planID, true)
	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		r.Log.Error("insurancePlanPostgresRepository.Update error updating plan",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *insurancePlanPostgresRepository) Delete(ctx context.Context, planID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("insurancePlanPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, planID),
	)

	if _, err := r.DB.ExecContext(ctx, queries.DeleteInsurancePlanByID, planID); err != nil {
		r.Log.Error("insurancePlanPostgresRepository.Delete error deleting plan",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}
