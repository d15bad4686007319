package patients

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

type patientPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewPatientPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.PatientRepository {
	return &patientPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPatient(row rowScanner) (*models.Patient, error) {
	var patient models.Patient
	err := row.Scan(
		&patient.ID, &patient.Name, &patient.BirthDate, &patient.Category, &patient.Gender,
		&patient.Phone, &patient.Email, &patient.Address,
		&patient.ResponsibleID, &patient.ResponsibleName,
		&patient.InsurancePlanID, &patient.InsurancePlanName,
		&patient.CreatedAt, &patient.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientPostgresRepository) FindAll(ctx context.Context, predicate models.Predicate) ([]models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("patientPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query, args := utils.ApplyPredicate(queries.GetAllPatients, false, predicate, nil)
	rows, err := r.DB.QueryContext(ctx, query+queries.GetAllPatientsOrderBy, args...)
	if err != nil {
		r.Log.Error("patientPostgresRepository.FindAll error querying patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	patients := make([]models.Patient, 0)
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			r.Log.Error("patientPostgresRepository.FindAll error scanning patient",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		patients = append(patients, *patient)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	r.Log.Info("patientPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(patients)),
	)
	return patients, nil
}

func (r *patientPostgresRepository) FindByID(ctx context.Context, patientID int64) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("patientPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := scanPatient(r.DB.QueryRowContext(ctx, queries.GetPatientByID, patientID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.Log.Error("patientPostgresRepository.FindByID error querying patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return patient, nil
}

func (r *patientPostgresRepository) Create(ctx context.Context, patient *models.Patient) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("patientPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var id int64
	err := r.DB.QueryRowContext(ctx, queries.InsertPatient,
		patient.Name, patient.BirthDate, patient.Category, patient.Gender,
		patient.Phone, patient.Email, patient.Address,
		patient.ResponsibleID, patient.InsurancePlanID,
	).Scan(&id)
	if err != nil {
		r.Log.Error("patientPostgresRepository.Create error inserting patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBInsertData(err)
	}

	r.Log.Info("patientPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, id),
	)
	return id, nil
}

func (r *patientPostgresRepository) Update(ctx context.Context, patientID int64, updateData map[string]interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("patientPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	query, args := utils.BuildUpdateQuery(queries.PatientsTable, updateData, patientID, true)
	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		r.Log.Error("patientPostgresRepository.Update error updating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *patientPostgresRepository) Delete(ctx context.Context, patientID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("patientPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	if _, err := r.DB.ExecContext(ctx, queries.DeletePatientByID, patientID); err != nil {
		r.Log.Error("patientPostgresRepository.Delete error deleting patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}
