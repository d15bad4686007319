package medical_records

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/queries"
	"context"
	"database/sql"

	"go.uber.org/zap"
)

type medicalRecordPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewMedicalRecordPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.MedicalRecordRepository {
	return &medicalRecordPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

func (r *medicalRecordPostgresRepository) FindByPatientID(ctx context.Context, patientID int64) ([]models.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("medicalRecordPostgresRepository.FindByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	rows, err := r.DB.QueryContext(ctx, queries.GetMedicalRecordsByPatientID, patientID)
	if err != nil {
		r.Log.Error("medicalRecordPostgresRepository.FindByPatientID error querying records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	records := make([]models.MedicalRecord, 0)
	for rows.Next() {
		var record models.MedicalRecord
		err := rows.Scan(
			&record.ID, &record.PatientID, &record.ProfessionalID, &record.ProfessionalName,
			&record.Type, &record.Title, &record.Description,
			&record.FilePath, &record.FileName, &record.CreatedAt,
		)
		if err != nil {
			r.Log.Error("medicalRecordPostgresRepository.FindByPatientID error scanning record",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return records, nil
}

func (r *medicalRecordPostgresRepository) Create(ctx context.Context, record *models.MedicalRecord) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("medicalRecordPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, record.PatientID),
	)

	var id int64
	err := r.DB.QueryRowContext(ctx, queries.InsertMedicalRecord,
		record.PatientID, record.ProfessionalID, record.Type, record.Title,
		record.Description, record.FilePath, record.FileName,
	).Scan(&id)
	if err != nil {
		r.Log.Error("medicalRecordPostgresRepository.Create error inserting record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBInsertData(err)
	}
	return id, nil
}
