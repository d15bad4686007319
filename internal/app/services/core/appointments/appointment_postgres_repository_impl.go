package appointments

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

type appointmentPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewAppointmentPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.AppointmentRepository {
	return &appointmentPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*models.Appointment, error) {
	var appointment models.Appointment
	err := row.Scan(
		&appointment.ID, &appointment.PatientID, &appointment.PatientName,
		&appointment.ProfessionalID, &appointment.ProfessionalName,
		&appointment.TherapyTypeID, &appointment.TherapyTypeName,
		&appointment.Date, &appointment.Time, &appointment.Frequency, &appointment.Status, &appointment.Notes,
		&appointment.CreatedAt, &appointment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentPostgresRepository) FindAll(ctx context.Context, predicate models.Predicate) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("appointmentPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query, args := utils.ApplyPredicate(queries.GetAllAppointments, false, predicate, nil)
	rows, err := r.DB.QueryContext(ctx, query+queries.GetAllAppointmentsOrderBy, args...)
	if err != nil {
		r.Log.Error("appointmentPostgresRepository.FindAll error querying appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	appointments := make([]models.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			r.Log.Error("appointmentPostgresRepository.FindAll error scanning appointment",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		appointments = append(appointments, *appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	r.Log.Info("appointmentPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
	return appointments, nil
}

func (r *appointmentPostgresRepository) FindByID(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("appointmentPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, appointmentID),
	)

	appointment, err := scanAppointment(r.DB.QueryRowContext(ctx, queries.GetAppointmentByID, appointmentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.Log.Error("appointmentPostgresRepository.FindByID error querying appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return appointment, nil
}

func (r *appointmentPostgresRepository) Create(ctx context.Context, appointment *models.Appointment) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("appointmentPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var id int64
	err := r.DB.QueryRowContext(ctx, queries.InsertAppointment,
		appointment.PatientID, appointment.ProfessionalID, appointment.TherapyTypeID,
		appointment.Date, appointment.Time, appointment.Frequency, appointment.Status, appointment.Notes,
	).Scan(&id)
	if err != nil {
		r.Log.Error("appointmentPostgresRepository.Create error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBInsertData(err)
	}

	r.Log.Info("appointmentPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)
	return id, nil
}

func (r *appointmentPostgresRepository) Update(ctx context.Context, appointmentID int64, updateData map[string]interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("appointmentPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, appointmentID),
	)

	query, args := utils.BuildUpdateQuery(queries.AppointmentsTable, updateData, appointmentID, true)
	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		r.Log.Error("appointmentPostgresRepository.Update error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *appointmentPostgresRepository) Delete(ctx context.Context, appointmentID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("appointmentPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, appointmentID),
	)

	if _, err := r.DB.ExecContext(ctx, queries.DeleteAppointmentByID, appointmentID); err != nil {
		r.Log.Error("appointmentPostgresRepository.Delete error deleting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}
