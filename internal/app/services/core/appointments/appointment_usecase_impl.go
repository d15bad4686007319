package appointments

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/app/services/core/roles"
	"clinic-service/internal/app/services/core/scopes"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"context"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	ScopeFilter           contracts.ScopeFilter
	Log                   *zap.Logger
}

func NewAppointmentUsecase(appointmentRepository contracts.AppointmentRepository, scopeFilter contracts.ScopeFilter, logger *zap.Logger) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		ScopeFilter:           scopeFilter,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, identity *models.Identity) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := roles.Require(identity, roles.OperationAppointmentAccess); err != nil {
		return nil, err
	}
	return uc.AppointmentRepository.FindAll(ctx, uc.ScopeFilter.Narrow(identity, scopes.Appointments))
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, identity *models.Identity, appointmentID int64) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, appointmentID),
	)

	if err := roles.Require(identity, roles.OperationAppointmentAccess); err != nil {
		return nil, err
	}
	if err := uc.ScopeFilter.CheckRecord(ctx, identity, scopes.Appointments, appointmentID); err != nil {
		return nil, err
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.EntityAppointment, appointmentID)
	}
	return appointment, nil
}

// Create books an appointment. A professional books for themselves and only
// for patients in their caseload.
func (uc *appointmentUsecase) Create(ctx context.Context, identity *models.Identity, request *requests.CreateAppointment) (*responses.Created, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := roles.Require(identity, roles.OperationAppointmentAccess); err != nil {
		return nil, err
	}
	if err := uc.ScopeFilter.CheckPatient(ctx, identity, request.PatientID); err != nil {
		return nil, err
	}
	if err := uc.ScopeFilter.CheckAssignee(ctx, identity, request.ProfessionalID); err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		PatientID:      request.PatientID,
		ProfessionalID: uc.ScopeFilter.ResolveOwner(identity, request.ProfessionalID),
		TherapyTypeID:  request.TherapyTypeID,
		Date:           request.Date,
		Time:           request.Time,
		Frequency:      constvars.AppointmentFrequencySingle,
		Status:         constvars.AppointmentStatusScheduled,
		Notes:          request.Notes,
	}
	if request.Frequency != nil {
		appointment.Frequency = *request.Frequency
	}
	if request.Status != nil {
		appointment.Status = *request.Status
	}

	id, err := uc.AppointmentRepository.Create(ctx, appointment)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)
	return &responses.Created{ID: id}, nil
}

// Update edits an appointment. Professionals may only change status and
// notes of their own appointments; other fields they send are dropped.
func (uc *appointmentUsecase) Update(ctx context.Context, identity *models.Identity, appointmentID int64, request *requests.UpdateAppointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, appointmentID),
	)

	if err := roles.Require(identity, roles.OperationAppointmentAccess); err != nil {
		return err
	}
	if err := uc.ScopeFilter.CheckRecord(ctx, identity, scopes.Appointments, appointmentID); err != nil {
		return err
	}

	updateData := make(map[string]interface{})
	if request.Status != nil {
		updateData["status"] = *request.Status
	}
	if request.Notes != nil {
		updateData["notes"] = *request.Notes
	}

	if roles.Can(identity, roles.OperationAppointmentFullEdit) {
		if request.PatientID != nil {
			if err := uc.ScopeFilter.CheckPatient(ctx, identity, *request.PatientID); err != nil {
				return err
			}
			updateData["patient_id"] = *request.PatientID
		}
		if request.ProfessionalID != nil {
			if err := uc.ScopeFilter.CheckAssignee(ctx, identity, request.ProfessionalID); err != nil {
				return err
			}
			updateData["professional_id"] = *request.ProfessionalID
		}
		if request.TherapyTypeID != nil {
			updateData["therapy_type_id"] = *request.TherapyTypeID
		}
		if request.Date != nil {
			updateData["date"] = *request.Date
		}
		if request.Time != nil {
			updateData["time"] = *request.Time
		}
		if request.Frequency != nil {
			updateData["frequency"] = *request.Frequency
		}
	}

	if len(updateData) == 0 {
		return exceptions.ErrNoFieldsToUpdate(nil)
	}

	if err := uc.AppointmentRepository.Update(ctx, appointmentID, updateData); err != nil {
		return err
	}

	uc.Log.Info("appointmentUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingFieldsKey, len(updateData)),
	)
	return nil
}

func (uc *appointmentUsecase) Delete(ctx context.Context, identity *models.Identity, appointmentID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, appointmentID),
	)

	if err := roles.Require(identity, roles.OperationAppointmentDelete); err != nil {
		return err
	}
	if err := uc.ScopeFilter.CheckRecord(ctx, identity, scopes.Appointments, appointmentID); err != nil {
		return err
	}
	return uc.AppointmentRepository.Delete(ctx, appointmentID)
}
