package patients

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

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	ScopeFilter       contracts.ScopeFilter
	Log               *zap.Logger
}

func NewPatientUsecase(patientRepository contracts.PatientRepository, scopeFilter contracts.ScopeFilter, logger *zap.Logger) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		ScopeFilter:       scopeFilter,
		Log:               logger,
	}
}

func (uc *patientUsecase) FindAll(ctx context.Context, identity *models.Identity) ([]models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := roles.Require(identity, roles.OperationPatientAccess); err != nil {
		return nil, err
	}
	return uc.PatientRepository.FindAll(ctx, uc.ScopeFilter.Narrow(identity, scopes.Patients))
}

func (uc *patientUsecase) FindByID(ctx context.Context, identity *models.Identity, patientID int64) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	if err := roles.Require(identity, roles.OperationPatientAccess); err != nil {
		return nil, err
	}
	if err := uc.ScopeFilter.CheckRecord(ctx, identity, scopes.Patients, patientID); err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.EntityPatient, patientID)
	}
	return patient, nil
}

// Create registers a patient. Professionals always become the responsible
// professional; staff may assign any professional and default to themselves.
func (uc *patientUsecase) Create(ctx context.Context, identity *models.Identity, request *requests.CreatePatient) (*responses.Created, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := roles.Require(identity, roles.OperationPatientAccess); err != nil {
		return nil, err
	}
	if err := uc.ScopeFilter.CheckAssignee(ctx, identity, request.ResponsibleID); err != nil {
		return nil, err
	}

	id, err := uc.PatientRepository.Create(ctx, &models.Patient{
		Name:            request.Name,
		BirthDate:       request.BirthDate,
		Category:        request.Category,
		Gender:          request.Gender,
		Phone:           request.Phone,
		Email:           request.Email,
		Address:         request.Address,
		ResponsibleID:   uc.ScopeFilter.ResolveOwner(identity, request.ResponsibleID),
		InsurancePlanID: request.InsurancePlanID,
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("patientUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, id),
	)
	return &responses.Created{ID: id}, nil
}

func (uc *patientUsecase) Update(ctx context.Context, identity *models.Identity, patientID int64, request *requests.UpdatePatient) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	if err := roles.Require(identity, roles.OperationPatientAccess); err != nil {
		return err
	}
	if err := uc.ScopeFilter.CheckRecord(ctx, identity, scopes.Patients, patientID); err != nil {
		return err
	}

	updateData := make(map[string]interface{})
	if request.Name != nil {
		updateData["name"] = *request.Name
	}
	if request.BirthDate != nil {
		updateData["birth_date"] = *request.BirthDate
	}
	if request.Category != nil {
		updateData["category"] = *request.Category
	}
	if request.Gender != nil {
		updateData["gender"] = *request.Gender
	}
	if request.Phone != nil {
		updateData["phone"] = *request.Phone
	}
	if request.Email != nil {
		updateData["email"] = *request.Email
	}
	if request.Address != nil {
		updateData["address"] = *request.Address
	}
	if request.InsurancePlanID != nil {
		updateData["insurance_plan_id"] = *request.InsurancePlanID
	}
	// Reassigning the responsible professional is a staff decision.
	if request.ResponsibleID != nil && roles.IsStaff(identity) {
		if err := uc.ScopeFilter.CheckAssignee(ctx, identity, request.ResponsibleID); err != nil {
			return err
		}
		updateData["responsible_id"] = *request.ResponsibleID
	}

	if len(updateData) == 0 {
		return exceptions.ErrNoFieldsToUpdate(nil)
	}

	if err := uc.PatientRepository.Update(ctx, patientID, updateData); err != nil {
		return err
	}

	uc.Log.Info("patientUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingFieldsKey, len(updateData)),
	)
	return nil
}

func (uc *patientUsecase) Delete(ctx context.Context, identity *models.Identity, patientID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	if err := roles.Require(identity, roles.OperationPatientDelete); err != nil {
		return err
	}
	if err := uc.ScopeFilter.CheckRecord(ctx, identity, scopes.Patients, patientID); err != nil {
		return err
	}
	return uc.PatientRepository.Delete(ctx, patientID)
}
