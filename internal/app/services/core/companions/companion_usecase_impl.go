package companions

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

type companionUsecase struct {
	CompanionRepository contracts.CompanionRepository
	ScopeFilter         contracts.ScopeFilter
	Log                 *zap.Logger
}

func NewCompanionUsecase(companionRepository contracts.CompanionRepository, scopeFilter contracts.ScopeFilter, logger *zap.Logger) contracts.CompanionUsecase {
	return &companionUsecase{
		CompanionRepository: companionRepository,
		ScopeFilter:         scopeFilter,
		Log:                 logger,
	}
}

func (uc *companionUsecase) FindAll(ctx context.Context, identity *models.Identity) ([]models.Companion, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("companionUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := roles.Require(identity, roles.OperationCompanionAccess); err != nil {
		return nil, err
	}
	return uc.CompanionRepository.FindAll(ctx, uc.ScopeFilter.Narrow(identity, scopes.Companions))
}

func (uc *companionUsecase) FindByID(ctx context.Context, identity *models.Identity, companionID int64) (*models.Companion, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("companionUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, companionID),
	)

	if err := roles.Require(identity, roles.OperationCompanionAccess); err != nil {
		return nil, err
	}
	if err := uc.ScopeFilter.CheckRecord(ctx, identity, scopes.Companions, companionID); err != nil {
		return nil, err
	}

	companion, err := uc.CompanionRepository.FindByID(ctx, companionID)
	if err != nil {
		return nil, err
	}
	if companion == nil {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.EntityCompanion, companionID)
	}
	return companion, nil
}

func (uc *companionUsecase) Create(ctx context.Context, identity *models.Identity, request *requests.CreateCompanion) (*responses.Created, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("companionUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := roles.Require(identity, roles.OperationCompanionAccess); err != nil {
		return nil, err
	}
	if request.PatientID != nil {
		if err := uc.ScopeFilter.CheckPatient(ctx, identity, *request.PatientID); err != nil {
			return nil, err
		}
	}

	id, err := uc.CompanionRepository.Create(ctx, &models.Companion{
		Name:      request.Name,
		Phone:     request.Phone,
		Email:     request.Email,
		PatientID: request.PatientID,
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("companionUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)
	return &responses.Created{ID: id}, nil
}

// Update edits a companion. Linking to a patient requires that patient to be
// in scope for the caller.
func (uc *companionUsecase) Update(ctx context.Context, identity *models.Identity, companionID int64, request *requests.UpdateCompanion) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("companionUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, companionID),
	)

	if err := roles.Require(identity, roles.OperationCompanionAccess); err != nil {
		return err
	}
	if err := uc.ScopeFilter.CheckRecord(ctx, identity, scopes.Companions, companionID); err != nil {
		return err
	}

	updateData := make(map[string]interface{})
	if request.Name != nil {
		updateData["name"] = *request.Name
	}
	if request.Phone != nil {
		updateData["phone"] = *request.Phone
	}
	if request.Email != nil {
		updateData["email"] = *request.Email
	}
	if request.PatientID != nil {
		if err := uc.ScopeFilter.CheckPatient(ctx, identity, *request.PatientID); err != nil {
			return err
		}
		updateData["patient_id"] = *request.PatientID
	}
	if len(updateData) == 0 {
		return exceptions.ErrNoFieldsToUpdate(nil)
	}

	if err := uc.CompanionRepository.Update(ctx, companionID, updateData); err != nil {
		return err
	}

	uc.Log.Info("companionUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingFieldsKey, len(updateData)),
	)
	return nil
}

func (uc *companionUsecase) Delete(ctx context.Context, identity *models.Identity, companionID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("companionUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, companionID),
	)

	if err := roles.Require(identity, roles.OperationCompanionDelete); err != nil {
		return err
	}
	if err := uc.ScopeFilter.CheckRecord(ctx, identity, scopes.Companions, companionID); err != nil {
		return err
	}
	return uc.CompanionRepository.Delete(ctx, companionID)
}
