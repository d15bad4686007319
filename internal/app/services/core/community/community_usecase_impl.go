package community

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/app/services/core/roles"
	"clinic-service/internal/app/services/core/scopes"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"

	"go.uber.org/zap"
)

type communityUsecase struct {
	CommunityRepository contracts.CommunityRepository
	ScopeFilter         contracts.ScopeFilter
	Log                 *zap.Logger
}

func NewCommunityUsecase(communityRepository contracts.CommunityRepository, scopeFilter contracts.ScopeFilter, logger *zap.Logger) contracts.CommunityUsecase {
	return &communityUsecase{
		CommunityRepository: communityRepository,
		ScopeFilter:         scopeFilter,
		Log:                 logger,
	}
}

func (uc *communityUsecase) FindByPatientID(ctx context.Context, identity *models.Identity, patientID int64) ([]models.CommunityMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("communityUsecase.FindByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	if err := roles.Require(identity, roles.OperationCommunityAccess); err != nil {
		return nil, err
	}
	if err := uc.ScopeFilter.CheckPatient(ctx, identity, patientID); err != nil {
		return nil, err
	}
	return uc.CommunityRepository.FindByPatientID(ctx, patientID)
}

// Create posts a message on a patient's board. The author is always the caller.
func (uc *communityUsecase) Create(ctx context.Context, identity *models.Identity, request *requests.CreateCommunityMessage) (*responses.Created, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("communityUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, request.PatientID),
	)

	if err := roles.Require(identity, roles.OperationCommunityAccess); err != nil {
		return nil, err
	}
	if err := uc.ScopeFilter.CheckPatient(ctx, identity, request.PatientID); err != nil {
		return nil, err
	}

	id, err := uc.CommunityRepository.Create(ctx, &models.CommunityMessage{
		PatientID:      request.PatientID,
		ProfessionalID: identity.ID,
		Message:        request.Message,
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("communityUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)
	return &responses.Created{ID: id}, nil
}

// Delete removes a message. Professionals may only remove their own.
func (uc *communityUsecase) Delete(ctx context.Context, identity *models.Identity, messageID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("communityUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, messageID),
	)

	if err := roles.Require(identity, roles.OperationCommunityAccess); err != nil {
		return err
	}
	if err := uc.ScopeFilter.CheckRecord(ctx, identity, scopes.CommunityMessages, messageID); err != nil {
		return err
	}
	return uc.CommunityRepository.Delete(ctx, messageID)
}
