package insurance_plans

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/app/services/core/roles"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type insurancePlanUsecase struct {
	InsurancePlanRepository contracts.InsurancePlanRepository
	RedisRepository         contracts.RedisRepository
	Log                     *zap.Logger
}

func NewInsurancePlanUsecase(
	insurancePlanRepository contracts.InsurancePlanRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.InsurancePlanUsecase {
	return &insurancePlanUsecase{
		InsurancePlanRepository: insurancePlanRepository,
		RedisRepository:         redisRepository,
		Log:                     logger,
	}
}

// FindAll serves the list from redis when cached. A redis failure falls
// back to postgres.
func (uc *insurancePlanUsecase) FindAll(ctx context.Context, identity *models.Identity) ([]models.InsurancePlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("insurancePlanUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := roles.Require(identity, roles.OperationReferenceDataRead); err != nil {
		return nil, err
	}

	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyInsurancePlansList)
	if err != nil {
		uc.Log.Warn("insurancePlanUsecase.FindAll error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if cached != "" {
		var plans []models.InsurancePlan
		if err := json.Unmarshal([]byte(cached), &plans); err == nil {
			uc.Log.Info("insurancePlanUsecase.FindAll served from Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingCountKey, len(plans)),
			)
			return plans, nil
		}
		uc.Log.Warn("insurancePlanUsecase.FindAll error parsing JSON from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	}

	plans, err := uc.InsurancePlanRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(constvars.ReferenceDataCacheTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyInsurancePlansList, plans, ttl); err != nil {
		uc.Log.Warn("insurancePlanUsecase.FindAll error caching data in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("insurancePlanUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(plans)),
	)
	return plans, nil
}

func (uc *insurancePlanUsecase) FindByID(ctx context.Context, identity *models.Identity, planID int64) (*models.InsurancePlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("insurancePlanUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, planID),
	)

	if err := roles.Require(identity, roles.OperationReferenceDataRead); err != nil {
		return nil, err
	}

	plan, err := uc.InsurancePlanRepository.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.EntityInsurancePlan, planID)
	}
	return plan, nil
}

func (uc *insurancePlanUsecase) Create(ctx context.Context, identity *models.Identity, request *requests.CreateInsurancePlan) (*responses.Created, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("insurancePlanUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := roles.Require(identity, roles.OperationReferenceDataWrite); err != nil {
		return nil, err
	}

	id, err := uc.InsurancePlanRepository.Create(ctx, &models.InsurancePlan{
		Name:                     request.Name,
		PsychologyValue:          valueOrZero(request.PsychologyValue),
		PhysiotherapyValue:       valueOrZero(request.PhysiotherapyValue),
		OccupationalTherapyValue: valueOrZero(request.OccupationalTherapyValue),
		SpeechTherapyValue:       valueOrZero(request.SpeechTherapyValue),
		Phone:                    request.Phone,
		Email:                    request.Email,
		StartDate:                request.StartDate,
	})
	if err != nil {
		return nil, err
	}
	uc.invalidateCache(ctx)

	uc.Log.Info("insurancePlanUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)
	return &responses.Created{ID: id}, nil
}

func (uc *insurancePlanUsecase) Update(ctx context.Context, identity *models.Identity, planID int64, request *requests.UpdateInsurancePlan) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("insurancePlanUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, planID),
	)

	if err := roles.Require(identity, roles.OperationReferenceDataWrite); err != nil {
		return err
	}
	if err := uc.ensureExists(ctx, planID); err != nil {
		return err
	}

	updateData := make(map[string]interface{})
	if request.Name != nil {
		updateData["name"] = *request.Name
	}
	if request.PsychologyValue != nil {
		updateData["psychology_value"] = *request.PsychologyValue
	}
	if request.PhysiotherapyValue != nil {
		updateData["physiotherapy_value"] = *request.PhysiotherapyValue
	}
	if request.OccupationalTherapyValue != nil {
		updateData["occupational_therapy_value"] = *request.OccupationalTherapyValue
	}
	if request.SpeechTherapyValue != nil {
		updateData["speech_therapy_value"] = *request.SpeechTherapyValue
	}
	if request.Phone != nil {
		updateData["phone"] = *request.Phone
	}
	if request.Email != nil {
		updateData["email"] = *request.Email
	}
	if request.StartDate != nil {
		updateData["start_date"] = *request.StartDate
	}
	if len(updateData) == 0 {
		return exceptions.ErrNoFieldsToUpdate(nil)
	}

	if err := uc.InsurancePlanRepository.Update(ctx, planID, updateData); err != nil {
		return err
	}
	uc.invalidateCache(ctx)
	return nil
}

func (uc *insurancePlanUsecase) Delete(ctx context.Context, identity *models.Identity, planID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("insurancePlanUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, planID),
	)

	if err := roles.Require(identity, roles.OperationReferenceDataWrite); err != nil {
		return err
	}
	if err := uc.ensureExists(ctx, planID); err != nil {
		return err
	}

	if err := uc.InsurancePlanRepository.Delete(ctx, planID); err != nil {
		return err
	}
	uc.invalidateCache(ctx)
	return nil
}

func (uc *insurancePlanUsecase) ensureExists(ctx context.Context, planID int64) error {
	plan, err := uc.InsurancePlanRepository.FindByID(ctx, planID)
	if err != nil {
		return err
	}
	if plan == nil {
		return exceptions.ErrRecordNotFound(nil, constvars.EntityInsurancePlan, planID)
	}
	return nil
}

func (uc *insurancePlanUsecase) invalidateCache(ctx context.Context) {
	if err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyInsurancePlansList); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("insurancePlanUsecase.invalidateCache error deleting Redis key",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, constvars.RedisKeyInsurancePlansList),
			zap.Error(err),
		)
	}
}

func valueOrZero(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}
