package therapy_types

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

type therapyTypeUsecase struct {
	TherapyTypeRepository contracts.TherapyTypeRepository
	RedisRepository       contracts.RedisRepository
	Log                   *zap.Logger
}

func NewTherapyTypeUsecase(
	therapyTypeRepository contracts.TherapyTypeRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.TherapyTypeUsecase {
	return &therapyTypeUsecase{
		TherapyTypeRepository: therapyTypeRepository,
		RedisRepository:       redisRepository,
		Log:                   logger,
	}
}

func (uc *therapyTypeUsecase) FindAll(ctx context.Context, identity *models.Identity) ([]models.TherapyType, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("therapyTypeUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := roles.Require(identity, roles.OperationReferenceDataRead); err != nil {
		return nil, err
	}

	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyTherapyTypesList)
	if err != nil {
		uc.Log.Warn("therapyTypeUsecase.FindAll error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if cached != "" {
		var therapyTypes []models.TherapyType
		if err := json.Unmarshal([]byte(cached), &therapyTypes); err == nil {
			return therapyTypes, nil
		}
		uc.Log.Warn("therapyTypeUsecase.FindAll error parsing JSON from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	}

	therapyTypes, err := uc.TherapyTypeRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(constvars.ReferenceDataCacheTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyTherapyTypesList, therapyTypes, ttl); err != nil {
		uc.Log.Warn("therapyTypeUsecase.FindAll error caching data in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("therapyTypeUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(therapyTypes)),
	)
	return therapyTypes, nil
}

func (uc *therapyTypeUsecase) FindByID(ctx context.Context, identity *models.Identity, therapyTypeID int64) (*models.TherapyType, error) {
	if err := roles.Require(identity, roles.OperationReferenceDataRead); err != nil {
		return nil, err
	}
	return uc.findExisting(ctx, therapyTypeID)
}

func (uc *therapyTypeUsecase) Create(ctx context.Context, identity *models.Identity, request *requests.CreateTherapyType) (*responses.Created, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("therapyTypeUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := roles.Require(identity, roles.OperationReferenceDataWrite); err != nil {
		return nil, err
	}

	id, err := uc.TherapyTypeRepository.Create(ctx, &models.TherapyType{
		Name:        request.Name,
		Description: request.Description,
		Specialty:   request.Specialty,
	})
	if err != nil {
		return nil, err
	}
	uc.invalidateCache(ctx)
	return &responses.Created{ID: id}, nil
}

func (uc *therapyTypeUsecase) Update(ctx context.Context, identity *models.Identity, therapyTypeID int64, request *requests.UpdateTherapyType) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("therapyTypeUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, therapyTypeID),
	)

	if err := roles.Require(identity, roles.OperationReferenceDataWrite); err != nil {
		return err
	}
	if _, err := uc.findExisting(ctx, therapyTypeID); err != nil {
		return err
	}

	updateData := make(map[string]interface{})
	if request.Name != nil {
		updateData["name"] = *request.Name
	}
	if request.Description != nil {
		updateData["description"] = *request.Description
	}
	if request.Specialty != nil {
		updateData["specialty"] = *request.Specialty
	}
	if len(updateData) == 0 {
		return exceptions.ErrNoFieldsToUpdate(nil)
	}

	if err := uc.TherapyTypeRepository.Update(ctx, therapyTypeID, updateData); err != nil {
		return err
	}
	uc.invalidateCache(ctx)
	return nil
}

func (uc *therapyTypeUsecase) Delete(ctx context.Context, identity *models.Identity, therapyTypeID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("therapyTypeUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, therapyTypeID),
	)

	if err := roles.Require(identity, roles.OperationReferenceDataWrite); err != nil {
		return err
	}
	if _, err := uc.findExisting(ctx, therapyTypeID); err != nil {
		return err
	}

	if err := uc.TherapyTypeRepository.Delete(ctx, therapyTypeID); err != nil {
		return err
	}
	uc.invalidateCache(ctx)
	return nil
}

func (uc *therapyTypeUsecase) findExisting(ctx context.Context, therapyTypeID int64) (*models.TherapyType, error) {
	therapyType, err := uc.TherapyTypeRepository.FindByID(ctx, therapyTypeID)
	if err != nil {
		return nil, err
	}
	if therapyType == nil {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.EntityTherapyType, therapyTypeID)
	}
	return therapyType, nil
}

func (uc *therapyTypeUsecase) invalidateCache(ctx context.Context) {
	if err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyTherapyTypesList); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("therapyTypeUsecase.invalidateCache error deleting Redis key",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}
