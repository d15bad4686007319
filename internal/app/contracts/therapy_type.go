package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type TherapyTypeRepository interface {
	FindAll(ctx context.Context) ([]models.TherapyType, error)
	FindByID(ctx context.Context, therapyTypeID int64) (*models.TherapyType, error)
	Create(ctx context.Context, therapyType *models.TherapyType) (int64, error)
	Update(ctx context.Context, therapyTypeID int64, updateData map[string]interface{}) error
	Delete(ctx context.Context, therapyTypeID int64) error
}

type TherapyTypeUsecase interface {
	FindAll(ctx context.Context, identity *models.Identity) ([]models.TherapyType, error)
	FindByID(ctx context.Context, identity *models.Identity, therapyTypeID int64) (*models.TherapyType, error)
	Create(ctx context.Context, identity *models.Identity, request *requests.CreateTherapyType) (*responses.Created, error)
	Update(ctx context.Context, identity *models.Identity, therapyTypeID int64, request *requests.UpdateTherapyType) error
	Delete(ctx context.Context, identity *models.Identity, therapyTypeID int64) error
}
