package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type CompanionRepository interface {
	FindAll(ctx context.Context, predicate models.Predicate) ([]models.Companion, error)
	FindByID(ctx context.Context, companionID int64) (*models.Companion, error)
	Create(ctx context.Context, companion *models.Companion) (int64, error)
	Update(ctx context.Context, companionID int64, updateData map[string]interface{}) error
	Delete(ctx context.Context, companionID int64) error
}

type CompanionUsecase interface {
	FindAll(ctx context.Context, identity *models.Identity) ([]models.Companion, error)
	FindByID(ctx context.Context, identity *models.Identity, companionID int64) (*models.Companion, error)
	Create(ctx context.Context, identity *models.Identity, request *requests.CreateCompanion) (*responses.Created, error)
	Update(ctx context.Context, identity *models.Identity, companionID int64, request *requests.UpdateCompanion) error
	Delete(ctx context.Context, identity *models.Identity, companionID int64) error
}
