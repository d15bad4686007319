package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type InsurancePlanRepository interface {
	FindAll(ctx context.Context) ([]models.InsurancePlan, error)
	FindByID(ctx context.Context, planID int64) (*models.InsurancePlan, error)
	Create(ctx context.Context, plan *models.InsurancePlan) (int64, error)
	Update(ctx context.Context, planID int64, updateData map[string]interface{}) error
	Delete(ctx context.Context, planID int64) error
}

type InsurancePlanUsecase interface {
	FindAll(ctx context.Context, identity *models.Identity) ([]models.InsurancePlan, error)
	FindByID(ctx context.Context, identity *models.Identity, planID int64) (*models.InsurancePlan, error)
	Create(ctx context.Context, identity *models.Identity, request *requests.CreateInsurancePlan) (*responses.Created, error)
	Update(ctx context.Context, identity *models.Identity, planID int64, request *requests.UpdateInsurancePlan) error
	Delete(ctx context.Context, identity *models.Identity, planID int64) error
}
