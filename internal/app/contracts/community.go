package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type CommunityRepository interface {
	FindByPatientID(ctx context.Context, patientID int64) ([]models.CommunityMessage, error)
	Create(ctx context.Context, message *models.CommunityMessage) (int64, error)
	Delete(ctx context.Context, messageID int64) error
}

type CommunityUsecase interface {
	FindByPatientID(ctx context.Context, identity *models.Identity, patientID int64) ([]models.CommunityMessage, error)
	Create(ctx context.Context, identity *models.Identity, request *requests.CreateCommunityMessage) (*responses.Created, error)
	Delete(ctx context.Context, identity *models.Identity, messageID int64) error
}
