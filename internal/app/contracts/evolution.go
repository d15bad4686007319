package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type EvolutionRepository interface {
	FindAll(ctx context.Context, predicate models.Predicate) ([]models.Evolution, error)
	FindByPatientID(ctx context.Context, patientID int64) ([]models.Evolution, error)
	FindByID(ctx context.Context, evolutionID int64) (*models.Evolution, error)
	Create(ctx context.Context, evolution *models.Evolution) (int64, error)
	Update(ctx context.Context, evolutionID int64, updateData map[string]interface{}) error
	Delete(ctx context.Context, evolutionID int64) error
}

type EvolutionUsecase interface {
	FindAll(ctx context.Context, identity *models.Identity) ([]models.Evolution, error)
	FindByPatientID(ctx context.Context, identity *models.Identity, patientID int64) ([]models.Evolution, error)
	FindByID(ctx context.Context, identity *models.Identity, evolutionID int64) (*models.Evolution, error)
	Create(ctx context.Context, identity *models.Identity, request *requests.CreateEvolution) (*responses.Created, error)
	Update(ctx context.Context, identity *models.Identity, evolutionID int64, request *requests.UpdateEvolution) error
	Delete(ctx context.Context, identity *models.Identity, evolutionID int64) error
	ExportPDF(ctx context.Context, identity *models.Identity, evolutionID int64) (*responses.PDFDocument, error)
}
