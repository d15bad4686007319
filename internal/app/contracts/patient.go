package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type PatientRepository interface {
	FindAll(ctx context.Context, predicate models.Predicate) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID int64) (*models.Patient, error)
	Create(ctx context.Context, patient *models.Patient) (int64, error)
	Update(ctx context.Context, patientID int64, updateData map[string]interface{}) error
	Delete(ctx context.Context, patientID int64) error
}

type PatientUsecase interface {
	FindAll(ctx context.Context, identity *models.Identity) ([]models.Patient, error)
	FindByID(ctx context.Context, identity *models.Identity, patientID int64) (*models.Patient, error)
	Create(ctx context.Context, identity *models.Identity, request *requests.CreatePatient) (*responses.Created, error)
	Update(ctx context.Context, identity *models.Identity, patientID int64, request *requests.UpdatePatient) error
	Delete(ctx context.Context, identity *models.Identity, patientID int64) error
}
