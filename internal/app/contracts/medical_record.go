package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type MedicalRecordRepository interface {
	FindByPatientID(ctx context.Context, patientID int64) ([]models.MedicalRecord, error)
	Create(ctx context.Context, record *models.MedicalRecord) (int64, error)
}

type MedicalRecordUsecase interface {
	FindByPatientID(ctx context.Context, identity *models.Identity, patientID int64) ([]models.MedicalRecord, error)
	Upload(ctx context.Context, identity *models.Identity, request *requests.UploadMedicalRecord) (*responses.UploadedMedicalRecord, error)
}
