package medical_records

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/app/services/core/roles"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"path"
	"strconv"

	"go.uber.org/zap"
)

type medicalRecordUsecase struct {
	MedicalRecordRepository contracts.MedicalRecordRepository
	ScopeFilter             contracts.ScopeFilter
	Storage                 contracts.Storage
	InternalConfig          *config.InternalConfig
	Log                     *zap.Logger
}

func NewMedicalRecordUsecase(
	medicalRecordRepository contracts.MedicalRecordRepository,
	scopeFilter contracts.ScopeFilter,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.MedicalRecordUsecase {
	return &medicalRecordUsecase{
		MedicalRecordRepository: medicalRecordRepository,
		ScopeFilter:             scopeFilter,
		Storage:                 storage,
		InternalConfig:          internalConfig,
		Log:                     logger,
	}
}

func (uc *medicalRecordUsecase) FindByPatientID(ctx context.Context, identity *models.Identity, patientID int64) ([]models.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.FindByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	if err := roles.Require(identity, roles.OperationMedicalRecordAccess); err != nil {
		return nil, err
	}
	if err := uc.ScopeFilter.CheckPatient(ctx, identity, patientID); err != nil {
		return nil, err
	}
	return uc.MedicalRecordRepository.FindByPatientID(ctx, patientID)
}

// Upload stores the file under the patient's prefix and then records it.
// An object left behind by a failed insert is not cleaned up.
func (uc *medicalRecordUsecase) Upload(ctx context.Context, identity *models.Identity, request *requests.UploadMedicalRecord) (*responses.UploadedMedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.Upload called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, request.PatientID),
	)

	if err := roles.Require(identity, roles.OperationMedicalRecordAccess); err != nil {
		return nil, err
	}
	if err := uc.ScopeFilter.CheckPatient(ctx, identity, request.PatientID); err != nil {
		return nil, err
	}

	limit := uc.InternalConfig.Minio.UploadMaxSizeInMegabyte
	if request.FileHeader.Size > limit<<20 {
		return nil, exceptions.ErrFileTooLarge(nil, request.FileHeader.Size, limit)
	}

	prefix := path.Join(constvars.MinioMedicalRecordObjectPath, strconv.FormatInt(request.PatientID, 10))
	objectName, err := uc.Storage.UploadFile(ctx, request.File, request.FileHeader,
		uc.InternalConfig.Minio.BucketName, utils.GenerateObjectName(prefix, request.FileHeader.Filename))
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.Upload error uploading file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	id, err := uc.MedicalRecordRepository.Create(ctx, &models.MedicalRecord{
		PatientID:      request.PatientID,
		ProfessionalID: identity.ID,
		Type:           request.Type,
		Title:          request.Title,
		Description:    request.Description,
		FilePath:       objectName,
		FileName:       request.FileHeader.Filename,
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("medicalRecordUsecase.Upload succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, id),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return &responses.UploadedMedicalRecord{ID: id, FilePath: objectName}, nil
}
