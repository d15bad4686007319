package pdf_configs

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

	"go.uber.org/zap"
)

type pdfConfigUsecase struct {
	PDFConfigRepository contracts.PDFConfigRepository
	Storage             contracts.Storage
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

func NewPDFConfigUsecase(
	pdfConfigRepository contracts.PDFConfigRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PDFConfigUsecase {
	return &pdfConfigUsecase{
		PDFConfigRepository: pdfConfigRepository,
		Storage:             storage,
		InternalConfig:      internalConfig,
		Log:                 logger,
	}
}

// Get returns the caller's configuration, creating it with defaults on
// first access.
func (uc *pdfConfigUsecase) Get(ctx context.Context, identity *models.Identity) (*models.PDFConfig, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("pdfConfigUsecase.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := roles.Require(identity, roles.OperationPDFConfigManage); err != nil {
		return nil, err
	}
	return uc.findOrCreate(ctx, identity.ID)
}

func (uc *pdfConfigUsecase) Update(ctx context.Context, identity *models.Identity, request *requests.UpdatePDFConfig) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("pdfConfigUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := roles.Require(identity, roles.OperationPDFConfigManage); err != nil {
		return err
	}

	updateData := make(map[string]interface{})
	if request.ClinicName != nil {
		updateData["clinic_name"] = *request.ClinicName
	}
	if request.ClinicAddress != nil {
		updateData["clinic_address"] = *request.ClinicAddress
	}
	if request.HeaderText != nil {
		updateData["header_text"] = *request.HeaderText
	}
	if request.FooterText != nil {
		updateData["footer_text"] = *request.FooterText
	}
	if request.FontFamily != nil {
		updateData["font_family"] = *request.FontFamily
	}
	if request.FontSize != nil {
		updateData["font_size"] = *request.FontSize
	}
	if request.PrimaryColor != nil {
		updateData["primary_color"] = *request.PrimaryColor
	}
	if request.ShowDescription != nil {
		updateData["show_description"] = *request.ShowDescription
	}
	if request.ShowObservations != nil {
		updateData["show_observations"] = *request.ShowObservations
	}
	if request.ShowProfessional != nil {
		updateData["show_professional"] = *request.ShowProfessional
	}
	if request.ShowDate != nil {
		updateData["show_date"] = *request.ShowDate
	}
	if len(updateData) == 0 {
		return exceptions.ErrNoFieldsToUpdate(nil)
	}

	cfg, err := uc.findOrCreate(ctx, identity.ID)
	if err != nil {
		return err
	}
	return uc.PDFConfigRepository.Update(ctx, cfg.ID, updateData)
}

// UploadLogo accepts JPEG, PNG and GIF images, judged by their content.
func (uc *pdfConfigUsecase) UploadLogo(ctx context.Context, identity *models.Identity, request *requests.UploadLogo) (*responses.UploadedLogo, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("pdfConfigUsecase.UploadLogo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := roles.Require(identity, roles.OperationPDFConfigManage); err != nil {
		return nil, err
	}

	limit := uc.InternalConfig.Minio.UploadMaxSizeInMegabyte
	if request.FileHeader.Size > limit<<20 {
		return nil, exceptions.ErrFileTooLarge(nil, request.FileHeader.Size, limit)
	}

	contentType, file, err := utils.SniffContentType(request.File)
	if err != nil {
		return nil, exceptions.ErrImageValidation(err, "")
	}
	if !utils.IsAllowedContentType(contentType, constvars.ImageAllowedLogoFormats) {
		uc.Log.Info("pdfConfigUsecase.UploadLogo rejected content type",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReasonKey, contentType),
		)
		return nil, exceptions.ErrImageValidation(nil, contentType)
	}
	if request.FileHeader.Header != nil {
		request.FileHeader.Header.Set(constvars.HeaderContentType, contentType)
	}

	cfg, err := uc.findOrCreate(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	objectName, err := uc.Storage.UploadFile(ctx, file, request.FileHeader,
		uc.InternalConfig.Minio.BucketName, utils.GenerateObjectName(constvars.MinioLogoObjectPrefix, request.FileHeader.Filename))
	if err != nil {
		uc.Log.Error("pdfConfigUsecase.UploadLogo error uploading logo",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := uc.PDFConfigRepository.Update(ctx, cfg.ID, map[string]interface{}{"logo_path": objectName}); err != nil {
		return nil, err
	}

	uc.Log.Info("pdfConfigUsecase.UploadLogo succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return &responses.UploadedLogo{LogoPath: objectName}, nil
}

func (uc *pdfConfigUsecase) findOrCreate(ctx context.Context, adminID int64) (*models.PDFConfig, error) {
	cfg, err := uc.PDFConfigRepository.FindByAdminID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		return cfg, nil
	}

	if _, err := uc.PDFConfigRepository.CreateDefault(ctx, adminID); err != nil {
		return nil, err
	}
	cfg, err = uc.PDFConfigRepository.FindByAdminID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, exceptions.ErrPostgresDBFindData(nil)
	}
	return cfg, nil
}
