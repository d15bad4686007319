package evolutions

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/app/services/core/roles"
	"clinic-service/internal/app/services/core/scopes"
	"clinic-service/internal/app/services/shared/pdf"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"io"
	"time"

	"go.uber.org/zap"
)

type evolutionUsecase struct {
	EvolutionRepository contracts.EvolutionRepository
	PDFConfigRepository contracts.PDFConfigRepository
	ScopeFilter         contracts.ScopeFilter
	Storage             contracts.Storage
	Renderer            contracts.PDFRenderer
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
	now                 func() time.Time
}

func NewEvolutionUsecase(
	evolutionRepository contracts.EvolutionRepository,
	pdfConfigRepository contracts.PDFConfigRepository,
	scopeFilter contracts.ScopeFilter,
	storage contracts.Storage,
	renderer contracts.PDFRenderer,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.EvolutionUsecase {
	return &evolutionUsecase{
		EvolutionRepository: evolutionRepository,
		PDFConfigRepository: pdfConfigRepository,
		ScopeFilter:         scopeFilter,
		Storage:             storage,
		Renderer:            renderer,
		InternalConfig:      internalConfig,
		Log:                 logger,
		now:                 time.Now,
	}
}

func (uc *evolutionUsecase) FindAll(ctx context.Context, identity *models.Identity) ([]models.Evolution, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("evolutionUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := roles.Require(identity, roles.OperationEvolutionAccess); err != nil {
		return nil, err
	}
	return uc.EvolutionRepository.FindAll(ctx, uc.ScopeFilter.Narrow(identity, scopes.Evolutions))
}

// FindByPatientID lists every evolution of a patient, including the ones
// written by other professionals, once the patient is in scope.
func (uc *evolutionUsecase) FindByPatientID(ctx context.Context, identity *models.Identity, patientID int64) ([]models.Evolution, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("evolutionUsecase.FindByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	if err := roles.Require(identity, roles.OperationEvolutionAccess); err != nil {
		return nil, err
	}
	if err := uc.ScopeFilter.CheckPatient(ctx, identity, patientID); err != nil {
		return nil, err
	}
	return uc.EvolutionRepository.FindByPatientID(ctx, patientID)
}

func (uc *evolutionUsecase) FindByID(ctx context.Context, identity *models.Identity, evolutionID int64) (*models.Evolution, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("evolutionUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, evolutionID),
	)

	if err := roles.Require(identity, roles.OperationEvolutionAccess); err != nil {
		return nil, err
	}
	return uc.findInScope(ctx, identity, evolutionID)
}

func (uc *evolutionUsecase) findInScope(ctx context.Context, identity *models.Identity, evolutionID int64) (*models.Evolution, error) {
	if err := uc.ScopeFilter.CheckRecord(ctx, identity, scopes.Evolutions, evolutionID); err != nil {
		return nil, err
	}
	evolution, err := uc.EvolutionRepository.FindByID(ctx, evolutionID)
	if err != nil {
		return nil, err
	}
	if evolution == nil {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.EntityEvolution, evolutionID)
	}
	return evolution, nil
}

func (uc *evolutionUsecase) Create(ctx context.Context, identity *models.Identity, request *requests.CreateEvolution) (*responses.Created, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("evolutionUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := roles.Require(identity, roles.OperationEvolutionAccess); err != nil {
		return nil, err
	}
	if err := uc.ScopeFilter.CheckPatient(ctx, identity, request.PatientID); err != nil {
		return nil, err
	}
	if err := uc.ScopeFilter.CheckAssignee(ctx, identity, request.ProfessionalID); err != nil {
		return nil, err
	}

	id, err := uc.EvolutionRepository.Create(ctx, &models.Evolution{
		PatientID:      request.PatientID,
		ProfessionalID: uc.ScopeFilter.ResolveOwner(identity, request.ProfessionalID),
		Date:           request.Date,
		Description:    request.Description,
		Observations:   request.Observations,
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("evolutionUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)
	return &responses.Created{ID: id}, nil
}

func (uc *evolutionUsecase) Update(ctx context.Context, identity *models.Identity, evolutionID int64, request *requests.UpdateEvolution) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("evolutionUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, evolutionID),
	)

	if err := roles.Require(identity, roles.OperationEvolutionAccess); err != nil {
		return err
	}
	if err := uc.ScopeFilter.CheckRecord(ctx, identity, scopes.Evolutions, evolutionID); err != nil {
		return err
	}

	updateData := make(map[string]interface{})
	if request.Date != nil {
		updateData["date"] = *request.Date
	}
	if request.Description != nil {
		updateData["description"] = *request.Description
	}
	if request.Observations != nil {
		updateData["observations"] = *request.Observations
	}
	if len(updateData) == 0 {
		return exceptions.ErrNoFieldsToUpdate(nil)
	}

	if err := uc.EvolutionRepository.Update(ctx, evolutionID, updateData); err != nil {
		return err
	}

	uc.Log.Info("evolutionUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingFieldsKey, len(updateData)),
	)
	return nil
}

// Delete removes an evolution. Staff delete any; a professional only the
// ones they wrote.
func (uc *evolutionUsecase) Delete(ctx context.Context, identity *models.Identity, evolutionID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("evolutionUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, evolutionID),
	)

	if err := roles.Require(identity, roles.OperationEvolutionDelete); err != nil {
		return err
	}
	if err := uc.ScopeFilter.CheckRecord(ctx, identity, scopes.Evolutions, evolutionID); err != nil {
		return err
	}
	return uc.EvolutionRepository.Delete(ctx, evolutionID)
}

// ExportPDF renders one evolution with the clinic layout. The first stored
// configuration is used; without one the defaults apply.
func (uc *evolutionUsecase) ExportPDF(ctx context.Context, identity *models.Identity, evolutionID int64) (*responses.PDFDocument, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("evolutionUsecase.ExportPDF called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, evolutionID),
	)

	if err := roles.Require(identity, roles.OperationEvolutionExport); err != nil {
		return nil, err
	}
	evolution, err := uc.findInScope(ctx, identity, evolutionID)
	if err != nil {
		return nil, err
	}

	pdfConfig, err := uc.PDFConfigRepository.FindFirst(ctx)
	if err != nil {
		return nil, err
	}
	if pdfConfig == nil {
		pdfConfig = pdf.DefaultConfig()
	}

	var (
		logo            io.Reader
		logoContentType string
	)
	if pdfConfig.LogoPath != nil && *pdfConfig.LogoPath != "" {
		object, contentType, err := uc.Storage.GetObject(ctx, uc.InternalConfig.Minio.BucketName, *pdfConfig.LogoPath)
		if err != nil {
			uc.Log.Warn("evolutionUsecase.ExportPDF logo unavailable, rendering without it",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingObjectNameKey, *pdfConfig.LogoPath),
				zap.Error(err),
			)
		} else {
			defer object.Close()
			logo, logoContentType = object, contentType
		}
	}

	content, err := uc.Renderer.RenderEvolution(evolution, pdfConfig, logo, logoContentType)
	if err != nil {
		uc.Log.Error("evolutionUsecase.ExportPDF error rendering document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBuildPDF(err)
	}

	uc.Log.Info("evolutionUsecase.ExportPDF succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(content)),
	)
	return &responses.PDFDocument{
		FileName: pdf.FileName(evolution.PatientName, uc.now()),
		Content:  content,
	}, nil
}
