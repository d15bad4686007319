package controllers

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

type EvolutionController struct {
	Log              *zap.Logger
	EvolutionUsecase contracts.EvolutionUsecase
}

func NewEvolutionController(logger *zap.Logger, evolutionUsecase contracts.EvolutionUsecase) *EvolutionController {
	return &EvolutionController{
		Log:              logger,
		EvolutionUsecase: evolutionUsecase,
	}
}

func (ctrl *EvolutionController) FindAll(w http.ResponseWriter, r *http.Request) {
	const method = "EvolutionController.FindAll"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	result, err := ctrl.EvolutionUsecase.FindAll(scope.ctx, scope.identity)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, scope.requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetEvolutionsSuccessMessage, result)
}

func (ctrl *EvolutionController) FindByID(w http.ResponseWriter, r *http.Request) {
	const method = "EvolutionController.FindByID"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	evolutionID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	result, err := ctrl.EvolutionUsecase.FindByID(scope.ctx, scope.identity, evolutionID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetEvolutionSuccessMessage, result)
}

func (ctrl *EvolutionController) Create(w http.ResponseWriter, r *http.Request) {
	const method = "EvolutionController.Create"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	request := new(requests.CreateEvolution)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	created, err := ctrl.EvolutionUsecase.Create(scope.ctx, scope.identity, request)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, scope.requestID),
		zap.Int64(constvars.LoggingRecordIDKey, created.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateEvolutionSuccessMessage, created)
}

func (ctrl *EvolutionController) Update(w http.ResponseWriter, r *http.Request) {
	const method = "EvolutionController.Update"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	evolutionID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	request := new(requests.UpdateEvolution)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	if err := ctrl.EvolutionUsecase.Update(scope.ctx, scope.identity, evolutionID, request); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateEvolutionSuccessMessage, nil)
}

func (ctrl *EvolutionController) Delete(w http.ResponseWriter, r *http.Request) {
	const method = "EvolutionController.Delete"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	evolutionID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	if err := ctrl.EvolutionUsecase.Delete(scope.ctx, scope.identity, evolutionID); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteEvolutionSuccessMessage, nil)
}

func (ctrl *EvolutionController) FindByPatientID(w http.ResponseWriter, r *http.Request) {
	const method = "EvolutionController.FindByPatientID"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	patientID, err := utils.ParseIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	result, err := ctrl.EvolutionUsecase.FindByPatientID(scope.ctx, scope.identity, patientID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetEvolutionsSuccessMessage, result)
}

// ExportPDF streams the rendered evolution as an attachment instead of the
// JSON envelope.
func (ctrl *EvolutionController) ExportPDF(w http.ResponseWriter, r *http.Request) {
	const method = "EvolutionController.ExportPDF"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	evolutionID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	document, err := ctrl.EvolutionUsecase.ExportPDF(scope.ctx, scope.identity, evolutionID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationPDF)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, document.FileName))
	w.Header().Set(constvars.HeaderContentLength, strconv.Itoa(len(document.Content)))
	w.WriteHeader(constvars.StatusOK)
	if _, err := w.Write(document.Content); err != nil {
		ctrl.Log.Error(method+" error writing document",
			zap.String(constvars.LoggingRequestIDKey, scope.requestID),
			zap.Error(err),
		)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, scope.requestID),
		zap.Int64(constvars.LoggingRecordIDKey, evolutionID),
	)
}
