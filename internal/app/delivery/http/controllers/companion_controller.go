package controllers

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type CompanionController struct {
	Log              *zap.Logger
	CompanionUsecase contracts.CompanionUsecase
}

func NewCompanionController(logger *zap.Logger, companionUsecase contracts.CompanionUsecase) *CompanionController {
	return &CompanionController{
		Log:              logger,
		CompanionUsecase: companionUsecase,
	}
}

func (ctrl *CompanionController) FindAll(w http.ResponseWriter, r *http.Request) {
	const method = "CompanionController.FindAll"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	result, err := ctrl.CompanionUsecase.FindAll(scope.ctx, scope.identity)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, scope.requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCompanionsSuccessMessage, result)
}

func (ctrl *CompanionController) FindByID(w http.ResponseWriter, r *http.Request) {
	const method = "CompanionController.FindByID"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	companionID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	result, err := ctrl.CompanionUsecase.FindByID(scope.ctx, scope.identity, companionID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCompanionSuccessMessage, result)
}

func (ctrl *CompanionController) Create(w http.ResponseWriter, r *http.Request) {
	const method = "CompanionController.Create"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	request := new(requests.CreateCompanion)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	created, err := ctrl.CompanionUsecase.Create(scope.ctx, scope.identity, request)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, scope.requestID),
		zap.Int64(constvars.LoggingRecordIDKey, created.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCompanionSuccessMessage, created)
}

func (ctrl *CompanionController) Update(w http.ResponseWriter, r *http.Request) {
	const method = "CompanionController.Update"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	companionID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	request := new(requests.UpdateCompanion)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	if err := ctrl.CompanionUsecase.Update(scope.ctx, scope.identity, companionID, request); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateCompanionSuccessMessage, nil)
}

func (ctrl *CompanionController) Delete(w http.ResponseWriter, r *http.Request) {
	const method = "CompanionController.Delete"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	companionID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	if err := ctrl.CompanionUsecase.Delete(scope.ctx, scope.identity, companionID); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteCompanionSuccessMessage, nil)
}
