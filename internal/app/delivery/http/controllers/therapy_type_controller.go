package controllers

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type TherapyTypeController struct {
	Log                *zap.Logger
	TherapyTypeUsecase contracts.TherapyTypeUsecase
}

func NewTherapyTypeController(logger *zap.Logger, therapyTypeUsecase contracts.TherapyTypeUsecase) *TherapyTypeController {
	return &TherapyTypeController{
		Log:                logger,
		TherapyTypeUsecase: therapyTypeUsecase,
	}
}

func (ctrl *TherapyTypeController) FindAll(w http.ResponseWriter, r *http.Request) {
	const method = "TherapyTypeController.FindAll"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	result, err := ctrl.TherapyTypeUsecase.FindAll(scope.ctx, scope.identity)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, scope.requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTherapyTypesSuccessMessage, result)
}

func (ctrl *TherapyTypeController) FindByID(w http.ResponseWriter, r *http.Request) {
	const method = "TherapyTypeController.FindByID"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	therapyTypeID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	result, err := ctrl.TherapyTypeUsecase.FindByID(scope.ctx, scope.identity, therapyTypeID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTherapyTypeSuccessMessage, result)
}

func (ctrl *TherapyTypeController) Create(w http.ResponseWriter, r *http.Request) {
	const method = "TherapyTypeController.Create"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	request := new(requests.CreateTherapyType)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	created, err := ctrl.TherapyTypeUsecase.Create(scope.ctx, scope.identity, request)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, scope.requestID),
		zap.Int64(constvars.LoggingRecordIDKey, created.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateTherapyTypeSuccessMessage, created)
}

func (ctrl *TherapyTypeController) Update(w http.ResponseWriter, r *http.Request) {
	const method = "TherapyTypeController.Update"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	therapyTypeID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	request := new(requests.UpdateTherapyType)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	if err := ctrl.TherapyTypeUsecase.Update(scope.ctx, scope.identity, therapyTypeID, request); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateTherapyTypeSuccessMessage, nil)
}

func (ctrl *TherapyTypeController) Delete(w http.ResponseWriter, r *http.Request) {
	const method = "TherapyTypeController.Delete"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	therapyTypeID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	if err := ctrl.TherapyTypeUsecase.Delete(scope.ctx, scope.identity, therapyTypeID); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteTherapyTypeSuccessMessage, nil)
}
