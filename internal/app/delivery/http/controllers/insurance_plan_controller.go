package controllers

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type InsurancePlanController struct {
	Log                  *zap.Logger
	InsurancePlanUsecase contracts.InsurancePlanUsecase
}

func NewInsurancePlanController(logger *zap.Logger, insurancePlanUsecase contracts.InsurancePlanUsecase) *InsurancePlanController {
	return &InsurancePlanController{
		Log:                  logger,
		InsurancePlanUsecase: insurancePlanUsecase,
	}
}

func (ctrl *InsurancePlanController) FindAll(w http.ResponseWriter, r *http.Request) {
	const method = "InsurancePlanController.FindAll"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	result, err := ctrl.InsurancePlanUsecase.FindAll(scope.ctx, scope.identity)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, scope.requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetInsurancePlansSuccessMessage, result)
}

func (ctrl *InsurancePlanController) FindByID(w http.ResponseWriter, r *http.Request) {
	const method = "InsurancePlanController.FindByID"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	planID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	result, err := ctrl.InsurancePlanUsecase.FindByID(scope.ctx, scope.identity, planID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetInsurancePlanSuccessMessage, result)
}

func (ctrl *InsurancePlanController) Create(w http.ResponseWriter, r *http.Request) {
	const method = "InsurancePlanController.Create"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	request := new(requests.CreateInsurancePlan)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	created, err := ctrl.InsurancePlanUsecase.Create(scope.ctx, scope.identity, request)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, scope.requestID),
		zap.Int64(constvars.LoggingRecordIDKey, created.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateInsurancePlanSuccessMessage, created)
}

func (ctrl *InsurancePlanController) Update(w http.ResponseWriter, r *http.Request) {
	const method = "InsurancePlanController.Update"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	planID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	request := new(requests.UpdateInsurancePlan)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	if err := ctrl.InsurancePlanUsecase.Update(scope.ctx, scope.identity, planID, request); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateInsurancePlanSuccessMessage, nil)
}

func (ctrl *InsurancePlanController) Delete(w http.ResponseWriter, r *http.Request) {
	const method = "InsurancePlanController.Delete"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	planID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	if err := ctrl.InsurancePlanUsecase.Delete(scope.ctx, scope.identity, planID); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteInsurancePlanSuccessMessage, nil)
}
