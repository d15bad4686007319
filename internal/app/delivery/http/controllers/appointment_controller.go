package controllers

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	const method = "AppointmentController.FindAll"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	result, err := ctrl.AppointmentUsecase.FindAll(scope.ctx, scope.identity)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, scope.requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, result)
}

func (ctrl *AppointmentController) FindByID(w http.ResponseWriter, r *http.Request) {
	const method = "AppointmentController.FindByID"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	appointmentID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	result, err := ctrl.AppointmentUsecase.FindByID(scope.ctx, scope.identity, appointmentID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, result)
}

func (ctrl *AppointmentController) Create(w http.ResponseWriter, r *http.Request) {
	const method = "AppointmentController.Create"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	request := new(requests.CreateAppointment)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	created, err := ctrl.AppointmentUsecase.Create(scope.ctx, scope.identity, request)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, scope.requestID),
		zap.Int64(constvars.LoggingRecordIDKey, created.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, created)
}

func (ctrl *AppointmentController) Update(w http.ResponseWriter, r *http.Request) {
	const method = "AppointmentController.Update"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	appointmentID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	request := new(requests.UpdateAppointment)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	if err := ctrl.AppointmentUsecase.Update(scope.ctx, scope.identity, appointmentID, request); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentSuccessMessage, nil)
}

func (ctrl *AppointmentController) Delete(w http.ResponseWriter, r *http.Request) {
	const method = "AppointmentController.Delete"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	appointmentID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	if err := ctrl.AppointmentUsecase.Delete(scope.ctx, scope.identity, appointmentID); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAppointmentSuccessMessage, nil)
}
