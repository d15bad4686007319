package controllers

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	DashboardUsecase contracts.DashboardUsecase
}

func NewDashboardController(logger *zap.Logger, dashboardUsecase contracts.DashboardUsecase) *DashboardController {
	return &DashboardController{
		Log:              logger,
		DashboardUsecase: dashboardUsecase,
	}
}

func (ctrl *DashboardController) Stats(w http.ResponseWriter, r *http.Request) {
	const method = "DashboardController.Stats"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	stats, err := ctrl.DashboardUsecase.Stats(scope.ctx, scope.identity)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardStatsSuccessMessage, stats)
}

func (ctrl *DashboardController) UpcomingAppointments(w http.ResponseWriter, r *http.Request) {
	const method = "DashboardController.UpcomingAppointments"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	appointments, err := ctrl.DashboardUsecase.UpcomingAppointments(scope.ctx, scope.identity)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUpcomingAppointmentsSuccessMessage, appointments)
}

func (ctrl *DashboardController) Alerts(w http.ResponseWriter, r *http.Request) {
	const method = "DashboardController.Alerts"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	alerts, err := ctrl.DashboardUsecase.Alerts(scope.ctx, scope.identity)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardAlertsSuccessMessage, alerts)
}
