package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/services/core/roles"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *controllers.DashboardController) {
	router.Use(middlewares.RequireRoles(roles.OperationDashboardRead))
	router.Get("/stats", dashboardController.Stats)
	router.Get("/upcoming-appointments", dashboardController.UpcomingAppointments)
	router.Get("/alerts", dashboardController.Alerts)
}
