package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/services/core/roles"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	access := middlewares.RequireRoles(roles.OperationAppointmentAccess)
	router.With(access).Get("/", appointmentController.FindAll)
	router.With(access).Post("/", appointmentController.Create)
	router.With(access).Get("/{id}", appointmentController.FindByID)
	router.With(access).Put("/{id}", appointmentController.Update)
	router.With(middlewares.RequireRoles(roles.OperationAppointmentDelete)).Delete("/{id}", appointmentController.Delete)
}
