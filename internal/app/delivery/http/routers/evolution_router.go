package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/services/core/roles"

	"github.com/go-chi/chi/v5"
)

func attachEvolutionRoutes(router chi.Router, middlewares *middlewares.Middlewares, evolutionController *controllers.EvolutionController) {
	access := middlewares.RequireRoles(roles.OperationEvolutionAccess)
	router.With(access).Get("/", evolutionController.FindAll)
	router.With(access).Post("/", evolutionController.Create)
	router.With(access).Get("/patient/{patient_id}", evolutionController.FindByPatientID)
	router.With(access).Get("/{id}", evolutionController.FindByID)
	router.With(access).Put("/{id}", evolutionController.Update)
	router.With(middlewares.RequireRoles(roles.OperationEvolutionDelete)).Delete("/{id}", evolutionController.Delete)
	router.With(middlewares.RequireRoles(roles.OperationEvolutionExport)).Get("/{id}/pdf", evolutionController.ExportPDF)
}
