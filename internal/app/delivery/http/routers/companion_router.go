package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/services/core/roles"

	"github.com/go-chi/chi/v5"
)

func attachCompanionRoutes(router chi.Router, middlewares *middlewares.Middlewares, companionController *controllers.CompanionController) {
	access := middlewares.RequireRoles(roles.OperationCompanionAccess)
	router.With(access).Get("/", companionController.FindAll)
	router.With(access).Post("/", companionController.Create)
	router.With(access).Get("/{id}", companionController.FindByID)
	router.With(access).Put("/{id}", companionController.Update)
	router.With(middlewares.RequireRoles(roles.OperationCompanionDelete)).Delete("/{id}", companionController.Delete)
}
