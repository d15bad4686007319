package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/services/core/roles"

	"github.com/go-chi/chi/v5"
)

func attachCommunityRoutes(router chi.Router, middlewares *middlewares.Middlewares, communityController *controllers.CommunityController) {
	router.Use(middlewares.RequireRoles(roles.OperationCommunityAccess))
	router.Get("/patient/{patient_id}", communityController.FindByPatientID)
	router.Post("/", communityController.Create)
	router.Delete("/{id}", communityController.Delete)
}
