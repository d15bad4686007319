package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/services/core/roles"

	"github.com/go-chi/chi/v5"
)

func attachInsurancePlanRoutes(router chi.Router, middlewares *middlewares.Middlewares, insurancePlanController *controllers.InsurancePlanController) {
	read := middlewares.RequireRoles(roles.OperationReferenceDataRead)
	write := middlewares.RequireRoles(roles.OperationReferenceDataWrite)
	router.With(read).Get("/", insurancePlanController.FindAll)
	router.With(write).Post("/", insurancePlanController.Create)
	router.With(read).Get("/{id}", insurancePlanController.FindByID)
	router.With(write).Put("/{id}", insurancePlanController.Update)
	router.With(write).Delete("/{id}", insurancePlanController.Delete)
}

func attachTherapyTypeRoutes(router chi.Router, middlewares *middlewares.Middlewares, therapyTypeController *controllers.TherapyTypeController) {
	read := middlewares.RequireRoles(roles.OperationReferenceDataRead)
	write := middlewares.RequireRoles(roles.OperationReferenceDataWrite)
	router.With(read).Get("/", therapyTypeController.FindAll)
	router.With(write).Post("/", therapyTypeController.Create)
	router.With(read).Get("/{id}", therapyTypeController.FindByID)
	router.With(write).Put("/{id}", therapyTypeController.Update)
	router.With(write).Delete("/{id}", therapyTypeController.Delete)
}
