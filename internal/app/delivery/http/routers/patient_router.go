package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/services/core/roles"
	"clinic-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	patientController *controllers.PatientController,
	medicalRecordController *controllers.MedicalRecordController,
) {
	access := middlewares.RequireRoles(roles.OperationPatientAccess)
	router.With(access).Get("/", patientController.FindAll)
	router.With(access).Post("/", patientController.Create)
	router.With(access).Get("/{id}", patientController.FindByID)
	router.With(access).Put("/{id}", patientController.Update)
	router.With(middlewares.RequireRoles(roles.OperationPatientDelete)).Delete("/{id}", patientController.Delete)

	records := middlewares.RequireRoles(roles.OperationMedicalRecordAccess)
	router.With(records).Get("/{id}/"+constvars.ResourceMedicalRecords, medicalRecordController.FindByPatientID)
	router.With(records).Post("/{id}/"+constvars.ResourceMedicalRecords, medicalRecordController.Upload)
}
