package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/services/core/roles"

	"github.com/go-chi/chi/v5"
)

func attachPDFConfigRoutes(router chi.Router, middlewares *middlewares.Middlewares, pdfConfigController *controllers.PDFConfigController) {
	router.Use(middlewares.RequireRoles(roles.OperationPDFConfigManage))
	router.Get("/", pdfConfigController.Get)
	router.Put("/", pdfConfigController.Update)
	router.Post("/logo", pdfConfigController.UploadLogo)
}
