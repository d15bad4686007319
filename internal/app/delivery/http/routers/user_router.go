package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/services/core/roles"

	"github.com/go-chi/chi/v5"
)

// Updating a user is open to every role; the usecase limits professionals
// to their own profile.
func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.With(middlewares.RequireRoles(roles.OperationUserList)).Get("/", userController.FindAll)
	router.With(middlewares.RequireRoles(roles.OperationUserCreate)).Post("/", userController.Create)
	router.With(middlewares.RequireRoles(roles.OperationUserRead)).Get("/{id}", userController.FindByID)
	router.With(middlewares.RequireRoles(roles.OperationSelfProfile)).Put("/{id}", userController.Update)
	router.With(middlewares.RequireRoles(roles.OperationUserDelete)).Delete("/{id}", userController.Delete)
}
