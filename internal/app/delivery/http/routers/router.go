package routers

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/pkg/constvars"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Controllers groups every HTTP controller mounted under the versioned prefix.
type Controllers struct {
	Auth          *controllers.AuthController
	User          *controllers.UserController
	Patient       *controllers.PatientController
	Appointment   *controllers.AppointmentController
	Evolution     *controllers.EvolutionController
	Companion     *controllers.CompanionController
	InsurancePlan *controllers.InsurancePlanController
	TherapyType   *controllers.TherapyTypeController
	Community     *controllers.CommunityController
	MedicalRecord *controllers.MedicalRecordController
	Dashboard     *controllers.DashboardController
	PDFConfig     *controllers.PDFConfigController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrl *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   splitOrigins(internalConfig.App.AllowedOrigins),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.Metrics)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.SecurityHeaders)
	router.Use(middlewares.RateLimit())

	router.Handle("/metrics", promhttp.Handler())

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/"+constvars.ResourceAuth, func(r chi.Router) {
				attachAuthRoutes(r, middlewares, ctrl.Auth)
			})

			// Everything below requires a resolved identity.
			r.Group(func(r chi.Router) {
				r.Use(middlewares.Authenticate)

				r.Route("/"+constvars.ResourceUsers, func(r chi.Router) {
					attachUserRoutes(r, middlewares, ctrl.User)
				})
				r.Route("/"+constvars.ResourcePatients, func(r chi.Router) {
					attachPatientRoutes(r, middlewares, ctrl.Patient, ctrl.MedicalRecord)
				})
				r.Route("/"+constvars.ResourceAppointments, func(r chi.Router) {
					attachAppointmentRoutes(r, middlewares, ctrl.Appointment)
				})
				r.Route("/"+constvars.ResourceEvolutions, func(r chi.Router) {
					attachEvolutionRoutes(r, middlewares, ctrl.Evolution)
				})
				r.Route("/"+constvars.ResourceCompanions, func(r chi.Router) {
					attachCompanionRoutes(r, middlewares, ctrl.Companion)
				})
				r.Route("/"+constvars.ResourceInsurancePlans, func(r chi.Router) {
					attachInsurancePlanRoutes(r, middlewares, ctrl.InsurancePlan)
				})
				r.Route("/"+constvars.ResourceTherapyTypes, func(r chi.Router) {
					attachTherapyTypeRoutes(r, middlewares, ctrl.TherapyType)
				})
				r.Route("/"+constvars.ResourceCommunity, func(r chi.Router) {
					attachCommunityRoutes(r, middlewares, ctrl.Community)
				})
				r.Route("/"+constvars.ResourceDashboard, func(r chi.Router) {
					attachDashboardRoutes(r, middlewares, ctrl.Dashboard)
				})
				r.Route("/"+constvars.ResourcePDFConfig, func(r chi.Router) {
					attachPDFConfigRoutes(r, middlewares, ctrl.PDFConfig)
				})
			})
		})
	})
}

func splitOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
