package main

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/delivery/http/routers"
	"clinic-service/internal/app/drivers/database"
	"clinic-service/internal/app/drivers/logger"
	"clinic-service/internal/app/drivers/storage"
	"clinic-service/internal/app/services/core/appointments"
	"clinic-service/internal/app/services/core/auth"
	"clinic-service/internal/app/services/core/community"
	"clinic-service/internal/app/services/core/companions"
	"clinic-service/internal/app/services/core/dashboard"
	"clinic-service/internal/app/services/core/evolutions"
	"clinic-service/internal/app/services/core/insurance_plans"
	"clinic-service/internal/app/services/core/medical_records"
	"clinic-service/internal/app/services/core/patients"
	"clinic-service/internal/app/services/core/pdf_configs"
	"clinic-service/internal/app/services/core/scopes"
	"clinic-service/internal/app/services/core/session"
	"clinic-service/internal/app/services/core/therapy_types"
	"clinic-service/internal/app/services/core/users"
	"clinic-service/internal/app/services/shared/jwtmanager"
	"clinic-service/internal/app/services/shared/pdf"
	"clinic-service/internal/app/services/shared/ratelimiter"
	"clinic-service/internal/app/services/shared/redis"
	sharedstorage "clinic-service/internal/app/services/shared/storage"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	zapLogger.Info("Starting clinic-service",
		zap.String("version", Version),
		zap.String("tag", Tag),
		zap.String("env", internalConfig.App.Env),
	)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	postgresDB := database.NewPostgresDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		zapLogger.Fatal("Error bootstraping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           http.MaxBytesHandler(chiRouter, int64(internalConfig.App.RequestBodyLimitInMegabyte)<<20),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error while closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	log := bootstrap.Logger
	db := bootstrap.PostgresDB
	internalConfig := bootstrap.InternalConfig

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)
	evolutionRenderer := pdf.NewEvolutionRenderer()
	loginLimiter := ratelimiter.NewLoginLimiter(redisRepository, log, internalConfig)
	tokenManager, err := jwtmanager.NewJWTManager(internalConfig, log)
	if err != nil {
		return err
	}

	// Scope
	ownershipRepository := scopes.NewOwnershipPostgresRepository(db, log)
	scopeFilter := scopes.NewScopeFilter(ownershipRepository, log)

	// Middlewares
	sessionResolver := session.NewSessionService(tokenManager, log)
	middlewareInstance := middlewares.NewMiddlewares(log, sessionResolver, internalConfig)

	// User
	userRepository := users.NewUserPostgresRepository(db, log)
	userUsecase := users.NewUserUsecase(userRepository, log)

	// Auth
	authUsecase := auth.NewAuthUsecase(userRepository, tokenManager, loginLimiter, log)

	// Patient
	patientRepository := patients.NewPatientPostgresRepository(db, log)
	patientUsecase := patients.NewPatientUsecase(patientRepository, scopeFilter, log)

	// Appointment
	appointmentRepository := appointments.NewAppointmentPostgresRepository(db, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, scopeFilter, log)

	// PDF config
	pdfConfigRepository := pdf_configs.NewPDFConfigPostgresRepository(db, log)
	pdfConfigUsecase := pdf_configs.NewPDFConfigUsecase(pdfConfigRepository, minioStorage, internalConfig, log)

	// Evolution
	evolutionRepository := evolutions.NewEvolutionPostgresRepository(db, log)
	evolutionUsecase := evolutions.NewEvolutionUsecase(
		evolutionRepository,
		pdfConfigRepository,
		scopeFilter,
		minioStorage,
		evolutionRenderer,
		internalConfig,
		log,
	)

	// Companion
	companionRepository := companions.NewCompanionPostgresRepository(db, log)
	companionUsecase := companions.NewCompanionUsecase(companionRepository, scopeFilter, log)

	// Reference data
	insurancePlanRepository := insurance_plans.NewInsurancePlanPostgresRepository(db, log)
	insurancePlanUsecase := insurance_plans.NewInsurancePlanUsecase(insurancePlanRepository, redisRepository, log)
	therapyTypeRepository := therapy_types.NewTherapyTypePostgresRepository(db, log)
	therapyTypeUsecase := therapy_types.NewTherapyTypeUsecase(therapyTypeRepository, redisRepository, log)

	// Community
	communityRepository := community.NewCommunityPostgresRepository(db, log)
	communityUsecase := community.NewCommunityUsecase(communityRepository, scopeFilter, log)

	// Medical record
	medicalRecordRepository := medical_records.NewMedicalRecordPostgresRepository(db, log)
	medicalRecordUsecase := medical_records.NewMedicalRecordUsecase(medicalRecordRepository, scopeFilter, minioStorage, internalConfig, log)

	// Dashboard
	dashboardRepository := dashboard.NewDashboardPostgresRepository(db, log)
	dashboardUsecase := dashboard.NewDashboardUsecase(dashboardRepository, scopeFilter, log)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewareInstance, &routers.Controllers{
		Auth:          controllers.NewAuthController(log, authUsecase),
		User:          controllers.NewUserController(log, userUsecase),
		Patient:       controllers.NewPatientController(log, patientUsecase),
		Appointment:   controllers.NewAppointmentController(log, appointmentUsecase),
		Evolution:     controllers.NewEvolutionController(log, evolutionUsecase),
		Companion:     controllers.NewCompanionController(log, companionUsecase),
		InsurancePlan: controllers.NewInsurancePlanController(log, insurancePlanUsecase),
		TherapyType:   controllers.NewTherapyTypeController(log, therapyTypeUsecase),
		Community:     controllers.NewCommunityController(log, communityUsecase),
		MedicalRecord: controllers.NewMedicalRecordController(log, medicalRecordUsecase),
		Dashboard:     controllers.NewDashboardController(log, dashboardUsecase),
		PDFConfig:     controllers.NewPDFConfigController(log, pdfConfigUsecase),
	})
	return nil
}
