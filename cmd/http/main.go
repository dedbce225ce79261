package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/app/delivery/http/routers"
	"carebook-service/internal/app/drivers/database"
	"carebook-service/internal/app/drivers/logger"
	"carebook-service/internal/app/drivers/messaging"
	"carebook-service/internal/app/services/core/auth"
	"carebook-service/internal/app/services/core/bookings"
	"carebook-service/internal/app/services/core/health"
	"carebook-service/internal/app/services/core/medications"
	"carebook-service/internal/app/services/core/patients"
	"carebook-service/internal/app/services/core/providers"
	"carebook-service/internal/app/services/shared/events"
	"carebook-service/internal/app/services/shared/locker"
	"carebook-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("server starting", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("waiting for in-flight requests to finish")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	rabbitMQ.Close()

	zapLogger.Info("server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	slotLockService := locker.NewSlotLockService(
		redisRepository,
		time.Duration(bootstrap.InternalConfig.Booking.LockTTLInSeconds)*time.Second,
		bootstrap.Logger,
	)
	eventPublisher, err := events.NewBookingEventPublisher(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize booking event publisher: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Patients
	patientMongoRepository := patients.NewPatientMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, bootstrap.Logger)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(patientMongoRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Bookings
	bookingUsecase := bookings.NewBookingUsecase(
		patientMongoRepository,
		slotLockService,
		eventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	availabilityUsecase := bookings.NewAvailabilityUsecase(patientMongoRepository, bootstrap.InternalConfig, bootstrap.Logger)
	bookingController := bookings.NewBookingController(bootstrap.Logger, bookingUsecase, availabilityUsecase)

	// Providers
	providerMongoRepository := providers.NewProviderMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	providerUsecase := providers.NewProviderUsecase(providerMongoRepository, bootstrap.Logger)
	providerController := providers.NewProviderController(bootstrap.Logger, providerUsecase)

	// Medications
	medicationMongoRepository := medications.NewMedicationMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	medicationUsecase := medications.NewMedicationUsecase(medicationMongoRepository, bootstrap.Logger)
	medicationController := medications.NewMedicationController(bootstrap.Logger, medicationUsecase)

	// Health
	healthUsecase := health.NewHealthUsecase(redisRepository, bootstrap.MongoDB, bootstrap.Logger)
	healthController := health.NewHealthController(bootstrap.Logger, healthUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		patientController,
		bookingController,
		providerController,
		medicationController,
		healthController,
	)
}
