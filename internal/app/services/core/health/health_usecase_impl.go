package health

import (
	"context"
	"time"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	statusHealthy  = "healthy"
	statusDegraded = "degraded"

	serviceUp   = "up"
	serviceDown = "down"
)

type healthUsecase struct {
	RedisRepository contracts.RedisRepository
	MongoClient     *mongo.Client
	Log             *zap.Logger
}

func NewHealthUsecase(redisRepository contracts.RedisRepository, mongoClient *mongo.Client, logger *zap.Logger) contracts.HealthUsecase {
	return &healthUsecase{
		RedisRepository: redisRepository,
		MongoClient:     mongoClient,
		Log:             logger,
	}
}

// Check probes the lock store and the record store. The API itself is always
// reported up; either dependency failing degrades the overall status.
func (uc *healthUsecase) Check(ctx context.Context) *responses.Health {
	services := responses.HealthServices{
		API:      serviceUp,
		Redis:    serviceUp,
		Database: serviceUp,
	}

	if err := uc.RedisRepository.Ping(ctx); err != nil {
		uc.Log.Error("healthUsecase.Check redis unreachable", zap.Error(err))
		services.Redis = serviceDown
	}
	if err := uc.MongoClient.Ping(ctx, readpref.Primary()); err != nil {
		uc.Log.Error("healthUsecase.Check mongodb unreachable", zap.Error(err))
		services.Database = serviceDown
	}

	status := statusHealthy
	if services.Redis == serviceDown || services.Database == serviceDown {
		status = statusDegraded
	}

	return &responses.Health{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  services,
	}
}
