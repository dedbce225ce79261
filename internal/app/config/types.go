package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	InternalConfig struct {
		App     App
		JWT     JWT
		Booking Booking
	}

	App struct {
		Env             string
		Port            string
		Version         string
		Timezone        string
		EndpointPrefix  string
		MaxRequests     int
		ShutdownTimeout int
	}

	MongoDB struct {
		Host     string
		Port     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	// Booking holds the slot protocol knobs. The business-hours window is
	// deliberately configuration, not a literal: the window is 09:00-17:00
	// by default and uniform across every code path that enumerates slots.
	Booking struct {
		LockTTLInSeconds     int
		WindowStartHour      int
		WindowEndHour        int
		MaxAttemptsPerMinute int
	}
)
