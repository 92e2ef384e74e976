package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/loadboard/internal/pkg/config"
	"github.com/piresc/loadboard/internal/pkg/constants"
	"github.com/piresc/loadboard/internal/pkg/database"
	"github.com/piresc/loadboard/internal/pkg/health"
	"github.com/piresc/loadboard/internal/pkg/logger"
	"github.com/piresc/loadboard/internal/pkg/middleware"
	natspkg "github.com/piresc/loadboard/internal/pkg/nats"
	nsqpkg "github.com/piresc/loadboard/internal/pkg/nsq"
	"github.com/piresc/loadboard/internal/pkg/server"
	fleetHTTP "github.com/piresc/loadboard/services/fleet/handler/http"
	fleetRepository "github.com/piresc/loadboard/services/fleet/repository"
	fleetUsecase "github.com/piresc/loadboard/services/fleet/usecase"
	"github.com/piresc/loadboard/services/loads/gateway"
	"github.com/piresc/loadboard/services/loads/handler"
	loadHTTP "github.com/piresc/loadboard/services/loads/handler/http"
	loadNATS "github.com/piresc/loadboard/services/loads/handler/nats"
	loadNSQ "github.com/piresc/loadboard/services/loads/handler/nsq"
	loadRepository "github.com/piresc/loadboard/services/loads/repository"
	loadUsecase "github.com/piresc/loadboard/services/loads/usecase"
	notificationHTTP "github.com/piresc/loadboard/services/notifications/handler/http"
	notificationRepository "github.com/piresc/loadboard/services/notifications/repository"
	notificationUsecase "github.com/piresc/loadboard/services/notifications/usecase"
	userHTTP "github.com/piresc/loadboard/services/users/handler/http"
	userRepository "github.com/piresc/loadboard/services/users/repository"
	userUsecase "github.com/piresc/loadboard/services/users/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "loadboard"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/loadboard.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
		zap.String("events_broker", configs.Events.Broker),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	checkers := map[string]health.Checker{
		"postgres": health.CheckerFunc(postgresClient.Ping),
		"redis":    health.CheckerFunc(redisClient.Ping),
	}

	// Initialize the event broker
	var (
		natsClient  *natspkg.Client
		nsqProducer *nsqpkg.Producer
	)
	switch configs.Events.Broker {
	case constants.BrokerNSQ:
		nsqProducer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to create NSQ producer", zap.Error(err))
		}
		checkers["nsq"] = health.CheckerFunc(func(context.Context) error { return nsqProducer.Ping() })
	default:
		natsClient, err = natspkg.NewClient(configs.NATS.URL)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		checkers["nats"] = health.CheckerFunc(func(context.Context) error {
			if !natsClient.IsConnected() {
				return errors.New("nats disconnected")
			}
			return nil
		})
	}

	// Initialize repositories
	db := postgresClient.GetDB()
	loadRepo := loadRepository.NewLoadRepository(configs, db, redisClient)
	notificationRepo := notificationRepository.NewNotificationRepository(configs, db)
	fleetRepo := fleetRepository.NewFleetRepository(configs, db)
	userRepo := userRepository.NewUserRepository(configs, db)

	// Initialize gateway
	loadGW, err := gateway.NewLoadGW(configs, natsClient, nsqProducer)
	if err != nil {
		zapLogger.Fatal("Failed to initialize load gateway", zap.Error(err))
	}

	// Initialize use cases
	notificationUC := notificationUsecase.NewNotificationUC(configs, notificationRepo)
	loadUC := loadUsecase.NewLoadUC(configs, loadRepo, loadGW, notificationUC)
	fleetUC := fleetUsecase.NewFleetUC(configs, fleetRepo)
	userUC := userUsecase.NewUserUC(configs, userRepo)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, checkers)

	api := e.Group("/api/v1", middleware.JWTAuthMiddleware(configs.JWT))
	limiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: redisClient.GetClient(),
		Key:         fmt.Sprintf(constants.KeyRateLimit, "loads"),
		Limit:       configs.RateLimit.Requests,
		Period:      time.Duration(configs.RateLimit.WindowSeconds) * time.Second,
	})

	handler.NewHandler(loadHTTP.NewLoadHandler(loadUC)).RegisterRoutes(api, limiter)
	notificationHTTP.NewNotificationHandler(notificationUC).RegisterRoutes(api)
	fleetHTTP.NewFleetHandler(fleetUC).RegisterRoutes(api)
	userHTTP.NewUserHandler(userUC).RegisterRoutes(api)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	// Registered first so they close last
	srv.OnShutdown("postgres", func(context.Context) error { return postgresClient.Close() })
	srv.OnShutdown("redis", func(context.Context) error { return redisClient.Close() })

	// Start the geo index consumers on the configured broker
	if natsClient != nil {
		consumer := loadNATS.NewLoadHandler(loadUC, natsClient)
		if err := consumer.InitNATSConsumers(); err != nil {
			zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
		}
		srv.OnShutdown("nats", func(context.Context) error {
			consumer.Close()
			natsClient.Close()
			return nil
		})
	}
	if nsqProducer != nil {
		consumer := loadNSQ.NewLoadHandler(loadUC, configs.NSQ.Address)
		if err := consumer.InitNSQConsumer(); err != nil {
			zapLogger.Fatal("Failed to initialize NSQ consumer", zap.Error(err))
		}
		srv.OnShutdown("nsq", func(context.Context) error {
			consumer.Stop()
			nsqProducer.Stop()
			return nil
		})
	}

	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with errors", zap.String("app", appName), zap.Error(err))
	}
}
