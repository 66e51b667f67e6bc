package main

import (
	"context"
	"expvar"
	"log"
	"runtime"

	"github.com/dmartinrc/salachat/internal/domain"
	"github.com/dmartinrc/salachat/internal/infrastructure/configs"
	"github.com/dmartinrc/salachat/internal/infrastructure/events"
	"github.com/dmartinrc/salachat/internal/infrastructure/logging"
	"github.com/dmartinrc/salachat/internal/infrastructure/messaging"
	"github.com/dmartinrc/salachat/internal/infrastructure/profanity"
	"github.com/dmartinrc/salachat/internal/infrastructure/ratelimiter"
	memrepo "github.com/dmartinrc/salachat/internal/infrastructure/repository"
	"github.com/dmartinrc/salachat/internal/infrastructure/tracing"
	"github.com/dmartinrc/salachat/internal/persistence/db"
	"github.com/dmartinrc/salachat/internal/persistence/repository"
	"github.com/dmartinrc/salachat/internal/presentation/api"
	"github.com/dmartinrc/salachat/internal/presentation/handler/health"
	"github.com/dmartinrc/salachat/internal/presentation/handler/messages"
	"github.com/dmartinrc/salachat/internal/presentation/handler/rooms"
)

const serviceName = "salachat-api"

// @title           Salachat API
// @version         1.0
// @description     Chat room service: create and join rooms by code, post and read messages.
// @BasePath        /api
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	configPath := configs.DeterminePath()
	cfg, err := configs.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	sh, err := tracing.InitTracer(tracing.Config{
		ServiceName: serviceName,
		Environment: cfg.Tracing.Environment,
		Endpoint:    cfg.Tracing.Endpoint,
	})
	if err != nil {
		log.Fatalf("Failed to initialize the tracer: %v", err)
	}
	defer sh(ctx)

	logger := logging.NewLogger(&logging.LoggerConfig{
		FilePath: cfg.Logger.FilePath,
		Encoding: cfg.Logger.Encoding,
		Level:    cfg.Logger.Level,
		Logger:   cfg.Logger.Logger,
	})
	logger.Init()

	var (
		roomRepository    domain.RoomRepository
		messageRepository domain.MessageRepository
		auditRepository   domain.RoomAuditRepository
	)

	switch cfg.Storage.Driver {
	case "memory":
		memMessages := memrepo.NewMessageRepository()
		roomRepository = memrepo.NewRoomRepository(memMessages)
		messageRepository = memMessages
		auditRepository = memrepo.NewRoomAuditLogRepository()

		logger.Info(logging.General, logging.Startup, "using in-memory storage", nil)
	default:
		mongoCfg := &db.MongoConfig{
			URI:               cfg.Mongo.URI,
			Database:          cfg.Mongo.Database,
			ConnectionTimeout: cfg.Mongo.ConnectionTimeout,
		}

		client, err := db.NewMongoClient(ctx, mongoCfg)
		if err != nil {
			logger.Fatal(logging.Mongo, logging.Startup, "failed to connect to mongodb", map[logging.ExtraKey]any{
				logging.ErrorMessage: err.Error(),
			})
		}
		defer db.DisconnectMongo(ctx, client)

		database := db.GetDatabase(client, mongoCfg)
		roomRepository = repository.NewRoomRepository(database)
		messageRepository = repository.NewMessageRepository(database)
		auditRepository = repository.NewRoomAuditLogRepository(database)
	}

	if err := roomRepository.EnsureIndexes(ctx); err != nil {
		logger.Fatal(logging.Mongo, logging.Index, "failed to ensure room indexes", map[logging.ExtraKey]any{
			logging.ErrorMessage: err.Error(),
		})
	}
	if err := auditRepository.EnsureIndexes(ctx); err != nil {
		logger.Fatal(logging.Mongo, logging.Index, "failed to ensure audit indexes", map[logging.ExtraKey]any{
			logging.ErrorMessage: err.Error(),
		})
	}

	var rabbitmq *messaging.RabbitMQ
	if cfg.Messaging.Enabled {
		rabbitmq, err = messaging.NewRabbitMQ(cfg.Messaging.URI)
		if err != nil {
			logger.Fatal(logging.RabbitMQ, logging.Startup, "failed to connect to rabbitmq", map[logging.ExtraKey]any{
				logging.ErrorMessage: err.Error(),
			})
		}
		defer rabbitmq.Close()

		roomConsumer := events.NewRoomConsumer(rabbitmq, auditRepository)
		go func() {
			if err := roomConsumer.Listen(); err != nil {
				logger.Error(logging.RabbitMQ, logging.Consume, "audit consumer stopped", map[logging.ExtraKey]any{
					logging.ErrorMessage: err.Error(),
				})
			}
		}()
	}

	roomPublisher := events.NewRoomPublisher(rabbitmq)

	roomHandler := rooms.NewHandler(roomRepository, roomPublisher)
	healthHandler := health.NewHandler()
	messageHandler := messages.NewHandler(roomRepository, messageRepository, profanity.NewFilter(), roomPublisher)

	rl := ratelimiter.New(ratelimiter.Options{
		MaxRatePerSecond: cfg.RateLimiter.MaxRatePerSecond,
		MaxBurst:         cfg.RateLimiter.MaxBurst,
		CacheTTL:         cfg.RateLimiter.CacheTTL,
		SourceHeaderKey:  cfg.RateLimiter.SourceHeaderKey,
	})
	app := api.NewApplication(*cfg, roomHandler, healthHandler, messageHandler, logger, rl)

	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.Mount()
	if err := app.Run(mux); err != nil {
		logger.Fatal(logging.General, logging.Shutdown, "server exited with error", map[logging.ExtraKey]any{
			logging.ErrorMessage: err.Error(),
		})
	}
}
