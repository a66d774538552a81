package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taskhub/task-service/internal/api"
	"github.com/taskhub/task-service/internal/auth"
	"github.com/taskhub/task-service/internal/core/service"
	"github.com/taskhub/task-service/internal/infrastructure/config"
	mongodb "github.com/taskhub/task-service/internal/infrastructure/db/mongo"
	redisdb "github.com/taskhub/task-service/internal/infrastructure/db/redis"
	"github.com/taskhub/task-service/internal/infrastructure/queue"
	"github.com/taskhub/task-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	codec, err := auth.NewCodec([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid signing configuration")
	}

	// --- Infrastructure ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}
	taskRepo := mongodb.NewTaskRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)
	imageStore := mongodb.NewProfileImageStore(db)
	ownerLock := redisdb.NewOwnerLock(rdb)

	// --- Services ---
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	userService := service.NewUserService(userRepo, imageStore, codec, dispatcher, log)
	taskService := service.NewTaskService(taskRepo, ownerLock, dispatcher, log)

	e := api.NewRouter(api.Dependencies{
		Codec:       codec,
		UserService: userService,
		TaskService: taskService,
		Mongo:       db,
		Redis:       rdb,
		Log:         log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("task service started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
