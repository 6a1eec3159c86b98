// Package main wires the HTTP server for the repository analysis service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/lohiyakeshav/StrangeMetrics/config"
	"github.com/lohiyakeshav/StrangeMetrics/internal/api"
	"github.com/lohiyakeshav/StrangeMetrics/internal/cache"
	"github.com/lohiyakeshav/StrangeMetrics/internal/github"
	"github.com/lohiyakeshav/StrangeMetrics/internal/repository"
	"github.com/lohiyakeshav/StrangeMetrics/internal/transport/http/middleware"
	handlers_fiber "github.com/lohiyakeshav/StrangeMetrics/internal/transport/http/server/handlers-fiber"
	"github.com/lohiyakeshav/StrangeMetrics/internal/usecase"
	"github.com/lohiyakeshav/StrangeMetrics/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	store, err := cache.New(cfg.Cache.Backend, log, cfg)
	if err != nil {
		log.Errorw("cache initialization error", "error", err)
		return
	}
	if err := store.OnStart(ctx); err != nil {
		log.Errorw("cache start error", "error", err)
		return
	}
	defer func() {
		_ = store.OnStop(context.Background())
	}()

	gh := github.New(log, cfg.GitHub)

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, repo, gh, store, timeout, cfg.Cache.TTL)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(cors.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	api.RegisterHandlers(serv, h)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
