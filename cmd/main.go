// Package main wires the HTTP server for the users management screen.
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"users-management/config"
	"users-management/internal/repository"
	"users-management/internal/screen"
	"users-management/internal/transport/http/middleware"
	handlers_fiber "users-management/internal/transport/http/server/handlers-fiber"
	"users-management/internal/usecase"
	"users-management/pkg/logger"
	"users-management/pkg/telemetry"

	"github.com/gofiber/fiber/v2"
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
	defer func() { _ = log.Sync() }()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTel.ServiceName, cfg.OTel.Endpoint)
	if err != nil {
		log.Warnw("tracing disabled", "error", err)
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	loc, err := time.LoadLocation(cfg.UI.TimeZone)
	if err != nil {
		log.Errorw("invalid ui.timezone", "error", err, "timezone", cfg.UI.TimeZone)
		return
	}

	repo, err := repository.New(ctx, cfg.Database.Backend, log, cfg)
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

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, repo, timeout)

	sessions := screen.NewRegistry(log, uc, cfg.Session.IdleTTL)
	go sessions.Run(ctx, cfg.Session.SweepInterval)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	serv.Use(middleware.RateLimit(cfg.HTTP.RateLimitMax, cfg.HTTP.RateLimitWindow))
	serv.Use(middleware.Session(sessions, cfg.Session.CookieName, cfg.Session.IdleTTL))

	h := handlers_fiber.NewHandler(log, cfg.UI.Title, loc)
	handlers_fiber.RegisterHandlers(serv, h)

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
