package main // Entry point package

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/watchwhatwhere/showtimes/internal/apiclient"
	"github.com/watchwhatwhere/showtimes/internal/config"
	"github.com/watchwhatwhere/showtimes/internal/handler"
	"github.com/watchwhatwhere/showtimes/internal/middleware"
	"github.com/watchwhatwhere/showtimes/internal/queue"
	"github.com/watchwhatwhere/showtimes/internal/router"
	"github.com/watchwhatwhere/showtimes/internal/service"
	"github.com/watchwhatwhere/showtimes/internal/view"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load() // Load environment config
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api := apiclient.New(apiclient.Config{
		BaseURL: cfg.APIBaseURL,
		Prefix:  cfg.APIPrefix,
		Timeout: cfg.APITimeout,
	})

	renderer, err := view.NewRenderer()
	if err != nil {
		slog.Error("failed to parse templates", "error", err)
		os.Exit(1)
	}

	// Redis backs the rate limiter; without it requests are not limited
	var scripter redis.Scripter
	rdb, err := config.NewRedisClient(ctx, config.LoadRedisConfig())
	if err != nil {
		slog.Warn("Redis unavailable, running without rate limiting", "error", err)
	} else {
		defer rdb.Close()
		scripter = rdb
	}

	var pub service.ClickPublisher = service.NopPublisher{}
	if cfg.Booking.PublishEnabled {
		pub = service.NewAMQPPublisher(cfg.Booking.AMQPURL)
	}
	if cfg.Booking.ConsumerEnabled {
		consumer := &queue.Consumer{URL: cfg.Booking.AMQPURL, LogDir: cfg.Booking.LogDir}
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("booking click consumer stopped", "error", err)
			}
		}()
	}

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger())

	router.RegisterRoutes(e) // Register application routes
	links := view.Links{Prefix: cfg.RoutePrefix, Key: cfg.Booking.LinkKey}
	pages := handler.NewPageHandler(api, pub, links)
	router.RegisterPages(e, pages, cfg.RoutePrefix, middleware.RateLimit(config.LoadRateLimitConfig(), scripter))

	go func() {
		<-ctx.Done()
		slog.Info("shutting down showtimes server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	addr := ":" + cfg.Port
	slog.Info("starting showtimes server", "addr", addr, "env", cfg.Env, "api", cfg.APIBaseURL)
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
