package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"filebox/internal/auth"
	"filebox/internal/config"
	handlers "filebox/internal/http/handler"
	"filebox/internal/http/middleware"
	"filebox/internal/logger"
	"filebox/internal/otel"
	"filebox/internal/service"
	"filebox/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()
	shutdownTracing, err := otel.Init(ctx, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer shutdownTracing(ctx)

	// Initialize the local-disk store (creates the upload directory)
	store, err := storage.NewDisk(cfg.Store.UploadDir)
	if err != nil {
		zlog.Fatal("failed to initialize file store", zap.Error(err))
	}

	fileSvc := service.NewFileService(store, cfg.Store)

	sessions := auth.NewManager(
		cfg.Auth.SessionSecret,
		cfg.Auth.Username,
		cfg.Auth.Password,
		time.Duration(cfg.Auth.SessionTTLHours)*time.Hour,
	)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// Upload bodies are consumed as streams so per-file limits apply
		// while bytes arrive; the body limit covers a full-size request.
		StreamRequestBody: true,
		BodyLimit:         int(cfg.Store.MaxFileSizeBytes())*cfg.Store.MaxFileCount + 16*1024*1024,
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(zlog))
	app.Use(otelfiber.Middleware())

	registry := prometheus.NewRegistry()
	promMW, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		zlog.Fatal("failed to register metrics", zap.Error(err))
	}
	app.Use(promMW.Handler())

	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	app.Get("/metrics", func(c *fiber.Ctx) error {
		metricsHandler(c.Context())
		return nil
	})

	handlers.RegisterRoutes(app, handlers.RouteDeps{
		Files:    fileSvc,
		Store:    store,
		Sessions: sessions,
		Config:   cfg,
	})

	zlog.Info("file store configured",
		zap.String("upload_dir", cfg.Store.UploadDir),
		zap.String("max_file_size", humanize.IBytes(uint64(cfg.Store.MaxFileSizeBytes()))),
		zap.Int("max_file_count", cfg.Store.MaxFileCount),
		zap.String("soft_quota", humanize.IBytes(uint64(cfg.Store.MaxStorageBytes()))),
		zap.Bool("debug_mode", cfg.Server.DebugMode),
	)

	// Serve until interrupted, then drain in-flight requests.
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + cfg.Server.Port)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zlog.Fatal("server exited", zap.Error(err))
		}
	case sig := <-sigCh:
		zlog.Info("shutting down", zap.String("signal", sig.String()))
		if err := app.ShutdownWithTimeout(time.Duration(cfg.Server.ShutdownTimeoutSec) * time.Second); err != nil {
			zlog.Error("shutdown incomplete", zap.Error(err))
		}
	}
}
