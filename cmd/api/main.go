package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	_ "pdfsummarizer/docs"
	"pdfsummarizer/internal/config"
	"pdfsummarizer/internal/extractor"
	handlers "pdfsummarizer/internal/http/handler"
	"pdfsummarizer/internal/http/middleware"
	"pdfsummarizer/internal/logging"
	"pdfsummarizer/internal/otel"
	"pdfsummarizer/internal/providers"
	"pdfsummarizer/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title PDF Summarizer API
// @version 1.0
// @description Upload a PDF and receive a bullet-point summary and a multiple-choice quiz.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.Location(), cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Error("invalid configuration")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize tracing")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app, info, err := newApp(ctx, cfg, log, reg)
	if err != nil {
		log.WithError(err).Fatal("failed to build application")
	}

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			log.WithError(err).Error("server shutdown failed")
		}
	}()

	log.WithFields(logrus.Fields{"provider": info.Name, "model": info.Model}).
		Infof("Server running at http://%s", cfg.AppHost)
	log.Infof("Send PDF files to: POST http://%s/api/summarize-pdf", cfg.AppHost)
	log.Infof("Use form-data with field name 'pdf'")

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}

	if err := shutdownTracing(context.Background()); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("tracer shutdown failed")
	}
	log.Info("server stopped")
}

// newApp wires the model provider, the summarizer service and every HTTP route.
func newApp(ctx context.Context, cfg *config.AppConfig, log *logrus.Logger, reg *prometheus.Registry) (*fiber.App, providers.ProviderInfo, error) {
	gen, err := providers.New(ctx, cfg.Model)
	if err != nil {
		return nil, providers.ProviderInfo{}, err
	}
	instrumented, err := providers.NewInstrumented(gen, reg)
	if err != nil {
		return nil, providers.ProviderInfo{}, err
	}
	svc := service.NewSummarizerService(extractor.New(), instrumented, cfg.QuizQuestions)

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, providers.ProviderInfo{}, err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             cfg.Upload.MaxBytes(),
		DisableStartupMessage: true,
	})

	// Register global middleware
	app.Use(recover.New())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath
	})))
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected service
	info := gen.Info()
	handlers.RegisterRoutes(app, svc, info, log)

	// Swagger UI. Host stays empty so the UI targets the origin it was loaded from.
	app.Get("/swagger/*", swagger.HandlerDefault)

	return app, info, nil
}
