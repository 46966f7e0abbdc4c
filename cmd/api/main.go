package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/joefazee/countryview/app"
	"github.com/joefazee/countryview/app/api"
	"github.com/joefazee/countryview/app/countries"
	apiDoc "github.com/joefazee/countryview/app/doc"
	_ "github.com/joefazee/countryview/docs"
	"github.com/joefazee/countryview/internal/cache"
	"github.com/joefazee/countryview/internal/deps"
	"github.com/joefazee/countryview/internal/logger"
	"github.com/joefazee/countryview/internal/metrics"
	"github.com/joefazee/countryview/internal/nexus"
	"github.com/joefazee/countryview/internal/randomuser"
	"github.com/joefazee/countryview/internal/router"
	"github.com/joefazee/countryview/internal/sanitizer"
	"github.com/joefazee/countryview/models"
)

const (
	configFileName    = ".env"
	configLoadTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// @title Country View API
// @version 1.0
// @description Browse a batch of random users grouped by country and filtered by gender.

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := app.LoadConfig(
		nexus.WithDefaultFileName(configFileName),
		nexus.WithTimeout(configLoadTimeout),
	)
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	appLogger := logger.NewZeroLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel), logger.Fields{
		"service": "countryview",
		"env":     cfg.Env,
	})

	if err := run(cfg, appLogger); err != nil {
		appLogger.Fatal(err, nil)
	}
}

func run(cfg *app.Config, appLogger logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	detailCache, err := cache.New[[]models.UserRecord](cfg.Cache)
	if err != nil {
		return fmt.Errorf("cannot create cache: %w", err)
	}
	defer detailCache.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	viewMetrics := metrics.New(registry)

	htmlSanitizer := sanitizer.NewHTMLStripper()
	container := deps.NewContainer(htmlSanitizer, appLogger, detailCache, viewMetrics)

	controller := countries.NewController(countries.WithControllerMetrics(viewMetrics))
	countries.InitServices(container, controller, cfg.Cache.TTL)

	client := randomuser.NewClient(cfg.RandomUser, randomuser.WithSanitizer(container.Sanitizer))
	orchestrator := countries.NewOrchestrator(client, controller, appLogger, viewMetrics)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           newEngine(cfg, container, registry),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return orchestrator.Run(gctx)
	})

	g.Go(func() error {
		appLogger.Info("starting country view API", logger.Fields{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("shutting down server gracefully", nil)

		// drop any fetch result that is still in flight
		controller.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	appLogger.Info("server stopped", nil)
	return nil
}

func newEngine(cfg *app.Config, container *deps.Container, registry *prometheus.Registry) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), api.CorsMiddleware())

	r.GET("/api/v1/healthz", api.HealthCheck(cfg.Env))
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	router.NewMounter(container).
		Public(r).
		Mount(countries.Mount)

	apiDoc.Init(r, cfg.Env, fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort))
	return r
}
