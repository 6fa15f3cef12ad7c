package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/progedu/secretboard/internal/config"
	"github.com/progedu/secretboard/internal/infrastructure/database"
	"github.com/progedu/secretboard/internal/infrastructure/repository"
	"github.com/progedu/secretboard/internal/present/rest"
	boardmw "github.com/progedu/secretboard/internal/present/rest/middleware"
	"github.com/progedu/secretboard/internal/present/rest/view"
	"github.com/progedu/secretboard/internal/service"
	"github.com/progedu/secretboard/internal/usecase"
)

func main() {
	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	conf, err := config.Load(configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		panic("failed to connect database")
	}

	err = database.MigratePostgres(db)
	if err != nil {
		panic("failed to migrate database")
	}

	rdb := database.NewRedis(conf.Server.RedisAddr, "", conf.Server.RedisDB)
	mc := database.NewMemcached(conf.Server.MemcachedAddr)

	postRepo := repository.NewCachedPostRepository(repository.NewPostRepository(db), mc)
	signal := service.NewSignalService(rdb)
	analytics := service.NewAnalyticsService(rdb)
	postUC := usecase.NewPostUsecase(postRepo, signal)

	renderer, err := view.NewRenderer()
	if err != nil {
		panic("failed to parse feed template: " + err.Error())
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	if conf.Server.EnableTrace {
		cleanup, err := setupTrace(conf.Server.TraceEndpoint)
		if err != nil {
			panic("failed to set up tracing: " + err.Error())
		}
		defer cleanup()
		e.Use(otelecho.Middleware("secretboard"))
	}

	e.Use(boardmw.NewIdentityMiddleware(conf.Board.AdminUsers).Resolve)
	e.Use(boardmw.NewTrackingMiddleware().Track)

	h := rest.NewHandler(postUC, renderer, analytics, signal)
	h.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(conf.Server.Listen))
}

func setupTrace(endpoint string) (func(), error) {
	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(provider)

	return func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			slog.Error("failed to shut down trace provider",
				slog.String("error", err.Error()),
				slog.String("module", "main"),
			)
		}
	}, nil
}
