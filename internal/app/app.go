package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/online-shopping/catalog-service/config"
	"github.com/online-shopping/catalog-service/internal/controller"
	"github.com/online-shopping/catalog-service/internal/infrastructure/tracing"
	appmiddleware "github.com/online-shopping/catalog-service/internal/middleware"
	"github.com/online-shopping/catalog-service/internal/repository"
	"github.com/online-shopping/catalog-service/internal/service"
	"github.com/online-shopping/catalog-service/pkg/idgen"
	"github.com/online-shopping/catalog-service/pkg/response"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB        *mongo.Database
	Config    *config.Config
	Publisher service.EventPublisher
	Server    *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	app.Server = e

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	tracer := traceProvider.Tracer("catalog-service")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Empty prefix so metrics aggregate across services without renaming
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(appmiddleware.Logger)

	v1 := e.Group("/v1")
	categoryGroup := v1.Group("/categories")
	apiGroup := v1.Group("/api")

	idGen := idgen.NewGenerator()

	productRepo := repository.CreateNewProductRepository(app.DB)
	categoryRepo := repository.CreateNewCategoryRepository(app.DB)
	userRepo := repository.CreateNewUserRepository(app.DB)

	categorySvc := service.CreateCategoryService(categoryRepo, productRepo, idGen)
	productSvc := service.CreateProductService(productRepo, categoryRepo, idGen, app.Publisher)
	userSvc := service.CreateUserService(userRepo, idGen)

	controller.CreateCategoryController(categoryGroup, categorySvc)
	controller.CreateProductController(apiGroup, productSvc)
	controller.CreateUserController(apiGroup, userSvc)

	v1.GET("/ping", func(c echo.Context) error {
		return response.WriteDataResponse(c, http.StatusOK, "pong", nil)
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
