package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kamronbek003/sellerProject/config"
	"github.com/kamronbek003/sellerProject/internal/controller"
	kafkaInfra "github.com/kamronbek003/sellerProject/internal/infrastructure/messagequeue/kafka"
	"github.com/kamronbek003/sellerProject/internal/infrastructure/telegram"
	"github.com/kamronbek003/sellerProject/internal/infrastructure/tracing"
	appMiddleware "github.com/kamronbek003/sellerProject/internal/middleware"
	"github.com/kamronbek003/sellerProject/internal/repository"
	"github.com/kamronbek003/sellerProject/internal/service"
	"github.com/kamronbek003/sellerProject/pkg/response"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type App struct {
	DB     *sqlx.DB
	Config *config.Config
	Server *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if traceProvider == nil {
			return
		}
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	if traceProvider != nil {
		tracer := traceProvider.Tracer("seller-service")

		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
				defer span.End()

				req := c.Request()
				c.SetRequest(req.WithContext(ctx))

				return next(c)
			}
		})
	}

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	g := e.Group("/api/v1")

	g.Use(appMiddleware.Logger)

	var publisher service.EventPublisher
	if app.Config.KafkaConfig.BrokerAddress != "" {
		producer, err := kafkaInfra.CreateKafkaProducer(app.Config)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to connect to Kafka, catalog events disabled")
		} else {
			defer producer.Close()
			publisher = producer
		}
	}

	sellerRepo := repository.CreateSellerRepository(app.DB)
	categoryRepo := repository.CreateCategoryRepository(app.DB)
	productRepo := repository.CreateProductRepository(app.DB)

	authSvc := service.CreateAuthService(sellerRepo, *app.Config, telegram.CreateVerifier())
	categorySvc := service.CreateCategoryService(categoryRepo)
	productSvc := service.CreateProductService(productRepo, categoryRepo, publisher)

	isLoggedIn := appMiddleware.CreateAuthMiddleware(sellerRepo, app.Config.JWTSecret)

	controller.CreateAuthController(g, authSvc, isLoggedIn)
	controller.CreateCategoryController(g, categorySvc, isLoggedIn)
	controller.CreateProductController(g, productSvc, isLoggedIn)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	app.Server = e

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
