package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thanha17/online-shop/config"
	"github.com/thanha17/online-shop/internal/controller"
	"github.com/thanha17/online-shop/internal/infrastructure/circuitbreaker"
	"github.com/thanha17/online-shop/internal/infrastructure/tracing"
	"github.com/thanha17/online-shop/internal/middleware"
	"github.com/thanha17/online-shop/internal/repository"
	"github.com/thanha17/online-shop/internal/service"
	"github.com/thanha17/online-shop/pkg/response"
)

type App struct {
	DB     *mongo.Database
	ES     *elasticsearch.Client
	Config *config.Config
	Server *echo.Echo
}

// Start wires every layer and blocks serving HTTP until shutdown. The ES
// client may be nil; search then runs against the primary store only.
func (app *App) Start() error {
	e := echo.New()
	e.HideBanner = true
	app.Server = e

	if app.Config.TracingConfig.CollectorHost != "" {
		traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize tracing")
		} else {
			defer func() {
				if err := traceProvider.Shutdown(context.Background()); err != nil {
					log.Error().Err(err).Msg("Failed to shutdown tracing")
				}
			}()

			tracer := traceProvider.Tracer("online-shop")
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
	}

	e.Use(echoprometheus.NewMiddleware(""))

	if app.Config.MetricsPort != "" {
		go func() {
			metrics := echo.New()
			metrics.HideBanner = true
			metrics.GET("/metrics", echoprometheus.NewHandler())
			if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("Failed to start metrics server")
			}
		}()
	}

	g := e.Group("/v1/api")
	g.Use(middleware.Logger)

	isLoggedIn := middleware.IsLoggedIn(app.Config.JWTSecret)
	optionalAuth := middleware.OptionalAuth(app.Config.JWTSecret)

	productRepo := repository.CreateNewProductRepository(app.DB)
	userRepo := repository.CreateNewUserRepository(app.DB)
	cartRepo := repository.CreateNewCartRepository(app.DB)
	orderRepo := repository.CreateNewOrderRepository(app.DB)
	commentRepo := repository.CreateNewCommentRepository(app.DB)

	var elasticSearchRepo repository.ElasticSearchProductRepository
	if app.ES != nil {
		breaker := circuitbreaker.CreateCircuitBreaker("elasticsearch")
		elasticSearchRepo = repository.CreateNewElasticSearchRepository(app.ES, breaker)
	}

	userSvc := service.CreateUserService(userRepo, productRepo, *app.Config)
	productSvc := service.CreateProductService(productRepo, elasticSearchRepo, userRepo, *app.Config)
	cartSvc := service.CreateCartService(cartRepo, productRepo)
	orderSvc := service.CreateOrderService(orderRepo, productRepo)
	commentSvc := service.CreateCommentService(commentRepo, productRepo)

	controller.CreateUserController(g, userSvc, isLoggedIn)
	controller.CreateProductController(g, productSvc, isLoggedIn, optionalAuth)
	controller.CreateCartController(g, cartSvc, isLoggedIn)
	controller.CreateOrderController(g, orderSvc, isLoggedIn)
	controller.CreateCommentController(g, commentSvc, isLoggedIn)

	g.GET("/", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello world api", nil)
	})

	return e.Start(fmt.Sprintf(":%s", app.Config.ServicePort))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
