package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/Thasmi-03/FitFlow-Api/docs"
	"github.com/Thasmi-03/FitFlow-Api/internal/api/handler"
	"github.com/Thasmi-03/FitFlow-Api/internal/api/middleware"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/service"
	"github.com/Thasmi-03/FitFlow-Api/internal/infrastructure/config"
	mongorepo "github.com/Thasmi-03/FitFlow-Api/internal/infrastructure/db/mongo"
	redisrepo "github.com/Thasmi-03/FitFlow-Api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fitflow"))

	// --- Repositories ---
	accountRepo := mongorepo.NewAccountRepository(db)
	clothRepo := mongorepo.NewClothRepository(db)
	wardrobeRepo := mongorepo.NewWardrobeRepository(db)
	occasionRepo := mongorepo.NewOccasionRepository(db)
	paymentRepo := mongorepo.NewPaymentRepository(db)
	weatherCache := redisrepo.NewWeatherCache(rdb)

	// --- Services ---
	codec := service.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(accountRepo, codec, log)
	clothService := service.NewClothService(clothRepo, log)
	wardrobeService := service.NewWardrobeService(wardrobeRepo, log)
	occasionService := service.NewOccasionService(occasionRepo, log)
	paymentService := service.NewPaymentService(paymentRepo, log)
	weatherService := service.NewWeatherService(weatherCache, cfg.WeatherTTL, log)

	// --- Handlers ---
	h := routeHandlers{
		auth:      handler.NewAuthHandler(authService),
		cloth:     handler.NewClothHandler(clothService),
		wardrobe:  handler.NewWardrobeHandler(wardrobeService),
		occasion:  handler.NewOccasionHandler(occasionService),
		payment:   handler.NewPaymentHandler(paymentService),
		weather:   handler.NewWeatherHandler(weatherService),
		health:    handler.NewHealthHandler(),
		readiness: handler.NewReadinessHandler(db, rdb),
	}

	guard := middleware.NewGuard(middleware.Authenticate(codec, accountRepo))
	registerRoutes(e, guard, h)

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

type routeHandlers struct {
	auth      *handler.AuthHandler
	cloth     *handler.ClothHandler
	wardrobe  *handler.WardrobeHandler
	occasion  *handler.OccasionHandler
	payment   *handler.PaymentHandler
	weather   *handler.WeatherHandler
	health    *handler.HealthHandler
	readiness *handler.ReadinessHandler
}

func registerRoutes(e *echo.Echo, guard *middleware.Guard, h routeHandlers) {
	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", h.auth.Register)
	auth.POST("/login", h.auth.Login)
	auth.GET("/profile", h.auth.Profile, guard.Authenticated()...)
	auth.GET("/pending", h.auth.Pending, guard.Roles(domain.RoleAdmin)...)
	auth.PUT("/approve/:id", h.auth.Approve, guard.Roles(domain.RoleAdmin)...)

	// --- Partner catalog ---
	clothes := e.Group("/api/clothes")
	clothes.GET("", h.cloth.List, guard.Public()...)
	clothes.GET("/public", h.cloth.ListPublic, guard.Public()...)
	clothes.GET("/mine", h.cloth.ListMine, guard.Authenticated()...)
	clothes.GET("/suggestions", h.cloth.Suggestions, guard.Roles(domain.RoleStyler, domain.RoleAdmin)...)
	clothes.POST("", h.cloth.Create, guard.Roles(domain.RolePartner, domain.RoleAdmin)...)
	clothes.GET("/:id", h.cloth.Get, guard.Public()...)
	clothes.PUT("/:id", h.cloth.Update, guard.Roles(domain.RolePartner, domain.RoleAdmin)...)
	clothes.DELETE("/:id", h.cloth.Delete, guard.Roles(domain.RolePartner, domain.RoleAdmin)...)

	// --- Styler wardrobe ---
	wardrobe := e.Group("/api/wardrobe", guard.Roles(domain.RoleStyler, domain.RoleAdmin)...)
	wardrobe.GET("", h.wardrobe.List)
	wardrobe.POST("", h.wardrobe.Create)
	wardrobe.GET("/:id", h.wardrobe.Get)
	wardrobe.PUT("/:id", h.wardrobe.Update)
	wardrobe.DELETE("/:id", h.wardrobe.Delete)

	// --- Occasions ---
	occasions := e.Group("/api/occasions", guard.Authenticated()...)
	occasions.GET("", h.occasion.List)
	occasions.POST("", h.occasion.Create)
	occasions.GET("/:id", h.occasion.Get)
	occasions.PUT("/:id", h.occasion.Update)
	occasions.DELETE("/:id", h.occasion.Delete)

	// --- Payments ---
	payments := e.Group("/api/payments", guard.Authenticated()...)
	payments.GET("", h.payment.List)
	payments.POST("", h.payment.Create)
	payments.GET("/:id", h.payment.Get)
	payments.PUT("/:id", h.payment.Update)
	payments.DELETE("/:id", h.payment.Delete)

	// --- Weather cache: open reads, admin writes ---
	weather := e.Group("/api/weather")
	weather.GET("/:location", h.weather.Get, guard.Public()...)
	weather.PUT("/:location", h.weather.Put, guard.Roles(domain.RoleAdmin)...)

	// --- Health probes (no auth required) ---
	e.GET("/health", h.health.Liveness)
	e.GET("/health/ready", h.readiness.Readiness)
}
