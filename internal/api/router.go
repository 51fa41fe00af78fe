package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/api/handler"
	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/api/middleware"
	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/domain"
	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/ports"
	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/service"
	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/infrastructure/config"
	mongodb "github.com/jharreldesign/Gideon-Rogue-Productions/internal/infrastructure/db/mongo"
	redisdb "github.com/jharreldesign/Gideon-Rogue-Productions/internal/infrastructure/db/redis"
	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/pkg/token"
)

// routerServices bundles the use-case services behind the route table so the
// wiring can be driven by in-memory implementations as well as the real ones.
type routerServices struct {
	auth      ports.AuthService
	venues    ports.VenueService
	shows     ports.ShowService
	bands     ports.BandService
	readiness echo.HandlerFunc
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	codec := token.NewCodec(cfg.JWTSecret, cfg.JWTTTL)
	cache := redisdb.NewListCache(rdb, cfg.CacheTTL)

	svcs := routerServices{
		auth:      service.NewAuthService(mongodb.NewUserRepository(db), codec, log),
		venues:    service.NewVenueService(mongodb.NewVenueRepository(db), cache, log),
		shows:     service.NewShowService(mongodb.NewShowRepository(db), cache, log),
		bands:     service.NewBandService(mongodb.NewBandRepository(db), cache, log),
		readiness: handler.NewReadinessHandler(db, rdb).Readiness,
	}

	return newRouter(cfg, log, codec, svcs)
}

func newRouter(cfg *config.Config, log zerolog.Logger, codec *token.Codec, svcs routerServices) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowOrigins(),
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("booking"))

	authHandler := handler.NewAuthHandler(svcs.auth)
	venueHandler := handler.NewVenueHandler(svcs.venues)
	showHandler := handler.NewShowHandler(svcs.shows)
	bandHandler := handler.NewBandHandler(svcs.bands)

	authMW := middleware.Auth(codec)
	adminMW := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/signin", authHandler.Signin)
	e.GET("/auth/me", authHandler.Me, authMW)
	e.GET("/auth/users", authHandler.ListUsers, authMW, adminMW)

	// --- Venue routes (reads public, mutations behind the guard) ---
	e.GET("/venues", venueHandler.List)
	e.GET("/venues/:id", venueHandler.Get)
	e.POST("/venues", venueHandler.Create, authMW)
	e.PUT("/venues/:id", venueHandler.Update, authMW)
	e.DELETE("/venues/:id", venueHandler.Delete, authMW)

	// --- Show routes ---
	e.GET("/shows", showHandler.List)
	e.GET("/shows/:id", showHandler.Get)
	e.POST("/shows", showHandler.Create, authMW)
	e.PUT("/shows/:id", showHandler.Update, authMW)
	e.DELETE("/shows/:id", showHandler.Delete, authMW)

	// --- Band routes ---
	e.GET("/bands", bandHandler.List)
	e.GET("/bands/:id", bandHandler.Get)
	e.POST("/bands", bandHandler.Create, authMW)
	e.PUT("/bands/:id", bandHandler.Update, authMW)
	e.DELETE("/bands/:id", bandHandler.Delete, authMW)

	// --- Operational surface ---
	healthHandler := handler.NewHealthHandler()

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", svcs.readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
