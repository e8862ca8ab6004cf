package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/swiftship/ratequote/cmd/docs"
	portsrepo "github.com/swiftship/ratequote/internal/core/ports/repositories"
	"github.com/swiftship/ratequote/internal/core/services"
	"github.com/swiftship/ratequote/internal/handlers"
	"github.com/swiftship/ratequote/internal/middleware"
	"github.com/swiftship/ratequote/internal/repositories/database/pgsql"
	"github.com/swiftship/ratequote/pkg/config"
	"github.com/swiftship/ratequote/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Ratequote Backend API
// @version 1.0
// @description Shipping-rate quotation backend.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	quoteLimiter, err := newQuoteLimiter(cfg.QuoteRateLimit)
	if err != nil {
		logger.Error("Failed to configure rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.GET("/healthz", handlers.GetHome)

	setupAuthRoutes(r, cfg, dbPool)
	setupAPIV1Routes(r, cfg, dbPool, quoteLimiter)
	setupSwaggerRoutes(r, cfg)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations over a temporary
// database/sql connection, compatible with the main pgx pool.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// newQuoteLimiter builds the per-IP limiter guarding the public quote route.
func newQuoteLimiter(formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	return limiter.New(memory.NewStore(), rate), nil
}

func setupAuthRoutes(r *gin.Engine, cfg *config.Config, dbPool *pgxpool.Pool) {
	authService := services.NewAuthService(
		pgsql.NewPgxAdminUserRepository(dbPool),
		cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer,
	)
	authHandler := handlers.NewAuthHandler(authService)

	auth := r.Group("/auth")
	auth.POST("/login", authHandler.Login)
}

func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, dbPool *pgxpool.Pool, quoteLimiter *limiter.Limiter) {
	repos := pgsql.NewRepositoryProvider(dbPool)

	v1 := r.Group("/api/v1")

	addQuoteAPI(v1, repos, quoteLimiter)

	admin := v1.Group("/admin", middleware.AuthMiddleware(cfg.JWTSecret))
	addCountryAPI(admin, repos)
	addReceiverAPI(admin, repos)
	addRateAPI(admin, repos)
}

func addQuoteAPI(v1 *gin.RouterGroup, repos *portsrepo.RepositoryProvider, quoteLimiter *limiter.Limiter) {
	rateTable := services.NewRateTableService(repos.RateRepo)
	quoteService := services.NewQuoteService(
		repos.CountryRepo,
		repos.ReceiverRepo,
		services.NewPackageValidator(),
		services.NewQuoteAggregator(rateTable),
		services.NewContentResolver(repos.ContentRepo),
	)
	quoteHandler := handlers.NewQuoteHandler(quoteService)

	v1.POST("/quote", middleware.RateLimit(quoteLimiter), quoteHandler.ComputeQuote)
}

func addCountryAPI(admin *gin.RouterGroup, repos *portsrepo.RepositoryProvider) {
	countryService := services.NewCountryService(repos.CountryRepo, repos.ContentRepo)
	countryHandler := handlers.NewCountryHandler(countryService)

	countries := admin.Group("/countries")
	{
		countries.POST("", countryHandler.CreateCountry)
		countries.GET("", countryHandler.ListCountries)
		countries.GET("/:code", countryHandler.GetCountry)
		countries.PUT("/:code", countryHandler.UpdateCountry)
	}
}

func addReceiverAPI(admin *gin.RouterGroup, repos *portsrepo.RepositoryProvider) {
	receiverService := services.NewReceiverService(repos.CountryRepo, repos.ReceiverRepo)
	receiverHandler := handlers.NewReceiverHandler(receiverService)

	receivers := admin.Group("/countries/:code/receivers")
	{
		receivers.POST("", receiverHandler.CreateReceiver)
		receivers.GET("", receiverHandler.ListReceivers)
		receivers.PUT("/:receiverID", receiverHandler.UpdateReceiver)
		receivers.DELETE("/:receiverID", receiverHandler.DeleteReceiver)
	}
}

func addRateAPI(admin *gin.RouterGroup, repos *portsrepo.RepositoryProvider) {
	rateService := services.NewRateImportService(repos.CountryRepo, repos.RateRepo)
	rateHandler := handlers.NewRateHandler(rateService)

	rates := admin.Group("/countries/:code/rates")
	{
		rates.GET("", rateHandler.ListRates)
		rates.POST("/import", rateHandler.ImportRates)
	}
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// no swagger in prod
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
