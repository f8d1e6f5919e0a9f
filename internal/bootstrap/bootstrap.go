package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/marcotte/inscripto/internal/ai"
	appControllers "github.com/marcotte/inscripto/internal/app/controllers"
	appMigrations "github.com/marcotte/inscripto/internal/app/migrations"
	appRepos "github.com/marcotte/inscripto/internal/app/repositories"
	appRoutes "github.com/marcotte/inscripto/internal/app/routes"
	appServices "github.com/marcotte/inscripto/internal/app/services"
	"github.com/marcotte/inscripto/internal/config"
	"github.com/marcotte/inscripto/internal/db"
	appMiddleware "github.com/marcotte/inscripto/internal/middleware"
	"github.com/marcotte/inscripto/internal/pkg/logger"
	"github.com/marcotte/inscripto/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                 *appRepos.Repositories
	AIClient              *ai.Client
	ContextService        *appServices.ContextService
	RegistrationService   *appServices.RegistrationService
	WithdrawalService     *appServices.WithdrawalService
	SearchService         *appServices.SearchService
	RecommendationService *appServices.RecommendationService
	AgentService          *appServices.AgentService
	AgentController       *appControllers.AgentController
	CourseController      *appControllers.CourseController
	StudentController     *appControllers.StudentController
	HealthController      *appControllers.HealthController
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations, and
// seeds the demo catalog.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding is best effort: a partially seeded catalog is still usable.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.AIClient = ai.NewClient(cfg, lgr)

	deps.ContextService = appServices.NewContextService(
		deps.Repos.StudentRepository,
		deps.Repos.EnrollmentRepository,
		lgr,
	)
	deps.RegistrationService = appServices.NewRegistrationService(
		deps.Repos.CourseRepository,
		deps.Repos.CurriculumRepository,
		deps.Repos.OfferingRepository,
		deps.Repos.EnrollmentRepository,
		lgr,
	)
	deps.WithdrawalService = appServices.NewWithdrawalService(deps.Repos.EnrollmentRepository, lgr)
	deps.SearchService = appServices.NewSearchService(
		deps.Repos.CourseRepository,
		deps.Repos.OfferingRepository,
		lgr,
	)
	deps.RecommendationService = appServices.NewRecommendationService(deps.Repos.CurriculumRepository, lgr)
	deps.AgentService = appServices.NewAgentService(
		deps.AIClient,
		deps.ContextService,
		deps.RegistrationService,
		deps.WithdrawalService,
		deps.SearchService,
		deps.RecommendationService,
		lgr,
	)

	deps.AgentController = appControllers.NewAgentController(deps.AgentService)
	deps.CourseController = appControllers.NewCourseController(deps.SearchService)
	deps.StudentController = appControllers.NewStudentController(deps.ContextService)
	deps.HealthController = appControllers.NewHealthController(dbPool, deps.AIClient)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.AgentController,
		deps.CourseController,
		deps.StudentController,
		deps.HealthController,
	)

	return router
}
