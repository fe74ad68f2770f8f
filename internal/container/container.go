package container

import (
	"context"
	"fmt"

	"assurscore/adapters/catalog"
	"assurscore/adapters/identity"
	"assurscore/adapters/memory"
	"assurscore/adapters/postgres"
	"assurscore/adapters/postgres/migrations"
	"assurscore/app"
	"assurscore/domain/analysis"
	"assurscore/domain/analysis/strategies"
	"assurscore/internal"
	"assurscore/internal/config"
	"assurscore/ports"

	"github.com/jmoiron/sqlx"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Infrastructure
	DB *sqlx.DB

	// Repositories (data access layer)
	SessionRepo  ports.SessionRepository
	AnalysisRepo ports.AnalysisRepository

	// Collaborator adapters
	Catalog  ports.QuestionCatalog
	Identity ports.IdentityProvider

	// Analysis core
	Registry *analysis.Registry
	Engine   *analysis.Engine

	// Services
	Questionnaire *app.QuestionnaireService
	Analyses      *app.AnalysisService
}

// New creates a dependency container. When db is nil the in-memory
// repositories are wired instead of PostgreSQL.
func New(cfg *config.Config, db *sqlx.DB, logger *internal.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
	}

	if err := c.initRepositories(); err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}
	c.initCore()
	c.initServices()

	return c, nil
}

// initRepositories initializes data access repositories
func (c *Container) initRepositories() error {
	if c.DB == nil {
		c.Logger.Info("no database configured, using in-memory repositories")
		c.SessionRepo = memory.NewSessionRepository()
		c.AnalysisRepo = memory.NewAnalysisRepository()
		return nil
	}

	if err := c.DB.Ping(); err != nil {
		return fmt.Errorf("database connection test failed: %w", err)
	}
	if err := migrations.NewMigrator(c.DB.DB).Up(context.Background()); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	c.SessionRepo = postgres.NewSessionRepository(c.DB)
	c.AnalysisRepo = postgres.NewAnalysisRepository(c.DB)
	return nil
}

// initCore builds the strategy registry and the analysis engine. The
// registry is populated here once and read-only afterwards; no globals.
func (c *Container) initCore() {
	c.Catalog = catalog.New()
	c.Identity = identity.NewHeaderProvider()

	c.Registry = analysis.NewRegistry()
	strategies.RegisterAll(c.Registry)
	c.Engine = analysis.NewEngine(c.Registry, c.Logger.Named("engine"))
}

// initServices wires the application services
func (c *Container) initServices() {
	c.Questionnaire = app.NewQuestionnaireService(c.SessionRepo, c.AnalysisRepo, c.Catalog, c.Engine)
	c.Analyses = app.NewAnalysisService(c.AnalysisRepo, c.Engine)
}

// Shutdown gracefully shuts down all components
func (c *Container) Shutdown(ctx context.Context) error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
