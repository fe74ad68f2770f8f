// Package ui is the HTTP surface of the service: routing, identity
// extraction and JSON encoding. All domain decisions live below the app
// services; nothing here mutates state directly.
package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"assurscore/app"
	"assurscore/internal"
	"assurscore/ports"
)

// App represents the HTTP application
type App struct {
	router        *chi.Mux
	questionnaire *app.QuestionnaireService
	analyses      *app.AnalysisService
	identity      ports.IdentityProvider
	logger        *internal.Logger
}

// NewApp creates the HTTP application and mounts all routes
func NewApp(
	questionnaire *app.QuestionnaireService,
	analyses *app.AnalysisService,
	identity ports.IdentityProvider,
	logger *internal.Logger,
) *App {
	a := &App{
		router:        chi.NewRouter(),
		questionnaire: questionnaire,
		analyses:      analyses,
		identity:      identity,
		logger:        logger.Named("http"),
	}
	a.setupRoutes()
	return a
}

func (a *App) setupRoutes() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
	a.router.Use(a.withIdentity)

	a.router.Get("/healthz", a.handleHealth)

	a.router.Route("/api/questionnaire", func(r chi.Router) {
		r.Post("/start", a.handleStart)
		r.Get("/{sessionID}", a.handleResume)
		r.Post("/{sessionID}/next", a.handleNext)
		r.Post("/{sessionID}/prev", a.handlePrev)
		r.Post("/{sessionID}/complete", a.handleComplete)
		r.Post("/{sessionID}/draft", a.handleSaveDraft)
		r.Post("/{sessionID}/abandon", a.handleAbandon)
	})

	a.router.Route("/api/analysis", func(r chi.Router) {
		r.Get("/{analysisID}", a.handleGetAnalysis)
		r.Get("/by-session/{sessionID}", a.handleGetAnalysisBySession)
		r.Post("/{analysisID}/unlock", a.handleUnlock)
		r.Post("/{analysisID}/claim", a.handleClaim)
	})

	a.router.Get("/api/stats/summary", a.handleStatsSummary)
}

// Handler returns the root http.Handler
func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
