package rest

import (
	"net/http"

	"musclelog-backend/application/services"
	"musclelog-backend/interfaces/http/rest/handlers"
	"musclelog-backend/interfaces/http/rest/middleware"
	"musclelog-backend/pkg/auth"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	todos     *services.TodoService
	relations *services.RelationService
	timeline  *services.TimelineService
	analytics *services.AnalyticsService
	verifier  auth.Verifier
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	todos *services.TodoService,
	relations *services.RelationService,
	timeline *services.TimelineService,
	analytics *services.AnalyticsService,
	verifier auth.Verifier,
	logger *zap.Logger,
) *Router {
	return &Router{
		todos:     todos,
		relations: relations,
		timeline:  timeline,
		analytics: analytics,
		verifier:  verifier,
		logger:    logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	// The CORS layer answers preflight OPTIONS requests for every route.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Amz-Date", "X-Api-Key", "X-Amz-Security-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	router.Get("/health", rt.healthCheck)

	// Public chart data, no token required
	analyticsHandler := handlers.NewAnalyticsHandler(rt.analytics, rt.logger)
	router.Get("/graph-data/{user_name}", analyticsHandler.UserChart)

	// Authenticated API
	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.verifier, rt.logger))

		todoHandler := handlers.NewTodoHandler(rt.todos, rt.logger)
		r.Route("/todos", func(r chi.Router) {
			r.Post("/", todoHandler.Create)
			r.Put("/", todoHandler.Update)
			r.Post("/complete", todoHandler.Complete)
			r.Get("/", todoHandler.Overview)
		})

		relationHandler := handlers.NewRelationHandler(rt.relations, rt.logger)
		r.Route("/follows", func(r chi.Router) {
			r.Post("/", relationHandler.Follow)
			r.Delete("/{id}", relationHandler.Unfollow)
			r.Get("/", relationHandler.ListFollowing)
		})

		timelineHandler := handlers.NewTimelineHandler(rt.timeline, rt.logger)
		r.Get("/timelines", timelineHandler.Timeline)

		r.Post("/menus/analyze", analyticsHandler.AnalyzeMenu)
	})

	return router
}

// healthCheck handles GET /health
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
