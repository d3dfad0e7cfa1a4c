package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"nimbus/internal/assistant"
	"nimbus/internal/auth"
	"nimbus/internal/repository"
)

// Server is the HTTP API for the Nimbus productivity app: task,
// calendar and goal storage plus the AI-assisted scheduling endpoints.
type Server struct {
	assistant assistant.Service
	resolver  auth.Resolver
	tasks     repository.TaskRepo
	events    repository.EventRepo
	goals     repository.GoalRepo
	log       *zap.Logger
	router    chi.Router
}

// NewServer wires the API routes. The session resolver guards every
// route except /health and /api/chat.
func NewServer(
	svc assistant.Service,
	resolver auth.Resolver,
	tasks repository.TaskRepo,
	events repository.EventRepo,
	goals repository.GoalRepo,
	log *zap.Logger,
) *Server {
	s := &Server{
		assistant: svc,
		resolver:  resolver,
		tasks:     tasks,
		events:    events,
		goals:     goals,
		log:       log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)

	// General chat carries no user data and performs no auth check.
	r.Post("/api/chat", s.handleChat)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(s.resolver))

		r.Post("/api/schedule", s.handleSchedule)
		r.Post("/api/conflicts/resolve", s.handleResolveConflict)

		r.Route("/api/tasks", func(r chi.Router) {
			r.Get("/", s.handleListTasks)
			r.Post("/", s.handleCreateTask)
			r.Put("/{taskID}", s.handleUpdateTask)
			r.Delete("/{taskID}", s.handleDeleteTask)
			r.Post("/prioritize", s.handlePrioritizeTasks)
		})

		r.Route("/api/events", func(r chi.Router) {
			r.Get("/", s.handleListEvents)
			r.Get("/upcoming", s.handleUpcomingEvents)
			r.Post("/", s.handleCreateEvent)
			r.Put("/{eventID}", s.handleUpdateEvent)
			r.Delete("/{eventID}", s.handleDeleteEvent)
		})

		r.Route("/api/goals", func(r chi.Router) {
			r.Get("/", s.handleListGoals)
			r.Post("/", s.handleCreateGoal)
			r.Put("/{goalID}", s.handleUpdateGoal)
			r.Delete("/{goalID}", s.handleDeleteGoal)
		})
	})

	s.router = r
}

// Handler returns the root http.Handler for the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
