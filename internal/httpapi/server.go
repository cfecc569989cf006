// Package httpapi exposes the generation engine and review store over
// HTTP. It owns wire-level concerns only: schema validation, status
// mapping, auth. Generation semantics live in the engine.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/andyxwarren/factory-architect-sub002/internal/config"
	"github.com/andyxwarren/factory-architect-sub002/internal/engine"
	"github.com/andyxwarren/factory-architect-sub002/internal/format"
	"github.com/andyxwarren/factory-architect-sub002/internal/store"
)

// Server routes HTTP traffic to the engine and store.
type Server struct {
	engine *engine.Orchestrator
	store  *store.Store
	auth   *authService
}

// NewServer wires the API over an engine and a question store.
func NewServer(cfg config.Config, eng *engine.Orchestrator, st *store.Store) *Server {
	return &Server{
		engine: eng,
		store:  st,
		auth:   newAuthService(cfg.JWTSecret, cfg.AdminUser, cfg.AdminPass),
	}
}

// Router builds the chi handler tree.
func (s *Server) Router(corsOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", s.auth.loginHandler)

	r.Route("/v1", func(vr chi.Router) {
		vr.Post("/questions", s.handleGenerate)
		vr.Get("/models", s.handleModels)
		vr.Get("/formats", s.handleFormats)
		vr.Get("/levels/{model}", s.handleLevels)
		vr.Get("/suggestions", s.handleSuggestions)
	})

	r.Group(func(ar chi.Router) {
		ar.Use(s.auth.jwtMiddleware)
		ar.Post("/admin/questions", s.handleSaveQuestion)
		ar.Get("/admin/questions", s.handleListQuestions)
		ar.Post("/admin/questions/{id}/approve", s.handleSetStatus(store.StatusApproved))
		ar.Post("/admin/questions/{id}/reject", s.handleSetStatus(store.StatusRejected))
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps engine and store error kinds onto HTTP statuses:
// bad requests get 400, unimplementable pairings 422 with a
// machine-readable reason, missing rows 404.
func writeError(w http.ResponseWriter, err error) {
	var verr *format.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": verr.Message,
			"field": verr.Field,
		})
		return
	}
	var uerr *format.UnsupportedCombinationError
	if errors.As(err, &uerr) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error":    uerr.Error(),
			"reason":   uerr.Reason,
			"model_id": uerr.ModelID,
			"format":   uerr.Format,
		})
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
