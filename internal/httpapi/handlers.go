package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/andyxwarren/factory-architect-sub002/internal/curriculum"
	"github.com/andyxwarren/factory-architect-sub002/internal/engine"
	"github.com/andyxwarren/factory-architect-sub002/internal/question"
	"github.com/andyxwarren/factory-architect-sub002/internal/store"
)

// maxBodyBytes bounds request bodies; generation requests are tiny.
const maxBodyBytes = 1 << 20

// handleGenerate serves POST /v1/questions. The body is checked
// against the request schema before it reaches the engine. A quantity
// above one returns the batch shape with its success rate; otherwise a
// single question is returned.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "read body: " + err.Error()})
		return
	}
	if err := validateGenerationBody(raw); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	var req engine.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if req.Quantity > 1 {
		result, err := s.engine.GenerateBatch(req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
		return
	}

	q, err := s.engine.GenerateQuestion(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]*question.Definition{"question": q})
}

// handleSuggestions serves GET /v1/suggestions, ranking model ids for
// a curriculum area and year as a hint for model selection upstream of
// generation.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	area := curriculum.Area(r.URL.Query().Get("area"))
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < curriculum.MinYear || year > curriculum.MaxYear {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "year must be 1-6"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"area":      string(area),
		"year":      year,
		"model_ids": curriculum.SuggestModels(area, year),
	})
}

// handleModels serves GET /v1/models.
func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"models": s.engine.Models()})
}

// handleFormats serves GET /v1/formats.
func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"formats": s.engine.Formats()})
}

// handleLevels serves GET /v1/levels/{model}.
func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	modelID := chi.URLParam(r, "model")
	levels, err := s.engine.Levels(modelID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"model_id": modelID, "levels": levels})
}

// handleSaveQuestion serves POST /admin/questions, persisting one
// generated question as a draft for review.
func (s *Server) handleSaveQuestion(w http.ResponseWriter, r *http.Request) {
	var def question.Definition
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&def); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if def.Text == "" || def.Solution.Answer == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "question text and answer are required"})
		return
	}
	saved, err := s.store.Save(r.Context(), &def)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

// handleSetStatus serves the approve and reject routes.
func (s *Server) handleSetStatus(status store.Status) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := s.store.SetStatus(r.Context(), id, status); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": string(status)})
	}
}

// handleListQuestions serves GET /admin/questions with an optional
// status filter.
func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	status := store.Status(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown status filter"})
		return
	}
	list, err := s.store.List(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}
	if list == nil {
		list = []*store.StoredQuestion{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"questions": list})
}
