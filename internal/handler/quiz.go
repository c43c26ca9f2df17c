package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ayane-kurokawa/waggle/api/internal/catalog"
	"github.com/ayane-kurokawa/waggle/api/internal/middleware"
	"github.com/ayane-kurokawa/waggle/api/internal/planner"
	"github.com/ayane-kurokawa/waggle/api/internal/repository"
)

type QuizHandler struct {
	Dogs    *repository.DogRepo
	Results *repository.QuizResultRepo
}

func (h *QuizHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"questions": catalog.QuizQuestions()})
}

func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	dog, err := h.Dogs.Get(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	var req struct {
		Answers map[string]string `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	results := planner.AnalyzeQuizResults(catalog.QuizQuestions(), req.Answers, catalog.DefaultScoringTables(), time.Now())
	results.DogID = dog.ID
	if err := h.Results.Upsert(r.Context(), results); err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, results)
}

func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	dog, err := h.Dogs.Get(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	results, err := h.Results.GetByDog(r.Context(), dog.ID)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, results)
}
