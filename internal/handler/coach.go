package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ayane-kurokawa/waggle/api/internal/middleware"
	"github.com/ayane-kurokawa/waggle/api/internal/repository"
	"github.com/ayane-kurokawa/waggle/api/internal/service"
)

type CoachHandler struct {
	Dogs    *repository.DogRepo
	Results *repository.QuizResultRepo
	Coach   *service.CoachClient
}

// Chat proxies a coaching conversation to the worker, enriched with the
// dog's profile and quiz results so replies can be breed and pillar aware.
func (h *CoachHandler) Chat(w http.ResponseWriter, r *http.Request) {
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
		Message string                     `json:"message"`
		History []service.CoachChatMessage `json:"history"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		http.Error(w, "message required", http.StatusBadRequest)
		return
	}

	chat := service.CoachChatRequest{
		Message: req.Message,
		History: req.History,
		Dog:     dog,
	}
	if results, err := h.Results.GetByDog(r.Context(), dog.ID); err == nil {
		chat.QuizResults = results
	}

	resp, err := h.Coach.Chat(r.Context(), chat)
	if err != nil {
		http.Error(w, "coach unavailable", http.StatusBadGateway)
		return
	}
	writeJSON(w, resp)
}
