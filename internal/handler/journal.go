package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ayane-kurokawa/waggle/api/internal/middleware"
	"github.com/ayane-kurokawa/waggle/api/internal/repository"
	"github.com/ayane-kurokawa/waggle/api/internal/timeutil"
)

type JournalHandler struct {
	Dogs    *repository.DogRepo
	Journal *repository.JournalRepo
	Loc     *time.Location
}

func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
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
	entries, err := h.Journal.ListByDog(r.Context(), dog.ID, parseIntOrDefault(r.URL.Query().Get("limit"), 50))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, map[string]any{"entries": entries})
}

func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
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
		EntryDate string  `json:"entry_date"`
		Mood      *string `json:"mood"`
		Body      string  `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if req.Body == "" {
		http.Error(w, "body required", http.StatusBadRequest)
		return
	}
	if req.EntryDate == "" {
		req.EntryDate = timeutil.FormatDate(time.Now().In(h.Loc))
	} else if _, err := timeutil.ParseDate(req.EntryDate, h.Loc); err != nil {
		http.Error(w, "invalid entry_date", http.StatusBadRequest)
		return
	}

	entry, err := h.Journal.Create(r.Context(), dog.ID, req.EntryDate, req.Mood, req.Body)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, entry)
}
