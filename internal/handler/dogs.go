package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ayane-kurokawa/waggle/api/internal/middleware"
	"github.com/ayane-kurokawa/waggle/api/internal/repository"
)

type DogHandler struct {
	Repo     *repository.DogRepo
	QuizRepo *repository.QuizResultRepo
}

func (h *DogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	dogs, err := h.Repo.List(r.Context(), userID)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, map[string]any{"dogs": dogs})
}

func (h *DogHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	dog, err := h.Repo.Get(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	if quiz, err := h.QuizRepo.GetByDog(r.Context(), dog.ID); err == nil {
		dog.QuizResults = quiz
	}
	writeJSON(w, dog)
}

func validActivityLevel(s string) bool {
	switch s {
	case "low", "moderate", "high":
		return true
	}
	return false
}

func (h *DogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req struct {
		Name          string   `json:"name"`
		Breed         string   `json:"breed"`
		AgeYears      int      `json:"age_years"`
		WeightKg      *float64 `json:"weight_kg"`
		ActivityLevel string   `json:"activity_level"`
		SpecialNeeds  *string  `json:"special_needs"`
		PhotoURL      *string  `json:"photo_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	in := repository.DogInput{
		Name:          req.Name,
		Breed:         req.Breed,
		AgeYears:      req.AgeYears,
		WeightKg:      req.WeightKg,
		ActivityLevel: req.ActivityLevel,
		SpecialNeeds:  req.SpecialNeeds,
		PhotoURL:      req.PhotoURL,
	}
	if in.Name == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}
	if in.ActivityLevel == "" {
		in.ActivityLevel = "moderate"
	}
	if !validActivityLevel(in.ActivityLevel) {
		http.Error(w, "invalid activity_level", http.StatusBadRequest)
		return
	}
	if in.AgeYears < 0 || in.AgeYears > 30 {
		http.Error(w, "invalid age", http.StatusBadRequest)
		return
	}
	dog, err := h.Repo.Create(r.Context(), userID, in)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, dog)
}

func (h *DogHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req struct {
		Name          *string  `json:"name"`
		Breed         *string  `json:"breed"`
		AgeYears      *int     `json:"age_years"`
		WeightKg      *float64 `json:"weight_kg"`
		ActivityLevel *string  `json:"activity_level"`
		SpecialNeeds  *string  `json:"special_needs"`
		PhotoURL      *string  `json:"photo_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	in := repository.DogUpdate{
		Name:          req.Name,
		Breed:         req.Breed,
		AgeYears:      req.AgeYears,
		WeightKg:      req.WeightKg,
		ActivityLevel: req.ActivityLevel,
		SpecialNeeds:  req.SpecialNeeds,
		PhotoURL:      req.PhotoURL,
	}
	if in.ActivityLevel != nil && !validActivityLevel(*in.ActivityLevel) {
		http.Error(w, "invalid activity_level", http.StatusBadRequest)
		return
	}
	dog, err := h.Repo.Update(r.Context(), chi.URLParam(r, "id"), userID, in)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, dog)
}

func (h *DogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if err := h.Repo.Delete(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeRepoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
