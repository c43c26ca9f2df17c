package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ayane-kurokawa/waggle/api/internal/middleware"
	"github.com/ayane-kurokawa/waggle/api/internal/model"
	"github.com/ayane-kurokawa/waggle/api/internal/repository"
)

type SettingsHandler struct {
	Configs *repository.DiscoveryConfigRepo
}

func (h *SettingsHandler) GetDiscovery(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	cfg, err := h.Configs.Get(r.Context(), userID)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, cfg)
}

func (h *SettingsHandler) PutDiscovery(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req struct {
		Enabled          bool     `json:"enabled"`
		Frequency        string   `json:"frequency"`
		MaxPerRun        int      `json:"max_per_run"`
		Sources          []string `json:"sources"`
		BreedSpecific    bool     `json:"breed_specific"`
		QualityThreshold float64  `json:"quality_threshold"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if req.Frequency != "weekly" && req.Frequency != "monthly" {
		http.Error(w, "frequency must be weekly or monthly", http.StatusBadRequest)
		return
	}
	if req.MaxPerRun < 1 || req.MaxPerRun > 20 {
		http.Error(w, "max_per_run must be between 1 and 20", http.StatusBadRequest)
		return
	}
	if req.QualityThreshold < 0 || req.QualityThreshold > 1 {
		http.Error(w, "quality_threshold must be between 0 and 1", http.StatusBadRequest)
		return
	}

	cfg, err := h.Configs.Put(r.Context(), model.ContentDiscoveryConfig{
		UserID:           userID,
		Enabled:          req.Enabled,
		Frequency:        req.Frequency,
		MaxPerRun:        req.MaxPerRun,
		Sources:          req.Sources,
		BreedSpecific:    req.BreedSpecific,
		QualityThreshold: req.QualityThreshold,
	})
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, cfg)
}
