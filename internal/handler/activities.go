package handler

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ayane-kurokawa/waggle/api/internal/catalog"
	"github.com/ayane-kurokawa/waggle/api/internal/middleware"
	"github.com/ayane-kurokawa/waggle/api/internal/model"
	"github.com/ayane-kurokawa/waggle/api/internal/observability"
	"github.com/ayane-kurokawa/waggle/api/internal/planner"
	"github.com/ayane-kurokawa/waggle/api/internal/repository"
	"github.com/ayane-kurokawa/waggle/api/internal/service"
)

const (
	activityCacheTTL = 10 * time.Minute
	defaultListLimit = 50
)

type ActivityHandler struct {
	Dogs       *repository.DogRepo
	Discovered *repository.DiscoveredActivityRepo
	Quiz       *repository.QuizResultRepo
	Cache      service.JSONCache
	Discoverer *service.Discoverer
	Publisher  *service.EventPublisher
	Loc        *time.Location
}

// merged returns the curated library plus the user's approved discoveries.
// The unfiltered merge is cached per user.
func (h *ActivityHandler) merged(r *http.Request, userID string) ([]model.Activity, error) {
	cacheKey := "activities:" + userID

	var cached []model.Activity
	if hit, err := h.Cache.GetJSON(r.Context(), cacheKey, &cached); err == nil && hit {
		observability.RecordCacheLookup("hit")
		return cached, nil
	}
	observability.RecordCacheLookup("miss")

	discovered, err := h.Discovered.ListApproved(r.Context(), userID)
	if err != nil {
		return nil, err
	}
	merged := append(catalog.Library(), discovered...)
	h.Cache.SetJSON(r.Context(), cacheKey, merged, activityCacheTTL)
	return merged, nil
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	q := r.URL.Query()

	if p := q.Get("pillar"); p != "" && p != "all" && !model.ValidPillar(p) {
		http.Error(w, "invalid pillar", http.StatusBadRequest)
		return
	}
	if d := q.Get("difficulty"); d != "" && d != "all" && !model.ValidDifficulty(d) {
		http.Error(w, "invalid difficulty", http.StatusBadRequest)
		return
	}

	activities, err := h.merged(r, userID)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	activities = planner.FilterActivities(activities, planner.Filters{
		Query:      q.Get("q"),
		Pillar:     q.Get("pillar"),
		Difficulty: q.Get("difficulty"),
	})

	if dogID := q.Get("dog_id"); dogID != "" {
		dog, err := h.Dogs.Get(r.Context(), dogID, userID)
		if err != nil {
			writeRepoError(w, err)
			return
		}
		if quiz, err := h.Quiz.GetByDog(r.Context(), dog.ID); err == nil {
			dog.QuizResults = quiz
		}
		limit := parseIntOrDefault(q.Get("limit"), defaultListLimit)
		activities = planner.PersonalizedActivities(activities, dog, limit)
	} else if limit := parseIntOrDefault(q.Get("limit"), defaultListLimit); limit > 0 && limit < len(activities) {
		activities = activities[:limit]
	}

	if q.Get("shuffle") == "true" {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		activities = planner.WeightedShuffle(activities, rng)
	}

	writeJSON(w, map[string]any{"activities": activities, "total": len(activities)})
}

// Weights exposes the shuffle weight of every activity, for tuning.
func (h *ActivityHandler) Weights(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	activities, err := h.merged(r, userID)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, map[string]any{"weights": planner.ActivityWeights(activities)})
}

// Discover runs content discovery on demand against a single feed URL.
func (h *ActivityHandler) Discover(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req struct {
		URL   string `json:"url"`
		Breed string `json:"breed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		http.Error(w, "url required", http.StatusBadRequest)
		return
	}

	candidates, err := h.Discoverer.FetchCandidates(r.Context(), req.URL, req.Breed, time.Now().In(h.Loc))
	if err != nil {
		http.Error(w, "feed fetch failed", http.StatusBadGateway)
		return
	}
	observability.RecordDiscoveryRun()

	created := 0
	for _, c := range candidates {
		id := uuid.NewString()
		ok, err := h.Discovered.Upsert(r.Context(), repository.DiscoveredActivityInput{
			ID:              id,
			UserID:          userID,
			Title:           c.Title,
			Pillar:          c.Pillar,
			Difficulty:      c.Difficulty,
			DurationMinutes: c.DurationMinutes,
			Tags:            c.Tags,
			SourceURL:       c.SourceURL,
			QualityScore:    c.QualityScore,
			Approval:        model.ApprovalPending,
		})
		if err != nil {
			writeRepoError(w, err)
			return
		}
		if ok {
			created++
			observability.RecordDiscoveredActivity(string(model.ApprovalPending))
			h.Publisher.SendActivityDiscovered(r.Context(), id, userID, c.SourceURL)
		}
	}

	h.Cache.Invalidate(r.Context(), "activities:"+userID)
	writeJSON(w, map[string]any{"fetched": len(candidates), "created": created})
}

// Pending lists the user's discovered activities awaiting review.
func (h *ActivityHandler) Pending(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	pending, err := h.Discovered.ListPending(r.Context(), userID)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, map[string]any{"activities": pending})
}

// SetApproval approves or rejects a discovered activity.
func (h *ActivityHandler) SetApproval(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req struct {
		Approval string `json:"approval"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	approval := model.ApprovalStatus(req.Approval)
	if approval != model.ApprovalApproved && approval != model.ApprovalRejected {
		http.Error(w, "approval must be approved or rejected", http.StatusBadRequest)
		return
	}

	a, err := h.Discovered.SetApproval(r.Context(), chi.URLParam(r, "id"), userID, approval)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	h.Cache.Invalidate(r.Context(), "activities:"+userID)
	writeJSON(w, a)
}
