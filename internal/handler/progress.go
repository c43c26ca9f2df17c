package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ayane-kurokawa/waggle/api/internal/catalog"
	"github.com/ayane-kurokawa/waggle/api/internal/middleware"
	"github.com/ayane-kurokawa/waggle/api/internal/model"
	"github.com/ayane-kurokawa/waggle/api/internal/repository"
	"github.com/ayane-kurokawa/waggle/api/internal/timeutil"
)

type ProgressHandler struct {
	Dogs       *repository.DogRepo
	Schedules  *repository.ScheduleRepo
	Discovered *repository.DiscoveredActivityRepo
	Streaks    *repository.StreakRepo
	Loc        *time.Location
}

// pillarIndex maps every activity the user can schedule to its pillar.
func (h *ProgressHandler) pillarIndex(r *http.Request, userID string) (map[string]model.Pillar, error) {
	index := map[string]model.Pillar{}
	for _, a := range catalog.Library() {
		index[a.ID] = a.Pillar
	}
	approved, err := h.Discovered.ListApproved(r.Context(), userID)
	if err != nil {
		return nil, err
	}
	pending, err := h.Discovered.ListPending(r.Context(), userID)
	if err != nil {
		return nil, err
	}
	for _, a := range append(approved, pending...) {
		index[a.ID] = a.Pillar
	}
	return index, nil
}

func (h *ProgressHandler) Weekly(w http.ResponseWriter, r *http.Request) {
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

	now := time.Now().In(h.Loc)
	year, week := timeutil.ISOWeekYear(now)
	year = parseIntOrDefault(r.URL.Query().Get("year"), year)
	week = parseIntOrDefault(r.URL.Query().Get("week"), week)
	if week < 1 || week > 53 {
		http.Error(w, "week out of range", http.StatusBadRequest)
		return
	}

	monday := timeutil.MondayOfISOWeek(year, week, h.Loc)
	from := timeutil.FormatDate(monday)
	to := timeutil.FormatDate(monday.AddDate(0, 0, 6))

	scheduled, completed, err := h.Schedules.CountsByActivity(r.Context(), dog.ID, from, to)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	index, err := h.pillarIndex(r, userID)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	progress := model.WeeklyProgress{
		DogID:     dog.ID,
		Year:      year,
		Week:      week,
		WeekStart: from,
	}
	byPillar := map[model.Pillar]*model.PillarProgress{}
	for _, p := range model.Pillars {
		byPillar[p] = &model.PillarProgress{Pillar: p}
	}
	for activityID, n := range scheduled {
		progress.Scheduled += n
		if p, ok := index[activityID]; ok {
			byPillar[p].Scheduled += n
		}
	}
	for activityID, n := range completed {
		progress.Completed += n
		if p, ok := index[activityID]; ok {
			byPillar[p].Completed += n
		}
	}
	if progress.Scheduled > 0 {
		progress.CompletionRate = float64(progress.Completed) / float64(progress.Scheduled)
	}
	for _, p := range model.Pillars {
		progress.Pillars = append(progress.Pillars, *byPillar[p])
	}

	if streak, err := h.Streaks.LatestStreakDays(r.Context(), dog.ID, timeutil.FormatDate(now)); err == nil {
		progress.StreakDays = streak
	}

	writeJSON(w, progress)
}
