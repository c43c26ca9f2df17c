package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ayane-kurokawa/waggle/api/internal/middleware"
	"github.com/ayane-kurokawa/waggle/api/internal/model"
	"github.com/ayane-kurokawa/waggle/api/internal/observability"
	"github.com/ayane-kurokawa/waggle/api/internal/planner"
	"github.com/ayane-kurokawa/waggle/api/internal/repository"
	"github.com/ayane-kurokawa/waggle/api/internal/service"
	"github.com/ayane-kurokawa/waggle/api/internal/timeutil"
)

type ScheduleHandler struct {
	Dogs      *repository.DogRepo
	Schedules *repository.ScheduleRepo
	Streaks   *repository.StreakRepo
	Publisher *service.EventPublisher
	Loc       *time.Location
}

// ownedDog resolves the dog in the URL and enforces ownership.
func (h *ScheduleHandler) ownedDog(w http.ResponseWriter, r *http.Request) *model.Dog {
	userID := middleware.GetUserID(r)
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return nil
	}
	dog, err := h.Dogs.Get(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		writeRepoError(w, err)
		return nil
	}
	return dog
}

func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	dog := h.ownedDog(w, r)
	if dog == nil {
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
	entries, err := h.Schedules.ListByDogAndRange(r.Context(), dog.ID, from, to)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, map[string]any{
		"year":       year,
		"week":       week,
		"week_start": from,
		"entries":    entries,
	})
}

func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	dog := h.ownedDog(w, r)
	if dog == nil {
		return
	}

	var req struct {
		ActivityID    string  `json:"activity_id"`
		ScheduledDate string  `json:"scheduled_date"`
		Notes         *string `json:"notes"`
		Reminder      bool    `json:"reminder"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	now := time.Now().In(h.Loc)
	candidate := model.ScheduledActivity{
		DogID:         dog.ID,
		ActivityID:    req.ActivityID,
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
		Reminder:      req.Reminder,
	}
	result := planner.ValidateScheduledActivity(candidate, dog, now, h.Loc)
	if !result.Valid {
		w.WriteHeader(http.StatusUnprocessableEntity)
		writeJSON(w, map[string]any{"validation": result})
		return
	}

	existing, err := h.Schedules.ListByDog(r.Context(), dog.ID)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	conflict := planner.ComprehensiveCheck(candidate, existing, planner.DefaultMaxPerDay)
	if conflict.Duplicate {
		w.WriteHeader(http.StatusConflict)
		writeJSON(w, map[string]any{"conflict": conflict})
		return
	}

	day, _ := timeutil.ParseDate(req.ScheduledDate, h.Loc)
	entry, err := h.Schedules.Create(r.Context(), dog.ID, repository.ScheduleInput{
		ActivityID:    req.ActivityID,
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
		Reminder:      req.Reminder,
		WeekNumber:    timeutil.ISOWeek(day),
		DayOfWeek:     int(day.Weekday()),
	})
	if err != nil {
		writeRepoError(w, err)
		return
	}
	observability.RecordScheduleWrite("create")
	h.Publisher.SendScheduleCreated(r.Context(), entry.ID, dog.ID, entry.ScheduledDate)

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, map[string]any{"schedule": entry, "warnings": result.Warnings})
}

func (h *ScheduleHandler) Complete(w http.ResponseWriter, r *http.Request) {
	dog := h.ownedDog(w, r)
	if dog == nil {
		return
	}

	var req struct {
		Completed       bool    `json:"completed"`
		CompletionNotes *string `json:"completion_notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	entry, err := h.Schedules.SetCompleted(r.Context(), chi.URLParam(r, "scheduleID"), dog.ID, req.Completed, req.CompletionNotes)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	observability.RecordScheduleWrite("complete")

	if req.Completed {
		if day, err := timeutil.ParseDate(entry.ScheduledDate, h.Loc); err == nil {
			if err := h.Streaks.IncrementCompleted(r.Context(), dog.ID, day, 1); err != nil {
				log.Printf("streak update failed for dog %s: %v", dog.ID, err)
			}
		}
	}
	writeJSON(w, entry)
}

func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	dog := h.ownedDog(w, r)
	if dog == nil {
		return
	}
	if err := h.Schedules.Delete(r.Context(), chi.URLParam(r, "scheduleID"), dog.ID); err != nil {
		writeRepoError(w, err)
		return
	}
	observability.RecordScheduleWrite("delete")
	w.WriteHeader(http.StatusNoContent)
}
