package repository

import (
	"context"

	"github.com/ayane-kurokawa/waggle/api/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScheduleRepo struct{ db *pgxpool.Pool }

func NewScheduleRepo(db *pgxpool.Pool) *ScheduleRepo { return &ScheduleRepo{db} }

const scheduleColumns = `id, dog_id, activity_id, scheduled_date, completed, notes,
	completion_notes, reminder, week_number, day_of_week, created_at, updated_at`

func scanSchedule(row interface{ Scan(dest ...any) error }) (*model.ScheduledActivity, error) {
	var s model.ScheduledActivity
	err := row.Scan(&s.ID, &s.DogID, &s.ActivityID, &s.ScheduledDate, &s.Completed,
		&s.Notes, &s.CompletionNotes, &s.Reminder, &s.WeekNumber, &s.DayOfWeek,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScheduleRepo) scanMany(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}) ([]model.ScheduledActivity, error) {
	defer rows.Close()
	var out []model.ScheduledActivity
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// ListByDog returns all schedule entries for a dog, oldest date first.
func (r *ScheduleRepo) ListByDog(ctx context.Context, dogID string) ([]model.ScheduledActivity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+scheduleColumns+`
		FROM scheduled_activities WHERE dog_id = $1
		ORDER BY scheduled_date, created_at`, dogID)
	if err != nil {
		return nil, err
	}
	return r.scanMany(rows)
}

// ListByDogAndRange returns entries with scheduled_date in [from, to] inclusive.
func (r *ScheduleRepo) ListByDogAndRange(ctx context.Context, dogID, from, to string) ([]model.ScheduledActivity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+scheduleColumns+`
		FROM scheduled_activities
		WHERE dog_id = $1 AND scheduled_date >= $2 AND scheduled_date <= $3
		ORDER BY scheduled_date, created_at`, dogID, from, to)
	if err != nil {
		return nil, err
	}
	return r.scanMany(rows)
}

// ListRemindersForDate returns reminder-flagged, uncompleted entries on date.
func (r *ScheduleRepo) ListRemindersForDate(ctx context.Context, date string) ([]model.ScheduledActivity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+scheduleColumns+`
		FROM scheduled_activities
		WHERE scheduled_date = $1 AND reminder = true AND completed = false
		ORDER BY dog_id, created_at`, date)
	if err != nil {
		return nil, err
	}
	return r.scanMany(rows)
}

type ScheduleInput struct {
	ActivityID    string
	ScheduledDate string
	Notes         *string
	Reminder      bool
	WeekNumber    int
	DayOfWeek     int
}

func (r *ScheduleRepo) Create(ctx context.Context, dogID string, in ScheduleInput) (*model.ScheduledActivity, error) {
	s, err := scanSchedule(r.db.QueryRow(ctx, `
		INSERT INTO scheduled_activities
			(dog_id, activity_id, scheduled_date, notes, reminder, week_number, day_of_week)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+scheduleColumns,
		dogID, in.ActivityID, in.ScheduledDate, in.Notes, in.Reminder, in.WeekNumber, in.DayOfWeek,
	))
	if err != nil {
		return nil, mapDBError(err)
	}
	return s, nil
}

// SetCompleted toggles completion and records optional completion notes.
func (r *ScheduleRepo) SetCompleted(ctx context.Context, id, dogID string, completed bool, completionNotes *string) (*model.ScheduledActivity, error) {
	s, err := scanSchedule(r.db.QueryRow(ctx, `
		UPDATE scheduled_activities
		SET completed = $1,
		    completion_notes = CASE WHEN $2::text IS NULL THEN completion_notes ELSE $2 END,
		    updated_at = NOW()
		WHERE id = $3 AND dog_id = $4
		RETURNING `+scheduleColumns,
		completed, completionNotes, id, dogID,
	))
	if err != nil {
		return nil, mapDBError(err)
	}
	return s, nil
}

func (r *ScheduleRepo) Delete(ctx context.Context, id, dogID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM scheduled_activities WHERE id = $1 AND dog_id = $2`, id, dogID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// WeeklyPillarCounts aggregates scheduled/completed per pillar for the range.
// Pillar resolution for library activities happens in the handler (the
// curated catalog lives in code), so this returns per-activity rows.
func (r *ScheduleRepo) CountsByActivity(ctx context.Context, dogID, from, to string) (scheduled map[string]int, completed map[string]int, err error) {
	rows, err := r.db.Query(ctx, `
		SELECT activity_id,
		       COUNT(*)::int,
		       COUNT(*) FILTER (WHERE completed)::int
		FROM scheduled_activities
		WHERE dog_id = $1 AND scheduled_date >= $2 AND scheduled_date <= $3
		GROUP BY activity_id`, dogID, from, to)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	scheduled = map[string]int{}
	completed = map[string]int{}
	for rows.Next() {
		var id string
		var sc, cc int
		if err := rows.Scan(&id, &sc, &cc); err != nil {
			return nil, nil, err
		}
		scheduled[id] = sc
		completed[id] = cc
	}
	return scheduled, completed, rows.Err()
}
