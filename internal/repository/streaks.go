package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StreakRepo struct{ db *pgxpool.Pool }

func NewStreakRepo(db *pgxpool.Pool) *StreakRepo { return &StreakRepo{db: db} }

func (r *StreakRepo) GetByDogAndDate(ctx context.Context, dogID, date string) (completedCount int, streakDays int, isCompleted bool, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT completed_count, streak_days, is_completed
		FROM enrichment_streaks
		WHERE dog_id = $1 AND streak_date = $2`,
		dogID, date,
	).Scan(&completedCount, &streakDays, &isCompleted)
	if err != nil {
		return 0, 0, false, mapDBError(err)
	}
	return completedCount, streakDays, isCompleted, nil
}

// IncrementCompleted bumps the dog's completion count for the day. A day
// counts toward the streak once minPerDay activities are completed; the
// streak extends when the previous day was also completed.
func (r *StreakRepo) IncrementCompleted(ctx context.Context, dogID string, date time.Time, minPerDay int) error {
	if minPerDay <= 0 {
		minPerDay = 1
	}
	dateStr := date.Format("2006-01-02")
	prevDateStr := date.AddDate(0, 0, -1).Format("2006-01-02")
	_, err := r.db.Exec(ctx, `
		WITH prev AS (
			SELECT streak_days, is_completed
			FROM enrichment_streaks
			WHERE dog_id = $1 AND streak_date = $2
		)
		INSERT INTO enrichment_streaks (dog_id, streak_date, completed_count, streak_days, is_completed)
		VALUES (
		  $1,
		  $3,
		  1,
		  CASE
		    WHEN 1 >= $4 THEN
		      CASE
		        WHEN EXISTS (SELECT 1 FROM prev WHERE is_completed = true)
		          THEN COALESCE((SELECT streak_days FROM prev), 0) + 1
		        ELSE 1
		      END
		    ELSE
		      CASE
		        WHEN EXISTS (SELECT 1 FROM prev WHERE is_completed = true)
		          THEN COALESCE((SELECT streak_days FROM prev), 0)
		        ELSE 0
		      END
		  END,
		  (1 >= $4)
		)
		ON CONFLICT (dog_id, streak_date) DO UPDATE SET
		  completed_count = enrichment_streaks.completed_count + 1,
		  is_completed = (enrichment_streaks.completed_count + 1) >= $4,
		  streak_days = CASE
		    WHEN (enrichment_streaks.completed_count + 1) >= $4 THEN
		      CASE
		        WHEN EXISTS (SELECT 1 FROM prev WHERE is_completed = true)
		          THEN COALESCE((SELECT streak_days FROM prev), 0) + 1
		        ELSE 1
		      END
		    ELSE enrichment_streaks.streak_days
		  END,
		  updated_at = NOW()`,
		dogID, prevDateStr, dateStr, minPerDay,
	)
	return err
}

// LatestStreakDays returns the streak as of the most recent completed day at
// or before date.
func (r *StreakRepo) LatestStreakDays(ctx context.Context, dogID, date string) (int, error) {
	var days int
	err := r.db.QueryRow(ctx, `
		SELECT streak_days
		FROM enrichment_streaks
		WHERE dog_id = $1 AND streak_date <= $2 AND is_completed = true
		ORDER BY streak_date DESC
		LIMIT 1`, dogID, date,
	).Scan(&days)
	if err != nil {
		if mapDBError(err) == ErrNotFound {
			return 0, nil
		}
		return 0, err
	}
	return days, nil
}
