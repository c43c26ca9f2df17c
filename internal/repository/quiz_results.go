package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ayane-kurokawa/waggle/api/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type QuizResultRepo struct{ db *pgxpool.Pool }

func NewQuizResultRepo(db *pgxpool.Pool) *QuizResultRepo { return &QuizResultRepo{db} }

// Upsert replaces a dog's quiz results wholesale; retakes never merge.
func (r *QuizResultRepo) Upsert(ctx context.Context, results model.QuizResults) error {
	ranking, err := json.Marshal(results.Ranking)
	if err != nil {
		return fmt.Errorf("marshal ranking: %w", err)
	}
	recs, err := json.Marshal(results.Recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO quiz_results (dog_id, personality, ranking, recommendations, completed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (dog_id) DO UPDATE SET
			personality = EXCLUDED.personality,
			ranking = EXCLUDED.ranking,
			recommendations = EXCLUDED.recommendations,
			completed_at = EXCLUDED.completed_at`,
		results.DogID, results.Personality, ranking, recs, results.CompletedAt,
	)
	return err
}

func (r *QuizResultRepo) GetByDog(ctx context.Context, dogID string) (*model.QuizResults, error) {
	var res model.QuizResults
	var ranking, recs []byte
	err := r.db.QueryRow(ctx, `
		SELECT dog_id, personality, ranking, recommendations, completed_at
		FROM quiz_results WHERE dog_id = $1`, dogID,
	).Scan(&res.DogID, &res.Personality, &ranking, &recs, &res.CompletedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	if err := json.Unmarshal(ranking, &res.Ranking); err != nil {
		return nil, fmt.Errorf("unmarshal ranking: %w", err)
	}
	if err := json.Unmarshal(recs, &res.Recommendations); err != nil {
		return nil, fmt.Errorf("unmarshal recommendations: %w", err)
	}
	return &res, nil
}
