package repository

import (
	"context"

	"github.com/ayane-kurokawa/waggle/api/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type JournalRepo struct{ db *pgxpool.Pool }

func NewJournalRepo(db *pgxpool.Pool) *JournalRepo { return &JournalRepo{db} }

func (r *JournalRepo) ListByDog(ctx context.Context, dogID string, limit int) ([]model.JournalEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, dog_id, entry_date, mood, body, created_at
		FROM journal_entries
		WHERE dog_id = $1
		ORDER BY entry_date DESC, created_at DESC
		LIMIT $2`, dogID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.JournalEntry
	for rows.Next() {
		var e model.JournalEntry
		if err := rows.Scan(&e.ID, &e.DogID, &e.EntryDate, &e.Mood, &e.Body, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *JournalRepo) Create(ctx context.Context, dogID, entryDate string, mood *string, body string) (*model.JournalEntry, error) {
	var e model.JournalEntry
	err := r.db.QueryRow(ctx, `
		INSERT INTO journal_entries (dog_id, entry_date, mood, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id, dog_id, entry_date, mood, body, created_at`,
		dogID, entryDate, mood, body,
	).Scan(&e.ID, &e.DogID, &e.EntryDate, &e.Mood, &e.Body, &e.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &e, nil
}
