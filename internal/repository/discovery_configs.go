package repository

import (
	"context"
	"time"

	"github.com/ayane-kurokawa/waggle/api/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DiscoveryConfigRepo struct{ db *pgxpool.Pool }

func NewDiscoveryConfigRepo(db *pgxpool.Pool) *DiscoveryConfigRepo {
	return &DiscoveryConfigRepo{db}
}

const discoveryConfigColumns = `user_id, enabled, frequency, max_per_run, sources,
	breed_specific, quality_threshold, last_run_at, created_at, updated_at`

func scanDiscoveryConfig(row interface{ Scan(dest ...any) error }) (*model.ContentDiscoveryConfig, error) {
	var c model.ContentDiscoveryConfig
	err := row.Scan(&c.UserID, &c.Enabled, &c.Frequency, &c.MaxPerRun, &c.Sources,
		&c.BreedSpecific, &c.QualityThreshold, &c.LastRunAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Get returns the user's discovery config, or defaults when none is stored.
func (r *DiscoveryConfigRepo) Get(ctx context.Context, userID string) (*model.ContentDiscoveryConfig, error) {
	c, err := scanDiscoveryConfig(r.db.QueryRow(ctx, `
		SELECT `+discoveryConfigColumns+`
		FROM discovery_configs WHERE user_id = $1`, userID))
	if err == nil {
		return c, nil
	}
	if mapDBError(err) == ErrNotFound {
		return &model.ContentDiscoveryConfig{
			UserID:           userID,
			Enabled:          false,
			Frequency:        "weekly",
			MaxPerRun:        5,
			QualityThreshold: 0.7,
		}, nil
	}
	return nil, err
}

func (r *DiscoveryConfigRepo) Put(ctx context.Context, c model.ContentDiscoveryConfig) (*model.ContentDiscoveryConfig, error) {
	out, err := scanDiscoveryConfig(r.db.QueryRow(ctx, `
		INSERT INTO discovery_configs
			(user_id, enabled, frequency, max_per_run, sources, breed_specific, quality_threshold)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			enabled = EXCLUDED.enabled,
			frequency = EXCLUDED.frequency,
			max_per_run = EXCLUDED.max_per_run,
			sources = EXCLUDED.sources,
			breed_specific = EXCLUDED.breed_specific,
			quality_threshold = EXCLUDED.quality_threshold,
			updated_at = NOW()
		RETURNING `+discoveryConfigColumns,
		c.UserID, c.Enabled, c.Frequency, c.MaxPerRun, c.Sources, c.BreedSpecific, c.QualityThreshold,
	))
	if err != nil {
		return nil, mapDBError(err)
	}
	return out, nil
}

// ListDue returns enabled configs whose frequency window has elapsed.
func (r *DiscoveryConfigRepo) ListDue(ctx context.Context, now time.Time) ([]model.ContentDiscoveryConfig, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+discoveryConfigColumns+`
		FROM discovery_configs
		WHERE enabled = true
		  AND (last_run_at IS NULL
		       OR (frequency = 'weekly' AND last_run_at <= $1 - INTERVAL '7 days')
		       OR (frequency = 'monthly' AND last_run_at <= $1 - INTERVAL '1 month'))`,
		now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ContentDiscoveryConfig
	for rows.Next() {
		c, err := scanDiscoveryConfig(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *DiscoveryConfigRepo) StampLastRun(ctx context.Context, userID string, ranAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE discovery_configs
		SET last_run_at = $1, updated_at = NOW()
		WHERE user_id = $2`, ranAt, userID)
	return err
}
