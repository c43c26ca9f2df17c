package repository

import (
	"context"
	"time"

	"github.com/ayane-kurokawa/waggle/api/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DiscoveredActivityRepo struct{ db *pgxpool.Pool }

func NewDiscoveredActivityRepo(db *pgxpool.Pool) *DiscoveredActivityRepo {
	return &DiscoveredActivityRepo{db}
}

const discoveredColumns = `id, title, pillar, difficulty, duration_minutes, materials,
	instructions, emotional_goals, tags, age_group, energy_level,
	source_url, discovered_at, verified, quality_score, approval`

func scanDiscovered(row interface{ Scan(dest ...any) error }) (*model.Activity, error) {
	a := model.Activity{Kind: model.KindDiscovered}
	var sourceURL string
	var discoveredAt time.Time
	var quality float64
	var approval model.ApprovalStatus
	err := row.Scan(&a.ID, &a.Title, &a.Pillar, &a.Difficulty, &a.DurationMinutes,
		&a.Materials, &a.Instructions, &a.EmotionalGoals, &a.Tags, &a.AgeGroup, &a.EnergyLevel,
		&sourceURL, &discoveredAt, &a.Verified, &quality, &approval)
	if err != nil {
		return nil, err
	}
	a.SourceURL = &sourceURL
	a.DiscoveredAt = &discoveredAt
	a.QualityScore = &quality
	a.Approval = &approval
	return &a, nil
}

// ListApproved returns approved discovered activities, best quality first.
func (r *DiscoveredActivityRepo) ListApproved(ctx context.Context, userID string) ([]model.Activity, error) {
	return r.list(ctx, userID, `AND approval = 'approved'`)
}

// ListPending returns discovered activities awaiting review, newest first.
func (r *DiscoveredActivityRepo) ListPending(ctx context.Context, userID string) ([]model.Activity, error) {
	return r.list(ctx, userID, `AND approval = 'pending'`)
}

func (r *DiscoveredActivityRepo) list(ctx context.Context, userID, cond string) ([]model.Activity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+discoveredColumns+`
		FROM discovered_activities
		WHERE user_id = $1 `+cond+`
		ORDER BY quality_score DESC, discovered_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Activity
	for rows.Next() {
		a, err := scanDiscovered(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

type DiscoveredActivityInput struct {
	ID              string
	UserID          string
	Title           string
	Pillar          model.Pillar
	Difficulty      model.Difficulty
	DurationMinutes int
	Tags            []string
	SourceURL       string
	QualityScore    float64
	Approval        model.ApprovalStatus
}

// Upsert inserts a discovered activity, deduplicating per user on source URL.
// Returns created=false when the URL was already known.
func (r *DiscoveredActivityRepo) Upsert(ctx context.Context, in DiscoveredActivityInput) (created bool, err error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO discovered_activities
			(id, user_id, title, pillar, difficulty, duration_minutes, tags,
			 source_url, discovered_at, quality_score, approval)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), $9, $10)
		ON CONFLICT (user_id, source_url) DO NOTHING`,
		in.ID, in.UserID, in.Title, in.Pillar, in.Difficulty, in.DurationMinutes,
		in.Tags, in.SourceURL, in.QualityScore, in.Approval,
	)
	if err != nil {
		return false, mapDBError(err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetApproval moves a discovered activity through the pending/approved/rejected
// tri-state.
func (r *DiscoveredActivityRepo) SetApproval(ctx context.Context, id, userID string, approval model.ApprovalStatus) (*model.Activity, error) {
	a, err := scanDiscovered(r.db.QueryRow(ctx, `
		UPDATE discovered_activities
		SET approval = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING `+discoveredColumns,
		approval, id, userID,
	))
	if err != nil {
		return nil, mapDBError(err)
	}
	return a, nil
}

func (r *DiscoveredActivityRepo) SetVerified(ctx context.Context, id string, verified bool) error {
	_, err := r.db.Exec(ctx, `
		UPDATE discovered_activities SET verified = $1, updated_at = NOW() WHERE id = $2`,
		verified, id)
	return err
}

// Get resolves one discovered activity regardless of approval state.
func (r *DiscoveredActivityRepo) Get(ctx context.Context, id string) (*model.Activity, error) {
	a, err := scanDiscovered(r.db.QueryRow(ctx, `
		SELECT `+discoveredColumns+`
		FROM discovered_activities WHERE id = $1`, id))
	if err != nil {
		return nil, mapDBError(err)
	}
	return a, nil
}
