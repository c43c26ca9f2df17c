package repository

import (
	"context"

	"github.com/ayane-kurokawa/waggle/api/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DogRepo struct{ db *pgxpool.Pool }

func NewDogRepo(db *pgxpool.Pool) *DogRepo { return &DogRepo{db} }

const dogColumns = `id, user_id, name, breed, age_years, weight_kg, activity_level,
	special_needs, photo_url, created_at, updated_at`

func scanDog(row interface{ Scan(dest ...any) error }) (*model.Dog, error) {
	var d model.Dog
	err := row.Scan(&d.ID, &d.UserID, &d.Name, &d.Breed, &d.AgeYears, &d.WeightKg,
		&d.ActivityLevel, &d.SpecialNeeds, &d.PhotoURL, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DogRepo) List(ctx context.Context, userID string) ([]model.Dog, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+dogColumns+`
		FROM dogs WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dogs []model.Dog
	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, err
		}
		dogs = append(dogs, *d)
	}
	return dogs, rows.Err()
}

func (r *DogRepo) Get(ctx context.Context, id, userID string) (*model.Dog, error) {
	d, err := scanDog(r.db.QueryRow(ctx, `
		SELECT `+dogColumns+`
		FROM dogs WHERE id = $1 AND user_id = $2`, id, userID))
	if err != nil {
		return nil, mapDBError(err)
	}
	return d, nil
}

type DogInput struct {
	Name          string
	Breed         string
	AgeYears      int
	WeightKg      *float64
	ActivityLevel string
	SpecialNeeds  *string
	PhotoURL      *string
}

func (r *DogRepo) Create(ctx context.Context, userID string, in DogInput) (*model.Dog, error) {
	d, err := scanDog(r.db.QueryRow(ctx, `
		INSERT INTO dogs (user_id, name, breed, age_years, weight_kg, activity_level, special_needs, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+dogColumns,
		userID, in.Name, in.Breed, in.AgeYears, in.WeightKg, in.ActivityLevel, in.SpecialNeeds, in.PhotoURL,
	))
	if err != nil {
		return nil, mapDBError(err)
	}
	return d, nil
}

type DogUpdate struct {
	Name          *string
	Breed         *string
	AgeYears      *int
	WeightKg      *float64
	ActivityLevel *string
	SpecialNeeds  *string
	PhotoURL      *string
}

func (r *DogRepo) Update(ctx context.Context, id, userID string, in DogUpdate) (*model.Dog, error) {
	d, err := scanDog(r.db.QueryRow(ctx, `
		UPDATE dogs
		SET name = COALESCE($1, name),
		    breed = COALESCE($2, breed),
		    age_years = COALESCE($3, age_years),
		    weight_kg = COALESCE($4, weight_kg),
		    activity_level = COALESCE($5, activity_level),
		    special_needs = COALESCE($6, special_needs),
		    photo_url = COALESCE($7, photo_url),
		    updated_at = NOW()
		WHERE id = $8 AND user_id = $9
		RETURNING `+dogColumns,
		in.Name, in.Breed, in.AgeYears, in.WeightKg, in.ActivityLevel, in.SpecialNeeds, in.PhotoURL, id, userID,
	))
	if err != nil {
		return nil, mapDBError(err)
	}
	return d, nil
}

func (r *DogRepo) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM dogs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAllWithOwners returns every dog joined with its owner's email, for the
// reminder and discovery jobs.
func (r *DogRepo) ListAllWithOwners(ctx context.Context) ([]model.Dog, map[string]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT d.id, d.user_id, d.name, d.breed, d.age_years, d.weight_kg, d.activity_level,
		       d.special_needs, d.photo_url, d.created_at, d.updated_at, u.email
		FROM dogs d JOIN users u ON u.id = d.user_id
		ORDER BY d.created_at`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var dogs []model.Dog
	emailByDogID := map[string]string{}
	for rows.Next() {
		var d model.Dog
		var email string
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.Breed, &d.AgeYears, &d.WeightKg,
			&d.ActivityLevel, &d.SpecialNeeds, &d.PhotoURL, &d.CreatedAt, &d.UpdatedAt, &email); err != nil {
			return nil, nil, err
		}
		dogs = append(dogs, d)
		emailByDogID[d.ID] = email
	}
	return dogs, emailByDogID, rows.Err()
}
