package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"lifemap/internal/domain"
)

type MentorRepository interface {
	Create(ctx context.Context, mentor domain.Mentor) (bool, error)
	Count(ctx context.Context) (int, error)
}

type PgMentorRepository struct {
	pool *pgxpool.Pool
}

func NewPgMentorRepository(pool *pgxpool.Pool) *PgMentorRepository {
	return &PgMentorRepository{pool: pool}
}

// Create inserta un mentor. Si el email ya existe no hace nada y devuelve false.
func (r *PgMentorRepository) Create(ctx context.Context, mentor domain.Mentor) (bool, error) {
	const query = `
		INSERT INTO mentors (
			id, name, email, bio, expertise, categories, availability, location,
			experience, education, languages, rating, total_mentees, verified,
			profile_image, specializations, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (email) DO NOTHING
	`
	tag, err := r.pool.Exec(ctx, query,
		mentor.ID,
		mentor.Name,
		mentor.Email,
		mentor.Bio,
		mentor.Expertise,
		mentor.Categories,
		mentor.Availability,
		mentor.Location,
		mentor.Experience,
		mentor.Education,
		mentor.Languages,
		mentor.Rating,
		mentor.TotalMentees,
		mentor.Verified,
		mentor.ProfileImage,
		mentor.Specializations,
		mentor.CreatedAt,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PgMentorRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM mentors`).Scan(&n)
	return n, err
}
