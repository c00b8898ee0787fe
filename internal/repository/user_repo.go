package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lifemap/internal/domain"
)

// UserRepository define el contrato del directorio de usuarios.
type UserRepository interface {
	Create(ctx context.Context, user domain.UserRecord) error
	GetByID(ctx context.Context, id string) (domain.UserRecord, error)
	// SaveAssessment aplica {quiz_completed: true, quiz_results: result} en un unico UPDATE.
	SaveAssessment(ctx context.Context, userID string, result domain.AssessmentResult) error
	// UpdateProfile reescribe los campos editables del perfil y toca updated_at.
	UpdateProfile(ctx context.Context, user domain.UserRecord) error
	Count(ctx context.Context) (int, error)
}

// PgUserRepository implementa UserRepository usando pgxpool.
type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

func (r *PgUserRepository) Create(ctx context.Context, user domain.UserRecord) error {
	const query = `
		INSERT INTO users (id, email, name, age, quiz_completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.Age,
		user.QuizCompleted,
		user.CreatedAt,
		user.UpdatedAt,
	)
	return err
}

func (r *PgUserRepository) GetByID(ctx context.Context, id string) (domain.UserRecord, error) {
	const query = `
		SELECT id, email, name, age, bio, interests, goals, location,
			quiz_completed, quiz_results, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var (
		u       domain.UserRecord
		age     *int32
		results []byte
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&age,
		&u.Bio,
		&u.Interests,
		&u.Goals,
		&u.Location,
		&u.QuizCompleted,
		&results,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.UserRecord{}, err
	}
	if err != nil {
		return domain.UserRecord{}, err
	}
	if age != nil {
		v := int(*age)
		u.Age = &v
	}
	if len(results) > 0 {
		var res domain.AssessmentResult
		if err := json.Unmarshal(results, &res); err != nil {
			return domain.UserRecord{}, fmt.Errorf("decode quiz_results: %w", err)
		}
		u.QuizResults = &res
	}
	return u, nil
}

func (r *PgUserRepository) SaveAssessment(ctx context.Context, userID string, result domain.AssessmentResult) error {
	const query = `
		UPDATE users
		SET quiz_completed = TRUE,
			quiz_results = $2,
			updated_at = NOW()
		WHERE id = $1
	`
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode quiz_results: %w", err)
	}
	tag, err := r.pool.Exec(ctx, query, userID, string(payload))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgUserRepository) UpdateProfile(ctx context.Context, user domain.UserRecord) error {
	const query = `
		UPDATE users
		SET name = $2,
			age = $3,
			bio = $4,
			interests = $5,
			goals = $6,
			location = $7,
			updated_at = NOW()
		WHERE id = $1
	`
	interests := user.Interests
	if interests == nil {
		interests = []string{}
	}
	tag, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Age,
		user.Bio,
		interests,
		user.Goals,
		user.Location,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgUserRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}
