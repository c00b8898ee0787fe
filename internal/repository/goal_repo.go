package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lifemap/internal/domain"
)

type GoalRepository interface {
	Create(ctx context.Context, goal domain.Goal) error
	GetByID(ctx context.Context, id string) (domain.Goal, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Goal, error)
	Update(ctx context.Context, goal domain.Goal) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type PgGoalRepository struct {
	pool *pgxpool.Pool
}

func NewPgGoalRepository(pool *pgxpool.Pool) *PgGoalRepository {
	return &PgGoalRepository{pool: pool}
}

func (r *PgGoalRepository) Create(ctx context.Context, goal domain.Goal) error {
	const query = `
		INSERT INTO goals (id, user_id, title, category, description, deadline, progress, completed, completed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		goal.ID,
		goal.UserID,
		goal.Title,
		goal.Category,
		goal.Description,
		goal.Deadline,
		goal.Progress,
		goal.Completed,
		goal.CompletedAt,
		goal.CreatedAt,
	)
	return err
}

func (r *PgGoalRepository) GetByID(ctx context.Context, id string) (domain.Goal, error) {
	const query = `
		SELECT id, user_id, title, category, description, deadline, progress, completed, completed_at, created_at
		FROM goals
		WHERE id = $1
	`
	g, err := scanGoal(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Goal{}, err
	}
	return g, err
}

func (r *PgGoalRepository) ListByUser(ctx context.Context, userID string) ([]domain.Goal, error) {
	const query = `
		SELECT id, user_id, title, category, description, deadline, progress, completed, completed_at, created_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *PgGoalRepository) Update(ctx context.Context, goal domain.Goal) error {
	const query = `
		UPDATE goals
		SET progress = $2,
			completed = $3,
			completed_at = $4
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, goal.ID, goal.Progress, goal.Completed, goal.CompletedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgGoalRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgGoalRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM goals`).Scan(&n)
	return n, err
}

func scanGoal(row pgx.Row) (domain.Goal, error) {
	var g domain.Goal
	err := row.Scan(
		&g.ID,
		&g.UserID,
		&g.Title,
		&g.Category,
		&g.Description,
		&g.Deadline,
		&g.Progress,
		&g.Completed,
		&g.CompletedAt,
		&g.CreatedAt,
	)
	return g, err
}
