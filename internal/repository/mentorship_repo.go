package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"lifemap/internal/domain"
)

type MentorshipRepository interface {
	Create(ctx context.Context, req domain.MentorshipRequest) error
	ListByUser(ctx context.Context, userID string) ([]domain.MentorshipRequest, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}

type PgMentorshipRepository struct {
	pool *pgxpool.Pool
}

func NewPgMentorshipRepository(pool *pgxpool.Pool) *PgMentorshipRepository {
	return &PgMentorshipRepository{pool: pool}
}

func (r *PgMentorshipRepository) Create(ctx context.Context, req domain.MentorshipRequest) error {
	const query = `
		INSERT INTO mentorship_requests (
			id, user_id, mentorship_type, specific_area, goals, experience,
			time_commitment, preferred_gender, additional_info,
			user_name, user_email, user_age, status, matched_mentor, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.pool.Exec(ctx, query,
		req.ID,
		req.UserID,
		req.MentorshipType,
		req.SpecificArea,
		req.Goals,
		req.Experience,
		req.TimeCommitment,
		req.PreferredGender,
		req.AdditionalInfo,
		req.UserName,
		req.UserEmail,
		req.UserAge,
		req.Status,
		req.MatchedMentor,
		req.CreatedAt,
	)
	return err
}

// ListByUser devuelve las solicitudes del usuario, las mas recientes primero.
func (r *PgMentorshipRepository) ListByUser(ctx context.Context, userID string) ([]domain.MentorshipRequest, error) {
	const query = `
		SELECT id, user_id, mentorship_type, specific_area, goals, experience,
			time_commitment, preferred_gender, additional_info,
			user_name, user_email, user_age, status, matched_mentor, created_at
		FROM mentorship_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.MentorshipRequest
	for rows.Next() {
		var m domain.MentorshipRequest
		if err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.MentorshipType,
			&m.SpecificArea,
			&m.Goals,
			&m.Experience,
			&m.TimeCommitment,
			&m.PreferredGender,
			&m.AdditionalInfo,
			&m.UserName,
			&m.UserEmail,
			&m.UserAge,
			&m.Status,
			&m.MatchedMentor,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *PgMentorshipRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM mentorship_requests WHERE status = $1`, status).Scan(&n)
	return n, err
}
