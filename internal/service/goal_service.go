package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"lifemap/internal/domain"
	"lifemap/internal/repository"
)

var (
	ErrGoalNotFound        = errors.New("goal not found")
	ErrGoalInvalidProgress = errors.New("progress must be between 0 and 100")
	errGoalSvcMissing      = errors.New("goal service not configured")
)

type GoalService struct {
	logger *zap.Logger
	goals  repository.GoalRepository
	now    func() time.Time
}

func NewGoalService(logger *zap.Logger, goals repository.GoalRepository) *GoalService {
	return &GoalService{
		logger: logger,
		goals:  goals,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

type CreateGoalInput struct {
	Title       string `validate:"required,max=200"`
	Category    string `validate:"oneof=personal academic spiritual social career health"`
	Description string `validate:"max=2000"`
	Deadline    *time.Time
}

func (s *GoalService) Create(ctx context.Context, userID string, input CreateGoalInput) (domain.Goal, error) {
	if s == nil || s.goals == nil {
		return domain.Goal{}, errGoalSvcMissing
	}
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Category = strings.ToLower(strings.TrimSpace(input.Category))
	if input.Category == "" {
		input.Category = domain.GoalCategoryPersonal
	}
	if err := validateStruct(input); err != nil {
		return domain.Goal{}, err
	}

	goal := domain.Goal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       input.Title,
		Category:    input.Category,
		Description: input.Description,
		Deadline:    input.Deadline,
		Progress:    0,
		Completed:   false,
		CreatedAt:   s.now(),
	}
	if err := s.goals.Create(ctx, goal); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

func (s *GoalService) List(ctx context.Context, userID string) ([]domain.Goal, error) {
	if s == nil || s.goals == nil {
		return nil, errGoalSvcMissing
	}
	goals, err := s.goals.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if goals == nil {
		goals = []domain.Goal{}
	}
	return goals, nil
}

// ToggleCompletion invierte el estado; al completar guarda la fecha y al reabrir la limpia.
func (s *GoalService) ToggleCompletion(ctx context.Context, userID, goalID string) (domain.Goal, error) {
	goal, err := s.owned(ctx, userID, goalID)
	if err != nil {
		return domain.Goal{}, err
	}
	goal.Completed = !goal.Completed
	if goal.Completed {
		completedAt := s.now()
		goal.CompletedAt = &completedAt
	} else {
		goal.CompletedAt = nil
	}
	if err := s.update(ctx, goal); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

func (s *GoalService) UpdateProgress(ctx context.Context, userID, goalID string, progress int) (domain.Goal, error) {
	if progress < 0 || progress > 100 {
		return domain.Goal{}, ErrGoalInvalidProgress
	}
	goal, err := s.owned(ctx, userID, goalID)
	if err != nil {
		return domain.Goal{}, err
	}
	goal.Progress = progress
	if err := s.update(ctx, goal); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

func (s *GoalService) Delete(ctx context.Context, userID, goalID string) error {
	if _, err := s.owned(ctx, userID, goalID); err != nil {
		return err
	}
	if err := s.goals.Delete(ctx, goalID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrGoalNotFound
		}
		return err
	}
	if s.logger != nil {
		s.logger.Info("goal deleted", zap.String("user_id", userID), zap.String("goal_id", goalID))
	}
	return nil
}

// owned carga la meta y la oculta si pertenece a otro usuario.
func (s *GoalService) owned(ctx context.Context, userID, goalID string) (domain.Goal, error) {
	if s == nil || s.goals == nil {
		return domain.Goal{}, errGoalSvcMissing
	}
	goal, err := s.goals.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Goal{}, ErrGoalNotFound
		}
		return domain.Goal{}, err
	}
	if goal.UserID != userID {
		return domain.Goal{}, ErrGoalNotFound
	}
	return goal, nil
}

func (s *GoalService) update(ctx context.Context, goal domain.Goal) error {
	if err := s.goals.Update(ctx, goal); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrGoalNotFound
		}
		return err
	}
	return nil
}
