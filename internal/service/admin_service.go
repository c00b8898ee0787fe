package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lifemap/internal/domain"
	"lifemap/internal/repository"
)

var errAdminSvcMissing = errors.New("admin service not configured")

type AdminService struct {
	logger   *zap.Logger
	users    repository.UserRepository
	mentors  repository.MentorRepository
	goals    repository.GoalRepository
	requests repository.MentorshipRepository
	cache    StatsCache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewAdminService(
	logger *zap.Logger,
	users repository.UserRepository,
	mentors repository.MentorRepository,
	goals repository.GoalRepository,
	requests repository.MentorshipRepository,
	cache StatsCache,
	cacheTTL time.Duration,
) *AdminService {
	if cache == nil {
		cache = NewMemoryStatsCache()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &AdminService{
		logger:   logger,
		users:    users,
		mentors:  mentors,
		goals:    goals,
		requests: requests,
		cache:    cache,
		cacheTTL: cacheTTL,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Stats devuelve las estadisticas cacheadas o las recalcula si no hay copia valida.
func (s *AdminService) Stats(ctx context.Context) (domain.AdminStats, error) {
	if s == nil {
		return domain.AdminStats{}, errAdminSvcMissing
	}
	stats, ok, err := s.cache.Get(ctx)
	if err != nil && s.logger != nil {
		s.logger.Warn("admin stats cache read failed", zap.Error(err))
	}
	if ok {
		return stats, nil
	}
	return s.RefreshStats(ctx)
}

// RefreshStats cuenta de nuevo y actualiza la cache.
func (s *AdminService) RefreshStats(ctx context.Context) (domain.AdminStats, error) {
	if s == nil || s.users == nil || s.mentors == nil || s.goals == nil || s.requests == nil {
		return domain.AdminStats{}, errAdminSvcMissing
	}
	var (
		stats domain.AdminStats
		err   error
	)
	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return domain.AdminStats{}, fmt.Errorf("count users: %w", err)
	}
	if stats.TotalMentors, err = s.mentors.Count(ctx); err != nil {
		return domain.AdminStats{}, fmt.Errorf("count mentors: %w", err)
	}
	if stats.TotalGoals, err = s.goals.Count(ctx); err != nil {
		return domain.AdminStats{}, fmt.Errorf("count goals: %w", err)
	}
	if stats.PendingRequests, err = s.requests.CountByStatus(ctx, domain.MentorshipStatusPending); err != nil {
		return domain.AdminStats{}, fmt.Errorf("count pending requests: %w", err)
	}
	stats.RefreshedAt = s.now()

	if err := s.cache.Set(ctx, stats, s.cacheTTL); err != nil && s.logger != nil {
		s.logger.Warn("admin stats cache write failed", zap.Error(err))
	}
	return stats, nil
}

// SeedMentors inserta el directorio inicial y devuelve cuantos mentores se
// agregaron. Los emails repetidos se ignoran en el repositorio.
func (s *AdminService) SeedMentors(ctx context.Context) (int, error) {
	if s == nil || s.mentors == nil {
		return 0, errAdminSvcMissing
	}
	mentors := SampleMentors()
	inserted := 0
	for _, m := range mentors {
		m.ID = uuid.NewString()
		m.CreatedAt = s.now()
		created, err := s.mentors.Create(ctx, m)
		if err != nil {
			return inserted, fmt.Errorf("seed mentor %s: %w", m.Email, err)
		}
		if created {
			inserted++
		}
	}
	if s.logger != nil {
		s.logger.Info("sample mentors seeded",
			zap.Int("inserted", inserted),
			zap.Int("skipped", len(mentors)-inserted),
		)
	}
	if _, err := s.RefreshStats(ctx); err != nil && s.logger != nil {
		s.logger.Warn("admin stats refresh after seed failed", zap.Error(err))
	}
	return inserted, nil
}
