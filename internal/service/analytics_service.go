package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"lifemap/internal/domain"
	"lifemap/internal/repository"
)

const (
	RangeAll   = "all"
	RangeMonth = "month"
	RangeWeek  = "week"
)

const (
	streakGapDays = 7
	trendDays     = 7
)

var (
	ErrInvalidRange        = errors.New("range must be all, month or week")
	errAnalyticsSvcMissing = errors.New("analytics service not configured")
)

type AnalyticsService struct {
	logger   *zap.Logger
	users    repository.UserRepository
	goals    repository.GoalRepository
	requests repository.MentorshipRepository
	now      func() time.Time
}

func NewAnalyticsService(
	logger *zap.Logger,
	users repository.UserRepository,
	goals repository.GoalRepository,
	requests repository.MentorshipRepository,
) *AnalyticsService {
	return &AnalyticsService{
		logger:   logger,
		users:    users,
		goals:    goals,
		requests: requests,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Summary arma el resumen de progreso del usuario. Un usuario sin registro
// en el directorio obtiene un resumen sin resultado del test ni fecha de alta.
func (s *AnalyticsService) Summary(ctx context.Context, userID, timeRange string) (domain.Analytics, error) {
	if s == nil || s.users == nil || s.goals == nil || s.requests == nil {
		return domain.Analytics{}, errAnalyticsSvcMissing
	}
	timeRange = strings.ToLower(strings.TrimSpace(timeRange))
	if timeRange == "" {
		timeRange = RangeAll
	}
	if timeRange != RangeAll && timeRange != RangeMonth && timeRange != RangeWeek {
		return domain.Analytics{}, ErrInvalidRange
	}

	goals, err := s.goals.ListByUser(ctx, userID)
	if err != nil {
		return domain.Analytics{}, err
	}
	requests, err := s.requests.ListByUser(ctx, userID)
	if err != nil {
		return domain.Analytics{}, err
	}
	if requests == nil {
		requests = []domain.MentorshipRequest{}
	}

	analytics := SummarizeGoals(goals, timeRange, s.now())
	analytics.MentorshipRequests = requests

	user, err := s.users.GetByID(ctx, userID)
	switch {
	case err == nil:
		analytics.QuizResults = user.QuizResults
		joined := user.CreatedAt
		analytics.JoinDate = &joined
	case errors.Is(err, pgx.ErrNoRows):
		if s.logger != nil {
			s.logger.Debug("analytics for user without directory record", zap.String("user_id", userID))
		}
	default:
		return domain.Analytics{}, err
	}
	return analytics, nil
}

// SummarizeGoals calcula las metricas que dependen solo de las metas.
// El rango filtra por fecha de creacion; la racha usa todas las metas.
func SummarizeGoals(goals []domain.Goal, timeRange string, now time.Time) domain.Analytics {
	filtered := filterGoalsByRange(goals, timeRange, now)

	completed := 0
	byCategory := make(map[string]domain.CategoryProgress)
	for _, g := range filtered {
		category := g.Category
		if category == "" {
			category = domain.GoalCategoryPersonal
		}
		cp := byCategory[category]
		cp.Total++
		if g.Completed {
			completed++
			cp.Completed++
		}
		byCategory[category] = cp
	}

	rate := 0
	if len(filtered) > 0 {
		rate = int(math.Round(float64(completed) / float64(len(filtered)) * 100))
	}

	return domain.Analytics{
		Range:           timeRange,
		Goals:           filtered,
		TotalGoals:      len(filtered),
		CompletedGoals:  completed,
		CompletionRate:  rate,
		StreakDays:      completionStreak(goals, now),
		GoalsByCategory: byCategory,
		ProgressTrend:   progressTrend(filtered, now),
	}
}

func filterGoalsByRange(goals []domain.Goal, timeRange string, now time.Time) []domain.Goal {
	filtered := make([]domain.Goal, 0, len(goals))
	var cutoff time.Time
	switch timeRange {
	case RangeWeek:
		cutoff = now.AddDate(0, 0, -7)
	case RangeMonth:
		cutoff = now.AddDate(0, -1, 0)
	default:
		return append(filtered, goals...)
	}
	for _, g := range goals {
		created := g.CreatedAt
		if created.IsZero() {
			created = now
		}
		if !created.Before(cutoff) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// completionStreak cuenta metas completadas encadenadas, de la mas reciente
// hacia atras, mientras entre una y otra no pasen mas de siete dias.
func completionStreak(goals []domain.Goal, now time.Time) int {
	days := make([]time.Time, 0, len(goals))
	for _, g := range goals {
		if !g.Completed {
			continue
		}
		at := now
		if g.CompletedAt != nil {
			at = *g.CompletedAt
		}
		days = append(days, truncateDay(at))
	}
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 1
	for i := 0; i < len(days)-1; i++ {
		gap := days[i].Sub(days[i+1]).Hours() / 24
		if gap > streakGapDays {
			break
		}
		streak++
	}
	return streak
}

// progressTrend devuelve completadas por dia para los ultimos siete dias, el mas antiguo primero.
func progressTrend(goals []domain.Goal, now time.Time) []domain.DayProgress {
	today := truncateDay(now)
	trend := make([]domain.DayProgress, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		count := 0
		for _, g := range goals {
			if g.Completed && g.CompletedAt != nil && truncateDay(*g.CompletedAt).Equal(day) {
				count++
			}
		}
		trend = append(trend, domain.DayProgress{
			Date:      day.Format("Mon"),
			Completed: count,
		})
	}
	return trend
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
