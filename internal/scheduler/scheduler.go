package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"lifemap/internal/domain"
)

// StatsRefresher recalcula las estadisticas de administracion.
type StatsRefresher interface {
	RefreshStats(ctx context.Context) (domain.AdminStats, error)
}

// Scheduler corre los trabajos periodicos de la API.
type Scheduler struct {
	scheduler *gocron.Scheduler
	logger    *zap.Logger
	refresher StatsRefresher
	interval  time.Duration
}

func New(logger *zap.Logger, refresher StatsRefresher, interval time.Duration) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		logger:    logger,
		refresher: refresher,
		interval:  interval,
	}
}

// Start programa el refresco de estadisticas y arranca sin bloquear.
// El primer refresco corre de inmediato.
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(s.interval).StartImmediately().Do(s.refreshStats); err != nil {
		return err
	}
	s.scheduler.StartAsync()
	s.logger.Info("scheduler started", zap.Duration("stats_interval", s.interval))
	return nil
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) refreshStats() {
	if s.refresher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	stats, err := s.refresher.RefreshStats(ctx)
	if err != nil {
		s.logger.Warn("stats refresh failed", zap.Error(err))
		return
	}
	s.logger.Debug("stats refreshed",
		zap.Int("users", stats.TotalUsers),
		zap.Int("pending_requests", stats.PendingRequests),
	)
}
