package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"lifemap/internal/domain"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) RefreshStats(_ context.Context) (domain.AdminStats, error) {
	r.calls.Add(1)
	return domain.AdminStats{TotalUsers: 3}, r.err
}

func TestScheduler_RefreshesImmediately(t *testing.T) {
	refresher := &countingRefresher{}
	s := New(nil, refresher, time.Hour)
	if err := s.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	defer s.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for refresher.calls.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("expected immediate refresh")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestScheduler_RefreshErrorIsSwallowed(t *testing.T) {
	refresher := &countingRefresher{err: errors.New("db down")}
	s := New(nil, refresher, 0)
	if s.interval != 5*time.Minute {
		t.Fatalf("expected default interval, got %v", s.interval)
	}
	s.refreshStats()
	if refresher.calls.Load() != 1 {
		t.Fatalf("expected one call, got %d", refresher.calls.Load())
	}
}

func TestScheduler_NilRefresher(t *testing.T) {
	s := New(nil, nil, time.Minute)
	s.refreshStats()
}
