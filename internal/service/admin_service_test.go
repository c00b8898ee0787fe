package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"lifemap/internal/domain"
)

func newAdminFixture() (*AdminService, *mockMentorRepo, *mockMentorshipRepo) {
	users := newMockUserRepo()
	users.usersByID["u1"] = domain.UserRecord{ID: "u1"}
	users.usersByID["u2"] = domain.UserRecord{ID: "u2"}
	mentors := newMockMentorRepo()
	goals := newMockGoalRepo(domain.Goal{ID: "g1", UserID: "u1"})
	requests := &mockMentorshipRepo{requests: []domain.MentorshipRequest{
		{ID: "r1", Status: domain.MentorshipStatusPending},
		{ID: "r2", Status: domain.MentorshipStatusMatched},
	}}
	svc := NewAdminService(zap.NewNop(), users, mentors, goals, requests, nil, time.Minute)
	return svc, mentors, requests
}

func TestAdminService_StatsCountsAndCaches(t *testing.T) {
	svc, _, requests := newAdminFixture()
	ctx := context.Background()

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalUsers != 2 || stats.TotalGoals != 1 || stats.TotalMentors != 0 || stats.PendingRequests != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	requests.requests = append(requests.requests, domain.MentorshipRequest{ID: "r3", Status: domain.MentorshipStatusPending})
	cached, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if cached.PendingRequests != 1 {
		t.Fatalf("expected cached value, got %+v", cached)
	}

	fresh, err := svc.RefreshStats(ctx)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if fresh.PendingRequests != 2 {
		t.Fatalf("expected refreshed value, got %+v", fresh)
	}
}

func TestAdminService_SeedMentorsIsIdempotent(t *testing.T) {
	svc, mentors, _ := newAdminFixture()
	ctx := context.Background()

	n, err := svc.SeedMentors(ctx)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if n != 8 || len(mentors.byEmail) != 8 {
		t.Fatalf("expected 8 mentors, got n=%d stored=%d", n, len(mentors.byEmail))
	}
	for _, m := range mentors.byEmail {
		if m.ID == "" || m.CreatedAt.IsZero() {
			t.Fatalf("mentor missing id or timestamp: %+v", m)
		}
	}

	n, err = svc.SeedMentors(ctx)
	if err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("second seed should insert nothing, got %d", n)
	}
	if len(mentors.byEmail) != 8 {
		t.Fatalf("seed duplicated mentors: %d", len(mentors.byEmail))
	}

	stats, _ := svc.Stats(ctx)
	if stats.TotalMentors != 8 {
		t.Fatalf("stats not refreshed after seed: %+v", stats)
	}
}

func TestAdminService_CountError(t *testing.T) {
	svc, mentors, _ := newAdminFixture()
	mentors.err = errors.New("db down")
	if _, err := svc.RefreshStats(context.Background()); !errors.Is(err, mentors.err) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
	if _, err := svc.SeedMentors(context.Background()); !errors.Is(err, mentors.err) {
		t.Fatalf("expected wrapped repo error on seed, got %v", err)
	}
}

func TestSampleMentors_ReturnsCopies(t *testing.T) {
	mentors := SampleMentors()
	if len(mentors) != 8 {
		t.Fatalf("expected 8 sample mentors, got %d", len(mentors))
	}
	mentors[0].Languages[0] = "changed"
	if SampleMentors()[0].Languages[0] == "changed" {
		t.Fatalf("sample mentors share slices")
	}
	seen := make(map[string]bool)
	for _, m := range SampleMentors() {
		if seen[m.Email] {
			t.Fatalf("duplicate mentor email %s", m.Email)
		}
		seen[m.Email] = true
	}
}
