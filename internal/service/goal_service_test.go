package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"lifemap/internal/domain"
)

func newGoalFixture() (*GoalService, *mockGoalRepo) {
	repo := newMockGoalRepo()
	svc := NewGoalService(zap.NewNop(), repo)
	svc.now = func() time.Time { return time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestGoalService_CreateDefaultsAndValidation(t *testing.T) {
	svc, _ := newGoalFixture()
	ctx := context.Background()

	goal, err := svc.Create(ctx, "u1", CreateGoalInput{Title: "  Read 5 books  "})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if goal.Title != "Read 5 books" || goal.Category != domain.GoalCategoryPersonal {
		t.Fatalf("unexpected goal: %+v", goal)
	}
	if goal.ID == "" || goal.Progress != 0 || goal.Completed || goal.CompletedAt != nil {
		t.Fatalf("unexpected initial state: %+v", goal)
	}

	if _, err := svc.Create(ctx, "u1", CreateGoalInput{Title: "   "}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for blank title, got %v", err)
	}
	if _, err := svc.Create(ctx, "u1", CreateGoalInput{Title: "x", Category: "hobbies"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown category, got %v", err)
	}
	if _, err := svc.Create(ctx, "u1", CreateGoalInput{Title: "x", Category: "Career"}); err != nil {
		t.Fatalf("category should be case-insensitive, got %v", err)
	}
}

func TestGoalService_ToggleSetsAndClearsCompletedAt(t *testing.T) {
	svc, _ := newGoalFixture()
	ctx := context.Background()
	goal, _ := svc.Create(ctx, "u1", CreateGoalInput{Title: "Run"})

	done, err := svc.ToggleCompletion(ctx, "u1", goal.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !done.Completed || done.CompletedAt == nil || !done.CompletedAt.Equal(svc.now()) {
		t.Fatalf("expected completed with timestamp: %+v", done)
	}

	reopened, err := svc.ToggleCompletion(ctx, "u1", goal.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if reopened.Completed || reopened.CompletedAt != nil {
		t.Fatalf("expected reopened without timestamp: %+v", reopened)
	}
}

func TestGoalService_UpdateProgressBounds(t *testing.T) {
	svc, repo := newGoalFixture()
	ctx := context.Background()
	goal, _ := svc.Create(ctx, "u1", CreateGoalInput{Title: "Learn Go"})

	for _, p := range []int{-1, 101} {
		if _, err := svc.UpdateProgress(ctx, "u1", goal.ID, p); !errors.Is(err, ErrGoalInvalidProgress) {
			t.Fatalf("progress %d: expected ErrGoalInvalidProgress, got %v", p, err)
		}
	}
	updated, err := svc.UpdateProgress(ctx, "u1", goal.ID, 100)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Progress != 100 || repo.goals[goal.ID].Progress != 100 {
		t.Fatalf("progress not stored: %+v", repo.goals[goal.ID])
	}
}

func TestGoalService_OtherUsersGoalIsNotFound(t *testing.T) {
	svc, repo := newGoalFixture()
	ctx := context.Background()
	goal, _ := svc.Create(ctx, "owner", CreateGoalInput{Title: "Private"})

	if _, err := svc.ToggleCompletion(ctx, "intruder", goal.ID); !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound on toggle, got %v", err)
	}
	if _, err := svc.UpdateProgress(ctx, "intruder", goal.ID, 50); !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound on progress, got %v", err)
	}
	if err := svc.Delete(ctx, "intruder", goal.ID); !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound on delete, got %v", err)
	}
	if _, ok := repo.goals[goal.ID]; !ok {
		t.Fatalf("goal must survive foreign delete")
	}

	if err := svc.Delete(ctx, "owner", goal.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(ctx, "owner", goal.ID); !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound after delete, got %v", err)
	}
}

func TestGoalService_ListEmptyIsNotNil(t *testing.T) {
	svc, _ := newGoalFixture()
	goals, err := svc.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if goals == nil || len(goals) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", goals)
	}
}
