package http

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"lifemap/internal/domain"
)

type mockUserRepo struct {
	mu        sync.Mutex
	usersByID map[string]domain.UserRecord
	saveErr   error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{usersByID: make(map[string]domain.UserRecord)}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.UserRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.usersByID[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.usersByID[id]
	if !ok {
		return domain.UserRecord{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) SaveAssessment(_ context.Context, userID string, result domain.AssessmentResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	user, ok := m.usersByID[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	user.QuizCompleted = true
	user.QuizResults = &result
	m.usersByID[userID] = user
	return nil
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, user domain.UserRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.usersByID[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.usersByID[user.ID] = user
	return nil
}

func (m *mockUserRepo) Count(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.usersByID), nil
}

type mockGoalRepo struct {
	goals map[string]domain.Goal
}

func newMockGoalRepo() *mockGoalRepo {
	return &mockGoalRepo{goals: make(map[string]domain.Goal)}
}

func (m *mockGoalRepo) Create(_ context.Context, goal domain.Goal) error {
	m.goals[goal.ID] = goal
	return nil
}

func (m *mockGoalRepo) GetByID(_ context.Context, id string) (domain.Goal, error) {
	goal, ok := m.goals[id]
	if !ok {
		return domain.Goal{}, pgx.ErrNoRows
	}
	return goal, nil
}

func (m *mockGoalRepo) ListByUser(_ context.Context, userID string) ([]domain.Goal, error) {
	var out []domain.Goal
	for _, g := range m.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *mockGoalRepo) Update(_ context.Context, goal domain.Goal) error {
	if _, ok := m.goals[goal.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.goals[goal.ID] = goal
	return nil
}

func (m *mockGoalRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.goals[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.goals, id)
	return nil
}

func (m *mockGoalRepo) Count(_ context.Context) (int, error) {
	return len(m.goals), nil
}

type mockMentorshipRepo struct {
	requests []domain.MentorshipRequest
}

func (m *mockMentorshipRepo) Create(_ context.Context, req domain.MentorshipRequest) error {
	m.requests = append(m.requests, req)
	return nil
}

func (m *mockMentorshipRepo) ListByUser(_ context.Context, userID string) ([]domain.MentorshipRequest, error) {
	var out []domain.MentorshipRequest
	for i := len(m.requests) - 1; i >= 0; i-- {
		if m.requests[i].UserID == userID {
			out = append(out, m.requests[i])
		}
	}
	return out, nil
}

func (m *mockMentorshipRepo) CountByStatus(_ context.Context, status string) (int, error) {
	n := 0
	for _, r := range m.requests {
		if r.Status == status {
			n++
		}
	}
	return n, nil
}

type mockMentorRepo struct {
	byEmail map[string]domain.Mentor
}

func (m *mockMentorRepo) Create(_ context.Context, mentor domain.Mentor) (bool, error) {
	if m.byEmail == nil {
		m.byEmail = make(map[string]domain.Mentor)
	}
	if _, ok := m.byEmail[mentor.Email]; ok {
		return false, nil
	}
	m.byEmail[mentor.Email] = mentor
	return true, nil
}

func (m *mockMentorRepo) Count(_ context.Context) (int, error) {
	return len(m.byEmail), nil
}
