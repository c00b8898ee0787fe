package service

import (
	"context"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"lifemap/internal/domain"
)

type mockUserRepo struct {
	mu        sync.Mutex
	usersByID map[string]domain.UserRecord
	getErr    error
	saveErr   error
	createErr error
	updateErr error
	saves     int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{usersByID: make(map[string]domain.UserRecord)}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.UserRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.usersByID[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return domain.UserRecord{}, m.getErr
	}
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
	m.saves++
	return nil
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, user domain.UserRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
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
	goals     map[string]domain.Goal
	listErr   error
	updateErr error
}

func newMockGoalRepo(goals ...domain.Goal) *mockGoalRepo {
	m := &mockGoalRepo{goals: make(map[string]domain.Goal)}
	for _, g := range goals {
		m.goals[g.ID] = g
	}
	return m
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
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []domain.Goal
	for _, g := range m.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockGoalRepo) Update(_ context.Context, goal domain.Goal) error {
	if m.updateErr != nil {
		return m.updateErr
	}
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
	requests  []domain.MentorshipRequest
	createErr error
}

func (m *mockMentorshipRepo) Create(_ context.Context, req domain.MentorshipRequest) error {
	if m.createErr != nil {
		return m.createErr
	}
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
	err     error
}

func newMockMentorRepo() *mockMentorRepo {
	return &mockMentorRepo{byEmail: make(map[string]domain.Mentor)}
}

func (m *mockMentorRepo) Create(_ context.Context, mentor domain.Mentor) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.byEmail[mentor.Email]; ok {
		return false, nil
	}
	m.byEmail[mentor.Email] = mentor
	return true, nil
}

func (m *mockMentorRepo) Count(_ context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.byEmail), nil
}

type allowNone struct{}

func (allowNone) Allow(string) bool { return false }

func intPtr(v int) *int { return &v }

func traitPtr(t domain.TraitName) *domain.TraitName { return &t }
