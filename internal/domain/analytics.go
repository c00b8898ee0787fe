package domain

import "time"

type CategoryProgress struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

type DayProgress struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
}

// Analytics resume el progreso de un usuario para un rango de tiempo.
type Analytics struct {
	Range              string                      `json:"range"`
	Goals              []Goal                      `json:"goals"`
	TotalGoals         int                         `json:"total_goals"`
	CompletedGoals     int                         `json:"completed_goals"`
	CompletionRate     int                         `json:"completion_rate"`
	StreakDays         int                         `json:"streak_days"`
	GoalsByCategory    map[string]CategoryProgress `json:"goals_by_category"`
	ProgressTrend      []DayProgress               `json:"progress_trend"`
	QuizResults        *AssessmentResult           `json:"quiz_results"`
	MentorshipRequests []MentorshipRequest         `json:"mentorship_requests"`
	JoinDate           *time.Time                  `json:"join_date,omitempty"`
}

type AdminStats struct {
	TotalUsers      int       `json:"total_users"`
	TotalMentors    int       `json:"total_mentors"`
	TotalGoals      int       `json:"total_goals"`
	PendingRequests int       `json:"pending_requests"`
	RefreshedAt     time.Time `json:"refreshed_at"`
}
