package domain

import "time"

const (
	GoalCategoryPersonal  = "personal"
	GoalCategoryAcademic  = "academic"
	GoalCategorySpiritual = "spiritual"
	GoalCategorySocial    = "social"
	GoalCategoryCareer    = "career"
	GoalCategoryHealth    = "health"
)

type Goal struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Description string     `json:"description,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Progress    int        `json:"progress"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
