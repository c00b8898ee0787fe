package domain

import (
	"strconv"
	"time"
)

const (
	defaultUserName = "Unknown"
	defaultUserAge  = "Not specified"
)

// UserRecord es el documento del directorio de usuarios. Los campos
// opcionales se resuelven con los helpers de abajo y nunca por acceso dinamico.
type UserRecord struct {
	ID            string            `json:"id"`
	Email         string            `json:"email"`
	Name          string            `json:"name,omitempty"`
	Age           *int              `json:"age,omitempty"`
	Bio           string            `json:"bio,omitempty"`
	Interests     []string          `json:"interests"`
	Goals         string            `json:"goals,omitempty"`
	Location      string            `json:"location,omitempty"`
	QuizCompleted bool              `json:"quiz_completed"`
	QuizResults   *AssessmentResult `json:"quiz_results,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// DisplayName devuelve el nombre o "Unknown" si falta.
func (u UserRecord) DisplayName() string {
	if u.Name == "" {
		return defaultUserName
	}
	return u.Name
}

// AgeLabel devuelve la edad como texto o "Not specified".
func (u UserRecord) AgeLabel() string {
	if u.Age == nil || *u.Age <= 0 {
		return defaultUserAge
	}
	return strconv.Itoa(*u.Age)
}

// DominantTrait devuelve el rasgo del ultimo test, o nil si no lo completo.
func (u UserRecord) DominantTrait() *TraitName {
	if !u.QuizCompleted || u.QuizResults == nil {
		return nil
	}
	trait := u.QuizResults.DominantTrait
	return &trait
}
