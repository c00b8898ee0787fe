package domain

import "time"

const (
	MentorshipStatusPending   = "pending"
	MentorshipStatusMatched   = "matched"
	MentorshipStatusCompleted = "completed"
	MentorshipStatusCancelled = "cancelled"
)

type MentorshipRequest struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	MentorshipType  string    `json:"mentorship_type"`
	SpecificArea    string    `json:"specific_area,omitempty"`
	Goals           string    `json:"goals"`
	Experience      string    `json:"experience"`
	TimeCommitment  string    `json:"time_commitment"`
	PreferredGender string    `json:"preferred_gender"`
	AdditionalInfo  string    `json:"additional_info,omitempty"`
	UserName        string    `json:"user_name"`
	UserEmail       string    `json:"user_email"`
	UserAge         string    `json:"user_age"`
	Status          string    `json:"status"`
	MatchedMentor   *string   `json:"matched_mentor"`
	CreatedAt       time.Time `json:"created_at"`
}

type Mentor struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Bio             string    `json:"bio"`
	Expertise       []string  `json:"expertise"`
	Categories      []string  `json:"categories"`
	Availability    string    `json:"availability"`
	Location        string    `json:"location"`
	Experience      string    `json:"experience"`
	Education       string    `json:"education"`
	Languages       []string  `json:"languages"`
	Rating          float64   `json:"rating"`
	TotalMentees    int       `json:"total_mentees"`
	Verified        bool      `json:"verified"`
	ProfileImage    string    `json:"profile_image,omitempty"`
	Specializations []string  `json:"specializations"`
	CreatedAt       time.Time `json:"created_at"`
}

// Option es un par valor/etiqueta para los formularios del cliente.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
