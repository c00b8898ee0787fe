package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"lifemap/internal/domain"
	"lifemap/internal/email"
	"lifemap/internal/repository"
)

var errMentorshipSvcMissing = errors.New("mentorship service not configured")

var mentorshipTypes = []domain.Option{
	{Value: "general", Label: "General Life Guidance"},
	{Value: "academic", Label: "Academic Support"},
	{Value: "career", Label: "Career Development"},
	{Value: "spiritual", Label: "Spiritual Growth"},
	{Value: "entrepreneurship", Label: "Entrepreneurship"},
	{Value: "leadership", Label: "Leadership Development"},
}

var timeCommitments = []domain.Option{
	{Value: "weekly", Label: "Weekly check-ins"},
	{Value: "biweekly", Label: "Every two weeks"},
	{Value: "monthly", Label: "Monthly meetings"},
	{Value: "asneeded", Label: "As needed basis"},
}

var genderPreferences = []domain.Option{
	{Value: "no-preference", Label: "No preference"},
	{Value: "male", Label: "Male mentor"},
	{Value: "female", Label: "Female mentor"},
}

// MentorshipOptions agrupa los valores validos del formulario.
type MentorshipOptions struct {
	Types             []domain.Option `json:"types"`
	TimeCommitments   []domain.Option `json:"time_commitments"`
	GenderPreferences []domain.Option `json:"gender_preferences"`
}

type MentorshipInput struct {
	MentorshipType  string `validate:"oneof=general academic career spiritual entrepreneurship leadership"`
	SpecificArea    string `validate:"max=200"`
	Goals           string `validate:"required,max=2000"`
	Experience      string `validate:"required,max=2000"`
	TimeCommitment  string `validate:"oneof=weekly biweekly monthly asneeded"`
	PreferredGender string `validate:"oneof=no-preference male female"`
	AdditionalInfo  string `validate:"max=2000"`
}

type MentorshipService struct {
	logger      *zap.Logger
	requests    repository.MentorshipRepository
	users       repository.UserRepository
	limiter     RateLimiter
	notifier    email.Sender
	notifyEmail string
	now         func() time.Time
}

func NewMentorshipService(
	logger *zap.Logger,
	requests repository.MentorshipRepository,
	users repository.UserRepository,
	limiter RateLimiter,
	notifier email.Sender,
	notifyEmail string,
) *MentorshipService {
	return &MentorshipService{
		logger:      logger,
		requests:    requests,
		users:       users,
		limiter:     limiter,
		notifier:    notifier,
		notifyEmail: strings.TrimSpace(notifyEmail),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *MentorshipService) Options() MentorshipOptions {
	return MentorshipOptions{
		Types:             append([]domain.Option(nil), mentorshipTypes...),
		TimeCommitments:   append([]domain.Option(nil), timeCommitments...),
		GenderPreferences: append([]domain.Option(nil), genderPreferences...),
	}
}

// Submit guarda una solicitud pendiente con una copia de los datos del usuario.
// tokenEmail se usa cuando el directorio no tiene email para el usuario.
func (s *MentorshipService) Submit(ctx context.Context, userID, tokenEmail string, input MentorshipInput) (domain.MentorshipRequest, error) {
	if s == nil || s.requests == nil || s.users == nil {
		return domain.MentorshipRequest{}, errMentorshipSvcMissing
	}
	input = normalizeMentorshipInput(input)
	if err := validateStruct(input); err != nil {
		return domain.MentorshipRequest{}, err
	}
	if s.limiter != nil && !s.limiter.Allow(userID) {
		return domain.MentorshipRequest{}, ErrRateLimited
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return domain.MentorshipRequest{}, err
		}
		user = domain.UserRecord{}
	}

	userEmail := strings.TrimSpace(tokenEmail)
	if user.Email != "" {
		userEmail = user.Email
	}

	req := domain.MentorshipRequest{
		ID:              uuid.NewString(),
		UserID:          userID,
		MentorshipType:  input.MentorshipType,
		SpecificArea:    input.SpecificArea,
		Goals:           input.Goals,
		Experience:      input.Experience,
		TimeCommitment:  input.TimeCommitment,
		PreferredGender: input.PreferredGender,
		AdditionalInfo:  input.AdditionalInfo,
		UserName:        user.DisplayName(),
		UserEmail:       userEmail,
		UserAge:         user.AgeLabel(),
		Status:          domain.MentorshipStatusPending,
		MatchedMentor:   nil,
		CreatedAt:       s.now(),
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return domain.MentorshipRequest{}, err
	}

	if s.logger != nil {
		s.logger.Info("mentorship request submitted",
			zap.String("user_id", userID),
			zap.String("request_id", req.ID),
			zap.String("type", req.MentorshipType),
		)
	}
	s.notify(ctx, req)
	return req, nil
}

func (s *MentorshipService) List(ctx context.Context, userID string) ([]domain.MentorshipRequest, error) {
	if s == nil || s.requests == nil {
		return nil, errMentorshipSvcMissing
	}
	requests, err := s.requests.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []domain.MentorshipRequest{}
	}
	return requests, nil
}

// notify avisa al coordinador. Un fallo solo se registra.
func (s *MentorshipService) notify(ctx context.Context, req domain.MentorshipRequest) {
	if s.notifier == nil || s.notifyEmail == "" {
		return
	}
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := s.notifier.SendMentorshipRequest(sendCtx, s.notifyEmail, req); err != nil && s.logger != nil {
		s.logger.Warn("mentorship notification failed",
			zap.String("request_id", req.ID),
			zap.Error(err),
		)
	}
}

func normalizeMentorshipInput(input MentorshipInput) MentorshipInput {
	input.MentorshipType = strings.ToLower(strings.TrimSpace(input.MentorshipType))
	if input.MentorshipType == "" {
		input.MentorshipType = "general"
	}
	input.TimeCommitment = strings.ToLower(strings.TrimSpace(input.TimeCommitment))
	if input.TimeCommitment == "" {
		input.TimeCommitment = "weekly"
	}
	input.PreferredGender = strings.ToLower(strings.TrimSpace(input.PreferredGender))
	if input.PreferredGender == "" {
		input.PreferredGender = "no-preference"
	}
	input.SpecificArea = strings.TrimSpace(input.SpecificArea)
	input.Goals = strings.TrimSpace(input.Goals)
	input.Experience = strings.TrimSpace(input.Experience)
	input.AdditionalInfo = strings.TrimSpace(input.AdditionalInfo)
	return input
}
