package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"lifemap/internal/domain"
	"lifemap/internal/repository"
)

var assessmentQuestions = []domain.Question{
	{
		ID:   "strengths",
		Text: "What do you consider your greatest strength?",
		Options: []string{
			"Leadership and inspiring others",
			"Creativity and artistic expression",
			"Analytical thinking and problem-solving",
			"Communication and building relationships",
			"Helping and supporting others",
		},
	},
	{
		ID:   "interests",
		Text: "Which area interests you most?",
		Options: []string{
			"Technology and innovation",
			"Arts and creative expression",
			"Business and entrepreneurship",
			"Social impact and community service",
			"Science and research",
		},
	},
	{
		ID:   "challenges",
		Text: "What is your biggest personal challenge?",
		Options: []string{
			"Building confidence and self-esteem",
			"Managing time and staying organized",
			"Developing social and communication skills",
			"Finding my purpose and direction",
			"Balancing different life priorities",
		},
	},
	{
		ID:   "goals",
		Text: "What is most important to you right now?",
		Options: []string{
			"Academic and educational success",
			"Building meaningful relationships",
			"Developing my talents and skills",
			"Contributing to my community",
			"Spiritual growth and personal values",
		},
	},
	{
		ID:   "future",
		Text: "How do you see yourself in 5 years?",
		Options: []string{
			"Leading a successful business or organization",
			"Making a positive impact in my community",
			"Excelling in my chosen career field",
			"Having strong family and social connections",
			"Living according to my values and purpose",
		},
	},
	{
		ID:   "learning",
		Text: "How do you prefer to learn new things?",
		Options: []string{
			"Hands-on practice and experience",
			"Reading books and studying alone",
			"Group discussions and collaboration",
			"Watching videos and visual content",
			"Listening to mentors and experts",
		},
	},
}

var (
	ErrAssessmentIncomplete = errors.New("assessment incomplete")
	ErrUnknownQuestion      = errors.New("unknown question")
	ErrAssessmentNotFound   = errors.New("assessment not completed")
	ErrRateLimited          = errors.New("rate limited")
	errAssessmentSvcMissing = errors.New("assessment service not configured")
)

// PersistenceError indica que el resultado se calculo pero no se pudo guardar.
type PersistenceError struct {
	UserID string
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist assessment for user %s: %v", e.UserID, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// AssessmentService valida, puntua y guarda el test de autodescubrimiento.
//
// Dos envios simultaneos del mismo usuario terminan en "gana la ultima
// escritura"; no hay bloqueo entre la lectura y el guardado.
type AssessmentService struct {
	logger  *zap.Logger
	users   repository.UserRepository
	limiter RateLimiter
	now     func() time.Time
}

func NewAssessmentService(logger *zap.Logger, users repository.UserRepository, limiter RateLimiter) *AssessmentService {
	return &AssessmentService{
		logger:  logger,
		users:   users,
		limiter: limiter,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Questions devuelve las seis preguntas fijas del test.
func (s *AssessmentService) Questions() []domain.Question {
	out := make([]domain.Question, len(assessmentQuestions))
	for i, q := range assessmentQuestions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

// Submit puntua las respuestas y guarda el resultado sobre el del intento anterior.
// Si el guardado falla devuelve igualmente el resultado junto a un *PersistenceError.
func (s *AssessmentService) Submit(ctx context.Context, userID string, responses map[string]string) (domain.AssessmentResult, error) {
	if s == nil || s.users == nil {
		return domain.AssessmentResult{}, errAssessmentSvcMissing
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.AssessmentResult{}, ErrInvalidUserID
	}

	answers, err := s.validate(responses)
	if err != nil {
		return domain.AssessmentResult{}, err
	}

	if s.limiter != nil && !s.limiter.Allow(userID) {
		return domain.AssessmentResult{}, ErrRateLimited
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.AssessmentResult{}, ErrUserNotFound
		}
		return domain.AssessmentResult{}, err
	}

	result := ScoreAssessment(answers, s.now())

	if err := s.users.SaveAssessment(ctx, userID, result); err != nil {
		if s.logger != nil {
			s.logger.Warn("save assessment failed", zap.Error(err), zap.String("user_id", userID))
		}
		return result, &PersistenceError{UserID: userID, Err: err}
	}

	if s.logger != nil {
		s.logger.Info("assessment saved",
			zap.String("user_id", userID),
			zap.String("dominant_trait", string(result.DominantTrait)),
			zap.Bool("retake", user.QuizCompleted),
		)
	}
	return result, nil
}

// Current devuelve el resultado guardado del usuario.
func (s *AssessmentService) Current(ctx context.Context, userID string) (domain.AssessmentResult, error) {
	if s == nil || s.users == nil {
		return domain.AssessmentResult{}, errAssessmentSvcMissing
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.AssessmentResult{}, ErrUserNotFound
		}
		return domain.AssessmentResult{}, err
	}
	if !user.QuizCompleted || user.QuizResults == nil {
		return domain.AssessmentResult{}, ErrAssessmentNotFound
	}
	return *user.QuizResults, nil
}

// validate exige una respuesta no vacia por pregunta fija y rechaza ids desconocidos.
// No compara la eleccion con las opciones: el puntaje tolera texto libre.
func (s *AssessmentService) validate(responses map[string]string) ([]domain.Answer, error) {
	known := make(map[string]struct{}, len(assessmentQuestions))
	for _, q := range assessmentQuestions {
		known[q.ID] = struct{}{}
	}

	var unknown []string
	for id := range responses {
		if _, ok := known[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuestion, strings.Join(unknown, ", "))
	}

	answers := make([]domain.Answer, 0, len(assessmentQuestions))
	var missing []string
	for _, q := range assessmentQuestions {
		choice := strings.TrimSpace(responses[q.ID])
		if choice == "" {
			missing = append(missing, q.ID)
			continue
		}
		answers = append(answers, domain.Answer{QuestionID: q.ID, Choice: choice})
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrAssessmentIncomplete, strings.Join(missing, ", "))
	}
	return answers, nil
}
