package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"lifemap/internal/domain"
	"lifemap/internal/repository"
)

// UserService administra el registro del usuario en el directorio. La
// autenticacion vive en un servicio externo; aca se crea, lee y edita el perfil.
type UserService struct {
	logger *zap.Logger
	users  repository.UserRepository
}

func NewUserService(logger *zap.Logger, users repository.UserRepository) *UserService {
	return &UserService{
		logger: logger,
		users:  users,
	}
}

type RegisterInput struct {
	UserID string
	Email  string
	Name   string
	Age    *int
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already registered")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidAge         = errors.New("invalid age")
	ErrInvalidUserID      = errors.New("invalid user id")
	errUserSvcUnavailable = errors.New("user service not configured")
)

func (s *UserService) Register(ctx context.Context, input RegisterInput) (domain.UserRecord, error) {
	if s == nil || s.users == nil {
		return domain.UserRecord{}, errUserSvcUnavailable
	}

	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return domain.UserRecord{}, ErrInvalidUserID
	}
	email := normalizeEmail(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return domain.UserRecord{}, ErrInvalidEmail
	}
	if input.Age != nil && (*input.Age <= 0 || *input.Age > 120) {
		return domain.UserRecord{}, ErrInvalidAge
	}

	if _, err := s.users.GetByID(ctx, userID); err == nil {
		return domain.UserRecord{}, ErrUserAlreadyExists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return domain.UserRecord{}, err
	}

	now := time.Now().UTC()
	user := domain.UserRecord{
		ID:            userID,
		Email:         email,
		Name:          strings.TrimSpace(input.Name),
		Age:           input.Age,
		Interests:     []string{},
		QuizCompleted: false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Dos registros simultaneos: el segundo choca con la clave primaria.
		if isUniqueViolation(err) {
			return domain.UserRecord{}, ErrUserAlreadyExists
		}
		return domain.UserRecord{}, err
	}

	if s.logger != nil {
		s.logger.Info("user registered", zap.String("user_id", userID))
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, userID string) (domain.UserRecord, error) {
	if s == nil || s.users == nil {
		return domain.UserRecord{}, errUserSvcUnavailable
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserRecord{}, ErrUserNotFound
		}
		return domain.UserRecord{}, err
	}
	return user, nil
}

// UpdateProfileInput es un parche: los campos nil no se tocan.
type UpdateProfileInput struct {
	Name      *string   `validate:"omitempty,max=120"`
	Age       *int      `validate:"omitempty,min=1,max=120"`
	Bio       *string   `validate:"omitempty,max=500"`
	Interests *[]string `validate:"omitempty,max=20,dive,max=60"`
	Goals     *string   `validate:"omitempty,max=500"`
	Location  *string   `validate:"omitempty,max=120"`
}

// UpdateProfile aplica el parche sobre el perfil guardado. El email y el
// resultado del test no se editan por aca.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (domain.UserRecord, error) {
	if s == nil || s.users == nil {
		return domain.UserRecord{}, errUserSvcUnavailable
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.UserRecord{}, ErrInvalidUserID
	}
	if err := validateStruct(input); err != nil {
		return domain.UserRecord{}, err
	}

	user, err := s.Get(ctx, userID)
	if err != nil {
		return domain.UserRecord{}, err
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Age != nil {
		age := *input.Age
		user.Age = &age
	}
	if input.Bio != nil {
		user.Bio = strings.TrimSpace(*input.Bio)
	}
	if input.Interests != nil {
		user.Interests = normalizeInterests(*input.Interests)
	}
	if input.Goals != nil {
		user.Goals = strings.TrimSpace(*input.Goals)
	}
	if input.Location != nil {
		user.Location = strings.TrimSpace(*input.Location)
	}

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserRecord{}, ErrUserNotFound
		}
		return domain.UserRecord{}, err
	}
	user.UpdatedAt = time.Now().UTC()

	if s.logger != nil {
		s.logger.Info("user profile updated", zap.String("user_id", userID))
	}
	return user, nil
}

// normalizeInterests recorta, descarta vacios y quita repetidos conservando el orden.
func normalizeInterests(interests []string) []string {
	out := make([]string, 0, len(interests))
	seen := make(map[string]struct{}, len(interests))
	for _, interest := range interests {
		interest = strings.TrimSpace(interest)
		if interest == "" {
			continue
		}
		if _, ok := seen[interest]; ok {
			continue
		}
		seen[interest] = struct{}{}
		out = append(out, interest)
	}
	return out
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
