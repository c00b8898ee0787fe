package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"lifemap/internal/domain"
	"lifemap/internal/repository"
)

// PersonalizedResources es la respuesta del catalogo rankeado.
type PersonalizedResources struct {
	Resources []domain.Resource `json:"resources"`
	// ProfileTitle es el titulo de la recomendacion usada para ordenar; vacio sin test.
	ProfileTitle      string `json:"profile_title,omitempty"`
	PreferredCategory string `json:"preferred_category,omitempty"`
}

type ResourceService struct {
	logger  *zap.Logger
	users   repository.UserRepository
	catalog []domain.Resource
}

func NewResourceService(logger *zap.Logger, users repository.UserRepository) *ResourceService {
	return &ResourceService{
		logger:  logger,
		users:   users,
		catalog: Catalog(),
	}
}

// Personalized rankea el catalogo segun el test del usuario y filtra por categoria.
// Un usuario sin registro o sin test recibe el orden natural.
func (s *ResourceService) Personalized(ctx context.Context, userID, category string) (PersonalizedResources, error) {
	var (
		dominant *domain.TraitName
		out      PersonalizedResources
	)

	if s.users != nil && userID != "" {
		user, err := s.users.GetByID(ctx, userID)
		switch {
		case err == nil:
			dominant = user.DominantTrait()
			if dominant != nil && !dominant.Valid() && s.logger != nil {
				s.logger.Warn("stored trait not recognized, using fallback category",
					zap.String("user_id", userID),
					zap.String("trait", string(*dominant)),
				)
			}
			if dominant != nil {
				out.ProfileTitle = user.QuizResults.Recommendation.Title
				out.PreferredCategory = PreferredCategory(*dominant)
			}
		case errors.Is(err, pgx.ErrNoRows):
		default:
			return PersonalizedResources{}, err
		}
	}

	ranked := RankResources(s.catalog, dominant)
	out.Resources = FilterResourcesByCategory(ranked, category)

	if s.logger != nil {
		s.logger.Debug("resources ranked",
			zap.String("user_id", userID),
			zap.String("category", category),
			zap.Int("count", len(out.Resources)),
		)
	}
	return out, nil
}

func (s *ResourceService) Categories() []domain.ResourceCategory {
	return ResourceCategories()
}
