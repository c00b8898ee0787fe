package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifemap/internal/service"
)

// Handlers agrupa los handlers que monta el router.
type Handlers struct {
	Users      *UserHandler
	Assessment *AssessmentHandler
	Resources  *ResourceHandler
	Goals      *GoalHandler
	Mentorship *MentorshipHandler
	Analytics  *AnalyticsHandler
	Admin      *AdminHandler
}

// Healthz maneja GET /healthz.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requireUserID devuelve el uid del token o responde 401.
func requireUserID(c *gin.Context) (string, bool) {
	claims, ok := GetAuthClaims(c)
	if !ok || claims.UserID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return "", false
	}
	return claims.UserID, true
}

// writeServiceError traduce errores de servicio a status HTTP. Los errores
// no previstos se registran y se responden con un mensaje generico.
func writeServiceError(c *gin.Context, logger *zap.Logger, op string, err error) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidAge),
		errors.Is(err, service.ErrInvalidUserID),
		errors.Is(err, service.ErrAssessmentIncomplete),
		errors.Is(err, service.ErrUnknownQuestion),
		errors.Is(err, service.ErrGoalInvalidProgress),
		errors.Is(err, service.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrGoalNotFound),
		errors.Is(err, service.ErrAssessmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
	default:
		logger.Error(op+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not " + op})
	}
}
