package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifemap/internal/service"
)

type AnalyticsHandler struct {
	logger       *zap.Logger
	analyticsSvc *service.AnalyticsService
}

func NewAnalyticsHandler(logger *zap.Logger, analyticsSvc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		logger:       logger,
		analyticsSvc: analyticsSvc,
	}
}

// Summary maneja GET /analytics?range=all|month|week.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	out, err := h.analyticsSvc.Summary(c.Request.Context(), userID, c.DefaultQuery("range", service.RangeAll))
	if err != nil {
		writeServiceError(c, h.logger, "get analytics", err)
		return
	}
	c.JSON(http.StatusOK, out)
}
