package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifemap/internal/service"
)

type ResourceHandler struct {
	logger      *zap.Logger
	resourceSvc *service.ResourceService
}

func NewResourceHandler(logger *zap.Logger, resourceSvc *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{
		logger:      logger,
		resourceSvc: resourceSvc,
	}
}

// List maneja GET /resources?category=.
func (h *ResourceHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	out, err := h.resourceSvc.Personalized(c.Request.Context(), userID, c.Query("category"))
	if err != nil {
		writeServiceError(c, h.logger, "list resources", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Categories maneja GET /resources/categories.
func (h *ResourceHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.resourceSvc.Categories()})
}
