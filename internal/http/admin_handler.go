package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifemap/internal/service"
)

type AdminHandler struct {
	logger   *zap.Logger
	adminSvc *service.AdminService
}

func NewAdminHandler(logger *zap.Logger, adminSvc *service.AdminService) *AdminHandler {
	return &AdminHandler{
		logger:   logger,
		adminSvc: adminSvc,
	}
}

// Stats maneja GET /admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminSvc.Stats(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, "get admin stats", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// SeedMentors maneja POST /admin/mentors/seed.
func (h *AdminHandler) SeedMentors(c *gin.Context) {
	n, err := h.adminSvc.SeedMentors(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, "seed mentors", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"seeded": n})
}
