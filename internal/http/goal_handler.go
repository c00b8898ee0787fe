package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifemap/internal/service"
)

type GoalHandler struct {
	logger  *zap.Logger
	goalSvc *service.GoalService
}

func NewGoalHandler(logger *zap.Logger, goalSvc *service.GoalService) *GoalHandler {
	return &GoalHandler{
		logger:  logger,
		goalSvc: goalSvc,
	}
}

// List maneja GET /goals.
func (h *GoalHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	goals, err := h.goalSvc.List(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, h.logger, "list goals", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// Create maneja POST /goals.
func (h *GoalHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title       string     `json:"title" binding:"required"`
		Category    string     `json:"category"`
		Description string     `json:"description"`
		Deadline    *time.Time `json:"deadline"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create goal request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	goal, err := h.goalSvc.Create(c.Request.Context(), userID, service.CreateGoalInput{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Deadline:    req.Deadline,
	})
	if err != nil {
		writeServiceError(c, h.logger, "create goal", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// UpdateProgress maneja PATCH /goals/:id/progress.
func (h *GoalHandler) UpdateProgress(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Progress *int `json:"progress" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid goal progress request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	goal, err := h.goalSvc.UpdateProgress(c.Request.Context(), userID, c.Param("id"), *req.Progress)
	if err != nil {
		writeServiceError(c, h.logger, "update goal", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// Toggle maneja POST /goals/:id/toggle.
func (h *GoalHandler) Toggle(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	goal, err := h.goalSvc.ToggleCompletion(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeServiceError(c, h.logger, "toggle goal", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// Delete maneja DELETE /goals/:id.
func (h *GoalHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.goalSvc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeServiceError(c, h.logger, "delete goal", err)
		return
	}
	c.Status(http.StatusNoContent)
}
