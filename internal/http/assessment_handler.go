package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifemap/internal/service"
)

type AssessmentHandler struct {
	logger        *zap.Logger
	assessmentSvc *service.AssessmentService
}

func NewAssessmentHandler(logger *zap.Logger, assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		logger:        logger,
		assessmentSvc: assessmentSvc,
	}
}

// Questions maneja GET /assessment/questions.
func (h *AssessmentHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.assessmentSvc.Questions()})
}

// Submit maneja POST /assessment. Si el resultado no se pudo guardar se
// devuelve igual con persisted=false para que el cliente lo muestre.
func (h *AssessmentHandler) Submit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Answers map[string]string `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid assessment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.assessmentSvc.Submit(c.Request.Context(), userID, req.Answers)
	if err != nil {
		var perr *service.PersistenceError
		if errors.As(err, &perr) {
			h.logger.Error("assessment not persisted", zap.String("user_id", userID), zap.Error(perr.Err))
			c.JSON(http.StatusOK, gin.H{"result": result, "persisted": false})
			return
		}
		writeServiceError(c, h.logger, "submit assessment", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": result, "persisted": true})
}

// Current maneja GET /assessment.
func (h *AssessmentHandler) Current(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	result, err := h.assessmentSvc.Current(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, h.logger, "get assessment", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}
