package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifemap/internal/service"
)

type MentorshipHandler struct {
	logger        *zap.Logger
	mentorshipSvc *service.MentorshipService
}

func NewMentorshipHandler(logger *zap.Logger, mentorshipSvc *service.MentorshipService) *MentorshipHandler {
	return &MentorshipHandler{
		logger:        logger,
		mentorshipSvc: mentorshipSvc,
	}
}

// Options maneja GET /mentorship/options.
func (h *MentorshipHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, h.mentorshipSvc.Options())
}

// List maneja GET /mentorship/requests.
func (h *MentorshipHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	requests, err := h.mentorshipSvc.List(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, h.logger, "list mentorship requests", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// Submit maneja POST /mentorship/requests.
func (h *MentorshipHandler) Submit(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req struct {
		MentorshipType  string `json:"mentorship_type"`
		SpecificArea    string `json:"specific_area"`
		Goals           string `json:"goals" binding:"required"`
		Experience      string `json:"experience" binding:"required"`
		TimeCommitment  string `json:"time_commitment"`
		PreferredGender string `json:"preferred_gender"`
		AdditionalInfo  string `json:"additional_info"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid mentorship request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	created, err := h.mentorshipSvc.Submit(c.Request.Context(), claims.UserID, claims.Email, service.MentorshipInput{
		MentorshipType:  req.MentorshipType,
		SpecificArea:    req.SpecificArea,
		Goals:           req.Goals,
		Experience:      req.Experience,
		TimeCommitment:  req.TimeCommitment,
		PreferredGender: req.PreferredGender,
		AdditionalInfo:  req.AdditionalInfo,
	})
	if err != nil {
		writeServiceError(c, h.logger, "submit mentorship request", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"request": created})
}
