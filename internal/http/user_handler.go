package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifemap/internal/service"
)

// UserHandler mantiene dependencias para endpoints de usuarios.
type UserHandler struct {
	logger   *zap.Logger
	userServ *service.UserService
}

// NewUserHandler crea una instancia de UserHandler con dependencias necesarias.
func NewUserHandler(logger *zap.Logger, userServ *service.UserService) *UserHandler {
	return &UserHandler{
		logger:   logger,
		userServ: userServ,
	}
}

// CreateUser maneja POST /users. El id y el email salen del token.
func (h *UserHandler) CreateUser(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req struct {
		Name  string `json:"name" binding:"max=120"`
		Email string `json:"email" binding:"omitempty,email"`
		Age   *int   `json:"age"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create user request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	email := claims.Email
	if strings.TrimSpace(email) == "" {
		email = req.Email
	}
	name := req.Name
	if strings.TrimSpace(name) == "" {
		name = claims.Name
	}

	user, err := h.userServ.Register(c.Request.Context(), service.RegisterInput{
		UserID: claims.UserID,
		Email:  email,
		Name:   name,
		Age:    req.Age,
	})
	if err != nil {
		writeServiceError(c, h.logger, "create user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Me maneja GET /users/me.
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	user, err := h.userServ.Get(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, h.logger, "get user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateMe maneja PATCH /users/me. Solo se modifican los campos enviados.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Name      *string   `json:"name"`
		Age       *int      `json:"age"`
		Bio       *string   `json:"bio"`
		Interests *[]string `json:"interests"`
		Goals     *string   `json:"goals"`
		Location  *string   `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.userServ.UpdateProfile(c.Request.Context(), userID, service.UpdateProfileInput{
		Name:      req.Name,
		Age:       req.Age,
		Bio:       req.Bio,
		Interests: req.Interests,
		Goals:     req.Goals,
		Location:  req.Location,
	})
	if err != nil {
		writeServiceError(c, h.logger, "update profile", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
