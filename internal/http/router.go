package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifemap/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
// Todo salvo /healthz exige un access token; /admin ademas exige un uid admin.
func NewRouter(
	logger *zap.Logger,
	verifier *service.TokenVerifier,
	adminIDs []string,
	h Handlers,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", Healthz)

	api := r.Group("", JWTAuthMiddleware(verifier))

	users := api.Group("/users")
	users.POST("", h.Users.CreateUser)
	users.GET("/me", h.Users.Me)
	users.PATCH("/me", h.Users.UpdateMe)

	assessment := api.Group("/assessment")
	assessment.GET("/questions", h.Assessment.Questions)
	assessment.POST("", h.Assessment.Submit)
	assessment.GET("", h.Assessment.Current)

	resources := api.Group("/resources")
	resources.GET("", h.Resources.List)
	resources.GET("/categories", h.Resources.Categories)

	goals := api.Group("/goals")
	goals.GET("", h.Goals.List)
	goals.POST("", h.Goals.Create)
	goals.PATCH("/:id/progress", h.Goals.UpdateProgress)
	goals.POST("/:id/toggle", h.Goals.Toggle)
	goals.DELETE("/:id", h.Goals.Delete)

	mentorship := api.Group("/mentorship")
	mentorship.GET("/options", h.Mentorship.Options)
	mentorship.GET("/requests", h.Mentorship.List)
	mentorship.POST("/requests", h.Mentorship.Submit)

	api.GET("/analytics", h.Analytics.Summary)

	admin := api.Group("/admin", AdminOnlyMiddleware(adminIDs))
	admin.GET("/stats", h.Admin.Stats)
	admin.POST("/mentors/seed", h.Admin.SeedMentors)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
