package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"faithai-profile/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas v1.
func NewRouter(
	logger *zap.Logger,
	profileH *ProfileHandler,
	analyticsH *AnalyticsHandler,
	authH *AuthHandler,
	jwtSvc *service.JWTService,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	v1.GET("/catalog", profileH.Catalog)
	v1.POST("/profile", profileH.Evaluate)
	v1.POST("/submissions", profileH.Submit)
	v1.GET("/submissions/:id/similar", profileH.Similar)

	auth := v1.Group("/auth")
	auth.POST("/token", authH.Token)
	auth.POST("/refresh", authH.Refresh)
	auth.POST("/logout", authH.Logout)

	analytics := v1.Group("/analytics", JWTAuthMiddleware(jwtSvc))
	analytics.GET("", RequireRole(service.RoleAnalyst, service.RoleAdmin), analyticsH.Population)
	analytics.POST("/recalibrate", RequireRole(service.RoleAdmin), analyticsH.Recalibrate)

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
