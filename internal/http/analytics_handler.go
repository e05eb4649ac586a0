package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"faithai-profile/internal/service"
)

// AnalyticsHandler expone las estadisticas poblacionales a analistas autenticados.
type AnalyticsHandler struct {
	logger    *zap.Logger
	analytics *service.AnalyticsService
}

func NewAnalyticsHandler(logger *zap.Logger, analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{logger: logger, analytics: analytics}
}

// Population maneja GET /v1/analytics?segments=role,age.
func (h *AnalyticsHandler) Population(c *gin.Context) {
	segments, err := service.ParseSegments(c.Query("segments"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.analytics.Aggregate(c.Request.Context(), segments)
	if err != nil {
		h.writeError(c, "aggregate population failed", err)
		return
	}
	if claims, ok := GetAuthClaims(c); ok {
		h.logger.Info("analytics served", zap.String("subject", claims.Subject), zap.Int("n", stats.N))
	}
	c.JSON(http.StatusOK, stats)
}

// Recalibrate maneja POST /v1/analytics/recalibrate.
func (h *AnalyticsHandler) Recalibrate(c *gin.Context) {
	params, updated, err := h.analytics.Recalibrate(c.Request.Context())
	if err != nil {
		h.writeError(c, "recalibrate failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated, "params": params})
}

func (h *AnalyticsHandler) writeError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrServiceNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
	case errors.Is(err, service.ErrParamsNotPublished):
		h.logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "population params not published"})
	default:
		h.logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
