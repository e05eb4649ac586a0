package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"faithai-profile/internal/domain"
	"faithai-profile/internal/service"
)

const defaultSimilarK = 5

// ProfileHandler expone el calculo de espectro a los generadores de reportes.
type ProfileHandler struct {
	logger  *zap.Logger
	profile *service.ProfileService
}

func NewProfileHandler(logger *zap.Logger, profile *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{logger: logger, profile: profile}
}

// Evaluate maneja POST /v1/profile.
func (h *ProfileHandler) Evaluate(c *gin.Context) {
	var req struct {
		Answers domain.Answers `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	report, err := h.profile.Evaluate(c.Request.Context(), req.Answers)
	if err != nil {
		h.writeError(c, "evaluate profile failed", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Submit maneja POST /v1/submissions.
func (h *ProfileHandler) Submit(c *gin.Context) {
	var req struct {
		Answers       domain.Answers `json:"answers" binding:"required"`
		RespondentKey string         `json:"respondent_key"`
		Consent       bool           `json:"consent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submission request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sub, err := h.profile.Submit(c.Request.Context(), service.SubmitInput{
		Answers:       req.Answers,
		RespondentKey: req.RespondentKey,
		ClientKey:     c.ClientIP(),
		Consent:       req.Consent,
	})
	if err != nil {
		h.writeError(c, "submission failed", err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// Similar maneja GET /v1/submissions/:id/similar?k=5.
func (h *ProfileHandler) Similar(c *gin.Context) {
	k := defaultSimilarK
	if raw := c.Query("k"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid k"})
			return
		}
		k = n
	}

	neighbours, err := h.profile.Similar(c.Request.Context(), c.Param("id"), k)
	if err != nil {
		h.writeError(c, "similar respondents failed", err)
		return
	}
	if neighbours == nil {
		neighbours = []domain.SimilarRespondent{}
	}
	c.JSON(http.StatusOK, gin.H{"similar": neighbours})
}

// Catalog maneja GET /v1/catalog.
func (h *ProfileHandler) Catalog(c *gin.Context) {
	cat, err := h.profile.Catalog()
	if err != nil {
		h.writeError(c, "catalog failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profiles":    cat.Profiles,
		"subProfiles": cat.SubProfiles,
	})
}

func (h *ProfileHandler) writeError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRespondentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "respondent not found"})
	case errors.Is(err, service.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
	case errors.Is(err, service.ErrServiceNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
	default:
		h.logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
