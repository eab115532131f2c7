package http

import (
	"net/http"
	"time"

	"media-portal/domain/dto"

	"github.com/gin-gonic/gin"
)

type IHealthHandler interface {
	Health(ctx *gin.Context)
}

// HealthHandler reports liveness and process uptime
type HealthHandler struct {
	environment string
	startedAt   time.Time
	now         func() time.Time
}

func NewHealthHandler(environment string, startedAt time.Time) *HealthHandler {
	return &HealthHandler{environment: environment, startedAt: startedAt, now: time.Now}
}

// WithClock replaces the time source (fluent)
func (h *HealthHandler) WithClock(now func() time.Time) *HealthHandler {
	h.now = now
	return h
}

// Health handles GET /health and /api/health
func (h *HealthHandler) Health(ctx *gin.Context) {
	now := h.now()
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:      "healthy",
		Timestamp:   now.UTC().Format(time.RFC3339Nano),
		Uptime:      now.Sub(h.startedAt).Seconds(),
		Environment: h.environment,
	})
}
