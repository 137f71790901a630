package http

import (
	"context"
	"net/http"
	"sort"
	"time"

	"finflix/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

// Probe checks one backing dependency.
type Probe func(ctx context.Context) error

type IHealthHandler interface {
	Healthz(c *gin.Context)
}

type HealthHandler struct {
	probes map[string]Probe
}

// NewHealthHandler reports the process as healthy only while every probe
// passes. A nil map yields a plain liveness check.
func NewHealthHandler(probes map[string]Probe) IHealthHandler {
	return &HealthHandler{probes: probes}
}

// Healthz returns OK for health checks
func (h *HealthHandler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.probes))
	for name := range h.probes {
		names = append(names, name)
	}
	sort.Strings(names)

	checks := gin.H{}
	status := http.StatusOK
	for _, name := range names {
		if err := h.probes[name](ctx); err != nil {
			logger.FromContext(ctx).WithField("error", err).WithField("dependency", name).Warn("Health probe failed")
			checks[name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "up"
	}
	body := gin.H{"status": "ok", "checks": checks}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	c.JSON(status, body)
}
