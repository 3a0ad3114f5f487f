package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/justradojko/intellij-community/internal/config"
	"github.com/justradojko/intellij-community/internal/project"
	"github.com/justradojko/intellij-community/pkg/logger"
)

type HealthHandler struct {
	roots  project.RootProvider
	logger logger.Logger
}

func NewHealthHandler(roots project.RootProvider, logger logger.Logger) *HealthHandler {
	return &HealthHandler{
		roots:  roots,
		logger: logger,
	}
}

// GET /health - Quick health check
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   config.ServiceName,
		"version":   config.ServiceVersion,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// GET /ready - ready once a project root is set and readable
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	checks := make(map[string]interface{})
	ready := true

	root, ok := "", false
	if h.roots != nil {
		root, ok = h.roots.Root()
	}
	switch {
	case !ok:
		checks["project"] = map[string]interface{}{"status": "unhealthy", "error": "no project is open"}
		ready = false
	default:
		if _, err := os.ReadDir(root); err != nil {
			checks["project"] = map[string]interface{}{"status": "unhealthy", "root": root, "error": err.Error()}
			ready = false
		} else {
			checks["project"] = map[string]interface{}{"status": "healthy", "root": root}
		}
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !ready {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
		h.logger.Warn("Readiness check failed", "checks", checks)
	}
	c.JSON(httpStatus, gin.H{
		"status":    status,
		"service":   config.ServiceName,
		"version":   config.ServiceVersion,
		"checks":    checks,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
