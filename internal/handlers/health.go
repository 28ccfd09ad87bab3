// internal/handlers/health.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/catalog-service/internal/i18n"
	"github.com/javajoker/catalog-service/internal/utils"
)

const Version = "1.0.0"

type HealthHandler struct {
	ping func(ctx context.Context) error
}

func NewHealthHandler(ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "database unavailable", err.Error())
		return
	}

	utils.SuccessResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyHealthy), gin.H{
		"status":  "healthy",
		"version": Version,
	})
}
