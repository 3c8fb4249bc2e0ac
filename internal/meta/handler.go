package meta

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/changhyeonkim/cardmask/internal/config"
	"github.com/changhyeonkim/cardmask/internal/shared/database"
	"github.com/changhyeonkim/cardmask/pkg/cardmask"
	"github.com/gin-gonic/gin"
)

// Handler handles meta endpoints (health check, masking defaults)
type Handler struct {
	cfg *config.Config
	db  *database.DB
}

// NewHandler creates a new meta handler
func NewHandler(cfg *config.Config, db *database.DB) *Handler {
	return &Handler{
		cfg: cfg,
		db:  db,
	}
}

// Health checks service and database health
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	service := gin.H{
		"name":        h.cfg.App.Name,
		"environment": h.cfg.App.Env,
	}

	start := time.Now()
	if err := h.db.HealthCheck(ctx); err != nil {
		slog.Error("Health check 실패", "error", err)

		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": service,
			"checks": gin.H{
				"database": gin.H{
					"status": "down",
					"driver": h.db.Driver(),
					"error":  err.Error(),
				},
			},
		})
		return
	}

	service["port"] = h.cfg.App.Port
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": service,
		"checks": gin.H{
			"database": gin.H{
				"status":     "up",
				"driver":     h.db.Driver(),
				"latency_ms": time.Since(start).Milliseconds(),
			},
		},
	})
}

// MaskDefaults returns the server-wide masking options
func (h *Handler) MaskDefaults(c *gin.Context) {
	opts := h.cfg.Mask.Options()

	c.JSON(http.StatusOK, MaskDefaultsResponse{
		MaskChar:        string(opts.MaskChar),
		UnmaskedStart:   opts.UnmaskedStart,
		UnmaskedEnd:     opts.UnmaskedEnd,
		PreserveSpacing: opts.PreserveSpacing,
		ShowLength:      opts.ShowLength,
		ValidateInput:   opts.ValidateInput,
		MaxBatch:        h.cfg.Mask.MaxBatch,
		MinCardDigits:   cardmask.MinCardDigits,
		MaxCardDigits:   cardmask.MaxCardDigits,
	})
}
