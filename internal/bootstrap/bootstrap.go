package bootstrap

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/changhyeonkim/cardmask/internal/config"
	sharedError "github.com/changhyeonkim/cardmask/internal/shared/error"
	"github.com/changhyeonkim/cardmask/internal/shared/middleware"
	"github.com/gin-gonic/gin"
)

// Bootstrap handles common server setup (engine, middleware chain)
type Bootstrap struct {
	cfg *config.Config
}

// NewBootstrap creates a new bootstrap instance
func NewBootstrap(cfg *config.Config) *Bootstrap {
	return &Bootstrap{
		cfg: cfg,
	}
}

// SetupEngine creates a gin engine with the shared middleware chain.
// Routes are registered separately by router.Setup.
func (b *Bootstrap) SetupEngine() *gin.Engine {
	switch {
	case b.cfg.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case b.cfg.App.Env == "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	// Disable Gin's default logger (using slog)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	engine := gin.New()

	// Order matters: recovery first, request ID before anything that logs
	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(b.cfg))
	engine.Use(middleware.Timeout(middleware.DefaultTimeout))
	engine.Use(middleware.LoggerMiddleware())

	return engine
}

// recoveryHandler handles panics. The panic value is logged by type and
// message only; request bodies may hold card numbers and are never dumped.
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered any) {
	slog.Error("Panic Recovered",
		"error", fmt.Sprintf("%v", recovered),
		"type", fmt.Sprintf("%T", recovered),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.GetRequestID(c),
	)

	c.AbortWithStatusJSON(sharedError.InternalServerError.Status, sharedError.InternalServerError)
}
