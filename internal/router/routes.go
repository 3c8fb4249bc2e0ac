package router

import (
	"github.com/changhyeonkim/cardmask/internal/auth"
	"github.com/changhyeonkim/cardmask/internal/card"
	"github.com/changhyeonkim/cardmask/internal/config"
	"github.com/changhyeonkim/cardmask/internal/meta"
	"github.com/changhyeonkim/cardmask/internal/operator"
	"github.com/changhyeonkim/cardmask/internal/preset"
	"github.com/changhyeonkim/cardmask/internal/shared/database"
	"github.com/changhyeonkim/cardmask/internal/shared/middleware"
	"github.com/changhyeonkim/cardmask/internal/shared/token"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	// Meta handler (health check, masking defaults)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// repository
	operatorRepository := operator.NewOperatorRepository()
	presetRepository := preset.NewPresetRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)
	requireAuth := middleware.JWTWithManager(tokenManager)

	// service
	authService := auth.NewAuthService(db.DB, operatorRepository, tokenManager)
	operatorService := operator.NewOperatorService(db.DB, operatorRepository)
	presetService := preset.NewPresetService(db.DB, presetRepository)
	cardService := card.NewCardService(cfg, presetService)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	operatorHandler := operator.NewOperatorHandler(operatorService)
	presetHandler := preset.NewPresetHandler(presetService)
	cardHandler := card.NewCardHandler(cardService)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	{
		authV1.POST("/signup", authHandler.Signup)
		authV1.POST("/login", authHandler.Login)
		authV1.POST("/refresh", authHandler.Refresh)
	}

	operatorV1 := router.Group("/api/v1/operators")
	operatorV1.Use(requireAuth)
	{
		operatorV1.GET("/me", operatorHandler.GetProfile)
	}

	presetV1 := router.Group("/api/v1/presets")
	presetV1.Use(requireAuth)
	{
		presetV1.POST("", presetHandler.Create)
		presetV1.GET("", presetHandler.List)
		presetV1.GET("/:name", presetHandler.Get)
		presetV1.PUT("/:name", presetHandler.Update)
		presetV1.DELETE("/:name", presetHandler.Delete)
	}

	// Masking is stateless and open; card numbers are never stored.
	cardV1 := router.Group("/api/v1/cards")
	{
		cardV1.POST("/mask", cardHandler.Mask)
		cardV1.POST("/mask/batch", cardHandler.MaskBatch)
	}

	metaV1 := router.Group("/api/v1/meta")
	{
		metaV1.GET("/mask-defaults", metaHandler.MaskDefaults)
	}
}
