package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/infrastructure/permission"
	scamHandlers "github.com/scamguard-vn/scamguard/internal/interfaces/http/handlers/scam"
)

type ScamRouteConfig struct {
	Handler *scamHandlers.Handler
	Admin   *AdminGuards
	Public  *PublicGuards
}

// SetupScamRoutes configures lookups proxied to the scam search service.
func SetupScamRoutes(engine *gin.Engine, cfg *ScamRouteConfig) {
	v1 := engine.Group("/api/v1")
	{
		v1.GET("/health", cfg.Handler.Health)

		v1.GET("/scams/search", cfg.Public.Limit(), cfg.Handler.Search)
		v1.GET("/scams/:source", cfg.Public.Limit(), cfg.Handler.SearchSource)
		v1.POST("/ai/analyze", cfg.Public.Limit(), cfg.Handler.Analyze)

		cache := v1.Group("/cache")
		cache.Use(cfg.Admin.RequireAdmin(), cfg.Admin.Audit(permission.ResourceScam))
		{
			cache.GET("/stats", cfg.Admin.Can(permission.ResourceScam, permission.ActionRead), cfg.Handler.CacheStats)
			cache.DELETE("/clear", cfg.Admin.Can(permission.ResourceScam, permission.ActionDelete), cfg.Handler.ClearCache)
		}
	}
}
