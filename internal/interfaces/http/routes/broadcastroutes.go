package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/infrastructure/permission"
	broadcastHandlers "github.com/scamguard-vn/scamguard/internal/interfaces/http/handlers/broadcast"
)

type BroadcastRouteConfig struct {
	Handler *broadcastHandlers.Handler
	Admin   *AdminGuards
}

// SetupBroadcastRoutes configures messaging campaigns and the follower webhook.
func SetupBroadcastRoutes(engine *gin.Engine, cfg *BroadcastRouteConfig) {
	zalo := engine.Group("/api/v1/zalo")

	// signed by the messaging platform, not by an admin
	zalo.POST("/webhook", cfg.Handler.Webhook)

	campaigns := zalo.Group("/broadcast")
	campaigns.Use(cfg.Admin.RequireAdmin(), cfg.Admin.Audit(permission.ResourceBroadcast))
	{
		campaigns.GET("/campaigns", cfg.Admin.Can(permission.ResourceBroadcast, permission.ActionRead), cfg.Handler.ListCampaigns)
		campaigns.POST("/create", cfg.Admin.Can(permission.ResourceBroadcast, permission.ActionCreate), cfg.Handler.CreateCampaign)
		campaigns.POST("/:id/send", cfg.Admin.Can(permission.ResourceBroadcast, permission.ActionSend), cfg.Handler.SendCampaign)
		campaigns.GET("/:id/stats", cfg.Admin.Can(permission.ResourceBroadcast, permission.ActionRead), cfg.Handler.GetCampaignStats)
		campaigns.DELETE("/:id", cfg.Admin.Can(permission.ResourceBroadcast, permission.ActionDelete), cfg.Handler.DeleteCampaign)
	}

	zalo.POST("/recipients",
		cfg.Admin.RequireAdmin(),
		cfg.Admin.Can(permission.ResourceBroadcast, permission.ActionCreate),
		cfg.Admin.Audit(permission.ResourceBroadcast),
		cfg.Handler.RegisterRecipient,
	)
}
