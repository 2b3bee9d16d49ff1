package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/infrastructure/permission"
	chatHandlers "github.com/scamguard-vn/scamguard/internal/interfaces/http/handlers/chat"
)

type ChatRouteConfig struct {
	Handler *chatHandlers.Handler
	Admin   *AdminGuards
	Public  *PublicGuards
}

// SetupChatRoutes configures the support chat and its admin inbox.
func SetupChatRoutes(engine *gin.Engine, cfg *ChatRouteConfig) {
	engine.POST("/api/chat", with(append(cfg.Public.Write(), cfg.Public.Audit(permission.ResourceChat)), cfg.Handler.SendMessage)...)

	sessions := engine.Group("/api/admin/chat/sessions")
	sessions.Use(cfg.Admin.RequireAdmin(), cfg.Admin.Audit(permission.ResourceChat))
	{
		sessions.GET("", cfg.Admin.Can(permission.ResourceChat, permission.ActionRead), cfg.Handler.ListSessions)
		sessions.GET("/:sessionId/messages", cfg.Admin.Can(permission.ResourceChat, permission.ActionRead), cfg.Handler.ListMessages)
		sessions.PATCH("/:sessionId", cfg.Admin.Can(permission.ResourceChat, permission.ActionUpdate), cfg.Handler.UpdateSession)
		sessions.PATCH("/:sessionId/read", cfg.Admin.Can(permission.ResourceChat, permission.ActionUpdate), cfg.Handler.MarkRead)
	}
}
