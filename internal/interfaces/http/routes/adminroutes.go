package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/infrastructure/permission"
	adminHandlers "github.com/scamguard-vn/scamguard/internal/interfaces/http/handlers/admin"
)

// AdminRouteConfig holds dependencies for the admin console routes that are not
// tied to a content type.
type AdminRouteConfig struct {
	AuthHandler      *adminHandlers.AuthHandler
	AnalyticsHandler *adminHandlers.AnalyticsHandler
	SettingHandler   *adminHandlers.SettingHandler
	AuditHandler     *adminHandlers.AuditHandler
	Admin            *AdminGuards
	Public           *PublicGuards
}

// SetupAdminRoutes configures login, analytics, settings and audit log routes.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	// login stays reachable during maintenance
	engine.POST("/api/admin/login", cfg.Public.Limit(), cfg.Admin.AuditLogin(), cfg.AuthHandler.Login)

	admin := engine.Group("/api/admin")
	admin.Use(cfg.Admin.RequireAdmin())
	{
		admin.GET("/analytics", cfg.Admin.Can(permission.ResourceAnalytics, permission.ActionRead), cfg.AnalyticsHandler.GetAnalytics)

		admin.GET("/settings", cfg.Admin.Can(permission.ResourceSetting, permission.ActionRead), cfg.SettingHandler.ListSettings)
		admin.PUT("/settings/:key",
			cfg.Admin.Can(permission.ResourceSetting, permission.ActionUpdate),
			cfg.Admin.Audit(permission.ResourceSetting),
			cfg.SettingHandler.UpsertSetting,
		)

		admin.GET("/audit-logs", cfg.Admin.Can(permission.ResourceAuditLog, permission.ActionRead), cfg.AuditHandler.ListAuditLogs)
	}
}
