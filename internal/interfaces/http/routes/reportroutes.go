package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/infrastructure/permission"
	reportHandlers "github.com/scamguard-vn/scamguard/internal/interfaces/http/handlers/report"
)

// ReportRouteConfig holds dependencies for scam report routes.
type ReportRouteConfig struct {
	Handler *reportHandlers.Handler
	Admin   *AdminGuards
	Public  *PublicGuards
}

// SetupReportRoutes configures public and admin report routes.
func SetupReportRoutes(engine *gin.Engine, cfg *ReportRouteConfig) {
	engine.GET("/api/search", cfg.Handler.SearchReports)

	reports := engine.Group("/api/reports")
	{
		// static paths before /:id
		reports.GET("/recent", cfg.Handler.ListRecent)
		reports.GET("/status/:status", cfg.Handler.ListByStatus)
		reports.POST("", with(append(cfg.Public.Write(), cfg.Public.Audit(permission.ResourceReport)), cfg.Handler.CreateReport)...)
		reports.GET("/:id", cfg.Handler.GetReport)
	}

	adminReports := engine.Group("/api/admin/reports")
	adminReports.Use(cfg.Admin.RequireAdmin(), cfg.Admin.Audit(permission.ResourceReport))
	{
		adminReports.GET("", cfg.Admin.Can(permission.ResourceReport, permission.ActionRead), cfg.Handler.ListReports)
		adminReports.PUT("/:id", cfg.Admin.Can(permission.ResourceReport, permission.ActionUpdate), cfg.Handler.UpdateReport)
		adminReports.PATCH("/:id/status", cfg.Admin.Can(permission.ResourceReport, permission.ActionUpdate), cfg.Handler.UpdateReportStatus)
		adminReports.DELETE("/:id", cfg.Admin.Can(permission.ResourceReport, permission.ActionDelete), cfg.Handler.DeleteReport)
	}
}
