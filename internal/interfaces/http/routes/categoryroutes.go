package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/infrastructure/permission"
	categoryHandlers "github.com/scamguard-vn/scamguard/internal/interfaces/http/handlers/category"
)

type CategoryRouteConfig struct {
	Handler *categoryHandlers.Handler
	Admin   *AdminGuards
}

func SetupCategoryRoutes(engine *gin.Engine, cfg *CategoryRouteConfig) {
	engine.GET("/api/categories/reports", cfg.Handler.ListReportCategories)
	engine.GET("/api/categories/blogs", cfg.Handler.ListBlogCategories)

	adminCategories := engine.Group("/api/admin/categories")
	adminCategories.Use(
		cfg.Admin.RequireAdmin(),
		cfg.Admin.Can(permission.ResourceCategory, permission.ActionCreate),
		cfg.Admin.Audit(permission.ResourceCategory),
	)
	{
		adminCategories.POST("/reports", cfg.Handler.CreateReportCategory)
		adminCategories.POST("/blogs", cfg.Handler.CreateBlogCategory)
	}
}
