package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/infrastructure/permission"
	blogHandlers "github.com/scamguard-vn/scamguard/internal/interfaces/http/handlers/blog"
)

// BlogRouteConfig holds dependencies for blog routes.
type BlogRouteConfig struct {
	Handler *blogHandlers.Handler
	Admin   *AdminGuards
	Public  *PublicGuards
	// PublicCreation lets anonymous clients submit posts.
	PublicCreation bool
}

// SetupBlogRoutes configures public and admin blog routes.
func SetupBlogRoutes(engine *gin.Engine, cfg *BlogRouteConfig) {
	blogs := engine.Group("/api/blogs")
	{
		blogs.GET("", cfg.Admin.OptionalAdmin(), cfg.Handler.ListPosts)
		blogs.GET("/featured", cfg.Handler.ListFeatured)
		blogs.GET("/category/:category", cfg.Handler.ListByCategory)
		blogs.GET("/slug/:slug", cfg.Handler.GetPostBySlug)
		blogs.GET("/:id", cfg.Handler.GetPost)

		if cfg.PublicCreation {
			chain := append(cfg.Public.Write(), cfg.Admin.OptionalAdmin(), cfg.Public.Audit(permission.ResourceBlog))
			blogs.POST("", with(chain, cfg.Handler.CreatePost)...)
		} else {
			blogs.POST("",
				cfg.Admin.RequireAdmin(),
				cfg.Admin.Can(permission.ResourceBlog, permission.ActionCreate),
				cfg.Admin.Audit(permission.ResourceBlog),
				cfg.Handler.CreatePost,
			)
		}
	}

	adminBlogs := engine.Group("/api/admin/blogs")
	adminBlogs.Use(cfg.Admin.RequireAdmin(), cfg.Admin.Audit(permission.ResourceBlog))
	{
		adminBlogs.PUT("/:id", cfg.Admin.Can(permission.ResourceBlog, permission.ActionUpdate), cfg.Handler.UpdatePost)
		adminBlogs.DELETE("/:id", cfg.Admin.Can(permission.ResourceBlog, permission.ActionDelete), cfg.Handler.DeletePost)
	}
}
