package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/scamguard-vn/scamguard/internal/infrastructure/config"
	"github.com/scamguard-vn/scamguard/internal/interfaces/http/middleware"
	"github.com/scamguard-vn/scamguard/internal/interfaces/http/routes"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"

	_ "github.com/scamguard-vn/scamguard/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.healthCheck)
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	admin := &routes.AdminGuards{
		Auth:       r.authMiddleware,
		Permission: r.permissionMiddleware,
		AuditLog:   r.auditMiddleware,
	}
	public := &routes.PublicGuards{
		RateLimiter: r.rateLimiter,
		Maintenance: middleware.Maintenance(r.maintenance),
		AuditLog:    r.auditMiddleware,
	}

	routes.SetupReportRoutes(r.engine, &routes.ReportRouteConfig{
		Handler: r.hdlrs.reportHandler,
		Admin:   admin,
		Public:  public,
	})
	routes.SetupBlogRoutes(r.engine, &routes.BlogRouteConfig{
		Handler:        r.hdlrs.blogHandler,
		Admin:          admin,
		Public:         public,
		PublicCreation: r.cfg.Server.PublicBlogCreation,
	})
	routes.SetupCategoryRoutes(r.engine, &routes.CategoryRouteConfig{
		Handler: r.hdlrs.categoryHandler,
		Admin:   admin,
	})
	routes.SetupChatRoutes(r.engine, &routes.ChatRouteConfig{
		Handler: r.hdlrs.chatHandler,
		Admin:   admin,
		Public:  public,
	})
	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AuthHandler:      r.hdlrs.authHandler,
		AnalyticsHandler: r.hdlrs.analyticsHandler,
		SettingHandler:   r.hdlrs.settingHandler,
		AuditHandler:     r.hdlrs.auditHandler,
		Admin:            admin,
		Public:           public,
	})
	routes.SetupScamRoutes(r.engine, &routes.ScamRouteConfig{
		Handler: r.hdlrs.scamHandler,
		Admin:   admin,
		Public:  public,
	})
	routes.SetupBroadcastRoutes(r.engine, &routes.BroadcastRouteConfig{
		Handler: r.hdlrs.broadcastHandler,
		Admin:   admin,
	})
}

// healthCheck reports liveness and whether the database answers.
func (r *Router) healthCheck(c *gin.Context) {
	status := "healthy"
	code := http.StatusOK

	sqlDB, err := r.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		r.log.Warnw("health check database ping failed", "error", err)
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":   status,
		"database": err == nil,
		"redis":    r.redis != nil,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// StartScheduler starts the background jobs registered on the container.
func (r *Router) StartScheduler() {
	r.schedulerManager.Start()
}

// Shutdown gracefully shuts down the router
func (r *Router) Shutdown(ctx context.Context) {
	r.Container.Shutdown(ctx)
}
