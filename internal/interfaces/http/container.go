package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	scamUsecases "github.com/scamguard-vn/scamguard/internal/application/scam/usecases"
	settingUsecases "github.com/scamguard-vn/scamguard/internal/application/setting/usecases"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/auth"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/chatbot"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/config"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/email"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/permission"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/ratelimit"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/repository"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/scamclient"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/scheduler"
	"github.com/scamguard-vn/scamguard/internal/interfaces/http/middleware"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/services/markdown"
)

// Container holds all infrastructure components, use cases, handlers and
// background services, and knows how to shut them down.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface

	// nil when redis is disabled or unreachable
	redis *redis.Client

	storage *repository.Storage

	// Infrastructure services
	jwtSvc      *auth.JWTService
	hasher      *auth.BcryptPasswordHasher
	enforcer    *permission.Enforcer
	markdown    markdown.MarkdownService
	alerts      email.AlertSender
	scamClient  *scamclient.Client
	messaging   *scamclient.MessagingClient
	replies     chatbot.ReplyGenerator
	searchCache scamUsecases.SearchCache
	limiter     ratelimit.RateLimiter
	maintenance *settingUsecases.MaintenanceModeChecker

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	auditMiddleware      *middleware.AuditMiddleware
	rateLimiter          *middleware.RateLimiter

	ucs   *allUseCases
	hdlrs *allHandlers

	schedulerManager *scheduler.SchedulerManager
}

// NewContainer wires every component onto db.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, storage, auth, external clients
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Use cases
	c.ucs = c.newUseCases()

	// Section 3: Middlewares and handlers
	c.initMiddlewares()
	c.hdlrs = c.newHandlers()

	// Section 4: Background jobs
	if err := c.initScheduler(); err != nil {
		return nil, err
	}

	return c, nil
}

// Shutdown stops background work and releases the redis connection.
func (c *Container) Shutdown(ctx context.Context) {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(ctx); err != nil {
			c.log.Warnw("scheduler did not stop cleanly", "error", err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
