package http

import (
	"context"
	"fmt"

	settingUsecases "github.com/scamguard-vn/scamguard/internal/application/setting/usecases"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/auth"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/cache"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/chatbot"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/email"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/permission"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/ratelimit"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/repository"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/scamclient"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/scheduler"
	"github.com/scamguard-vn/scamguard/internal/interfaces/http/middleware"
	"github.com/scamguard-vn/scamguard/internal/shared/services/markdown"
)

// ============================================================
// Section 1: Infrastructure
// ============================================================

func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	c.initRedis()

	c.storage = repository.NewStorage(c.db, log)

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	enforcer, err := permission.NewEnforcer(c.db, log.Named("permission"))
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	c.enforcer = enforcer

	c.markdown = markdown.NewMarkdownService()
	c.alerts = email.NewAlertSender(cfg.Email, log.Named("email"))

	c.scamClient = scamclient.NewClient(cfg.ScamService.BaseURL, cfg.ScamService.APIKey, cfg.ScamService.Timeout(), log)
	c.messaging = scamclient.NewMessagingClient(cfg.Broadcast.BaseURL, cfg.Broadcast.AccessToken, cfg.Broadcast.AppSecret, log)

	rules, err := chatbot.LoadRules(cfg.Chat.RulesPath)
	if err != nil {
		return err
	}
	c.replies = chatbot.NewReplyGenerator(cfg.Chat.ReplyStrategy, rules, c.scamClient, log.Named("chatbot"))

	c.maintenance = settingUsecases.NewMaintenanceModeChecker(c.storage.Settings, log)
	return nil
}

// initRedis connects when enabled. Without redis the search cache and rate
// limiting are switched off rather than failing startup.
func (c *Container) initRedis() {
	if !c.cfg.Redis.Enabled {
		c.log.Infow("redis disabled, running without search cache and rate limiting")
		return
	}

	client, err := cache.NewRedisClient(context.Background(), c.cfg.Redis)
	if err != nil {
		c.log.Warnw("redis unavailable, running without search cache and rate limiting", "error", err)
		return
	}
	c.log.Infow("Redis connection established successfully", "addr", c.cfg.Redis.GetAddr())

	c.redis = client
	c.searchCache = cache.NewScamSearchCache(client, c.cfg.ScamService.CacheTTL())
	c.limiter = ratelimit.NewRedisRateLimiter(client)
}

func (c *Container) initMiddlewares() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.storage.Admins, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)
	c.auditMiddleware = middleware.NewAuditMiddleware(c.ucs.recordAuditUC)
	c.rateLimiter = middleware.NewRateLimiter(c.limiter, c.cfg.RateLimit.Requests, c.cfg.RateLimit.Window(), c.log)
}

// ============================================================
// Section 4: Background jobs
// ============================================================

func (c *Container) initScheduler() error {
	c.schedulerManager = scheduler.NewSchedulerManager(c.log.Named("scheduler"))
	if err := c.schedulerManager.RegisterBroadcastDispatch(c.cfg.Broadcast.ScheduleSpec, c.ucs.dispatchDueUC); err != nil {
		return fmt.Errorf("failed to register broadcast dispatch job: %w", err)
	}
	return nil
}
