package http

import (
	adminHandlers "github.com/scamguard-vn/scamguard/internal/interfaces/http/handlers/admin"
	blogHandlers "github.com/scamguard-vn/scamguard/internal/interfaces/http/handlers/blog"
	broadcastHandlers "github.com/scamguard-vn/scamguard/internal/interfaces/http/handlers/broadcast"
	categoryHandlers "github.com/scamguard-vn/scamguard/internal/interfaces/http/handlers/category"
	chatHandlers "github.com/scamguard-vn/scamguard/internal/interfaces/http/handlers/chat"
	reportHandlers "github.com/scamguard-vn/scamguard/internal/interfaces/http/handlers/report"
	scamHandlers "github.com/scamguard-vn/scamguard/internal/interfaces/http/handlers/scam"
)

// allHandlers holds every HTTP handler instance.
type allHandlers struct {
	reportHandler    *reportHandlers.Handler
	blogHandler      *blogHandlers.Handler
	categoryHandler  *categoryHandlers.Handler
	chatHandler      *chatHandlers.Handler
	scamHandler      *scamHandlers.Handler
	broadcastHandler *broadcastHandlers.Handler

	authHandler      *adminHandlers.AuthHandler
	analyticsHandler *adminHandlers.AnalyticsHandler
	settingHandler   *adminHandlers.SettingHandler
	auditHandler     *adminHandlers.AuditHandler
}

// ============================================================
// Section 3: Handlers
// ============================================================

func (c *Container) newHandlers() *allHandlers {
	u := c.ucs
	log := c.log

	// webhooks are only verified when an app secret is configured
	var verifier broadcastHandlers.SignatureVerifier
	if c.cfg.Broadcast.AppSecret != "" {
		verifier = c.messaging
	} else {
		log.Warnw("broadcast app secret not set, follower webhook accepts unsigned events")
	}

	return &allHandlers{
		reportHandler: reportHandlers.NewHandler(
			u.createReportUC, u.getReportUC, u.searchReportsUC, u.listRecentReportsUC,
			u.listReportsByStatus, u.listReportsUC, u.updateReportUC, u.updateReportStatusUC,
			u.deleteReportUC, log,
		),
		blogHandler: blogHandlers.NewHandler(
			u.createPostUC, u.getPostUC, u.listPostsUC, u.listByCategoryUC,
			u.listFeaturedUC, u.updatePostUC, u.deletePostUC, log,
		),
		categoryHandler: categoryHandlers.NewHandler(
			u.listReportCategoriesUC, u.listBlogCategoriesUC,
			u.createReportCategoryUC, u.createBlogCategoryUC, log,
		),
		chatHandler: chatHandlers.NewHandler(
			u.sendMessageUC, u.listSessionsUC, u.listMessagesUC, u.updateSessionUC, u.markReadUC, log,
		),
		scamHandler: scamHandlers.NewHandler(
			u.searchScamsUC, u.searchSourceUC, u.analyzeTextUC,
			u.cacheStatsUC, u.clearCacheUC, u.checkHealthUC, log,
		),
		broadcastHandler: broadcastHandlers.NewHandler(
			u.createCampaignUC, u.listCampaignsUC, u.sendCampaignUC, u.campaignStatsUC,
			u.deleteCampaignUC, u.registerRecipientUC, u.followerEventUC, verifier, log,
		),

		authHandler:      adminHandlers.NewAuthHandler(u.loginUC, log),
		analyticsHandler: adminHandlers.NewAnalyticsHandler(u.analyticsUC, log),
		settingHandler:   adminHandlers.NewSettingHandler(u.listSettingsUC, u.upsertSettingUC, log),
		auditHandler:     adminHandlers.NewAuditHandler(u.listAuditLogUC, log),
	}
}
