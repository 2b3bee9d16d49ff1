package http

import (
	adminUsecases "github.com/scamguard-vn/scamguard/internal/application/admin/usecases"
	auditUsecases "github.com/scamguard-vn/scamguard/internal/application/audit/usecases"
	blogUsecases "github.com/scamguard-vn/scamguard/internal/application/blog/usecases"
	broadcastUsecases "github.com/scamguard-vn/scamguard/internal/application/broadcast/usecases"
	categoryUsecases "github.com/scamguard-vn/scamguard/internal/application/category/usecases"
	chatUsecases "github.com/scamguard-vn/scamguard/internal/application/chat/usecases"
	reportUsecases "github.com/scamguard-vn/scamguard/internal/application/report/usecases"
	scamUsecases "github.com/scamguard-vn/scamguard/internal/application/scam/usecases"
	settingUsecases "github.com/scamguard-vn/scamguard/internal/application/setting/usecases"
)

// allUseCases holds every use case instance, grouped by aggregate.
type allUseCases struct {
	// Reports
	createReportUC       *reportUsecases.CreateReportUseCase
	getReportUC          *reportUsecases.GetReportUseCase
	searchReportsUC      *reportUsecases.SearchReportsUseCase
	listRecentReportsUC  *reportUsecases.ListRecentReportsUseCase
	listReportsByStatus  *reportUsecases.ListReportsByStatusUseCase
	listReportsUC        *reportUsecases.ListReportsUseCase
	updateReportUC       *reportUsecases.UpdateReportUseCase
	updateReportStatusUC *reportUsecases.UpdateReportStatusUseCase
	deleteReportUC       *reportUsecases.DeleteReportUseCase

	// Blog
	createPostUC     *blogUsecases.CreatePostUseCase
	getPostUC        *blogUsecases.GetPostUseCase
	listPostsUC      *blogUsecases.ListPostsUseCase
	listByCategoryUC *blogUsecases.ListPostsByCategoryUseCase
	listFeaturedUC   *blogUsecases.ListFeaturedPostsUseCase
	updatePostUC     *blogUsecases.UpdatePostUseCase
	deletePostUC     *blogUsecases.DeletePostUseCase

	// Categories
	listReportCategoriesUC *categoryUsecases.ListReportCategoriesUseCase
	listBlogCategoriesUC   *categoryUsecases.ListBlogCategoriesUseCase
	createReportCategoryUC *categoryUsecases.CreateReportCategoryUseCase
	createBlogCategoryUC   *categoryUsecases.CreateBlogCategoryUseCase

	// Chat
	sendMessageUC   *chatUsecases.SendMessageUseCase
	listSessionsUC  *chatUsecases.ListSessionsUseCase
	listMessagesUC  *chatUsecases.ListMessagesUseCase
	updateSessionUC *chatUsecases.UpdateSessionUseCase
	markReadUC      *chatUsecases.MarkReadUseCase

	// Admin console
	loginUC         *adminUsecases.LoginUseCase
	analyticsUC     *adminUsecases.GetAnalyticsUseCase
	listSettingsUC  *settingUsecases.ListSettingsUseCase
	upsertSettingUC *settingUsecases.UpsertSettingUseCase
	recordAuditUC   *auditUsecases.RecordAuditUseCase
	listAuditLogUC  *auditUsecases.ListAuditLogsUseCase

	// Scam lookups
	searchScamsUC  *scamUsecases.SearchScamsUseCase
	searchSourceUC *scamUsecases.SearchSourceUseCase
	analyzeTextUC  *scamUsecases.AnalyzeTextUseCase
	cacheStatsUC   *scamUsecases.GetCacheStatsUseCase
	clearCacheUC   *scamUsecases.ClearCacheUseCase
	checkHealthUC  *scamUsecases.CheckHealthUseCase

	// Broadcast
	createCampaignUC    *broadcastUsecases.CreateCampaignUseCase
	listCampaignsUC     *broadcastUsecases.ListCampaignsUseCase
	sendCampaignUC      *broadcastUsecases.SendCampaignUseCase
	campaignStatsUC     *broadcastUsecases.GetCampaignStatsUseCase
	deleteCampaignUC    *broadcastUsecases.DeleteCampaignUseCase
	registerRecipientUC *broadcastUsecases.RegisterRecipientUseCase
	followerEventUC     *broadcastUsecases.HandleFollowerEventUseCase
	dispatchDueUC       *broadcastUsecases.DispatchDueUseCase
}

// ============================================================
// Section 2: Use cases
// ============================================================

func (c *Container) newUseCases() *allUseCases {
	s := c.storage
	log := c.log

	dispatcher := broadcastUsecases.NewDispatcher(s.Broadcasts, c.messaging, log)
	registerRecipientUC := broadcastUsecases.NewRegisterRecipientUseCase(s.Broadcasts, log)

	return &allUseCases{
		createReportUC:       reportUsecases.NewCreateReportUseCase(s.Reports, c.alerts, log),
		getReportUC:          reportUsecases.NewGetReportUseCase(s.Reports, log),
		searchReportsUC:      reportUsecases.NewSearchReportsUseCase(s.Reports, log),
		listRecentReportsUC:  reportUsecases.NewListRecentReportsUseCase(s.Reports, log),
		listReportsByStatus:  reportUsecases.NewListReportsByStatusUseCase(s.Reports, log),
		listReportsUC:        reportUsecases.NewListReportsUseCase(s.Reports, log),
		updateReportUC:       reportUsecases.NewUpdateReportUseCase(s.Reports, log),
		updateReportStatusUC: reportUsecases.NewUpdateReportStatusUseCase(s.Reports, log),
		deleteReportUC:       reportUsecases.NewDeleteReportUseCase(s.Reports, log),

		createPostUC:     blogUsecases.NewCreatePostUseCase(s.Blogs, c.markdown, log),
		getPostUC:        blogUsecases.NewGetPostUseCase(s.Blogs, log),
		listPostsUC:      blogUsecases.NewListPostsUseCase(s.Blogs, log),
		listByCategoryUC: blogUsecases.NewListPostsByCategoryUseCase(s.Blogs, log),
		listFeaturedUC:   blogUsecases.NewListFeaturedPostsUseCase(s.Blogs, log),
		updatePostUC:     blogUsecases.NewUpdatePostUseCase(s.Blogs, c.markdown, log),
		deletePostUC:     blogUsecases.NewDeletePostUseCase(s.Blogs, log),

		listReportCategoriesUC: categoryUsecases.NewListReportCategoriesUseCase(s.Categories, log),
		listBlogCategoriesUC:   categoryUsecases.NewListBlogCategoriesUseCase(s.Categories, log),
		createReportCategoryUC: categoryUsecases.NewCreateReportCategoryUseCase(s.Categories, log),
		createBlogCategoryUC:   categoryUsecases.NewCreateBlogCategoryUseCase(s.Categories, log),

		sendMessageUC:   chatUsecases.NewSendMessageUseCase(s.Chat, c.replies, log),
		listSessionsUC:  chatUsecases.NewListSessionsUseCase(s.Chat, log),
		listMessagesUC:  chatUsecases.NewListMessagesUseCase(s.Chat, log),
		updateSessionUC: chatUsecases.NewUpdateSessionUseCase(s.Chat, log),
		markReadUC:      chatUsecases.NewMarkReadUseCase(s.Chat, log),

		loginUC:         adminUsecases.NewLoginUseCase(s.Admins, c.hasher, c.jwtSvc, c.enforcer, log),
		analyticsUC:     adminUsecases.NewGetAnalyticsUseCase(s.Reports, s.Blogs, s.Chat, log),
		listSettingsUC:  settingUsecases.NewListSettingsUseCase(s.Settings, log),
		upsertSettingUC: settingUsecases.NewUpsertSettingUseCase(s.Settings, c.maintenance, log),
		recordAuditUC:   auditUsecases.NewRecordAuditUseCase(s.AuditLogs, log),
		listAuditLogUC:  auditUsecases.NewListAuditLogsUseCase(s.AuditLogs, log),

		searchScamsUC:  scamUsecases.NewSearchScamsUseCase(s.Reports, c.scamClient, c.searchCache, log),
		searchSourceUC: scamUsecases.NewSearchSourceUseCase(c.scamClient, log),
		analyzeTextUC:  scamUsecases.NewAnalyzeTextUseCase(c.scamClient, log),
		cacheStatsUC:   scamUsecases.NewGetCacheStatsUseCase(c.scamClient, log),
		clearCacheUC:   scamUsecases.NewClearCacheUseCase(c.scamClient, c.searchCache, log),
		checkHealthUC:  scamUsecases.NewCheckHealthUseCase(c.scamClient, log),

		createCampaignUC:    broadcastUsecases.NewCreateCampaignUseCase(s.Broadcasts, log),
		listCampaignsUC:     broadcastUsecases.NewListCampaignsUseCase(s.Broadcasts, log),
		sendCampaignUC:      broadcastUsecases.NewSendCampaignUseCase(s.Broadcasts, dispatcher, log),
		campaignStatsUC:     broadcastUsecases.NewGetCampaignStatsUseCase(s.Broadcasts, log),
		deleteCampaignUC:    broadcastUsecases.NewDeleteCampaignUseCase(s.Broadcasts, log),
		registerRecipientUC: registerRecipientUC,
		followerEventUC:     broadcastUsecases.NewHandleFollowerEventUseCase(registerRecipientUC, log),
		dispatchDueUC:       broadcastUsecases.NewDispatchDueUseCase(s.Broadcasts, dispatcher, log),
	}
}
