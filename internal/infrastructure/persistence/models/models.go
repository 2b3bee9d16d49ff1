package models

// All lists every persisted model in creation order, for AutoMigrate and tests.
func All() []interface{} {
	return []interface{}{
		&ReportModel{},
		&BlogPostModel{},
		&AdminModel{},
		&ChatSessionModel{},
		&ChatMessageModel{},
		&ReportCategoryModel{},
		&BlogCategoryModel{},
		&SystemSettingModel{},
		&AuditLogModel{},
		&BroadcastCampaignModel{},
		&BroadcastRecipientModel{},
		&BroadcastFailureModel{},
	}
}
