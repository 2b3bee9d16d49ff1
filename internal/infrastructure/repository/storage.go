package repository

import (
	"gorm.io/gorm"

	"github.com/scamguard-vn/scamguard/internal/shared/db"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

// Storage bundles one repository per aggregate. It is the only component that talks to gorm.
type Storage struct {
	Reports    *ReportRepository
	Blogs      *BlogRepository
	Admins     *AdminRepository
	Chat       *ChatRepository
	Categories *CategoryRepository
	Settings   *SystemSettingRepository
	AuditLogs  *AuditLogRepository
	Broadcasts *BroadcastRepository

	Tx *db.TransactionManager
}

// NewStorage wires every repository onto the same connection.
func NewStorage(database *gorm.DB, log logger.Interface) *Storage {
	return &Storage{
		Reports:    NewReportRepository(database, log.Named("report_repository")),
		Blogs:      NewBlogRepository(database, log.Named("blog_repository")),
		Admins:     NewAdminRepository(database, log.Named("admin_repository")),
		Chat:       NewChatRepository(database, log.Named("chat_repository")),
		Categories: NewCategoryRepository(database, log.Named("category_repository")),
		Settings:   NewSystemSettingRepository(database, log.Named("setting_repository")),
		AuditLogs:  NewAuditLogRepository(database),
		Broadcasts: NewBroadcastRepository(database, log.Named("broadcast_repository")),
		Tx:         db.NewTransactionManager(database),
	}
}
