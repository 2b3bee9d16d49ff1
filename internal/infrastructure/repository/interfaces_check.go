package repository

import (
	"github.com/scamguard-vn/scamguard/internal/domain/admin"
	"github.com/scamguard-vn/scamguard/internal/domain/auditlog"
	"github.com/scamguard-vn/scamguard/internal/domain/blog"
	"github.com/scamguard-vn/scamguard/internal/domain/broadcast"
	"github.com/scamguard-vn/scamguard/internal/domain/category"
	"github.com/scamguard-vn/scamguard/internal/domain/chat"
	"github.com/scamguard-vn/scamguard/internal/domain/report"
	"github.com/scamguard-vn/scamguard/internal/domain/setting"
)

var (
	_ report.Repository    = (*ReportRepository)(nil)
	_ blog.Repository      = (*BlogRepository)(nil)
	_ admin.Repository     = (*AdminRepository)(nil)
	_ chat.Repository      = (*ChatRepository)(nil)
	_ category.Repository  = (*CategoryRepository)(nil)
	_ setting.Repository   = (*SystemSettingRepository)(nil)
	_ auditlog.Repository  = (*AuditLogRepository)(nil)
	_ broadcast.Repository = (*BroadcastRepository)(nil)
)
