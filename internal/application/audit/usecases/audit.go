package usecases

import (
	"context"
	"time"

	"github.com/scamguard-vn/scamguard/internal/domain/auditlog"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/goroutine"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

const recordTimeout = 5 * time.Second

type RecordAuditExecutor interface {
	Execute(ctx context.Context, cmd RecordAuditCommand)
}

type ListAuditLogsExecutor interface {
	Execute(ctx context.Context, query ListAuditLogsQuery) ([]*auditlog.Entry, error)
}

type RecordAuditCommand struct {
	AdminID      *uint
	Action       string
	ResourceType string
	ResourceID   *string
	Details      map[string]any
	IPAddress    string
	UserAgent    string
}

// RecordAuditUseCase writes the entry in the background; failures are only logged.
type RecordAuditUseCase struct {
	repo   auditlog.Repository
	logger logger.Interface
	now    func() time.Time
}

func NewRecordAuditUseCase(repo auditlog.Repository, logger logger.Interface) *RecordAuditUseCase {
	return &RecordAuditUseCase{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (uc *RecordAuditUseCase) Execute(ctx context.Context, cmd RecordAuditCommand) {
	entry := &auditlog.Entry{
		UserID:       cmd.AdminID,
		Action:       cmd.Action,
		ResourceType: cmd.ResourceType,
		ResourceID:   cmd.ResourceID,
		Details:      cmd.Details,
		IPAddress:    cmd.IPAddress,
		UserAgent:    cmd.UserAgent,
		Timestamp:    uc.now(),
	}

	goroutine.Detached(ctx, uc.logger, "audit-record", recordTimeout, func(ctx context.Context) {
		if err := uc.repo.Create(ctx, entry); err != nil {
			uc.logger.Warnw("failed to record audit entry",
				"action", entry.Action,
				"resource_type", entry.ResourceType,
				"error", err,
			)
		}
	})
}

type ListAuditLogsQuery struct {
	Limit  int
	Offset int
}

type ListAuditLogsUseCase struct {
	repo   auditlog.Repository
	logger logger.Interface
}

func NewListAuditLogsUseCase(repo auditlog.Repository, logger logger.Interface) *ListAuditLogsUseCase {
	return &ListAuditLogsUseCase{repo: repo, logger: logger}
}

func (uc *ListAuditLogsUseCase) Execute(ctx context.Context, query ListAuditLogsQuery) ([]*auditlog.Entry, error) {
	limit := utils.NormalizeLimit(query.Limit, constants.DefaultAuditLogLimit)
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	entries, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		uc.logger.Errorw("failed to list audit logs", "error", err)
		return nil, err
	}
	return entries, nil
}
