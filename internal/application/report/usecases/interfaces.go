package usecases

import (
	"context"

	"github.com/scamguard-vn/scamguard/internal/domain/report"
)

type CreateReportExecutor interface {
	Execute(ctx context.Context, cmd CreateReportCommand) (*report.Report, error)
}

type GetReportExecutor interface {
	Execute(ctx context.Context, query GetReportQuery) (*report.Report, error)
}

type SearchReportsExecutor interface {
	Execute(ctx context.Context, query SearchReportsQuery) ([]*report.Report, error)
}

type ListRecentReportsExecutor interface {
	Execute(ctx context.Context, query ListRecentReportsQuery) ([]*report.Report, error)
}

type ListReportsByStatusExecutor interface {
	Execute(ctx context.Context, query ListReportsByStatusQuery) ([]*report.Report, error)
}

type ListReportsExecutor interface {
	Execute(ctx context.Context, query ListReportsQuery) ([]*report.Report, error)
}

type UpdateReportExecutor interface {
	Execute(ctx context.Context, cmd UpdateReportCommand) (*report.Report, error)
}

type UpdateReportStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateReportStatusCommand) (*report.Report, error)
}

type DeleteReportExecutor interface {
	Execute(ctx context.Context, cmd DeleteReportCommand) error
}

// AlertSender is notified after a report is stored.
type AlertSender interface {
	SendNewReportAlert(ctx context.Context, r *report.Report) error
}
