package usecases

import (
	"context"

	"github.com/scamguard-vn/scamguard/internal/domain/report"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

type GetReportQuery struct {
	ID uint
}

type GetReportUseCase struct {
	reportRepo report.Repository
	logger     logger.Interface
}

func NewGetReportUseCase(reportRepo report.Repository, logger logger.Interface) *GetReportUseCase {
	return &GetReportUseCase{reportRepo: reportRepo, logger: logger}
}

func (uc *GetReportUseCase) Execute(ctx context.Context, query GetReportQuery) (*report.Report, error) {
	r, err := uc.reportRepo.GetByID(ctx, query.ID)
	if err != nil {
		uc.logger.Errorw("failed to get report", "report_id", query.ID, "error", err)
		return nil, err
	}
	if r == nil {
		return nil, errors.NewNotFoundError("Report not found")
	}
	return r, nil
}
