package usecases

import (
	"context"

	"github.com/scamguard-vn/scamguard/internal/domain/report"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

type DeleteReportCommand struct {
	ID uint
}

type DeleteReportUseCase struct {
	reportRepo report.Repository
	logger     logger.Interface
}

func NewDeleteReportUseCase(reportRepo report.Repository, logger logger.Interface) *DeleteReportUseCase {
	return &DeleteReportUseCase{reportRepo: reportRepo, logger: logger}
}

func (uc *DeleteReportUseCase) Execute(ctx context.Context, cmd DeleteReportCommand) error {
	if err := uc.reportRepo.Delete(ctx, cmd.ID); err != nil {
		uc.logger.Errorw("failed to delete report", "report_id", cmd.ID, "error", err)
		return err
	}
	uc.logger.Infow("report deleted", "report_id", cmd.ID)
	return nil
}
