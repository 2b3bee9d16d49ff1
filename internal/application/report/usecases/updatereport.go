package usecases

import (
	"context"
	"time"

	"github.com/scamguard-vn/scamguard/internal/domain/report"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

type UpdateReportCommand struct {
	ID    uint
	Patch report.Patch
}

// UpdateReportUseCase applies an admin edit. It never touches verification fields.
type UpdateReportUseCase struct {
	reportRepo report.Repository
	logger     logger.Interface
}

func NewUpdateReportUseCase(reportRepo report.Repository, logger logger.Interface) *UpdateReportUseCase {
	return &UpdateReportUseCase{reportRepo: reportRepo, logger: logger}
}

func (uc *UpdateReportUseCase) Execute(ctx context.Context, cmd UpdateReportCommand) (*report.Report, error) {
	p := cmd.Patch
	if p.Status != nil && !p.Status.IsValid() {
		return nil, errors.NewValidationError("invalid report status", string(*p.Status))
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		return nil, errors.NewValidationError("invalid report priority", string(*p.Priority))
	}
	if p.Amount != nil && *p.Amount <= 0 {
		return nil, errors.NewValidationError("amount must be greater than 0")
	}

	updated, err := uc.reportRepo.Update(ctx, cmd.ID, p)
	if err != nil {
		uc.logger.Errorw("failed to update report", "report_id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("report updated", "report_id", cmd.ID)
	return updated, nil
}

type UpdateReportStatusCommand struct {
	ID         uint
	Status     string
	VerifiedBy *string
	// Actor is the authenticated admin, used as verifier when VerifiedBy is empty.
	Actor string
}

type UpdateReportStatusUseCase struct {
	reportRepo report.Repository
	logger     logger.Interface
	now        func() time.Time
}

func NewUpdateReportStatusUseCase(reportRepo report.Repository, logger logger.Interface) *UpdateReportStatusUseCase {
	return &UpdateReportStatusUseCase{
		reportRepo: reportRepo,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (uc *UpdateReportStatusUseCase) Execute(ctx context.Context, cmd UpdateReportStatusCommand) (*report.Report, error) {
	status := report.Status(cmd.Status)
	if !status.IsValid() {
		return nil, errors.NewValidationError("invalid report status", cmd.Status)
	}

	var verifiedBy *string
	if status == report.StatusVerified {
		switch {
		case cmd.VerifiedBy != nil && *cmd.VerifiedBy != "":
			verifiedBy = cmd.VerifiedBy
		case cmd.Actor != "":
			actor := cmd.Actor
			verifiedBy = &actor
		}
	}

	updated, err := uc.reportRepo.UpdateStatus(ctx, cmd.ID, status, verifiedBy, uc.now())
	if err != nil {
		uc.logger.Errorw("failed to update report status", "report_id", cmd.ID, "status", status, "error", err)
		return nil, err
	}

	uc.logger.Infow("report status changed", "report_id", cmd.ID, "status", status)
	return updated, nil
}
