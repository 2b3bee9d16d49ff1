package usecases

import (
	"context"
	"strings"

	"github.com/scamguard-vn/scamguard/internal/domain/report"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

type SearchReportsQuery struct {
	Query  string
	Filter report.Filter
}

// SearchReportsUseCase runs the public substring search. An empty query lists everything.
type SearchReportsUseCase struct {
	reportRepo report.Repository
	logger     logger.Interface
}

func NewSearchReportsUseCase(reportRepo report.Repository, logger logger.Interface) *SearchReportsUseCase {
	return &SearchReportsUseCase{reportRepo: reportRepo, logger: logger}
}

func (uc *SearchReportsUseCase) Execute(ctx context.Context, query SearchReportsQuery) ([]*report.Report, error) {
	if err := validateFilter(query.Filter); err != nil {
		return nil, err
	}

	results, err := uc.reportRepo.Search(ctx, strings.TrimSpace(query.Query), query.Filter)
	if err != nil {
		uc.logger.Errorw("failed to search reports", "error", err)
		return nil, err
	}
	return results, nil
}

type ListRecentReportsQuery struct {
	Limit int
}

type ListRecentReportsUseCase struct {
	reportRepo report.Repository
	logger     logger.Interface
}

func NewListRecentReportsUseCase(reportRepo report.Repository, logger logger.Interface) *ListRecentReportsUseCase {
	return &ListRecentReportsUseCase{reportRepo: reportRepo, logger: logger}
}

func (uc *ListRecentReportsUseCase) Execute(ctx context.Context, query ListRecentReportsQuery) ([]*report.Report, error) {
	limit := utils.NormalizeLimit(query.Limit, constants.DefaultRecentReportsLimit)
	results, err := uc.reportRepo.Recent(ctx, limit)
	if err != nil {
		uc.logger.Errorw("failed to list recent reports", "error", err)
		return nil, err
	}
	return results, nil
}

type ListReportsByStatusQuery struct {
	Status string
	Limit  int
}

type ListReportsByStatusUseCase struct {
	reportRepo report.Repository
	logger     logger.Interface
}

func NewListReportsByStatusUseCase(reportRepo report.Repository, logger logger.Interface) *ListReportsByStatusUseCase {
	return &ListReportsByStatusUseCase{reportRepo: reportRepo, logger: logger}
}

func (uc *ListReportsByStatusUseCase) Execute(ctx context.Context, query ListReportsByStatusQuery) ([]*report.Report, error) {
	status := report.Status(query.Status)
	if !status.IsValid() {
		return nil, errors.NewValidationError("invalid report status", query.Status)
	}

	limit := utils.NormalizeLimit(query.Limit, constants.DefaultReportListLimit)
	results, err := uc.reportRepo.ListByStatus(ctx, status, limit)
	if err != nil {
		uc.logger.Errorw("failed to list reports by status", "status", status, "error", err)
		return nil, err
	}
	return results, nil
}

type ListReportsQuery struct {
	Filter report.Filter
}

// ListReportsUseCase backs the admin report table.
type ListReportsUseCase struct {
	reportRepo report.Repository
	logger     logger.Interface
}

func NewListReportsUseCase(reportRepo report.Repository, logger logger.Interface) *ListReportsUseCase {
	return &ListReportsUseCase{reportRepo: reportRepo, logger: logger}
}

func (uc *ListReportsUseCase) Execute(ctx context.Context, query ListReportsQuery) ([]*report.Report, error) {
	if err := validateFilter(query.Filter); err != nil {
		return nil, err
	}

	filter := query.Filter
	filter.Limit = utils.NormalizeLimit(filter.Limit, constants.DefaultReportListLimit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	results, err := uc.reportRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list reports", "error", err)
		return nil, err
	}
	return results, nil
}

func validateFilter(f report.Filter) error {
	if f.Status != nil && !f.Status.IsValid() {
		return errors.NewValidationError("invalid report status", string(*f.Status))
	}
	if f.Priority != nil && !f.Priority.IsValid() {
		return errors.NewValidationError("invalid report priority", string(*f.Priority))
	}
	return nil
}
