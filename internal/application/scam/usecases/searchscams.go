package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/scamguard-vn/scamguard/internal/domain/report"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/scamclient"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

// SourceLocal names the envelope entry built from our own reports.
const SourceLocal = "local"

const localMatchLimit = 50

type SearchScamsQuery struct {
	Keyword string
	Type    string
}

// SearchScamsUseCase answers from local reports when any match, otherwise from the
// search cache, otherwise from the scraping service.
type SearchScamsUseCase struct {
	reportRepo report.Repository
	service    ScamService
	cache      SearchCache
	logger     logger.Interface
	now        func() time.Time
}

// NewSearchScamsUseCase accepts a nil cache when redis is disabled.
func NewSearchScamsUseCase(
	reportRepo report.Repository,
	service ScamService,
	cache SearchCache,
	logger logger.Interface,
) *SearchScamsUseCase {
	return &SearchScamsUseCase{
		reportRepo: reportRepo,
		service:    service,
		cache:      cache,
		logger:     logger,
		now:        time.Now,
	}
}

func (uc *SearchScamsUseCase) Execute(ctx context.Context, query SearchScamsQuery) (*scamclient.SearchResponse, error) {
	started := uc.now()

	keyword := strings.TrimSpace(query.Keyword)
	if keyword == "" {
		return nil, errors.NewValidationError("keyword is required")
	}
	searchType := strings.TrimSpace(query.Type)
	if searchType == "" {
		searchType = scamclient.SourceAll
	}
	if searchType != scamclient.SourceAll && !scamclient.IsValidSource(searchType) {
		return nil, errors.NewValidationError("invalid search type", searchType)
	}

	local, err := uc.reportRepo.FindByIdentifier(ctx, keyword, true, localMatchLimit)
	if err != nil {
		uc.logger.Errorw("failed to search local reports", "error", err)
		return nil, err
	}
	if resp := localEnvelope(keyword, local); resp != nil {
		resp.ResponseTimeMs = uc.now().Sub(started).Milliseconds()
		uc.logger.Infow("scam search answered locally", "matches", resp.TotalResults)
		return resp, nil
	}

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, keyword, searchType)
		if err != nil {
			uc.logger.Warnw("scam search cache read failed", "error", err)
		}
		if cached != nil {
			cached.Cached = true
			cached.ResponseTimeMs = uc.now().Sub(started).Milliseconds()
			return cached, nil
		}
	}

	resp, err := uc.service.SearchScams(ctx, keyword, searchType)
	if err != nil {
		return nil, errors.NewUpstreamError("scam search service failed", err)
	}
	resp.Cached = false

	if uc.cache != nil && resp.Success {
		if err := uc.cache.Set(ctx, keyword, searchType, resp); err != nil {
			uc.logger.Warnw("scam search cache write failed", "error", err)
		}
	}

	resp.ResponseTimeMs = uc.now().Sub(started).Milliseconds()
	return resp, nil
}

// localEnvelope reshapes local matches into the service's envelope; nil when none.
func localEnvelope(keyword string, reports []*report.Report) *scamclient.SearchResponse {
	data := make([]map[string]any, 0, len(reports))
	for _, r := range reports {
		data = append(data, reportToResult(r))
	}
	if len(data) == 0 {
		return nil
	}

	return &scamclient.SearchResponse{
		Success:      true,
		Keyword:      keyword,
		TotalResults: len(data),
		Sources: []scamclient.SourceResult{{
			Success:    true,
			Source:     SourceLocal,
			Keyword:    keyword,
			TotalScams: len(data),
			Data:       data,
		}},
	}
}

func reportToResult(r *report.Report) map[string]any {
	m := map[string]any{
		"id":           r.ID,
		"accused_name": r.AccusedName,
		"phone_number": r.PhoneNumber,
		"amount":       r.Amount,
		"description":  r.Description,
		"status":       string(r.Status),
		"category":     r.Category,
		"created_at":   r.CreatedAt,
	}
	if r.AccountNumber != nil {
		m["account_number"] = *r.AccountNumber
	}
	if r.Bank != nil {
		m["bank"] = *r.Bank
	}
	return m
}
