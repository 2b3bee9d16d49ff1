package usecases

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/scamguard-vn/scamguard/internal/infrastructure/scamclient"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

const maxAnalyzeLength = 10000

type SearchSourceQuery struct {
	Source  string
	Keyword string
}

type SearchSourceUseCase struct {
	service ScamService
	logger  logger.Interface
}

func NewSearchSourceUseCase(service ScamService, logger logger.Interface) *SearchSourceUseCase {
	return &SearchSourceUseCase{service: service, logger: logger}
}

func (uc *SearchSourceUseCase) Execute(ctx context.Context, query SearchSourceQuery) (*scamclient.SourceResult, error) {
	if !scamclient.IsValidSource(query.Source) {
		return nil, errors.NewNotFoundError("Unknown scam source", query.Source)
	}
	keyword := strings.TrimSpace(query.Keyword)
	if keyword == "" {
		return nil, errors.NewValidationError("keyword is required")
	}

	result, err := uc.service.SearchSource(ctx, query.Source, keyword)
	if err != nil {
		return nil, errors.NewUpstreamError("scam source search failed", err)
	}
	return result, nil
}

type AnalyzeTextCommand struct {
	Text string
}

type AnalyzeTextUseCase struct {
	service ScamService
	logger  logger.Interface
}

func NewAnalyzeTextUseCase(service ScamService, logger logger.Interface) *AnalyzeTextUseCase {
	return &AnalyzeTextUseCase{service: service, logger: logger}
}

func (uc *AnalyzeTextUseCase) Execute(ctx context.Context, cmd AnalyzeTextCommand) (*scamclient.AnalyzeResponse, error) {
	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		return nil, errors.NewValidationError("text is required")
	}
	if utf8.RuneCountInString(text) > maxAnalyzeLength {
		return nil, errors.NewValidationError("text is too long")
	}

	result, err := uc.service.Analyze(ctx, text)
	if err != nil {
		return nil, errors.NewUpstreamError("text analysis failed", err)
	}
	return result, nil
}

type GetCacheStatsUseCase struct {
	service ScamService
	logger  logger.Interface
}

func NewGetCacheStatsUseCase(service ScamService, logger logger.Interface) *GetCacheStatsUseCase {
	return &GetCacheStatsUseCase{service: service, logger: logger}
}

func (uc *GetCacheStatsUseCase) Execute(ctx context.Context) (*scamclient.CacheStats, error) {
	stats, err := uc.service.CacheStats(ctx)
	if err != nil {
		return nil, errors.NewUpstreamError("failed to fetch cache stats", err)
	}
	return stats, nil
}

type ClearCacheCommand struct {
	Pattern string
}

type ClearCacheResult struct {
	Service      map[string]any `json:"service"`
	LocalCleared int64          `json:"local_cleared"`
}

// ClearCacheUseCase clears the service cache and our own search cache together.
type ClearCacheUseCase struct {
	service ScamService
	cache   SearchCache
	logger  logger.Interface
}

func NewClearCacheUseCase(service ScamService, cache SearchCache, logger logger.Interface) *ClearCacheUseCase {
	return &ClearCacheUseCase{service: service, cache: cache, logger: logger}
}

func (uc *ClearCacheUseCase) Execute(ctx context.Context, cmd ClearCacheCommand) (*ClearCacheResult, error) {
	result := &ClearCacheResult{}

	if uc.cache != nil {
		n, err := uc.cache.Clear(ctx)
		if err != nil {
			uc.logger.Warnw("failed to clear local search cache", "error", err)
		}
		result.LocalCleared = n
	}

	remote, err := uc.service.ClearCache(ctx, strings.TrimSpace(cmd.Pattern))
	if err != nil {
		return nil, errors.NewUpstreamError("failed to clear service cache", err)
	}
	result.Service = remote

	uc.logger.Infow("scam search caches cleared", "local_cleared", result.LocalCleared, "pattern", cmd.Pattern)
	return result, nil
}

type CheckHealthUseCase struct {
	service ScamService
	logger  logger.Interface
}

func NewCheckHealthUseCase(service ScamService, logger logger.Interface) *CheckHealthUseCase {
	return &CheckHealthUseCase{service: service, logger: logger}
}

func (uc *CheckHealthUseCase) Execute(ctx context.Context) (*scamclient.Health, error) {
	h, err := uc.service.Health(ctx)
	if err != nil {
		return nil, errors.NewUpstreamError("scam service is unreachable", err)
	}
	return h, nil
}
