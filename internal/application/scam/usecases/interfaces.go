package usecases

import (
	"context"

	"github.com/scamguard-vn/scamguard/internal/infrastructure/scamclient"
)

type SearchScamsExecutor interface {
	Execute(ctx context.Context, query SearchScamsQuery) (*scamclient.SearchResponse, error)
}

type SearchSourceExecutor interface {
	Execute(ctx context.Context, query SearchSourceQuery) (*scamclient.SourceResult, error)
}

type AnalyzeTextExecutor interface {
	Execute(ctx context.Context, cmd AnalyzeTextCommand) (*scamclient.AnalyzeResponse, error)
}

type GetCacheStatsExecutor interface {
	Execute(ctx context.Context) (*scamclient.CacheStats, error)
}

type ClearCacheExecutor interface {
	Execute(ctx context.Context, cmd ClearCacheCommand) (*ClearCacheResult, error)
}

type CheckHealthExecutor interface {
	Execute(ctx context.Context) (*scamclient.Health, error)
}

// ScamService is the subset of the scraping service client the scam use cases call.
type ScamService interface {
	SearchScams(ctx context.Context, keyword, searchType string) (*scamclient.SearchResponse, error)
	SearchSource(ctx context.Context, source, keyword string) (*scamclient.SourceResult, error)
	Analyze(ctx context.Context, text string) (*scamclient.AnalyzeResponse, error)
	CacheStats(ctx context.Context) (*scamclient.CacheStats, error)
	ClearCache(ctx context.Context, pattern string) (map[string]any, error)
	Health(ctx context.Context) (*scamclient.Health, error)
}

// SearchCache stores external search envelopes. Get returns (nil, nil) on a miss.
type SearchCache interface {
	Get(ctx context.Context, keyword, searchType string) (*scamclient.SearchResponse, error)
	Set(ctx context.Context, keyword, searchType string, resp *scamclient.SearchResponse) error
	Clear(ctx context.Context) (int64, error)
}
