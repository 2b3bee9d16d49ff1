package usecases

import (
	"context"
	"sync/atomic"

	"github.com/scamguard-vn/scamguard/internal/domain/report"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/scamclient"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

type mockScamService struct {
	searchCalls atomic.Int32

	SearchScamsFunc  func(ctx context.Context, keyword, searchType string) (*scamclient.SearchResponse, error)
	SearchSourceFunc func(ctx context.Context, source, keyword string) (*scamclient.SourceResult, error)
	AnalyzeFunc      func(ctx context.Context, text string) (*scamclient.AnalyzeResponse, error)
	ClearCacheFunc   func(ctx context.Context, pattern string) (map[string]any, error)
	HealthFunc       func(ctx context.Context) (*scamclient.Health, error)
}

func (m *mockScamService) SearchScams(ctx context.Context, keyword, searchType string) (*scamclient.SearchResponse, error) {
	m.searchCalls.Add(1)
	if m.SearchScamsFunc != nil {
		return m.SearchScamsFunc(ctx, keyword, searchType)
	}
	return &scamclient.SearchResponse{Success: true, Keyword: keyword}, nil
}

func (m *mockScamService) SearchSource(ctx context.Context, source, keyword string) (*scamclient.SourceResult, error) {
	if m.SearchSourceFunc != nil {
		return m.SearchSourceFunc(ctx, source, keyword)
	}
	return &scamclient.SourceResult{Success: true, Source: source, Keyword: keyword}, nil
}

func (m *mockScamService) Analyze(ctx context.Context, text string) (*scamclient.AnalyzeResponse, error) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, text)
	}
	return &scamclient.AnalyzeResponse{}, nil
}

func (m *mockScamService) CacheStats(context.Context) (*scamclient.CacheStats, error) {
	return &scamclient.CacheStats{TotalCached: 3}, nil
}

func (m *mockScamService) ClearCache(ctx context.Context, pattern string) (map[string]any, error) {
	if m.ClearCacheFunc != nil {
		return m.ClearCacheFunc(ctx, pattern)
	}
	return map[string]any{"cleared": 0}, nil
}

func (m *mockScamService) Health(ctx context.Context) (*scamclient.Health, error) {
	if m.HealthFunc != nil {
		return m.HealthFunc(ctx)
	}
	return &scamclient.Health{Status: "healthy"}, nil
}

type memorySearchCache struct {
	entries map[string]*scamclient.SearchResponse
}

func newMemorySearchCache() *memorySearchCache {
	return &memorySearchCache{entries: map[string]*scamclient.SearchResponse{}}
}

func (c *memorySearchCache) Get(_ context.Context, keyword, searchType string) (*scamclient.SearchResponse, error) {
	resp, ok := c.entries[searchType+":"+keyword]
	if !ok {
		return nil, nil
	}
	cp := *resp
	return &cp, nil
}

func (c *memorySearchCache) Set(_ context.Context, keyword, searchType string, resp *scamclient.SearchResponse) error {
	cp := *resp
	c.entries[searchType+":"+keyword] = &cp
	return nil
}

func (c *memorySearchCache) Clear(context.Context) (int64, error) {
	n := int64(len(c.entries))
	c.entries = map[string]*scamclient.SearchResponse{}
	return n, nil
}

// identifierRepo only answers FindByIdentifier.
type identifierRepo struct {
	report.Repository
	reports []*report.Report
}

func (r *identifierRepo) FindByIdentifier(_ context.Context, keyword string, publicOnly bool, _ int) ([]*report.Report, error) {
	var out []*report.Report
	for _, rep := range r.reports {
		if publicOnly && !rep.IsPublic {
			continue
		}
		if rep.PhoneNumber == keyword {
			out = append(out, rep)
		}
	}
	return out, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
