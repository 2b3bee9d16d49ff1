package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scamguard-vn/scamguard/internal/domain/report"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/scamclient"
	apperrors "github.com/scamguard-vn/scamguard/internal/shared/errors"
)

func TestSearchScamsUseCase_LocalShortCircuit(t *testing.T) {
	repo := &identifierRepo{reports: []*report.Report{
		{ID: 1, AccusedName: "Nguyễn Văn A", PhoneNumber: "0123456789", Amount: 5000000, IsPublic: true, Status: report.StatusVerified},
	}}
	service := &mockScamService{}
	uc := NewSearchScamsUseCase(repo, service, nil, &mockLogger{})

	got, err := uc.Execute(context.Background(), SearchScamsQuery{Keyword: "0123456789"})
	require.NoError(t, err)

	assert.Equal(t, int32(0), service.searchCalls.Load())
	assert.True(t, got.Success)
	require.Len(t, got.Sources, 1)
	assert.Equal(t, SourceLocal, got.Sources[0].Source)
	assert.Equal(t, 1, got.Sources[0].TotalScams)
	assert.Equal(t, "Nguyễn Văn A", got.Sources[0].Data[0]["accused_name"])
	assert.Equal(t, 1, got.TotalResults)
	assert.False(t, got.Cached)
}

func TestSearchScamsUseCase_PrivateReportsDoNotShortCircuit(t *testing.T) {
	repo := &identifierRepo{reports: []*report.Report{
		{ID: 1, PhoneNumber: "0123456789", IsPublic: false},
	}}
	service := &mockScamService{}
	_, err := NewSearchScamsUseCase(repo, service, nil, &mockLogger{}).
		Execute(context.Background(), SearchScamsQuery{Keyword: "0123456789"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), service.searchCalls.Load())
}

func TestSearchScamsUseCase_CachesExternalResults(t *testing.T) {
	service := &mockScamService{
		SearchScamsFunc: func(_ context.Context, keyword, searchType string) (*scamclient.SearchResponse, error) {
			assert.Equal(t, scamclient.SourceAll, searchType)
			return &scamclient.SearchResponse{
				Success:      true,
				Keyword:      keyword,
				TotalResults: 2,
				Sources:      []scamclient.SourceResult{{Success: true, Source: "checkscam", TotalScams: 2}},
			}, nil
		},
	}
	cache := newMemorySearchCache()
	uc := NewSearchScamsUseCase(&identifierRepo{}, service, cache, &mockLogger{})

	first, err := uc.Execute(context.Background(), SearchScamsQuery{Keyword: "0999999999"})
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := uc.Execute(context.Background(), SearchScamsQuery{Keyword: "0999999999", Type: "all"})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, 2, second.TotalResults)

	assert.Equal(t, int32(1), service.searchCalls.Load())
}

func TestSearchScamsUseCase_Errors(t *testing.T) {
	t.Run("empty keyword", func(t *testing.T) {
		_, err := NewSearchScamsUseCase(&identifierRepo{}, &mockScamService{}, nil, &mockLogger{}).
			Execute(context.Background(), SearchScamsQuery{Keyword: " "})
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := NewSearchScamsUseCase(&identifierRepo{}, &mockScamService{}, nil, &mockLogger{}).
			Execute(context.Background(), SearchScamsQuery{Keyword: "x", Type: "facebook"})
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("service failure is a 500", func(t *testing.T) {
		service := &mockScamService{
			SearchScamsFunc: func(context.Context, string, string) (*scamclient.SearchResponse, error) {
				return nil, errors.New("connection refused")
			},
		}
		_, err := NewSearchScamsUseCase(&identifierRepo{}, service, nil, &mockLogger{}).
			Execute(context.Background(), SearchScamsQuery{Keyword: "x"})
		require.Error(t, err)
		assert.Equal(t, 500, apperrors.GetAppError(err).Code)
	})
}

func TestSearchSourceUseCase(t *testing.T) {
	uc := NewSearchSourceUseCase(&mockScamService{}, &mockLogger{})

	got, err := uc.Execute(context.Background(), SearchSourceQuery{Source: "chongluadao", Keyword: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "chongluadao", got.Source)

	_, err = uc.Execute(context.Background(), SearchSourceQuery{Source: "all", Keyword: "abc"})
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = uc.Execute(context.Background(), SearchSourceQuery{Source: "admin"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestAnalyzeTextUseCase(t *testing.T) {
	service := &mockScamService{
		AnalyzeFunc: func(_ context.Context, text string) (*scamclient.AnalyzeResponse, error) {
			return &scamclient.AnalyzeResponse{IsScam: true, Confidence: 0.9}, nil
		},
	}
	got, err := NewAnalyzeTextUseCase(service, &mockLogger{}).Execute(context.Background(), AnalyzeTextCommand{Text: "Chuyển khoản ngay để nhận thưởng"})
	require.NoError(t, err)
	assert.True(t, got.IsScam)

	_, err = NewAnalyzeTextUseCase(service, &mockLogger{}).Execute(context.Background(), AnalyzeTextCommand{})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestClearCacheUseCase_ClearsBothLayers(t *testing.T) {
	cache := newMemorySearchCache()
	require.NoError(t, cache.Set(context.Background(), "a", "all", &scamclient.SearchResponse{}))

	var gotPattern string
	service := &mockScamService{
		ClearCacheFunc: func(_ context.Context, pattern string) (map[string]any, error) {
			gotPattern = pattern
			return map[string]any{"cleared": 4}, nil
		},
	}
	got, err := NewClearCacheUseCase(service, cache, &mockLogger{}).Execute(context.Background(), ClearCacheCommand{Pattern: "scam:search:*"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.LocalCleared)
	assert.Equal(t, "scam:search:*", gotPattern)
	assert.Equal(t, 4, got.Service["cleared"])
}

func TestCheckHealthUseCase_Unreachable(t *testing.T) {
	service := &mockScamService{
		HealthFunc: func(context.Context) (*scamclient.Health, error) { return nil, errors.New("timeout") },
	}
	_, err := NewCheckHealthUseCase(service, &mockLogger{}).Execute(context.Background())
	require.Error(t, err)
	assert.Equal(t, 500, apperrors.GetAppError(err).Code)
}
