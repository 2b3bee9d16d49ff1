package scam

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scamguard-vn/scamguard/internal/application/scam/usecases"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/scamclient"
	"github.com/scamguard-vn/scamguard/internal/interfaces/http/handlers/testutil"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
)

type mockSearchUC struct {
	result *scamclient.SearchResponse
	err    error
	got    usecases.SearchScamsQuery
}

func (m *mockSearchUC) Execute(_ context.Context, query usecases.SearchScamsQuery) (*scamclient.SearchResponse, error) {
	m.got = query
	return m.result, m.err
}

type mockSourceUC struct {
	err error
	got usecases.SearchSourceQuery
}

func (m *mockSourceUC) Execute(_ context.Context, query usecases.SearchSourceQuery) (*scamclient.SourceResult, error) {
	m.got = query
	if m.err != nil {
		return nil, m.err
	}
	return &scamclient.SourceResult{Success: true, Source: query.Source, Keyword: query.Keyword}, nil
}

type mockAnalyzeUC struct {
	got usecases.AnalyzeTextCommand
}

func (m *mockAnalyzeUC) Execute(_ context.Context, cmd usecases.AnalyzeTextCommand) (*scamclient.AnalyzeResponse, error) {
	m.got = cmd
	return &scamclient.AnalyzeResponse{IsScam: true, Confidence: 0.93}, nil
}

type mockClearCacheUC struct {
	got usecases.ClearCacheCommand
}

func (m *mockClearCacheUC) Execute(_ context.Context, cmd usecases.ClearCacheCommand) (*usecases.ClearCacheResult, error) {
	m.got = cmd
	return &usecases.ClearCacheResult{Service: map[string]any{"cleared": 3}, LocalCleared: 2}, nil
}

func TestHandler_Search(t *testing.T) {
	mockUC := &mockSearchUC{result: &scamclient.SearchResponse{
		Success:      true,
		Keyword:      "0912345678",
		TotalResults: 1,
		Sources:      []scamclient.SourceResult{{Success: true, Source: "local", TotalScams: 1}},
	}}
	handler := NewHandler(mockUC, nil, nil, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/scams/search", nil)
	testutil.SetQueryParams(c, map[string]string{"keyword": "0912345678"})
	handler.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0912345678", mockUC.got.Keyword)
	assert.Empty(t, mockUC.got.Type)

	var resp scamclient.SearchResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, 1, resp.TotalResults)
	require.Len(t, resp.Sources, 1)
	assert.Equal(t, "local", resp.Sources[0].Source)
}

func TestHandler_Search_UpstreamFailureIsMasked(t *testing.T) {
	mockUC := &mockSearchUC{err: errors.NewUpstreamError("scam search service failed", fmt.Errorf("dial tcp 10.0.0.5:8000: connection refused"))}
	handler := NewHandler(mockUC, nil, nil, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/scams/search", nil)
	testutil.SetQueryParams(c, map[string]string{"keyword": "x"})
	handler.Search(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestHandler_SearchSource(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		err      error
		wantCode int
	}{
		{name: "known source", source: "checkscam", wantCode: http.StatusOK},
		{name: "unknown source", source: "google", err: errors.NewNotFoundError("Unknown scam source"), wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockSourceUC{err: tt.err}
			handler := NewHandler(nil, mockUC, nil, nil, nil, nil, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/scams/"+tt.source, nil)
			testutil.SetURLParam(c, "source", tt.source)
			testutil.SetQueryParams(c, map[string]string{"keyword": "abc"})
			handler.SearchSource(c)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.source, mockUC.got.Source)
			assert.Equal(t, "abc", mockUC.got.Keyword)
		})
	}
}

func TestHandler_Analyze(t *testing.T) {
	t.Run("forwards text", func(t *testing.T) {
		mockUC := &mockAnalyzeUC{}
		handler := NewHandler(nil, nil, mockUC, nil, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/ai/analyze", AnalyzeRequest{Text: "Chuyển khoản gấp để nhận thưởng"})
		handler.Analyze(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Chuyển khoản gấp để nhận thưởng", mockUC.got.Text)
	})

	t.Run("missing text", func(t *testing.T) {
		handler := NewHandler(nil, nil, &mockAnalyzeUC{}, nil, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/ai/analyze", map[string]string{})
		handler.Analyze(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp testutil.ErrorBody
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, constants.ErrMsgInvalidData, resp.Error)
	})
}

func TestHandler_ClearCache(t *testing.T) {
	mockUC := &mockClearCacheUC{}
	handler := NewHandler(nil, nil, nil, nil, mockUC, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/v1/cache/clear", nil)
	testutil.SetQueryParams(c, map[string]string{"pattern": "search:*"})
	handler.ClearCache(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "search:*", mockUC.got.Pattern)
	assert.Contains(t, w.Body.String(), `"local_cleared":2`)
}
