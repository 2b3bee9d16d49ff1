// Package scam exposes the scam-lookup proxy in front of the scraping and AI service.
package scam

import (
	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/application/scam/usecases"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

type AnalyzeRequest struct {
	Text string `json:"text" binding:"required"`
}

type Handler struct {
	searchUC     usecases.SearchScamsExecutor
	sourceUC     usecases.SearchSourceExecutor
	analyzeUC    usecases.AnalyzeTextExecutor
	cacheStatsUC usecases.GetCacheStatsExecutor
	clearCacheUC usecases.ClearCacheExecutor
	healthUC     usecases.CheckHealthExecutor
	logger       logger.Interface
}

func NewHandler(
	searchUC usecases.SearchScamsExecutor,
	sourceUC usecases.SearchSourceExecutor,
	analyzeUC usecases.AnalyzeTextExecutor,
	cacheStatsUC usecases.GetCacheStatsExecutor,
	clearCacheUC usecases.ClearCacheExecutor,
	healthUC usecases.CheckHealthExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		searchUC:     searchUC,
		sourceUC:     sourceUC,
		analyzeUC:    analyzeUC,
		cacheStatsUC: cacheStatsUC,
		clearCacheUC: clearCacheUC,
		healthUC:     healthUC,
		logger:       logger,
	}
}

// Search handles GET /api/v1/scams/search
// @Summary Look up a phone number, account or name
// @Description Local reports answer first; otherwise every external source is queried.
// @Tags scams
// @Produce json
// @Param keyword query string true "Keyword"
// @Param type query string false "all | admin | checkscam | chongluadao" default(all)
// @Success 200 {object} scamclient.SearchResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /api/v1/scams/search [get]
func (h *Handler) Search(c *gin.Context) {
	resp, err := h.searchUC.Execute(c.Request.Context(), usecases.SearchScamsQuery{
		Keyword: c.Query("keyword"),
		Type:    c.Query("type"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, resp)
}

// SearchSource handles GET /api/v1/scams/:source
func (h *Handler) SearchSource(c *gin.Context) {
	resp, err := h.sourceUC.Execute(c.Request.Context(), usecases.SearchSourceQuery{
		Source:  c.Param("source"),
		Keyword: c.Query("keyword"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, resp)
}

// Analyze handles POST /api/v1/ai/analyze
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.analyzeUC.Execute(c.Request.Context(), usecases.AnalyzeTextCommand{Text: req.Text})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, resp)
}

// CacheStats handles GET /api/v1/cache/stats
func (h *Handler) CacheStats(c *gin.Context) {
	stats, err := h.cacheStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, stats)
}

// ClearCache handles DELETE /api/v1/cache/clear
func (h *Handler) ClearCache(c *gin.Context) {
	result, err := h.clearCacheUC.Execute(c.Request.Context(), usecases.ClearCacheCommand{
		Pattern: c.Query("pattern"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("scam search cache cleared", "local_cleared", result.LocalCleared)
	utils.OKResponse(c, result)
}

// Health handles GET /api/v1/health
func (h *Handler) Health(c *gin.Context) {
	health, err := h.healthUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, health)
}
