package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/application/admin/usecases"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

type AnalyticsHandler struct {
	analyticsUC usecases.GetAnalyticsExecutor
	logger      logger.Interface
}

func NewAnalyticsHandler(analyticsUC usecases.GetAnalyticsExecutor, log logger.Interface) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: analyticsUC,
		logger:      log,
	}
}

// GetAnalytics handles GET /api/admin/analytics
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	resp, err := h.analyticsUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to get analytics", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, resp)
}
