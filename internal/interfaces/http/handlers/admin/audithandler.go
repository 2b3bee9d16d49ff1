package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/application/audit/usecases"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

type AuditHandler struct {
	listUC usecases.ListAuditLogsExecutor
	logger logger.Interface
}

func NewAuditHandler(listUC usecases.ListAuditLogsExecutor, logger logger.Interface) *AuditHandler {
	return &AuditHandler{listUC: listUC, logger: logger}
}

// ListAuditLogs handles GET /api/admin/audit-logs
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	page := utils.ParsePage(c, constants.DefaultAuditLogLimit)

	entries, err := h.listUC.Execute(c.Request.Context(), usecases.ListAuditLogsQuery{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, entries)
}
