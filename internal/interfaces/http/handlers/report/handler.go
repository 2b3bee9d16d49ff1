package report

import (
	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/application/report/usecases"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

type Handler struct {
	createReportUC       usecases.CreateReportExecutor
	getReportUC          usecases.GetReportExecutor
	searchReportsUC      usecases.SearchReportsExecutor
	listRecentUC         usecases.ListRecentReportsExecutor
	listByStatusUC       usecases.ListReportsByStatusExecutor
	listReportsUC        usecases.ListReportsExecutor
	updateReportUC       usecases.UpdateReportExecutor
	updateReportStatusUC usecases.UpdateReportStatusExecutor
	deleteReportUC       usecases.DeleteReportExecutor
	logger               logger.Interface
}

func NewHandler(
	createReportUC usecases.CreateReportExecutor,
	getReportUC usecases.GetReportExecutor,
	searchReportsUC usecases.SearchReportsExecutor,
	listRecentUC usecases.ListRecentReportsExecutor,
	listByStatusUC usecases.ListReportsByStatusExecutor,
	listReportsUC usecases.ListReportsExecutor,
	updateReportUC usecases.UpdateReportExecutor,
	updateReportStatusUC usecases.UpdateReportStatusExecutor,
	deleteReportUC usecases.DeleteReportExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createReportUC:       createReportUC,
		getReportUC:          getReportUC,
		searchReportsUC:      searchReportsUC,
		listRecentUC:         listRecentUC,
		listByStatusUC:       listByStatusUC,
		listReportsUC:        listReportsUC,
		updateReportUC:       updateReportUC,
		updateReportStatusUC: updateReportStatusUC,
		deleteReportUC:       deleteReportUC,
		logger:               logger,
	}
}

// CreateReport handles POST /api/reports
// @Summary Submit a scam report
// @Tags reports
// @Accept json
// @Produce json
// @Param report body CreateReportRequest true "Report data"
// @Success 201 {object} report.Report
// @Failure 400 {object} utils.ErrorBody
// @Failure 429 {object} utils.ErrorBody
// @Router /api/reports [post]
func (h *Handler) CreateReport(c *gin.Context) {
	var req CreateReportRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Debugw("invalid request body for create report", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	created, err := h.createReportUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, created)
}

// GetReport handles GET /api/reports/:id
// @Summary Get report by ID
// @Tags reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} report.Report
// @Failure 404 {object} utils.ErrorBody
// @Router /api/reports/{id} [get]
func (h *Handler) GetReport(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "report")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getReportUC.Execute(c.Request.Context(), usecases.GetReportQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// SearchReports handles GET /api/search
// @Summary Search reports
// @Description Case-insensitive substring search over name, phone, account number and description
// @Tags reports
// @Produce json
// @Param q query string false "Search text"
// @Param status query string false "Status filter"
// @Param category query string false "Category filter"
// @Param priority query string false "Priority filter"
// @Param isPublic query bool false "Visibility filter"
// @Success 200 {array} report.Report
// @Router /api/search [get]
func (h *Handler) SearchReports(c *gin.Context) {
	query := usecases.SearchReportsQuery{
		Query:  c.Query("q"),
		Filter: parseFilter(c),
	}

	results, err := h.searchReportsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, results)
}

// ListRecent handles GET /api/reports/recent
func (h *Handler) ListRecent(c *gin.Context) {
	query := usecases.ListRecentReportsQuery{
		Limit: utils.ParseLimit(c, constants.DefaultRecentReportsLimit),
	}

	results, err := h.listRecentUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, results)
}

// ListByStatus handles GET /api/reports/status/:status
func (h *Handler) ListByStatus(c *gin.Context) {
	query := usecases.ListReportsByStatusQuery{
		Status: c.Param("status"),
		Limit:  utils.ParseLimit(c, constants.DefaultReportListLimit),
	}

	results, err := h.listByStatusUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, results)
}

// ListReports handles GET /api/admin/reports
// @Summary List reports (admin)
// @Tags admin
// @Produce json
// @Security Bearer
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} report.Report
// @Failure 401 {object} utils.ErrorBody
// @Router /api/admin/reports [get]
func (h *Handler) ListReports(c *gin.Context) {
	page := utils.ParsePage(c, constants.DefaultReportListLimit)
	filter := parseFilter(c)
	filter.Limit = page.Limit
	filter.Offset = page.Offset

	results, err := h.listReportsUC.Execute(c.Request.Context(), usecases.ListReportsQuery{Filter: filter})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, results)
}

// UpdateReport handles PUT /api/admin/reports/:id
func (h *Handler) UpdateReport(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "report")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateReportRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	updated, err := h.updateReportUC.Execute(c.Request.Context(), usecases.UpdateReportCommand{
		ID:    id,
		Patch: req.ToPatch(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, updated)
}

// UpdateReportStatus handles PATCH /api/admin/reports/:id/status
// @Summary Change report status
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Report ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} report.Report
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /api/admin/reports/{id}/status [patch]
func (h *Handler) UpdateReportStatus(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "report")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	updated, err := h.updateReportStatusUC.Execute(c.Request.Context(), usecases.UpdateReportStatusCommand{
		ID:         id,
		Status:     req.Status,
		VerifiedBy: req.VerifiedBy,
		Actor:      c.GetString(constants.ContextKeyAdminName),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, updated)
}

// DeleteReport handles DELETE /api/admin/reports/:id
func (h *Handler) DeleteReport(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "report")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteReportUC.Execute(c.Request.Context(), usecases.DeleteReportCommand{ID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DeletedResponse(c)
}
