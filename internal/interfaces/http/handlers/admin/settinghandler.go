package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/application/setting/usecases"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

type UpsertSettingRequest struct {
	Value       string  `json:"value"`
	Description *string `json:"description,omitempty"`
}

// SettingHandler handles system settings admin API operations
type SettingHandler struct {
	listUC   usecases.ListSettingsExecutor
	upsertUC usecases.UpsertSettingExecutor
	logger   logger.Interface
}

func NewSettingHandler(listUC usecases.ListSettingsExecutor, upsertUC usecases.UpsertSettingExecutor, logger logger.Interface) *SettingHandler {
	return &SettingHandler{
		listUC:   listUC,
		upsertUC: upsertUC,
		logger:   logger,
	}
}

// ListSettings handles GET /api/admin/settings
func (h *SettingHandler) ListSettings(c *gin.Context) {
	settings, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, settings)
}

// UpsertSetting handles PUT /api/admin/settings/:key
// @Summary Create or update a system setting
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param key path string true "Setting key"
// @Param body body UpsertSettingRequest true "Value"
// @Success 200 {object} setting.SystemSetting
// @Failure 400 {object} utils.ErrorBody
// @Failure 403 {object} utils.ErrorBody
// @Router /api/admin/settings/{key} [put]
func (h *SettingHandler) UpsertSetting(c *gin.Context) {
	var req UpsertSettingRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	saved, err := h.upsertUC.Execute(c.Request.Context(), usecases.UpsertSettingCommand{
		Key:         c.Param("key"),
		Value:       req.Value,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("setting updated", "key", saved.Key)
	utils.OKResponse(c, saved)
}
