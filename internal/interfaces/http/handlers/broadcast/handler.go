// Package broadcast exposes outbound messaging campaigns and the follower webhook.
package broadcast

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/application/broadcast/usecases"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

const maxWebhookBody = 1 << 20

// SignatureVerifier checks a webhook body against the signature header.
type SignatureVerifier interface {
	VerifySignature(payload []byte, signature string) bool
}

type Handler struct {
	createUC   usecases.CreateCampaignExecutor
	listUC     usecases.ListCampaignsExecutor
	sendUC     usecases.SendCampaignExecutor
	statsUC    usecases.GetCampaignStatsExecutor
	deleteUC   usecases.DeleteCampaignExecutor
	registerUC usecases.RegisterRecipientExecutor
	eventUC    usecases.HandleFollowerEventExecutor
	verifier   SignatureVerifier
	logger     logger.Interface
}

func NewHandler(
	createUC usecases.CreateCampaignExecutor,
	listUC usecases.ListCampaignsExecutor,
	sendUC usecases.SendCampaignExecutor,
	statsUC usecases.GetCampaignStatsExecutor,
	deleteUC usecases.DeleteCampaignExecutor,
	registerUC usecases.RegisterRecipientExecutor,
	eventUC usecases.HandleFollowerEventExecutor,
	verifier SignatureVerifier,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:   createUC,
		listUC:     listUC,
		sendUC:     sendUC,
		statsUC:    statsUC,
		deleteUC:   deleteUC,
		registerUC: registerUC,
		eventUC:    eventUC,
		verifier:   verifier,
		logger:     logger,
	}
}

// CreateCampaign godoc
// @Summary Create a broadcast campaign
// @Tags broadcast
// @Accept json
// @Produce json
// @Security Bearer
// @Param campaign body CreateCampaignRequest true "Campaign"
// @Success 201 {object} broadcast.Campaign
// @Failure 400 {object} utils.ErrorBody
// @Router /api/v1/zalo/broadcast/create [post]
func (h *Handler) CreateCampaign(c *gin.Context) {
	var req CreateCampaignRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	campaign, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(c.GetString(constants.ContextKeyAdminName)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, campaign)
}

// ListCampaigns handles GET /api/v1/zalo/broadcast/campaigns
func (h *Handler) ListCampaigns(c *gin.Context) {
	page := utils.ParsePage(c, constants.DefaultCampaignListLimit)
	campaigns, err := h.listUC.Execute(c.Request.Context(), usecases.ListCampaignsQuery{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, campaigns)
}

// SendCampaign handles POST /api/v1/zalo/broadcast/:id/send
func (h *Handler) SendCampaign(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "campaign")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SendCampaignRequest
	if c.Request.ContentLength != 0 {
		if err := utils.BindJSON(c, &req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}
	if !req.SendNow && req.ScheduledTime == nil {
		req.SendNow = true
	}

	campaign, err := h.sendUC.Execute(c.Request.Context(), usecases.SendCampaignCommand{
		ID:            id,
		SendNow:       req.SendNow,
		ScheduledTime: req.ScheduledTime,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, campaign)
}

// GetCampaignStats handles GET /api/v1/zalo/broadcast/:id/stats
func (h *Handler) GetCampaignStats(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "campaign")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	stats, err := h.statsUC.Execute(c.Request.Context(), usecases.GetCampaignStatsQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, stats)
}

// DeleteCampaign handles DELETE /api/v1/zalo/broadcast/:id
func (h *Handler) DeleteCampaign(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "campaign")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteCampaignCommand{ID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.DeletedResponse(c)
}

// RegisterRecipient handles POST /api/v1/zalo/recipients
func (h *Handler) RegisterRecipient(c *gin.Context) {
	var req RegisterRecipientRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	recipient, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterRecipientCommand{
		UserID:      req.UserID,
		DisplayName: req.DisplayName,
		IsActive:    req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, recipient)
}

// Webhook handles POST /api/v1/zalo/webhook. Unsigned or mis-signed bodies are
// rejected when a verifier is configured; unknown events are acknowledged.
func (h *Handler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Unable to read request body"))
		return
	}

	if h.verifier != nil && !h.verifier.VerifySignature(body, c.GetHeader(HeaderSignature)) {
		h.logger.Warnw("webhook signature rejected", "ip", c.ClientIP())
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Invalid signature"))
		return
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(constants.ErrMsgInvalidData, err.Error()))
		return
	}

	cmd, ok := event.toCommand()
	if !ok {
		h.logger.Debugw("webhook event without user", "event", event.EventName)
		utils.OKResponse(c, gin.H{"status": "ok"})
		return
	}

	if err := h.eventUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, gin.H{"status": "ok"})
}
