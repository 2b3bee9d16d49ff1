package chat

import (
	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/application/chat/usecases"
	domain "github.com/scamguard-vn/scamguard/internal/domain/chat"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

type Handler struct {
	sendMessageUC   usecases.SendMessageExecutor
	listSessionsUC  usecases.ListSessionsExecutor
	listMessagesUC  usecases.ListMessagesExecutor
	updateSessionUC usecases.UpdateSessionExecutor
	markReadUC      usecases.MarkReadExecutor
	logger          logger.Interface
}

func NewHandler(
	sendMessageUC usecases.SendMessageExecutor,
	listSessionsUC usecases.ListSessionsExecutor,
	listMessagesUC usecases.ListMessagesExecutor,
	updateSessionUC usecases.UpdateSessionExecutor,
	markReadUC usecases.MarkReadExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		sendMessageUC:   sendMessageUC,
		listSessionsUC:  listSessionsUC,
		listMessagesUC:  listMessagesUC,
		updateSessionUC: updateSessionUC,
		markReadUC:      markReadUC,
		logger:          logger,
	}
}

// SendMessage handles POST /api/chat
// @Summary Talk to the support bot
// @Description Persists the visitor message and returns the bot reply. A session id is issued when omitted.
// @Tags chat
// @Accept json
// @Produce json
// @Param body body SendMessageRequest true "Message"
// @Success 200 {object} usecases.SendMessageResult
// @Failure 400 {object} utils.ErrorBody
// @Failure 429 {object} utils.ErrorBody
// @Router /api/chat [post]
func (h *Handler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userAgent := c.Request.UserAgent()
	clientIP := c.ClientIP()

	result, err := h.sendMessageUC.Execute(c.Request.Context(), usecases.SendMessageCommand{
		Message:   req.Message,
		SessionID: req.SessionID,
		UserAgent: &userAgent,
		IPAddress: &clientIP,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListSessions handles GET /api/admin/chat/sessions
func (h *Handler) ListSessions(c *gin.Context) {
	filter := domain.SessionFilter{
		AssignedAdmin: utils.OptionalQuery(c, "assignedAdmin"),
		Limit:         utils.ParseLimit(c, constants.DefaultChatSessionLimit),
	}
	if v := utils.OptionalQuery(c, "status"); v != nil {
		s := domain.SessionStatus(*v)
		filter.Status = &s
	}
	if v := utils.OptionalQuery(c, "priority"); v != nil {
		p := domain.Priority(*v)
		filter.Priority = &p
	}

	sessions, err := h.listSessionsUC.Execute(c.Request.Context(), usecases.ListSessionsQuery{Filter: filter})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, sessions)
}

// ListMessages handles GET /api/admin/chat/sessions/:sessionId/messages
func (h *Handler) ListMessages(c *gin.Context) {
	messages, err := h.listMessagesUC.Execute(c.Request.Context(), usecases.ListMessagesQuery{
		SessionID: c.Param("sessionId"),
		Limit:     utils.ParseLimit(c, constants.DefaultChatMessageLimit),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, messages)
}

// UpdateSession handles PATCH /api/admin/chat/sessions/:sessionId
func (h *Handler) UpdateSession(c *gin.Context) {
	var req UpdateSessionRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	session, err := h.updateSessionUC.Execute(c.Request.Context(), usecases.UpdateSessionCommand{
		SessionID: c.Param("sessionId"),
		Patch:     req.ToPatch(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, session)
}

// MarkRead handles PATCH /api/admin/chat/sessions/:sessionId/read
func (h *Handler) MarkRead(c *gin.Context) {
	updated, err := h.markReadUC.Execute(c.Request.Context(), usecases.MarkReadCommand{
		SessionID: c.Param("sessionId"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, MarkReadResponse{Success: true, Updated: updated})
}
