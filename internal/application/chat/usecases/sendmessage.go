package usecases

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/scamguard-vn/scamguard/internal/domain/chat"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

const maxMessageLength = 2000

type SendMessageCommand struct {
	Message   string
	SessionID string
	UserAgent *string
	IPAddress *string
}

type SendMessageResult struct {
	Response  string        `json:"response"`
	Priority  chat.Priority `json:"priority"`
	SessionID string        `json:"sessionId"`
}

// SendMessageUseCase answers one visitor message. Storage failures are logged and
// never cost the visitor the reply.
type SendMessageUseCase struct {
	chatRepo chat.Repository
	replies  ReplyGenerator
	logger   logger.Interface
	now      func() time.Time
	newID    func() string
}

func NewSendMessageUseCase(chatRepo chat.Repository, replies ReplyGenerator, logger logger.Interface) *SendMessageUseCase {
	return &SendMessageUseCase{
		chatRepo: chatRepo,
		replies:  replies,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, cmd SendMessageCommand) (*SendMessageResult, error) {
	message := strings.TrimSpace(cmd.Message)
	if message == "" {
		return nil, errors.NewValidationError("message is required")
	}
	if utf8.RuneCountInString(message) > maxMessageLength {
		return nil, errors.NewValidationError("message is too long")
	}

	sessionID := strings.TrimSpace(cmd.SessionID)
	if sessionID == "" {
		sessionID = uc.newID()
	}

	session := uc.ensureSession(ctx, sessionID, cmd)

	uc.storeMessage(ctx, &chat.Message{
		SessionID:   sessionID,
		Message:     message,
		IsUser:      true,
		MessageType: chat.MessageText,
		Timestamp:   uc.now(),
	})

	reply, err := uc.replies.Reply(ctx, sessionID, message)
	if err != nil {
		uc.logger.Errorw("failed to generate chat reply", "session_id", sessionID, "error", err)
		return nil, errors.NewUpstreamError("failed to generate reply", err)
	}
	if !reply.Priority.IsValid() {
		reply.Priority = chat.PriorityNormal
	}

	if session != nil && rank(reply.Priority) > rank(session.Priority) {
		p := reply.Priority
		if _, err := uc.chatRepo.UpdateSession(ctx, sessionID, chat.SessionPatch{Priority: &p}); err != nil {
			uc.logger.Warnw("failed to raise chat session priority", "session_id", sessionID, "error", err)
		} else {
			uc.logger.Infow("chat session priority raised", "session_id", sessionID, "priority", p)
		}
	}

	uc.storeMessage(ctx, &chat.Message{
		SessionID:   sessionID,
		Message:     reply.Text,
		IsUser:      false,
		MessageType: chat.MessageText,
		IsRead:      true,
		Timestamp:   uc.now(),
	})

	return &SendMessageResult{
		Response:  reply.Text,
		Priority:  reply.Priority,
		SessionID: sessionID,
	}, nil
}

// ensureSession returns nil when the session could neither be read nor created.
func (uc *SendMessageUseCase) ensureSession(ctx context.Context, sessionID string, cmd SendMessageCommand) *chat.Session {
	session, err := uc.chatRepo.GetSession(ctx, sessionID)
	if err != nil {
		uc.logger.Warnw("failed to load chat session", "session_id", sessionID, "error", err)
		return nil
	}
	if session != nil {
		return session
	}

	session = chat.NewSession(sessionID, cmd.UserAgent, cmd.IPAddress)
	if err := uc.chatRepo.CreateSession(ctx, session); err != nil {
		uc.logger.Warnw("failed to create chat session", "session_id", sessionID, "error", err)
		return nil
	}
	uc.logger.Infow("chat session started", "session_id", sessionID)
	return session
}

func (uc *SendMessageUseCase) storeMessage(ctx context.Context, m *chat.Message) {
	if err := uc.chatRepo.CreateMessage(ctx, m); err != nil {
		uc.logger.Warnw("failed to store chat message", "session_id", m.SessionID, "is_user", m.IsUser, "error", err)
	}
}

func rank(p chat.Priority) int {
	switch p {
	case chat.PriorityLow:
		return 0
	case chat.PriorityNormal:
		return 1
	case chat.PriorityHigh:
		return 2
	case chat.PriorityUrgent:
		return 3
	}
	return 1
}
