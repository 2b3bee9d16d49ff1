package usecases

import (
	"context"
	"strings"

	"github.com/scamguard-vn/scamguard/internal/domain/chat"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

type ListSessionsQuery struct {
	Filter chat.SessionFilter
}

type ListSessionsUseCase struct {
	chatRepo chat.Repository
	logger   logger.Interface
}

func NewListSessionsUseCase(chatRepo chat.Repository, logger logger.Interface) *ListSessionsUseCase {
	return &ListSessionsUseCase{chatRepo: chatRepo, logger: logger}
}

func (uc *ListSessionsUseCase) Execute(ctx context.Context, query ListSessionsQuery) ([]*chat.Session, error) {
	f := query.Filter
	if f.Status != nil && !f.Status.IsValid() {
		return nil, errors.NewValidationError("invalid session status", string(*f.Status))
	}
	if f.Priority != nil && !f.Priority.IsValid() {
		return nil, errors.NewValidationError("invalid session priority", string(*f.Priority))
	}
	f.Limit = utils.NormalizeLimit(f.Limit, constants.DefaultChatSessionLimit)

	sessions, err := uc.chatRepo.ListSessions(ctx, f)
	if err != nil {
		uc.logger.Errorw("failed to list chat sessions", "error", err)
		return nil, err
	}
	return sessions, nil
}

type ListMessagesQuery struct {
	SessionID string
	Limit     int
}

type ListMessagesUseCase struct {
	chatRepo chat.Repository
	logger   logger.Interface
}

func NewListMessagesUseCase(chatRepo chat.Repository, logger logger.Interface) *ListMessagesUseCase {
	return &ListMessagesUseCase{chatRepo: chatRepo, logger: logger}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, query ListMessagesQuery) ([]*chat.Message, error) {
	sessionID := strings.TrimSpace(query.SessionID)
	if sessionID == "" {
		return nil, errors.NewValidationError("sessionId is required")
	}

	limit := utils.NormalizeLimit(query.Limit, constants.DefaultChatMessageLimit)
	messages, err := uc.chatRepo.ListMessages(ctx, sessionID, limit)
	if err != nil {
		uc.logger.Errorw("failed to list chat messages", "session_id", sessionID, "error", err)
		return nil, err
	}
	return messages, nil
}

type UpdateSessionCommand struct {
	SessionID string
	Patch     chat.SessionPatch
}

type UpdateSessionUseCase struct {
	chatRepo chat.Repository
	logger   logger.Interface
}

func NewUpdateSessionUseCase(chatRepo chat.Repository, logger logger.Interface) *UpdateSessionUseCase {
	return &UpdateSessionUseCase{chatRepo: chatRepo, logger: logger}
}

func (uc *UpdateSessionUseCase) Execute(ctx context.Context, cmd UpdateSessionCommand) (*chat.Session, error) {
	p := cmd.Patch
	if p.Status != nil && !p.Status.IsValid() {
		return nil, errors.NewValidationError("invalid session status", string(*p.Status))
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		return nil, errors.NewValidationError("invalid session priority", string(*p.Priority))
	}

	session, err := uc.chatRepo.UpdateSession(ctx, cmd.SessionID, p)
	if err != nil {
		uc.logger.Errorw("failed to update chat session", "session_id", cmd.SessionID, "error", err)
		return nil, err
	}

	uc.logger.Infow("chat session updated", "session_id", cmd.SessionID, "status", session.Status, "priority", session.Priority)
	return session, nil
}

type MarkReadCommand struct {
	SessionID string
}

type MarkReadUseCase struct {
	chatRepo chat.Repository
	logger   logger.Interface
}

func NewMarkReadUseCase(chatRepo chat.Repository, logger logger.Interface) *MarkReadUseCase {
	return &MarkReadUseCase{chatRepo: chatRepo, logger: logger}
}

func (uc *MarkReadUseCase) Execute(ctx context.Context, cmd MarkReadCommand) (int64, error) {
	updated, err := uc.chatRepo.MarkMessagesRead(ctx, cmd.SessionID)
	if err != nil {
		uc.logger.Errorw("failed to mark chat messages read", "session_id", cmd.SessionID, "error", err)
		return 0, err
	}
	return updated, nil
}
