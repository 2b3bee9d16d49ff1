package usecases

import (
	"context"

	"github.com/scamguard-vn/scamguard/internal/domain/chat"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/chatbot"
)

type SendMessageExecutor interface {
	Execute(ctx context.Context, cmd SendMessageCommand) (*SendMessageResult, error)
}

type ListSessionsExecutor interface {
	Execute(ctx context.Context, query ListSessionsQuery) ([]*chat.Session, error)
}

type ListMessagesExecutor interface {
	Execute(ctx context.Context, query ListMessagesQuery) ([]*chat.Message, error)
}

type UpdateSessionExecutor interface {
	Execute(ctx context.Context, cmd UpdateSessionCommand) (*chat.Session, error)
}

type MarkReadExecutor interface {
	Execute(ctx context.Context, cmd MarkReadCommand) (int64, error)
}

type ReplyGenerator interface {
	Reply(ctx context.Context, sessionID, message string) (chatbot.Reply, error)
}
