package chat

import "context"

type Repository interface {
	GetSession(ctx context.Context, sessionID string) (*Session, error)
	CreateSession(ctx context.Context, s *Session) error
	UpdateSession(ctx context.Context, sessionID string, patch SessionPatch) (*Session, error)
	ListSessions(ctx context.Context, filter SessionFilter) ([]*Session, error)
	CreateMessage(ctx context.Context, m *Message) error
	// ListMessages returns the conversation oldest first.
	ListMessages(ctx context.Context, sessionID string, limit int) ([]*Message, error)
	// MarkMessagesRead flags the visitor's messages as read and returns how many changed.
	MarkMessagesRead(ctx context.Context, sessionID string) (int64, error)
	Stats(ctx context.Context) (*Stats, error)
}
