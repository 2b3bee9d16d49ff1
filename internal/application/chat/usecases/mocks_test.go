package usecases

import (
	"context"
	"sync"

	"github.com/scamguard-vn/scamguard/internal/domain/chat"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/chatbot"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

// mockChatRepository keeps sessions and messages in memory; the Err fields force failures.
type mockChatRepository struct {
	mu       sync.Mutex
	sessions map[string]*chat.Session
	messages []*chat.Message

	GetSessionErr    error
	CreateSessionErr error
	CreateMessageErr error

	ListSessionsFunc     func(ctx context.Context, filter chat.SessionFilter) ([]*chat.Session, error)
	ListMessagesFunc     func(ctx context.Context, sessionID string, limit int) ([]*chat.Message, error)
	UpdateSessionFunc    func(ctx context.Context, sessionID string, patch chat.SessionPatch) (*chat.Session, error)
	MarkMessagesReadFunc func(ctx context.Context, sessionID string) (int64, error)
}

func newMockChatRepository() *mockChatRepository {
	return &mockChatRepository{sessions: map[string]*chat.Session{}}
}

func (m *mockChatRepository) GetSession(_ context.Context, sessionID string) (*chat.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetSessionErr != nil {
		return nil, m.GetSessionErr
	}
	return m.sessions[sessionID], nil
}

func (m *mockChatRepository) CreateSession(_ context.Context, s *chat.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateSessionErr != nil {
		return m.CreateSessionErr
	}
	m.sessions[s.SessionID] = s
	return nil
}

func (m *mockChatRepository) UpdateSession(ctx context.Context, sessionID string, patch chat.SessionPatch) (*chat.Session, error) {
	if m.UpdateSessionFunc != nil {
		return m.UpdateSessionFunc(ctx, sessionID, patch)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.sessions[sessionID]
	if s == nil {
		return nil, nil
	}
	if patch.Priority != nil {
		s.Priority = *patch.Priority
	}
	if patch.Status != nil {
		s.Status = *patch.Status
	}
	return s, nil
}

func (m *mockChatRepository) ListSessions(ctx context.Context, filter chat.SessionFilter) ([]*chat.Session, error) {
	if m.ListSessionsFunc != nil {
		return m.ListSessionsFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockChatRepository) CreateMessage(_ context.Context, msg *chat.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateMessageErr != nil {
		return m.CreateMessageErr
	}
	m.messages = append(m.messages, msg)
	return nil
}

func (m *mockChatRepository) ListMessages(ctx context.Context, sessionID string, limit int) ([]*chat.Message, error) {
	if m.ListMessagesFunc != nil {
		return m.ListMessagesFunc(ctx, sessionID, limit)
	}
	return nil, nil
}

func (m *mockChatRepository) MarkMessagesRead(ctx context.Context, sessionID string) (int64, error) {
	if m.MarkMessagesReadFunc != nil {
		return m.MarkMessagesReadFunc(ctx, sessionID)
	}
	return 0, nil
}

func (m *mockChatRepository) Stats(context.Context) (*chat.Stats, error) { return &chat.Stats{}, nil }

type mockReplyGenerator struct {
	ReplyFunc func(ctx context.Context, sessionID, message string) (chatbot.Reply, error)
}

func (m *mockReplyGenerator) Reply(ctx context.Context, sessionID, message string) (chatbot.Reply, error) {
	if m.ReplyFunc != nil {
		return m.ReplyFunc(ctx, sessionID, message)
	}
	return chatbot.Reply{Text: "xin chào", Priority: chat.PriorityNormal}, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
