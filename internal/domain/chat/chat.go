// Package chat models support conversations between visitors and the assistant.
package chat

import "time"

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionClosed    SessionStatus = "closed"
	SessionEscalated SessionStatus = "escalated"
)

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionActive, SessionClosed, SessionEscalated:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type MessageType string

const (
	MessageText   MessageType = "text"
	MessageSystem MessageType = "system"
)

type Session struct {
	ID            uint          `json:"id"`
	SessionID     string        `json:"sessionId"`
	UserAgent     *string       `json:"userAgent"`
	IPAddress     *string       `json:"ipAddress"`
	Status        SessionStatus `json:"status"`
	Priority      Priority      `json:"priority"`
	AssignedAdmin *string       `json:"assignedAdmin"`
	Tags          []string      `json:"tags"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// NewSession returns an active, normal-priority session.
func NewSession(sessionID string, userAgent, ip *string) *Session {
	return &Session{
		SessionID: sessionID,
		UserAgent: userAgent,
		IPAddress: ip,
		Status:    SessionActive,
		Priority:  PriorityNormal,
		Tags:      []string{},
	}
}

type Message struct {
	ID          uint        `json:"id"`
	SessionID   string      `json:"sessionId"`
	Message     string      `json:"message"`
	IsUser      bool        `json:"isUser"`
	MessageType MessageType `json:"messageType"`
	IsRead      bool        `json:"isRead"`
	Timestamp   time.Time   `json:"timestamp"`
}

type SessionFilter struct {
	Status        *SessionStatus
	Priority      *Priority
	AssignedAdmin *string
	Limit         int
}

type SessionPatch struct {
	Status        *SessionStatus
	Priority      *Priority
	AssignedAdmin *string
	Tags          *[]string
}

type Stats struct {
	TotalSessions  int64            `json:"totalSessions"`
	ActiveSessions int64            `json:"activeSessions"`
	TotalMessages  int64            `json:"totalMessages"`
	UnreadMessages int64            `json:"unreadMessages"`
	ByPriority     map[string]int64 `json:"byPriority"`
}
