package models

import (
	"time"

	"gorm.io/datatypes"
)

// ChatSessionModel is the GORM model for the chat_sessions table
type ChatSessionModel struct {
	ID            uint                        `gorm:"primaryKey;autoIncrement"`
	SessionID     string                      `gorm:"column:session_id;size:100;not null;uniqueIndex"`
	UserAgent     *string                     `gorm:"column:user_agent;type:text"`
	IPAddress     *string                     `gorm:"column:ip_address;size:45"`
	Status        string                      `gorm:"column:status;size:20;not null;index"`
	Priority      string                      `gorm:"column:priority;size:20;not null;index"`
	AssignedAdmin *string                     `gorm:"column:assigned_admin;size:100;index"`
	Tags          datatypes.JSONSlice[string] `gorm:"column:tags"`
	CreatedAt     time.Time                   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time                   `gorm:"column:updated_at;autoUpdateTime;index"`
}

// TableName returns the table name for GORM
func (ChatSessionModel) TableName() string {
	return "chat_sessions"
}

// ChatMessageModel is the GORM model for the chat_messages table.
// SessionID references chat_sessions.session_id without a foreign key.
type ChatMessageModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	SessionID   string    `gorm:"column:session_id;size:100;not null;index"`
	Message     string    `gorm:"column:message;type:text;not null"`
	IsUser      bool      `gorm:"column:is_user;not null"`
	MessageType string    `gorm:"column:message_type;size:20;not null"`
	IsRead      bool      `gorm:"column:is_read;not null"`
	Timestamp   time.Time `gorm:"column:created_at;not null;index"`
}

// TableName returns the table name for GORM
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
