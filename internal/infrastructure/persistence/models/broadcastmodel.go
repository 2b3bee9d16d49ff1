package models

import (
	"time"

	"gorm.io/datatypes"
)

// BroadcastCampaignModel is the GORM model for the broadcast_campaigns table
type BroadcastCampaignModel struct {
	ID            uint                        `gorm:"primaryKey;autoIncrement"`
	Title         string                      `gorm:"column:title;size:255;not null"`
	Content       string                      `gorm:"column:content;type:text;not null"`
	Status        string                      `gorm:"column:status;size:20;not null;index"`
	Target        string                      `gorm:"column:target;size:20;not null"`
	TargetUserIDs datatypes.JSONSlice[string] `gorm:"column:target_user_ids"`
	TotalUsers    int                         `gorm:"column:total_users;not null"`
	SentCount     int                         `gorm:"column:sent_count;not null"`
	SuccessCount  int                         `gorm:"column:success_count;not null"`
	FailedCount   int                         `gorm:"column:failed_count;not null"`
	ScheduledTime *time.Time                  `gorm:"column:scheduled_time;index"`
	StartedAt     *time.Time                  `gorm:"column:started_at"`
	CompletedAt   *time.Time                  `gorm:"column:completed_at"`
	CreatedBy     string                      `gorm:"column:created_by;size:100"`
	CreatedAt     time.Time                   `gorm:"column:created_at;autoCreateTime;index"`
	UpdatedAt     time.Time                   `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (BroadcastCampaignModel) TableName() string {
	return "broadcast_campaigns"
}

// BroadcastRecipientModel is the GORM model for the broadcast_recipients table
type BroadcastRecipientModel struct {
	ID              uint       `gorm:"primaryKey;autoIncrement"`
	UserID          string     `gorm:"column:user_id;size:100;not null;uniqueIndex"`
	DisplayName     *string    `gorm:"column:display_name;size:255"`
	IsActive        bool       `gorm:"column:is_active;not null"`
	FollowedAt      time.Time  `gorm:"column:followed_at;not null"`
	LastInteraction *time.Time `gorm:"column:last_interaction;index"`
}

// TableName returns the table name for GORM
func (BroadcastRecipientModel) TableName() string {
	return "broadcast_recipients"
}

// BroadcastFailureModel is the GORM model for the broadcast_failures table
type BroadcastFailureModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	CampaignID uint      `gorm:"column:campaign_id;not null;index"`
	UserID     string    `gorm:"column:user_id;size:100;not null"`
	Error      string    `gorm:"column:error;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for GORM
func (BroadcastFailureModel) TableName() string {
	return "broadcast_failures"
}
