// Package broadcast models one-way announcements pushed to messaging-app followers.
package broadcast

import (
	"time"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusSending   Status = "sending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Target selects which followers receive a campaign.
type Target string

const (
	// TargetAll is every follower still subscribed.
	TargetAll Target = "all"
	// TargetActive is subscribed followers who interacted within ActiveWindow.
	TargetActive Target = "active"
	// TargetSpecific is the explicit TargetUserIDs list.
	TargetSpecific Target = "specific"
)

const ActiveWindow = 30 * 24 * time.Hour

func (t Target) IsValid() bool {
	switch t {
	case TargetAll, TargetActive, TargetSpecific:
		return true
	}
	return false
}

type Campaign struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Status        Status     `json:"status"`
	Target        Target     `json:"target"`
	TargetUserIDs []string   `json:"target_user_ids,omitempty"`
	TotalUsers    int        `json:"total_users"`
	SentCount     int        `json:"sent_count"`
	SuccessCount  int        `json:"success_count"`
	FailedCount   int        `json:"failed_count"`
	ScheduledTime *time.Time `json:"scheduled_time"`
	StartedAt     *time.Time `json:"started_at"`
	CompletedAt   *time.Time `json:"completed_at"`
	CreatedBy     string     `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
}

// SendableStatuses are the statuses a dispatch or a schedule may start from.
var SendableStatuses = []Status{StatusDraft, StatusScheduled, StatusFailed}

// CanSend reports whether a dispatch may start from the current status.
func (c *Campaign) CanSend() bool {
	for _, s := range SendableStatuses {
		if c.Status == s {
			return true
		}
	}
	return false
}

// CanDelete is false only while a dispatch is running.
func (c *Campaign) CanDelete() bool {
	return c.Status != StatusSending
}

// Start moves the campaign into sending and resets its counters.
func (c *Campaign) Start(total int, now time.Time) {
	c.Status = StatusSending
	c.TotalUsers = total
	c.SentCount = 0
	c.SuccessCount = 0
	c.FailedCount = 0
	c.StartedAt = &now
	c.CompletedAt = nil
}

// RecordResult counts one delivery attempt.
func (c *Campaign) RecordResult(ok bool) {
	c.SentCount++
	if ok {
		c.SuccessCount++
	} else {
		c.FailedCount++
	}
}

// Finish closes the dispatch. A campaign where every attempt failed is marked failed.
func (c *Campaign) Finish(now time.Time) {
	c.CompletedAt = &now
	if c.TotalUsers > 0 && c.SuccessCount == 0 {
		c.Status = StatusFailed
		return
	}
	c.Status = StatusCompleted
}

// SuccessRate is a percentage rounded to two decimals.
func (c *Campaign) SuccessRate() float64 {
	if c.SentCount == 0 {
		return 0
	}
	rate := float64(c.SuccessCount) / float64(c.SentCount) * 100
	return float64(int(rate*100+0.5)) / 100
}

type Recipient struct {
	ID              uint       `json:"id"`
	UserID          string     `json:"user_id"`
	DisplayName     *string    `json:"display_name"`
	IsActive        bool       `json:"is_active"`
	FollowedAt      time.Time  `json:"followed_at"`
	LastInteraction *time.Time `json:"last_interaction"`
}

// Failure is one recipient the campaign could not reach.
type Failure struct {
	ID         uint      `json:"-"`
	CampaignID uint      `json:"-"`
	UserID     string    `json:"user_id"`
	Error      string    `json:"error"`
	CreatedAt  time.Time `json:"-"`
}

type CampaignStats struct {
	CampaignID   uint       `json:"campaign_id"`
	Status       Status     `json:"status"`
	TotalUsers   int        `json:"total_users"`
	SentCount    int        `json:"sent_count"`
	SuccessCount int        `json:"success_count"`
	FailedCount  int        `json:"failed_count"`
	SuccessRate  float64    `json:"success_rate"`
	StartedAt    *time.Time `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at"`
	FailedUsers  []*Failure `json:"failed_users"`
}
