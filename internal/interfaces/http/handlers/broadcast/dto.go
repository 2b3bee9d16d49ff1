package broadcast

import (
	"time"

	"github.com/scamguard-vn/scamguard/internal/application/broadcast/usecases"
)

// HeaderSignature carries the hex HMAC-SHA256 of a webhook body.
const HeaderSignature = "X-ZEvent-Signature"

type CreateCampaignRequest struct {
	Title         string   `json:"title" binding:"required,max=255"`
	Content       string   `json:"content" binding:"required"`
	Target        string   `json:"target,omitempty" binding:"omitempty,oneof=all active specific"`
	TargetUserIDs []string `json:"target_user_ids,omitempty"`
}

func (r *CreateCampaignRequest) ToCommand(createdBy string) usecases.CreateCampaignCommand {
	return usecases.CreateCampaignCommand{
		Title:         r.Title,
		Content:       r.Content,
		Target:        r.Target,
		TargetUserIDs: r.TargetUserIDs,
		CreatedBy:     createdBy,
	}
}

type SendCampaignRequest struct {
	SendNow       bool       `json:"send_now"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
}

type RegisterRecipientRequest struct {
	UserID      string  `json:"user_id" binding:"required,max=100"`
	DisplayName *string `json:"display_name,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type webhookUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name,omitempty"`
}

// webhookEvent is the subset of the messaging platform's event payload the
// recipient list cares about. Follow events carry follower, messages carry sender.
type webhookEvent struct {
	EventName string       `json:"event_name"`
	Follower  *webhookUser `json:"follower,omitempty"`
	Sender    *webhookUser `json:"sender,omitempty"`
}

func (e *webhookEvent) toCommand() (usecases.FollowerEventCommand, bool) {
	user := e.Follower
	if user == nil {
		user = e.Sender
	}
	if user == nil || user.ID == "" {
		return usecases.FollowerEventCommand{}, false
	}
	cmd := usecases.FollowerEventCommand{EventName: e.EventName, UserID: user.ID}
	if user.DisplayName != "" {
		name := user.DisplayName
		cmd.DisplayName = &name
	}
	return cmd, true
}
