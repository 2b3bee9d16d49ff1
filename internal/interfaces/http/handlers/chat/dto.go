package chat

import (
	domain "github.com/scamguard-vn/scamguard/internal/domain/chat"
)

type SendMessageRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"sessionId,omitempty" binding:"omitempty,max=100"`
}

type UpdateSessionRequest struct {
	Status        *string   `json:"status,omitempty"`
	Priority      *string   `json:"priority,omitempty"`
	AssignedAdmin *string   `json:"assignedAdmin,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
}

func (r *UpdateSessionRequest) ToPatch() domain.SessionPatch {
	patch := domain.SessionPatch{
		AssignedAdmin: r.AssignedAdmin,
		Tags:          r.Tags,
	}
	if r.Status != nil {
		s := domain.SessionStatus(*r.Status)
		patch.Status = &s
	}
	if r.Priority != nil {
		p := domain.Priority(*r.Priority)
		patch.Priority = &p
	}
	return patch
}

type MarkReadResponse struct {
	Success bool  `json:"success"`
	Updated int64 `json:"updated"`
}
