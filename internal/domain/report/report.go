// Package report models user-submitted fraud accusations.
package report

import "time"

type Status string

const (
	StatusPending       Status = "pending"
	StatusInvestigating Status = "investigating"
	StatusVerified      Status = "verified"
	StatusRejected      Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInvestigating, StatusVerified, StatusRejected:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

const DefaultCategory = "other"

// Report is one fraud accusation. Status transitions are free-form; VerifiedAt and
// VerifiedBy are only written by the dedicated status update.
type Report struct {
	ID            uint       `json:"id"`
	AccusedName   string     `json:"accusedName"`
	PhoneNumber   string     `json:"phoneNumber"`
	AccountNumber *string    `json:"accountNumber"`
	Bank          *string    `json:"bank"`
	Amount        int64      `json:"amount"`
	Description   string     `json:"description"`
	IsAnonymous   bool       `json:"isAnonymous"`
	ReporterName  *string    `json:"reporterName"`
	ReporterPhone *string    `json:"reporterPhone"`
	ReceiptURL    *string    `json:"receiptUrl"`
	Status        Status     `json:"status"`
	Priority      Priority   `json:"priority"`
	Category      string     `json:"category"`
	IsPublic      bool       `json:"isPublic"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	VerifiedAt    *time.Time `json:"verifiedAt"`
	VerifiedBy    *string    `json:"verifiedBy"`
}

// ApplyDefaults fills the values a freshly submitted report starts with.
func (r *Report) ApplyDefaults() {
	if r.Status == "" {
		r.Status = StatusPending
	}
	if r.Priority == "" {
		r.Priority = PriorityMedium
	}
	if r.Category == "" {
		r.Category = DefaultCategory
	}
	if r.IsAnonymous {
		r.ReporterName = nil
		r.ReporterPhone = nil
	}
}

// Filter narrows searches and listings; nil fields are not applied.
type Filter struct {
	Status   *Status
	Category *string
	Priority *Priority
	IsPublic *bool
	Limit    int
	Offset   int
}

// Patch is a partial update. It deliberately has no verification fields.
type Patch struct {
	AccusedName   *string
	PhoneNumber   *string
	AccountNumber *string
	Bank          *string
	Amount        *int64
	Description   *string
	ReceiptURL    *string
	Status        *Status
	Priority      *Priority
	Category      *string
	IsPublic      *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// Stats aggregates reports for the admin dashboard.
type Stats struct {
	Total       int64            `json:"total"`
	TotalAmount int64            `json:"totalAmount"`
	ByStatus    map[string]int64 `json:"byStatus"`
	ByCategory  map[string]int64 `json:"byCategory"`
	ByPriority  map[string]int64 `json:"byPriority"`
	Last7Days   int64            `json:"last7Days"`
}
