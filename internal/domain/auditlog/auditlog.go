// Package auditlog records administrative actions.
package auditlog

import (
	"context"
	"time"
)

type Entry struct {
	ID           uint           `json:"id"`
	UserID       *uint          `json:"userId"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resourceType"`
	ResourceID   *string        `json:"resourceId"`
	Details      map[string]any `json:"details"`
	IPAddress    string         `json:"ipAddress"`
	UserAgent    string         `json:"userAgent"`
	Timestamp    time.Time      `json:"timestamp"`
}

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	// List returns entries newest first.
	List(ctx context.Context, limit, offset int) ([]*Entry, error)
}
