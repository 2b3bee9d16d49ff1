package setting

import (
	"context"
)

// Repository defines the interface for system setting persistence
type Repository interface {
	// Get returns (nil, nil) when the key is unknown
	Get(ctx context.Context, key string) (*SystemSetting, error)

	// List retrieves all settings ordered by key
	List(ctx context.Context) ([]*SystemSetting, error)

	// Upsert inserts the key or overwrites its value; description is kept when nil
	Upsert(ctx context.Context, key, value string, description *string) (*SystemSetting, error)

	Count(ctx context.Context) (int64, error)
}
