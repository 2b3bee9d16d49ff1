package report

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, r *Report) error
	// GetByID returns (nil, nil) when no report matches.
	GetByID(ctx context.Context, id uint) (*Report, error)
	Search(ctx context.Context, query string, filter Filter) ([]*Report, error)
	// FindByIdentifier matches an exact phone or account number, or a name substring.
	// publicOnly restricts the match to published reports before the limit applies.
	FindByIdentifier(ctx context.Context, keyword string, publicOnly bool, limit int) ([]*Report, error)
	Recent(ctx context.Context, limit int) ([]*Report, error)
	ListByStatus(ctx context.Context, status Status, limit int) ([]*Report, error)
	List(ctx context.Context, filter Filter) ([]*Report, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	Update(ctx context.Context, id uint, patch Patch) (*Report, error)
	UpdateStatus(ctx context.Context, id uint, status Status, verifiedBy *string, at time.Time) (*Report, error)
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context, since time.Time) (*Stats, error)
}
