package blog

import "context"

type Repository interface {
	Create(ctx context.Context, p *Post) error
	GetByID(ctx context.Context, id uint) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	List(ctx context.Context, search string, filter Filter) ([]*Post, error)
	ListByCategory(ctx context.Context, category string, limit int) ([]*Post, error)
	Featured(ctx context.Context, limit int) ([]*Post, error)
	// Update applies the patch and sets PublishedAt on the first transition to published.
	// contentHTML is written when non-nil.
	Update(ctx context.Context, id uint, patch Patch, contentHTML *string) (*Post, error)
	Delete(ctx context.Context, id uint) error
	// IncrementViews atomically adds one view and returns the new count.
	IncrementViews(ctx context.Context, id uint) (int64, error)
	Count(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (*Stats, error)
}
