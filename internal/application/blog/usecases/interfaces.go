package usecases

import (
	"context"

	"github.com/scamguard-vn/scamguard/internal/domain/blog"
)

type CreatePostExecutor interface {
	Execute(ctx context.Context, cmd CreatePostCommand) (*blog.Post, error)
}

type GetPostExecutor interface {
	Execute(ctx context.Context, query GetPostQuery) (*blog.Post, error)
}

type ListPostsExecutor interface {
	Execute(ctx context.Context, query ListPostsQuery) ([]*blog.Post, error)
}

type ListPostsByCategoryExecutor interface {
	Execute(ctx context.Context, query ListPostsByCategoryQuery) ([]*blog.Post, error)
}

type ListFeaturedPostsExecutor interface {
	Execute(ctx context.Context, query ListFeaturedPostsQuery) ([]*blog.Post, error)
}

type UpdatePostExecutor interface {
	Execute(ctx context.Context, cmd UpdatePostCommand) (*blog.Post, error)
}

type DeletePostExecutor interface {
	Execute(ctx context.Context, cmd DeletePostCommand) error
}

// Renderer turns markdown into sanitized HTML.
type Renderer interface {
	ToHTMLSanitized(markdown string) (string, error)
	Sanitize(htmlContent string) string
	StripTags(htmlContent string) string
}
