package usecases

import (
	"context"

	"github.com/scamguard-vn/scamguard/internal/domain/blog"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

// GetPostQuery looks a post up by ID, or by Slug when ID is zero.
type GetPostQuery struct {
	ID   uint
	Slug string
}

// GetPostUseCase returns a post and counts the read when the post is published.
type GetPostUseCase struct {
	blogRepo blog.Repository
	logger   logger.Interface
}

func NewGetPostUseCase(blogRepo blog.Repository, logger logger.Interface) *GetPostUseCase {
	return &GetPostUseCase{blogRepo: blogRepo, logger: logger}
}

func (uc *GetPostUseCase) Execute(ctx context.Context, query GetPostQuery) (*blog.Post, error) {
	var (
		post *blog.Post
		err  error
	)
	if query.ID != 0 {
		post, err = uc.blogRepo.GetByID(ctx, query.ID)
	} else {
		post, err = uc.blogRepo.GetBySlug(ctx, query.Slug)
	}
	if err != nil {
		uc.logger.Errorw("failed to get blog post", "post_id", query.ID, "slug", query.Slug, "error", err)
		return nil, err
	}
	if post == nil {
		return nil, errors.NewNotFoundError("Blog post not found")
	}

	if !post.IsPublished() {
		return post, nil
	}

	views, err := uc.blogRepo.IncrementViews(ctx, post.ID)
	if err != nil {
		// the read still succeeds with the stale count
		uc.logger.Warnw("failed to increment blog views", "post_id", post.ID, "error", err)
		return post, nil
	}
	post.Views = views
	return post, nil
}
