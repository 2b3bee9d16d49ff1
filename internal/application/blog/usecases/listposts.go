package usecases

import (
	"context"
	"strings"

	"github.com/scamguard-vn/scamguard/internal/domain/blog"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

type ListPostsQuery struct {
	Search string
	Filter blog.Filter
}

type ListPostsUseCase struct {
	blogRepo blog.Repository
	logger   logger.Interface
}

func NewListPostsUseCase(blogRepo blog.Repository, logger logger.Interface) *ListPostsUseCase {
	return &ListPostsUseCase{blogRepo: blogRepo, logger: logger}
}

func (uc *ListPostsUseCase) Execute(ctx context.Context, query ListPostsQuery) ([]*blog.Post, error) {
	if query.Filter.Status != nil && !query.Filter.Status.IsValid() {
		return nil, errors.NewValidationError("invalid blog status", string(*query.Filter.Status))
	}

	posts, err := uc.blogRepo.List(ctx, strings.TrimSpace(query.Search), query.Filter)
	if err != nil {
		uc.logger.Errorw("failed to list blog posts", "error", err)
		return nil, err
	}
	return posts, nil
}

type ListPostsByCategoryQuery struct {
	Category string
	Limit    int
}

type ListPostsByCategoryUseCase struct {
	blogRepo blog.Repository
	logger   logger.Interface
}

func NewListPostsByCategoryUseCase(blogRepo blog.Repository, logger logger.Interface) *ListPostsByCategoryUseCase {
	return &ListPostsByCategoryUseCase{blogRepo: blogRepo, logger: logger}
}

func (uc *ListPostsByCategoryUseCase) Execute(ctx context.Context, query ListPostsByCategoryQuery) ([]*blog.Post, error) {
	limit := utils.NormalizeLimit(query.Limit, constants.DefaultBlogCategoryLimit)
	posts, err := uc.blogRepo.ListByCategory(ctx, query.Category, limit)
	if err != nil {
		uc.logger.Errorw("failed to list blog posts by category", "category", query.Category, "error", err)
		return nil, err
	}
	return posts, nil
}

type ListFeaturedPostsQuery struct {
	Limit int
}

type ListFeaturedPostsUseCase struct {
	blogRepo blog.Repository
	logger   logger.Interface
}

func NewListFeaturedPostsUseCase(blogRepo blog.Repository, logger logger.Interface) *ListFeaturedPostsUseCase {
	return &ListFeaturedPostsUseCase{blogRepo: blogRepo, logger: logger}
}

func (uc *ListFeaturedPostsUseCase) Execute(ctx context.Context, query ListFeaturedPostsQuery) ([]*blog.Post, error) {
	limit := utils.NormalizeLimit(query.Limit, constants.DefaultFeaturedBlogLimit)
	posts, err := uc.blogRepo.Featured(ctx, limit)
	if err != nil {
		uc.logger.Errorw("failed to list featured blog posts", "error", err)
		return nil, err
	}
	return posts, nil
}
