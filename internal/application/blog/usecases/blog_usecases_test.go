package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scamguard-vn/scamguard/internal/domain/blog"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	apperrors "github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/services/markdown"
)

func TestCreatePostUseCase_Execute_Success(t *testing.T) {
	var created *blog.Post
	repo := &mockBlogRepository{
		CreateFunc: func(_ context.Context, p *blog.Post) error {
			p.ID = 1
			created = p
			return nil
		},
	}
	uc := NewCreatePostUseCase(repo, markdown.NewMarkdownService(), &mockLogger{})
	fixed := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	got, err := uc.Execute(context.Background(), CreatePostCommand{
		Title:   "Cảnh báo lừa đảo đầu tư",
		Content: "# Cảnh báo\n\nĐừng **chuyển tiền**.<script>alert(1)</script>",
		Status:  "published",
	})
	require.NoError(t, err)
	require.Same(t, created, got)

	assert.Equal(t, "canh-bao-lua-dao-dau-tu", got.Slug)
	assert.Contains(t, got.ContentHTML, "<strong>chuyển tiền</strong>")
	assert.NotContains(t, got.ContentHTML, "<script>")
	assert.NotEmpty(t, got.Excerpt)
	assert.NotContains(t, got.Excerpt, "<")
	assert.Equal(t, blog.DefaultCategory, got.Category)
	assert.Equal(t, blog.DefaultReadTime, got.ReadTime)
	require.NotNil(t, got.PublishedAt)
	assert.Equal(t, fixed, *got.PublishedAt)
}

func TestCreatePostUseCase_Execute_DuplicateSlug(t *testing.T) {
	repo := &mockBlogRepository{
		GetBySlugFunc: func(_ context.Context, slug string) (*blog.Post, error) {
			return &blog.Post{ID: 9, Slug: slug}, nil
		},
		CreateFunc: func(context.Context, *blog.Post) error {
			t.Fatal("create must not be called")
			return nil
		},
	}
	uc := NewCreatePostUseCase(repo, markdown.NewMarkdownService(), &mockLogger{})

	_, err := uc.Execute(context.Background(), CreatePostCommand{Title: "Hello", Content: "body"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestCreatePostUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreatePostCommand
	}{
		{"missing title", CreatePostCommand{Content: "x"}},
		{"missing content", CreatePostCommand{Title: "x"}},
		{"bad slug", CreatePostCommand{Title: "x", Content: "x", Slug: "Bad Slug"}},
		{"bad status", CreatePostCommand{Title: "x", Content: "x", Status: "live"}},
		{"title without slug characters", CreatePostCommand{Title: "!!!", Content: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreatePostUseCase(&mockBlogRepository{}, markdown.NewMarkdownService(), &mockLogger{})
			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestCreatePostUseCase_TruncatesLongExcerpt(t *testing.T) {
	uc := NewCreatePostUseCase(&mockBlogRepository{}, markdown.NewMarkdownService(), &mockLogger{})
	got, err := uc.Execute(context.Background(), CreatePostCommand{
		Title:   "Long",
		Content: strings.Repeat("ư", 500),
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, len([]rune(got.Excerpt)), excerptLength+1)
	assert.True(t, strings.HasSuffix(got.Excerpt, "…"))
}

func TestGetPostUseCase_Execute(t *testing.T) {
	tests := []struct {
		name        string
		query       GetPostQuery
		post        *blog.Post
		wantViews   int64
		wantCounted bool
		wantErr     bool
	}{
		{"published by id", GetPostQuery{ID: 1}, &blog.Post{ID: 1, Status: blog.StatusPublished, Views: 4}, 5, true, false},
		{"published by slug", GetPostQuery{Slug: "a"}, &blog.Post{ID: 2, Slug: "a", Status: blog.StatusPublished, Views: 0}, 1, true, false},
		{"draft is not counted", GetPostQuery{ID: 3}, &blog.Post{ID: 3, Status: blog.StatusDraft, Views: 2}, 2, false, false},
		{"missing", GetPostQuery{ID: 4}, nil, 0, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counted := false
			repo := &mockBlogRepository{
				GetByIDFunc:   func(context.Context, uint) (*blog.Post, error) { return tt.post, nil },
				GetBySlugFunc: func(context.Context, string) (*blog.Post, error) { return tt.post, nil },
				IncrementViewsFunc: func(context.Context, uint) (int64, error) {
					counted = true
					return tt.post.Views + 1, nil
				},
			}
			got, err := NewGetPostUseCase(repo, &mockLogger{}).Execute(context.Background(), tt.query)
			if tt.wantErr {
				assert.True(t, apperrors.IsNotFoundError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantViews, got.Views)
			assert.Equal(t, tt.wantCounted, counted)
		})
	}
}

func TestGetPostUseCase_IncrementFailureStillReturnsPost(t *testing.T) {
	repo := &mockBlogRepository{
		GetByIDFunc: func(context.Context, uint) (*blog.Post, error) {
			return &blog.Post{ID: 1, Status: blog.StatusPublished, Views: 10}, nil
		},
		IncrementViewsFunc: func(context.Context, uint) (int64, error) { return 0, errors.New("locked") },
	}
	got, err := NewGetPostUseCase(repo, &mockLogger{}).Execute(context.Background(), GetPostQuery{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.Views)
}

func TestListUseCases_Limits(t *testing.T) {
	var categoryLimit, featuredLimit int
	repo := &mockBlogRepository{
		ListByCategoryFunc: func(_ context.Context, _ string, limit int) ([]*blog.Post, error) {
			categoryLimit = limit
			return nil, nil
		},
		FeaturedFunc: func(_ context.Context, limit int) ([]*blog.Post, error) {
			featuredLimit = limit
			return nil, nil
		},
	}

	_, err := NewListPostsByCategoryUseCase(repo, &mockLogger{}).Execute(context.Background(), ListPostsByCategoryQuery{Category: "guides"})
	require.NoError(t, err)
	_, err = NewListFeaturedPostsUseCase(repo, &mockLogger{}).Execute(context.Background(), ListFeaturedPostsQuery{})
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultBlogCategoryLimit, categoryLimit)
	assert.Equal(t, constants.DefaultFeaturedBlogLimit, featuredLimit)
}

func TestListPostsUseCase_RejectsInvalidStatus(t *testing.T) {
	bad := blog.Status("live")
	_, err := NewListPostsUseCase(&mockBlogRepository{}, &mockLogger{}).
		Execute(context.Background(), ListPostsQuery{Filter: blog.Filter{Status: &bad}})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestUpdatePostUseCase_RerendersContent(t *testing.T) {
	var gotHTML *string
	repo := &mockBlogRepository{
		UpdateFunc: func(_ context.Context, id uint, _ blog.Patch, html *string) (*blog.Post, error) {
			gotHTML = html
			return &blog.Post{ID: id}, nil
		},
	}
	uc := NewUpdatePostUseCase(repo, markdown.NewMarkdownService(), &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdatePostCommand{ID: 1, Patch: blog.Patch{Content: strPtr("**new**")}})
	require.NoError(t, err)
	require.NotNil(t, gotHTML)
	assert.Contains(t, *gotHTML, "<strong>new</strong>")

	gotHTML = nil
	_, err = uc.Execute(context.Background(), UpdatePostCommand{ID: 1, Patch: blog.Patch{Title: strPtr("t")}})
	require.NoError(t, err)
	assert.Nil(t, gotHTML)
}

func TestUpdatePostUseCase_SlugConflict(t *testing.T) {
	repo := &mockBlogRepository{
		GetBySlugFunc: func(_ context.Context, slug string) (*blog.Post, error) {
			return &blog.Post{ID: 2, Slug: slug}, nil
		},
	}
	uc := NewUpdatePostUseCase(repo, markdown.NewMarkdownService(), &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdatePostCommand{ID: 1, Patch: blog.Patch{Slug: strPtr("taken")}})
	assert.True(t, apperrors.IsConflictError(err))

	_, err = uc.Execute(context.Background(), UpdatePostCommand{ID: 2, Patch: blog.Patch{Slug: strPtr("taken")}})
	assert.NoError(t, err)
}

func TestDeletePostUseCase_PropagatesNotFound(t *testing.T) {
	repo := &mockBlogRepository{
		DeleteFunc: func(context.Context, uint) error { return apperrors.NewNotFoundError("Blog post not found") },
	}
	err := NewDeletePostUseCase(repo, &mockLogger{}).Execute(context.Background(), DeletePostCommand{ID: 1})
	assert.True(t, apperrors.IsNotFoundError(err))
}
