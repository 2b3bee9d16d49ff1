package usecases

import (
	"context"

	"github.com/scamguard-vn/scamguard/internal/domain/blog"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

type mockBlogRepository struct {
	CreateFunc         func(ctx context.Context, p *blog.Post) error
	GetByIDFunc        func(ctx context.Context, id uint) (*blog.Post, error)
	GetBySlugFunc      func(ctx context.Context, slug string) (*blog.Post, error)
	ListFunc           func(ctx context.Context, search string, filter blog.Filter) ([]*blog.Post, error)
	ListByCategoryFunc func(ctx context.Context, category string, limit int) ([]*blog.Post, error)
	FeaturedFunc       func(ctx context.Context, limit int) ([]*blog.Post, error)
	UpdateFunc         func(ctx context.Context, id uint, patch blog.Patch, contentHTML *string) (*blog.Post, error)
	DeleteFunc         func(ctx context.Context, id uint) error
	IncrementViewsFunc func(ctx context.Context, id uint) (int64, error)
	CountFunc          func(ctx context.Context) (int64, error)
	StatsFunc          func(ctx context.Context) (*blog.Stats, error)
}

func (m *mockBlogRepository) Create(ctx context.Context, p *blog.Post) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockBlogRepository) GetByID(ctx context.Context, id uint) (*blog.Post, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockBlogRepository) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockBlogRepository) List(ctx context.Context, search string, filter blog.Filter) ([]*blog.Post, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, search, filter)
	}
	return nil, nil
}

func (m *mockBlogRepository) ListByCategory(ctx context.Context, category string, limit int) ([]*blog.Post, error) {
	if m.ListByCategoryFunc != nil {
		return m.ListByCategoryFunc(ctx, category, limit)
	}
	return nil, nil
}

func (m *mockBlogRepository) Featured(ctx context.Context, limit int) ([]*blog.Post, error) {
	if m.FeaturedFunc != nil {
		return m.FeaturedFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockBlogRepository) Update(ctx context.Context, id uint, patch blog.Patch, contentHTML *string) (*blog.Post, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch, contentHTML)
	}
	return &blog.Post{ID: id}, nil
}

func (m *mockBlogRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockBlogRepository) IncrementViews(ctx context.Context, id uint) (int64, error) {
	if m.IncrementViewsFunc != nil {
		return m.IncrementViewsFunc(ctx, id)
	}
	return 0, nil
}

func (m *mockBlogRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockBlogRepository) Stats(ctx context.Context) (*blog.Stats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return &blog.Stats{}, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func strPtr(s string) *string { return &s }
