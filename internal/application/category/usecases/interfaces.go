package usecases

import (
	"context"

	"github.com/scamguard-vn/scamguard/internal/domain/category"
)

type ListReportCategoriesExecutor interface {
	Execute(ctx context.Context, query ListCategoriesQuery) ([]*category.ReportCategory, error)
}

type ListBlogCategoriesExecutor interface {
	Execute(ctx context.Context, query ListCategoriesQuery) ([]*category.BlogCategory, error)
}

type CreateReportCategoryExecutor interface {
	Execute(ctx context.Context, cmd CreateCategoryCommand) (*category.ReportCategory, error)
}

type CreateBlogCategoryExecutor interface {
	Execute(ctx context.Context, cmd CreateCategoryCommand) (*category.BlogCategory, error)
}
