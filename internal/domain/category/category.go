// Package category holds the report and blog taxonomies.
package category

import (
	"context"
	"time"
)

const DefaultColor = "#6b7280"

type ReportCategory struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Color       string    `json:"color"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

type BlogCategory struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	Color       string    `json:"color"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Repository interface {
	ListReportCategories(ctx context.Context, activeOnly bool) ([]*ReportCategory, error)
	CreateReportCategory(ctx context.Context, c *ReportCategory) error
	ListBlogCategories(ctx context.Context, activeOnly bool) ([]*BlogCategory, error)
	CreateBlogCategory(ctx context.Context, c *BlogCategory) error
	CountReportCategories(ctx context.Context) (int64, error)
	CountBlogCategories(ctx context.Context) (int64, error)
}
