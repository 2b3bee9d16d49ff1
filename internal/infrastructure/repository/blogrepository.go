package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/scamguard-vn/scamguard/internal/domain/blog"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/mappers"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/models"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/db"
	apperrors "github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

// BlogRepository implements blog.Repository
type BlogRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.BlogPostMapper
}

func NewBlogRepository(database *gorm.DB, logger logger.Interface) *BlogRepository {
	return &BlogRepository{
		db:     database,
		logger: logger,
		mapper: mappers.NewBlogPostMapper(),
	}
}

func (r *BlogRepository) Create(ctx context.Context, post *blog.Post) error {
	post.ApplyDefaults(time.Now().UTC())
	model := r.mapper.ToModel(post)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("Slug already exists")
		}
		r.logger.Errorw("failed to create blog post", "slug", post.Slug, "error", err)
		return fmt.Errorf("failed to create blog post: %w", err)
	}

	*post = *r.mapper.ToDomain(model)
	return nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id uint) (*blog.Post, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *BlogRepository) first(ctx context.Context, cond string, arg interface{}) (*blog.Post, error) {
	var model models.BlogPostModel
	err := db.GetTxFromContext(ctx, r.db).Where(cond, arg).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

// List searches title, excerpt and the serialized tags.
func (r *BlogRepository) List(ctx context.Context, search string, filter blog.Filter) ([]*blog.Post, error) {
	tx := db.GetTxFromContext(ctx, r.db).
		Scopes(
			func(tx *gorm.DB) *gorm.DB {
				tx = db.EqualIfSet("category", filter.Category)(tx)
				tx = db.EqualIfSet("status", filter.Status)(tx)
				return db.EqualIfSet("featured", filter.Featured)(tx)
			},
			db.Newest("created_at"),
			db.Paginate(filter.Limit, filter.Offset),
		)

	if term := strings.ToLower(strings.TrimSpace(search)); term != "" {
		pattern := db.LikePattern(term)
		tx = tx.Where(
			db.Like("LOWER(title)")+" OR "+db.Like("LOWER(excerpt)")+" OR "+db.Like("LOWER("+jsonText(tx, "tags")+")"),
			pattern, pattern, pattern,
		)
	}

	var modelList []*models.BlogPostModel
	if err := tx.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list blog posts", "search", search, "error", err)
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return r.mapper.ToDomainList(modelList), nil
}

func (r *BlogRepository) ListByCategory(ctx context.Context, category string, limit int) ([]*blog.Post, error) {
	published := blog.StatusPublished
	return r.List(ctx, "", blog.Filter{
		Category: &category,
		Status:   &published,
		Limit:    utils.NormalizeLimit(limit, constants.DefaultBlogCategoryLimit),
	})
}

func (r *BlogRepository) Featured(ctx context.Context, limit int) ([]*blog.Post, error) {
	published := blog.StatusPublished
	featured := true
	return r.List(ctx, "", blog.Filter{
		Status:   &published,
		Featured: &featured,
		Limit:    utils.NormalizeLimit(limit, constants.DefaultFeaturedBlogLimit),
	})
}

func (r *BlogRepository) Update(ctx context.Context, id uint, patch blog.Patch, contentHTML *string) (*blog.Post, error) {
	var updated *blog.Post
	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var current models.BlogPostModel
		if err := tx.First(&current, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("Blog post not found")
			}
			return fmt.Errorf("failed to load blog post: %w", err)
		}

		now := time.Now().UTC()
		updates := map[string]interface{}{"updated_at": now}
		setIf(updates, "title", patch.Title)
		setIf(updates, "slug", patch.Slug)
		setIf(updates, "excerpt", patch.Excerpt)
		setIf(updates, "content", patch.Content)
		setIf(updates, "content_html", contentHTML)
		setIf(updates, "cover_image", patch.CoverImage)
		setIf(updates, "category", patch.Category)
		setIf(updates, "read_time", patch.ReadTime)
		setIf(updates, "featured", patch.Featured)
		setIf(updates, "author_name", patch.AuthorName)
		if patch.Tags != nil {
			updates["tags"] = stringsJSON(*patch.Tags)
		}
		if patch.Status != nil {
			updates["status"] = string(*patch.Status)
			if *patch.Status == blog.StatusPublished && current.PublishedAt == nil {
				updates["published_at"] = now
			}
		}

		if err := tx.Model(&current).Updates(updates).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				return apperrors.NewConflictError("Slug already exists")
			}
			return fmt.Errorf("failed to update blog post: %w", err)
		}
		if err := tx.First(&current, id).Error; err != nil {
			return fmt.Errorf("failed to reload blog post: %w", err)
		}
		updated = r.mapper.ToDomain(&current)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.BlogPostModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete blog post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Blog post not found")
	}
	return nil
}

// IncrementViews atomically increments views and returns the stored count
func (r *BlogRepository) IncrementViews(ctx context.Context, id uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.BlogPostModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		r.logger.Errorw("failed to increment views", "id", id, "error", result.Error)
		return 0, fmt.Errorf("failed to increment views: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, apperrors.NewNotFoundError("Blog post not found")
	}

	var views int64
	if err := tx.Model(&models.BlogPostModel{}).Where("id = ?", id).Pluck("views", &views).Error; err != nil {
		return 0, fmt.Errorf("failed to read views: %w", err)
	}
	return views, nil
}

func (r *BlogRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.BlogPostModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count blog posts: %w", err)
	}
	return total, nil
}

func (r *BlogRepository) Stats(ctx context.Context) (*blog.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var totals struct {
		Total      int64
		TotalViews int64
	}
	if err := tx.Model(&models.BlogPostModel{}).
		Select("COUNT(*) AS total, COALESCE(SUM(views), 0) AS total_views").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate blog posts: %w", err)
	}

	byStatus, err := countBy(tx, &models.BlogPostModel{}, "status")
	if err != nil {
		return nil, err
	}
	byCategory, err := countBy(tx, &models.BlogPostModel{}, "category")
	if err != nil {
		return nil, err
	}

	return &blog.Stats{
		Total:      totals.Total,
		Published:  byStatus[string(blog.StatusPublished)],
		Draft:      byStatus[string(blog.StatusDraft)],
		TotalViews: totals.TotalViews,
		ByCategory: byCategory,
	}, nil
}
