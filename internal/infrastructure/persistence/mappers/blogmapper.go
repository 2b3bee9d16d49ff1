package mappers

import (
	"github.com/scamguard-vn/scamguard/internal/domain/blog"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/models"
	"github.com/scamguard-vn/scamguard/internal/shared/mapper"
)

// BlogPostMapper converts between blog posts and persistence models
type BlogPostMapper interface {
	ToDomain(model *models.BlogPostModel) *blog.Post
	ToModel(entity *blog.Post) *models.BlogPostModel
	ToDomainList(modelList []*models.BlogPostModel) []*blog.Post
}

type BlogPostMapperImpl struct{}

func NewBlogPostMapper() BlogPostMapper {
	return &BlogPostMapperImpl{}
}

func (m *BlogPostMapperImpl) ToDomain(model *models.BlogPostModel) *blog.Post {
	if model == nil {
		return nil
	}

	return &blog.Post{
		ID:          model.ID,
		Title:       model.Title,
		Slug:        model.Slug,
		Excerpt:     model.Excerpt,
		Content:     model.Content,
		ContentHTML: model.ContentHTML,
		CoverImage:  model.CoverImage,
		Tags:        stringsOrEmpty(model.Tags),
		Category:    model.Category,
		ReadTime:    model.ReadTime,
		Views:       model.Views,
		Status:      blog.Status(model.Status),
		Featured:    model.Featured,
		AuthorName:  model.AuthorName,
		PublishedAt: model.PublishedAt,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func (m *BlogPostMapperImpl) ToModel(entity *blog.Post) *models.BlogPostModel {
	if entity == nil {
		return nil
	}

	return &models.BlogPostModel{
		ID:          entity.ID,
		Title:       entity.Title,
		Slug:        entity.Slug,
		Excerpt:     entity.Excerpt,
		Content:     entity.Content,
		ContentHTML: entity.ContentHTML,
		CoverImage:  entity.CoverImage,
		Tags:        stringsOrEmpty(entity.Tags),
		Category:    entity.Category,
		ReadTime:    entity.ReadTime,
		Views:       entity.Views,
		Status:      string(entity.Status),
		Featured:    entity.Featured,
		AuthorName:  entity.AuthorName,
		PublishedAt: entity.PublishedAt,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func (m *BlogPostMapperImpl) ToDomainList(modelList []*models.BlogPostModel) []*blog.Post {
	return mapper.MapSlice(modelList, m.ToDomain)
}
