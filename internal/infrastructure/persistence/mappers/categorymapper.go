package mappers

import (
	"github.com/scamguard-vn/scamguard/internal/domain/category"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/models"
)

func ReportCategoryToDomain(model *models.ReportCategoryModel) *category.ReportCategory {
	return &category.ReportCategory{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Color:       model.Color,
		IsActive:    model.IsActive,
		CreatedAt:   model.CreatedAt,
	}
}

func ReportCategoryToModel(entity *category.ReportCategory) *models.ReportCategoryModel {
	return &models.ReportCategoryModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
		Color:       entity.Color,
		IsActive:    entity.IsActive,
		CreatedAt:   entity.CreatedAt,
	}
}

func BlogCategoryToDomain(model *models.BlogCategoryModel) *category.BlogCategory {
	return &category.BlogCategory{
		ID:          model.ID,
		Name:        model.Name,
		Slug:        model.Slug,
		Description: model.Description,
		Color:       model.Color,
		IsActive:    model.IsActive,
		CreatedAt:   model.CreatedAt,
	}
}

func BlogCategoryToModel(entity *category.BlogCategory) *models.BlogCategoryModel {
	return &models.BlogCategoryModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Slug:        entity.Slug,
		Description: entity.Description,
		Color:       entity.Color,
		IsActive:    entity.IsActive,
		CreatedAt:   entity.CreatedAt,
	}
}
