package mappers

import (
	"github.com/scamguard-vn/scamguard/internal/domain/admin"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/models"
	"github.com/scamguard-vn/scamguard/internal/shared/authorization"
)

// AdminMapper converts between admin accounts and persistence models
type AdminMapper interface {
	ToDomain(model *models.AdminModel) *admin.Admin
	ToModel(entity *admin.Admin) *models.AdminModel
}

type AdminMapperImpl struct{}

func NewAdminMapper() AdminMapper {
	return &AdminMapperImpl{}
}

func (m *AdminMapperImpl) ToDomain(model *models.AdminModel) *admin.Admin {
	if model == nil {
		return nil
	}

	return &admin.Admin{
		ID:           model.ID,
		Username:     model.Username,
		PasswordHash: model.PasswordHash,
		FullName:     model.FullName,
		Email:        model.Email,
		Role:         authorization.ParseAdminRole(model.Role),
		Permissions:  stringsOrEmpty(model.Permissions),
		IsActive:     model.IsActive,
		LastLogin:    model.LastLogin,
		CreatedAt:    model.CreatedAt,
	}
}

func (m *AdminMapperImpl) ToModel(entity *admin.Admin) *models.AdminModel {
	if entity == nil {
		return nil
	}

	return &models.AdminModel{
		ID:           entity.ID,
		Username:     entity.Username,
		PasswordHash: entity.PasswordHash,
		FullName:     entity.FullName,
		Email:        entity.Email,
		Role:         entity.Role.String(),
		Permissions:  stringsOrEmpty(entity.Permissions),
		IsActive:     entity.IsActive,
		LastLogin:    entity.LastLogin,
		CreatedAt:    entity.CreatedAt,
	}
}
