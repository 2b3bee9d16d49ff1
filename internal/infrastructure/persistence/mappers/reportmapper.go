package mappers

import (
	"github.com/scamguard-vn/scamguard/internal/domain/report"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/models"
	"github.com/scamguard-vn/scamguard/internal/shared/mapper"
)

// ReportMapper converts between report entities and persistence models
type ReportMapper interface {
	ToDomain(model *models.ReportModel) *report.Report
	ToModel(entity *report.Report) *models.ReportModel
	ToDomainList(modelList []*models.ReportModel) []*report.Report
}

type ReportMapperImpl struct{}

func NewReportMapper() ReportMapper {
	return &ReportMapperImpl{}
}

func (m *ReportMapperImpl) ToDomain(model *models.ReportModel) *report.Report {
	if model == nil {
		return nil
	}

	return &report.Report{
		ID:            model.ID,
		AccusedName:   model.AccusedName,
		PhoneNumber:   model.PhoneNumber,
		AccountNumber: model.AccountNumber,
		Bank:          model.Bank,
		Amount:        model.Amount,
		Description:   model.Description,
		IsAnonymous:   model.IsAnonymous,
		ReporterName:  model.ReporterName,
		ReporterPhone: model.ReporterPhone,
		ReceiptURL:    model.ReceiptURL,
		Status:        report.Status(model.Status),
		Priority:      report.Priority(model.Priority),
		Category:      model.Category,
		IsPublic:      model.IsPublic,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
		VerifiedAt:    model.VerifiedAt,
		VerifiedBy:    model.VerifiedBy,
	}
}

func (m *ReportMapperImpl) ToModel(entity *report.Report) *models.ReportModel {
	if entity == nil {
		return nil
	}

	return &models.ReportModel{
		ID:            entity.ID,
		AccusedName:   entity.AccusedName,
		PhoneNumber:   entity.PhoneNumber,
		AccountNumber: entity.AccountNumber,
		Bank:          entity.Bank,
		Amount:        entity.Amount,
		Description:   entity.Description,
		IsAnonymous:   entity.IsAnonymous,
		ReporterName:  entity.ReporterName,
		ReporterPhone: entity.ReporterPhone,
		ReceiptURL:    entity.ReceiptURL,
		Status:        string(entity.Status),
		Priority:      string(entity.Priority),
		Category:      entity.Category,
		IsPublic:      entity.IsPublic,
		CreatedAt:     entity.CreatedAt,
		UpdatedAt:     entity.UpdatedAt,
		VerifiedAt:    entity.VerifiedAt,
		VerifiedBy:    entity.VerifiedBy,
	}
}

func (m *ReportMapperImpl) ToDomainList(modelList []*models.ReportModel) []*report.Report {
	return mapper.MapSlice(modelList, m.ToDomain)
}
