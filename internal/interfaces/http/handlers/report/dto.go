package report

import (
	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/application/report/usecases"
	domain "github.com/scamguard-vn/scamguard/internal/domain/report"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

type CreateReportRequest struct {
	AccusedName   string  `json:"accusedName"`
	PhoneNumber   string  `json:"phoneNumber"`
	AccountNumber *string `json:"accountNumber,omitempty"`
	Bank          *string `json:"bank,omitempty"`
	Amount        int64   `json:"amount"`
	Description   string  `json:"description"`
	IsAnonymous   bool    `json:"isAnonymous"`
	ReporterName  *string `json:"reporterName,omitempty"`
	ReporterPhone *string `json:"reporterPhone,omitempty"`
	ReceiptURL    *string `json:"receiptUrl,omitempty"`
	Category      string  `json:"category,omitempty"`
	IsPublic      *bool   `json:"isPublic,omitempty"`
}

func (r *CreateReportRequest) ToCommand() usecases.CreateReportCommand {
	return usecases.CreateReportCommand{
		AccusedName:   r.AccusedName,
		PhoneNumber:   r.PhoneNumber,
		AccountNumber: r.AccountNumber,
		Bank:          r.Bank,
		Amount:        r.Amount,
		Description:   r.Description,
		IsAnonymous:   r.IsAnonymous,
		ReporterName:  r.ReporterName,
		ReporterPhone: r.ReporterPhone,
		ReceiptURL:    r.ReceiptURL,
		Category:      r.Category,
		IsPublic:      r.IsPublic,
	}
}

// UpdateReportRequest is a partial update; omitted fields are left untouched.
type UpdateReportRequest struct {
	AccusedName   *string `json:"accusedName,omitempty"`
	PhoneNumber   *string `json:"phoneNumber,omitempty"`
	AccountNumber *string `json:"accountNumber,omitempty"`
	Bank          *string `json:"bank,omitempty"`
	Amount        *int64  `json:"amount,omitempty"`
	Description   *string `json:"description,omitempty"`
	ReceiptURL    *string `json:"receiptUrl,omitempty"`
	Status        *string `json:"status,omitempty"`
	Priority      *string `json:"priority,omitempty"`
	Category      *string `json:"category,omitempty"`
	IsPublic      *bool   `json:"isPublic,omitempty"`
}

func (r *UpdateReportRequest) ToPatch() domain.Patch {
	patch := domain.Patch{
		AccusedName:   r.AccusedName,
		PhoneNumber:   r.PhoneNumber,
		AccountNumber: r.AccountNumber,
		Bank:          r.Bank,
		Amount:        r.Amount,
		Description:   r.Description,
		ReceiptURL:    r.ReceiptURL,
		Category:      r.Category,
		IsPublic:      r.IsPublic,
	}
	if r.Status != nil {
		s := domain.Status(*r.Status)
		patch.Status = &s
	}
	if r.Priority != nil {
		p := domain.Priority(*r.Priority)
		patch.Priority = &p
	}
	return patch
}

type UpdateStatusRequest struct {
	Status     string  `json:"status" binding:"required"`
	VerifiedBy *string `json:"verifiedBy,omitempty"`
}

// parseFilter reads the shared status/category/priority/isPublic query filters.
func parseFilter(c *gin.Context) domain.Filter {
	var filter domain.Filter
	if v := utils.OptionalQuery(c, "status"); v != nil {
		s := domain.Status(*v)
		filter.Status = &s
	}
	if v := utils.OptionalQuery(c, "priority"); v != nil {
		p := domain.Priority(*v)
		filter.Priority = &p
	}
	filter.Category = utils.OptionalQuery(c, "category")
	filter.IsPublic = utils.ParseBoolQuery(c, "isPublic")
	return filter
}
