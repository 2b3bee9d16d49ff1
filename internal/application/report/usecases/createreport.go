package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/scamguard-vn/scamguard/internal/domain/report"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/goroutine"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

const alertTimeout = 30 * time.Second

type CreateReportCommand struct {
	AccusedName   string
	PhoneNumber   string
	AccountNumber *string
	Bank          *string
	Amount        int64
	Description   string
	IsAnonymous   bool
	ReporterName  *string
	ReporterPhone *string
	ReceiptURL    *string
	Category      string
	// IsPublic defaults to true when nil.
	IsPublic *bool
}

type CreateReportUseCase struct {
	reportRepo report.Repository
	alerts     AlertSender
	logger     logger.Interface
}

func NewCreateReportUseCase(
	reportRepo report.Repository,
	alerts AlertSender,
	logger logger.Interface,
) *CreateReportUseCase {
	return &CreateReportUseCase{
		reportRepo: reportRepo,
		alerts:     alerts,
		logger:     logger,
	}
}

func (uc *CreateReportUseCase) Execute(ctx context.Context, cmd CreateReportCommand) (*report.Report, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	if !utils.IsPhoneNumber(cmd.PhoneNumber) {
		uc.logger.Warnw("report phone number does not look Vietnamese, storing as submitted",
			"phone", utils.MaskPhone(cmd.PhoneNumber))
	}

	isPublic := true
	if cmd.IsPublic != nil {
		isPublic = *cmd.IsPublic
	}

	r := &report.Report{
		AccusedName:   strings.TrimSpace(cmd.AccusedName),
		PhoneNumber:   strings.TrimSpace(cmd.PhoneNumber),
		AccountNumber: trimmedOrNil(cmd.AccountNumber),
		Bank:          trimmedOrNil(cmd.Bank),
		Amount:        cmd.Amount,
		Description:   strings.TrimSpace(cmd.Description),
		IsAnonymous:   cmd.IsAnonymous,
		ReporterName:  trimmedOrNil(cmd.ReporterName),
		ReporterPhone: trimmedOrNil(cmd.ReporterPhone),
		ReceiptURL:    trimmedOrNil(cmd.ReceiptURL),
		Category:      strings.TrimSpace(cmd.Category),
		IsPublic:      isPublic,
	}
	r.ApplyDefaults()

	if err := uc.reportRepo.Create(ctx, r); err != nil {
		uc.logger.Errorw("failed to create report", "error", err)
		return nil, err
	}

	uc.logger.Infow("report created", "report_id", r.ID, "category", r.Category, "anonymous", r.IsAnonymous)

	created := *r
	goroutine.Detached(ctx, uc.logger, "new-report-alert", alertTimeout, func(ctx context.Context) {
		if err := uc.alerts.SendNewReportAlert(ctx, &created); err != nil {
			uc.logger.Warnw("failed to send new report alert", "report_id", created.ID, "error", err)
		}
	})

	return r, nil
}

func (uc *CreateReportUseCase) validateCommand(cmd CreateReportCommand) error {
	var fields []errors.FieldError
	if strings.TrimSpace(cmd.AccusedName) == "" {
		fields = append(fields, errors.FieldError{Field: "accusedName", Message: "accusedName is required"})
	}
	if strings.TrimSpace(cmd.PhoneNumber) == "" {
		fields = append(fields, errors.FieldError{Field: "phoneNumber", Message: "phoneNumber is required"})
	}
	if cmd.Amount <= 0 {
		fields = append(fields, errors.FieldError{Field: "amount", Message: "amount must be greater than 0"})
	}
	if strings.TrimSpace(cmd.Description) == "" {
		fields = append(fields, errors.FieldError{Field: "description", Message: "description is required"})
	}
	if len(fields) > 0 {
		return errors.NewFieldValidationError(constants.ErrMsgInvalidData, fields)
	}
	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
