package usecases

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/scamguard-vn/scamguard/internal/domain/setting"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

var settingKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,63}$`)

type ListSettingsUseCase struct {
	repo   setting.Repository
	logger logger.Interface
}

func NewListSettingsUseCase(repo setting.Repository, logger logger.Interface) *ListSettingsUseCase {
	return &ListSettingsUseCase{repo: repo, logger: logger}
}

func (uc *ListSettingsUseCase) Execute(ctx context.Context) ([]*setting.SystemSetting, error) {
	settings, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list settings", "error", err)
		return nil, err
	}
	return settings, nil
}

type UpsertSettingCommand struct {
	Key         string
	Value       string
	Description *string
}

type UpsertSettingUseCase struct {
	repo        setting.Repository
	maintenance *MaintenanceModeChecker
	logger      logger.Interface
}

// NewUpsertSettingUseCase takes the maintenance checker so a toggle is visible immediately.
// maintenance may be nil.
func NewUpsertSettingUseCase(repo setting.Repository, maintenance *MaintenanceModeChecker, logger logger.Interface) *UpsertSettingUseCase {
	return &UpsertSettingUseCase{repo: repo, maintenance: maintenance, logger: logger}
}

func (uc *UpsertSettingUseCase) Execute(ctx context.Context, cmd UpsertSettingCommand) (*setting.SystemSetting, error) {
	key := strings.TrimSpace(cmd.Key)
	if !settingKeyPattern.MatchString(key) {
		return nil, errors.NewValidationError(setting.ErrInvalidSettingKey.Error(), key)
	}
	value := strings.TrimSpace(cmd.Value)
	if err := validateKnownValue(key, value); err != nil {
		return nil, err
	}

	saved, err := uc.repo.Upsert(ctx, key, value, cmd.Description)
	if err != nil {
		uc.logger.Errorw("failed to save setting", "key", key, "error", err)
		return nil, err
	}

	if key == setting.KeyMaintenanceMode && uc.maintenance != nil {
		uc.maintenance.Invalidate()
	}

	uc.logger.Infow("setting saved", "key", key)
	return saved, nil
}

// validateKnownValue type-checks the values of the keys the application itself reads.
func validateKnownValue(key, value string) error {
	switch key {
	case setting.KeyMaintenanceMode:
		if _, err := strconv.ParseBool(value); err != nil {
			return errors.NewValidationError("maintenance_mode must be true or false")
		}
	case setting.KeyMaxReportsPerDay:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return errors.NewValidationError("max_reports_per_day must be a non-negative integer")
		}
	case setting.KeyChatReplyStrategy:
		if value != "rules" && value != "ai" {
			return errors.NewValidationError("chat_reply_strategy must be rules or ai")
		}
	case setting.KeySiteName:
		if value == "" {
			return errors.NewValidationError("site_name cannot be empty")
		}
	}
	return nil
}
