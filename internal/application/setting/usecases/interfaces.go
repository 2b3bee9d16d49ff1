package usecases

import (
	"context"

	"github.com/scamguard-vn/scamguard/internal/domain/setting"
)

type ListSettingsExecutor interface {
	Execute(ctx context.Context) ([]*setting.SystemSetting, error)
}

type UpsertSettingExecutor interface {
	Execute(ctx context.Context, cmd UpsertSettingCommand) (*setting.SystemSetting, error)
}

// MaintenanceChecker answers whether public writes are currently suspended.
type MaintenanceChecker interface {
	InMaintenance(ctx context.Context) bool
}
