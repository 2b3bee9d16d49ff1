package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/scamguard-vn/scamguard/internal/domain/setting"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

const defaultMaintenanceTTL = 15 * time.Second

// MaintenanceModeChecker reads the maintenance_mode setting with a short-lived cache.
// A failed lookup is treated as "not in maintenance".
type MaintenanceModeChecker struct {
	repo   setting.Repository
	logger logger.Interface
	ttl    time.Duration
	now    func() time.Time

	mu        sync.Mutex
	value     bool
	fetchedAt time.Time
}

func NewMaintenanceModeChecker(repo setting.Repository, logger logger.Interface) *MaintenanceModeChecker {
	return &MaintenanceModeChecker{
		repo:   repo,
		logger: logger,
		ttl:    defaultMaintenanceTTL,
		now:    time.Now,
	}
}

func (c *MaintenanceModeChecker) InMaintenance(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fetchedAt.IsZero() && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.value
	}

	s, err := c.repo.Get(ctx, setting.KeyMaintenanceMode)
	if err != nil {
		c.logger.Warnw("failed to read maintenance mode", "error", err)
		return c.value
	}
	c.value = s != nil && s.BoolValue()
	c.fetchedAt = c.now()
	return c.value
}

// Invalidate forces the next check to hit the store.
func (c *MaintenanceModeChecker) Invalidate() {
	c.mu.Lock()
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}
