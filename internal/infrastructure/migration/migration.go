package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/models"
	"github.com/scamguard-vn/scamguard/internal/shared/config"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

const (
	ToolGoose         = "goose"
	ToolGolangMigrate = "golang_migrate"
	ToolAuto          = "auto"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy for the configured driver and tool. Versioned scripts
// exist for postgres (goose) and mysql (golang-migrate); everything else, sqlite
// included, falls back to gorm AutoMigrate.
func NewManager(cfg *config.DatabaseConfig) *Manager {
	return NewManagerWithStrategy(selectStrategy(cfg.Driver, cfg.MigrationTool))
}

func selectStrategy(driver, tool string) Strategy {
	switch {
	case driver == "postgres" && tool == ToolGoose:
		return NewGooseStrategy()
	case driver == "mysql" && tool == ToolGolangMigrate:
		return NewGolangMigrateStrategy()
	default:
		return NewGormAutoMigrateStrategy()
	}
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.WithComponent("migration.manager"),
	}
}

// Migrate brings the schema up to date
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db, models.All()...); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// Down rolls back steps versioned migrations.
func (m *Manager) Down(db *gorm.DB, steps int) error {
	v, ok := m.strategy.(Versioned)
	if !ok {
		return fmt.Errorf("strategy %s does not support rollback", m.strategy.GetName())
	}
	return v.MigrateDown(db, steps)
}

// Version reports the applied migration version.
func (m *Manager) Version(db *gorm.DB) (int64, error) {
	v, ok := m.strategy.(Versioned)
	if !ok {
		return 0, fmt.Errorf("strategy %s is not versioned", m.strategy.GetName())
	}
	return v.GetVersion(db)
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
