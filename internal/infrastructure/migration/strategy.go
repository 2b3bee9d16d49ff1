package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate executes the migration strategy
	Migrate(db *gorm.DB, models ...interface{}) error
	// GetName returns the strategy name
	GetName() string
}

// Versioned is implemented by strategies backed by numbered scripts.
type Versioned interface {
	Strategy
	MigrateDown(db *gorm.DB, steps int) error
	GetVersion(db *gorm.DB) (int64, error)
}

// GolangMigrateStrategy applies the embedded mysql scripts with golang-migrate
type GolangMigrateStrategy struct {
	logger logger.Interface
}

func NewGolangMigrateStrategy() *GolangMigrateStrategy {
	return &GolangMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.golang-migrate"),
	}
}

func (s *GolangMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	m, err := s.createMigrateInstance(db)
	if err != nil {
		return err
	}
	defer m.Close()

	currentVersion, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		s.logger.Warnw("database is in dirty state, please fix manually", "version", currentVersion)
		return fmt.Errorf("database is in dirty state at version %d", currentVersion)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get final migration version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)
	return nil
}

func (s *GolangMigrateStrategy) GetName() string {
	return "golang_migrate"
}

func (s *GolangMigrateStrategy) createMigrateInstance(db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	driver, err := mysql.WithInstance(sqlDB, &mysql.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create MySQL driver: %w", err)
	}

	source, err := iofs.New(Scripts, mysqlScriptsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded scripts: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "mysql", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

func (s *GolangMigrateStrategy) MigrateDown(db *gorm.DB, steps int) error {
	m, err := s.createMigrateInstance(db)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run down migrations: %w", err)
	}

	s.logger.Infow("down migration completed successfully", "steps", steps)
	return nil
}

func (s *GolangMigrateStrategy) GetVersion(db *gorm.DB) (int64, error) {
	m, err := s.createMigrateInstance(db)
	if err != nil {
		return 0, err
	}
	defer m.Close()

	version, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return int64(version), nil
}

// GooseStrategy applies the embedded postgres scripts with goose
type GooseStrategy struct {
	logger logger.Interface
}

func NewGooseStrategy() *GooseStrategy {
	return &GooseStrategy{
		logger: logger.NewLogger().With("component", "migration.goose"),
	}
}

func (s *GooseStrategy) prepare() error {
	goose.SetBaseFS(Scripts)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

func (s *GooseStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.Up(sqlDB, postgresScriptsDir); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)
	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, postgresScriptsDir); err != nil {
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully", "steps", steps)
	return nil
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

// GormAutoMigrateStrategy derives the schema from the gorm models.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	s.logger.Infow("auto migration completed", "models_count", len(models))
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
