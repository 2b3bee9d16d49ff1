package database

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/scamguard-vn/scamguard/internal/shared/config"
	appLogger "github.com/scamguard-vn/scamguard/internal/shared/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"

	connectAttempts = 5
	connectBackoff  = 2 * time.Second
)

var (
	db   *gorm.DB
	dbMu sync.RWMutex
)

// Init opens the configured database and keeps it as the process-wide connection.
func Init(cfg *config.DatabaseConfig) error {
	database, err := Open(cfg)
	if err != nil {
		return err
	}

	dbMu.Lock()
	db = database
	dbMu.Unlock()

	appLogger.Info("database connection established",
		"driver", cfg.Driver,
		"dsn", MaskDSN(cfg.DSN))

	return nil
}

// Open connects with retries, applies pool settings and pings the server.
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := newDialector(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		&filteredLogger{},
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var database *gorm.DB
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		database, err = gorm.Open(dialector, &gorm.Config{
			Logger:      gormLogger,
			PrepareStmt: cfg.Driver != DriverSQLite,
		})
		if err == nil {
			break
		}
		if attempt < connectAttempts {
			appLogger.Warn("database connection failed, retrying",
				"attempt", attempt,
				"error", err)
			time.Sleep(connectBackoff)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if cfg.Driver == DriverSQLite {
		// a single connection keeps :memory: databases shared
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return database, nil
}

func newDialector(driver, dsn string) (gorm.Dialector, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("database dsn is empty")
	}
	switch driver {
	case DriverPostgres:
		return postgres.Open(NormalizeDSN(dsn)), nil
	case DriverMySQL:
		return mysql.New(mysql.Config{
			DSN:                       MySQLDSN(dsn),
			SkipInitializeWithVersion: true,
		}), nil
	case DriverSQLite:
		return sqlite.Open(strings.TrimPrefix(dsn, "sqlite://")), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Get returns the database connection
func Get() *gorm.DB {
	dbMu.RLock()
	defer dbMu.RUnlock()
	return db
}

// Close closes the database connection
func Close() error {
	dbMu.RLock()
	currentDB := db
	dbMu.RUnlock()

	if currentDB == nil {
		return nil
	}

	sqlDB, err := currentDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	appLogger.Info("database connection closed")
	return nil
}

// filteredLogger routes gorm output into the application logger
type filteredLogger struct{}

func (l *filteredLogger) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	lower := strings.ToLower(msg)

	if strings.Contains(lower, "information_schema.schemata") ||
		strings.Contains(lower, "select version()") {
		return
	}

	switch {
	case strings.Contains(lower, "error"):
		appLogger.Error("database error", "details", msg)
	case strings.Contains(lower, "slow sql"):
		appLogger.Warn("slow query", "details", msg)
	default:
		appLogger.Debug("database query", "details", msg)
	}
}
