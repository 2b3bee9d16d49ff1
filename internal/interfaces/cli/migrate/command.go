package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/scamguard-vn/scamguard/internal/infrastructure/config"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/database"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/migration"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

const scriptsDir = "./internal/infrastructure/migration/scripts"

var (
	env        string
	configPath string
	name       string
	dialect    string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of versioned migrations (goose or golang-migrate only).`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the active migration strategy and the current schema version.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create new migration files with the specified name. Postgres files are goose annotated, MySQL files are golang-migrate up/down pairs.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the migration (required)")
	cmd.Flags().StringVar(&dialect, "dialect", "postgres", "Script dialect (postgres, mysql)")
	cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv(connect bool) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if !connect {
		return cfg, log, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	manager := migration.NewManager(&cfg.Database)
	log.Infow("running up migrations",
		"environment", env,
		"strategy", manager.GetStrategy().GetName())

	if err := manager.Migrate(database.Get()); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := migration.NewManager(&cfg.Database).Down(database.Get(), steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	manager := migration.NewManager(&cfg.Database)
	version, err := manager.Version(database.Get())
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment:     %s\n", env)
	fmt.Printf("  Driver:          %s\n", cfg.Database.Driver)
	fmt.Printf("  Strategy:        %s\n", manager.GetStrategy().GetName())
	fmt.Printf("  Current Version: %d\n", version)

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	_, log, err := initEnv(false)
	if err != nil {
		return err
	}
	defer logger.Sync()

	scriptsPath, err := filepath.Abs(scriptsDir)
	if err != nil {
		return fmt.Errorf("failed to get scripts path: %w", err)
	}

	log.Infow("creating new migration", "name", name, "dialect", dialect)

	generator := migration.NewGenerator(scriptsPath)
	switch dialect {
	case "postgres":
		err = generator.CreatePostgres(name)
	case "mysql":
		err = generator.CreateMySQL(name)
	default:
		return fmt.Errorf("unsupported dialect %q (use postgres or mysql)", dialect)
	}
	if err != nil {
		log.Errorw("failed to create migration", "error", err)
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Printf("Migration '%s' created in %s\n", name, filepath.Join(scriptsPath, dialect))
	return nil
}
