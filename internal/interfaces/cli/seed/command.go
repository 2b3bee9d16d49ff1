// Package seed exposes the sample data loader as a standalone command.
package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scamguard-vn/scamguard/internal/infrastructure/auth"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/config"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/database"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/migration"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/seeds"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/repository"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/services/markdown"
)

var (
	env        string
	configPath string
	migrate    bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample data into empty tables",
		Long:  `Insert sample reports, blog posts, categories, settings and the default admin account. Tables that already hold rows are left untouched.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&migrate, "migrate", true, "Run migrations before seeding")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.NewLogger().Named("seed")

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if migrate {
		if err := migration.NewManager(&cfg.Database).Migrate(database.Get()); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	seeder := seeds.NewSeeder(
		seeds.RepositoriesFromStorage(repository.NewStorage(database.Get(), log)),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		markdown.NewMarkdownService(),
		cfg.Seed,
		log,
	)

	result, err := seeder.SeedIfEmpty(ctx)
	if err != nil {
		log.Errorw("seeding failed", "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Printf("\nSeed Result:\n")
	fmt.Printf("  Reports:           %d\n", result.Reports)
	fmt.Printf("  Blog posts:        %d\n", result.BlogPosts)
	fmt.Printf("  Admins:            %d\n", result.Admins)
	fmt.Printf("  Report categories: %d\n", result.ReportCategories)
	fmt.Printf("  Blog categories:   %d\n", result.BlogCategories)
	fmt.Printf("  Settings:          %d\n", result.Settings)

	return nil
}
