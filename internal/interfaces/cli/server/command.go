package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/scamguard-vn/scamguard/internal/infrastructure/auth"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/config"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/database"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/migration"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/seeds"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/repository"
	httpRouter "github.com/scamguard-vn/scamguard/internal/interfaces/http"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/services/markdown"
)

const shutdownTimeout = 30 * time.Second

var (
	env         string
	configPath  string
	autoMigrate bool
	skipSeed    bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the ScamGuard HTTP server with specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", true, "Run database migrations on startup")
	cmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "Do not insert sample data into empty tables")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == gin.DebugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting server",
		"environment", env,
		"driver", cfg.Database.Driver,
		"auto_migrate", autoMigrate && cfg.Database.AutoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate && cfg.Database.AutoMigrate {
		if err := migration.NewManager(&cfg.Database).Migrate(database.Get()); err != nil {
			return err
		}
	}

	if !skipSeed && cfg.Seed.Enabled {
		if err := seedDatabase(cmd.Context(), cfg, log); err != nil {
			log.Errorw("seeding failed", "error", err)
		}
	}

	router, err := httpRouter.NewRouter(database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	router.SetupRoutes()
	router.StartScheduler()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		router.Shutdown(context.Background())
		return fmt.Errorf("failed to start server: %w", err)
	}

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		router.Shutdown(ctx)
		return err
	}
	router.Shutdown(ctx)

	log.Infow("server exited gracefully")
	return nil
}

func seedDatabase(ctx context.Context, cfg *config.Config, log logger.Interface) error {
	if ctx == nil {
		ctx = context.Background()
	}
	storage := repository.NewStorage(database.Get(), log)
	seeder := seeds.NewSeeder(
		seeds.RepositoriesFromStorage(storage),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		markdown.NewMarkdownService(),
		cfg.Seed,
		log.Named("seeds"),
	)
	result, err := seeder.SeedIfEmpty(ctx)
	if err != nil {
		return err
	}
	if result.Total() > 0 {
		log.Infow("sample data inserted",
			"reports", result.Reports,
			"blog_posts", result.BlogPosts,
			"admins", result.Admins,
			"report_categories", result.ReportCategories,
			"blog_categories", result.BlogCategories,
			"settings", result.Settings)
	}
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
