package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/scamguard-vn/scamguard/internal/interfaces/cli/migrate"
	"github.com/scamguard-vn/scamguard/internal/interfaces/cli/seed"
	"github.com/scamguard-vn/scamguard/internal/interfaces/cli/server"
)

// @title ScamGuard API
// @version 1.0
// @description Community scam reports, scam lookups, support chat and the admin console.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "scamguard",
		Short: "ScamGuard - community scam reporting service",
		Long:  `ScamGuard serves the public scam report site and its admin console, with database migration and seeding tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
