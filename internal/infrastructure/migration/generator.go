package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

// Generator creates new migration files in the source tree
type Generator struct {
	scriptsRoot string
	logger      logger.Interface
}

// NewGenerator creates a generator rooted at the migration scripts directory
func NewGenerator(scriptsRoot string) *Generator {
	return &Generator{
		scriptsRoot: scriptsRoot,
		logger:      logger.NewLogger().With("component", "migration.generator"),
	}
}

// CreatePostgres adds an annotated goose file.
func (g *Generator) CreatePostgres(name string) error {
	dir := filepath.Join(g.scriptsRoot, "postgres")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}
	goose.SetSequential(true)
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}
	g.logger.Infow("goose migration created", "name", name, "dir", dir)
	return nil
}

// CreateMySQL adds an up/down pair for golang-migrate.
func (g *Generator) CreateMySQL(name string) error {
	dir := filepath.Join(g.scriptsRoot, "mysql")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	timestamp := time.Now().Format("20060102150405")
	created := time.Now().Format("2006-01-02 15:04:05")
	files := map[string]string{
		fmt.Sprintf("%s_%s.up.sql", timestamp, name):   fmt.Sprintf("-- Migration: %s\n-- Created: %s\n\n", name, created),
		fmt.Sprintf("%s_%s.down.sql", timestamp, name): fmt.Sprintf("-- Rollback: %s\n-- Created: %s\n\n", name, created),
	}
	for file, content := range files {
		if err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", file, err)
		}
	}

	g.logger.Infow("golang-migrate files created", "name", name, "dir", dir)
	return nil
}
