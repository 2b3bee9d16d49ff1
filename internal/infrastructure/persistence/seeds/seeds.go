// Package seeds inserts sample content into empty tables on first start.
package seeds

import (
	"context"
	"fmt"
	"time"

	"github.com/scamguard-vn/scamguard/internal/domain/admin"
	"github.com/scamguard-vn/scamguard/internal/domain/blog"
	"github.com/scamguard-vn/scamguard/internal/domain/category"
	"github.com/scamguard-vn/scamguard/internal/domain/report"
	"github.com/scamguard-vn/scamguard/internal/domain/setting"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/repository"
	"github.com/scamguard-vn/scamguard/internal/shared/authorization"
	sharedConfig "github.com/scamguard-vn/scamguard/internal/shared/config"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type HTMLRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

// TxRunner runs fn in one transaction; repositories join it through ctx.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Repositories struct {
	Reports    report.Repository
	Blogs      blog.Repository
	Admins     admin.Repository
	Categories category.Repository
	Settings   setting.Repository

	// Tx is optional. When set each table is seeded all or nothing.
	Tx TxRunner
}

func RepositoriesFromStorage(s *repository.Storage) Repositories {
	return Repositories{
		Reports:    s.Reports,
		Blogs:      s.Blogs,
		Admins:     s.Admins,
		Categories: s.Categories,
		Settings:   s.Settings,
		Tx:         s.Tx,
	}
}

// Result counts inserted rows per table.
type Result struct {
	Reports          int
	BlogPosts        int
	Admins           int
	ReportCategories int
	BlogCategories   int
	Settings         int
}

func (r Result) Total() int {
	return r.Reports + r.BlogPosts + r.Admins + r.ReportCategories + r.BlogCategories + r.Settings
}

type Seeder struct {
	repos    Repositories
	hasher   PasswordHasher
	renderer HTMLRenderer
	cfg      sharedConfig.SeedConfig
	logger   logger.Interface
	now      func() time.Time
}

func NewSeeder(repos Repositories, hasher PasswordHasher, renderer HTMLRenderer, cfg sharedConfig.SeedConfig, log logger.Interface) *Seeder {
	return &Seeder{
		repos:    repos,
		hasher:   hasher,
		renderer: renderer,
		cfg:      cfg,
		logger:   log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SeedIfEmpty fills each table that has no rows yet. Tables that already hold
// data are left untouched, so running it again is a no-op.
func (s *Seeder) SeedIfEmpty(ctx context.Context) (*Result, error) {
	var res Result
	steps := []struct {
		name string
		run  func(context.Context) (int, error)
		into *int
	}{
		{"reports", s.seedReports, &res.Reports},
		{"blog_posts", s.seedBlogPosts, &res.BlogPosts},
		{"admins", s.seedAdmin, &res.Admins},
		{"report_categories", s.seedReportCategories, &res.ReportCategories},
		{"blog_categories", s.seedBlogCategories, &res.BlogCategories},
		{"system_settings", s.seedSettings, &res.Settings},
	}

	for _, step := range steps {
		n, err := s.inTx(ctx, step.run)
		if err != nil {
			return &res, fmt.Errorf("failed to seed %s: %w", step.name, err)
		}
		*step.into = n
		if n > 0 {
			s.logger.Infow("seeded table", "table", step.name, "rows", n)
		}
	}

	return &res, nil
}

func (s *Seeder) inTx(ctx context.Context, run func(context.Context) (int, error)) (int, error) {
	if s.repos.Tx == nil {
		return run(ctx)
	}
	var n int
	err := s.repos.Tx.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		n, err = run(ctx)
		return err
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Seeder) seedReports(ctx context.Context) (int, error) {
	count, err := s.repos.Reports.Count(ctx, report.Filter{})
	if err != nil || count > 0 {
		return 0, err
	}
	rows := sampleReports()
	for _, r := range rows {
		r.ApplyDefaults()
		if err := s.repos.Reports.Create(ctx, r); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}

func (s *Seeder) seedBlogPosts(ctx context.Context) (int, error) {
	count, err := s.repos.Blogs.Count(ctx)
	if err != nil || count > 0 {
		return 0, err
	}
	rows := samplePosts()
	for _, p := range rows {
		p.Status = blog.StatusPublished
		p.AuthorName = "ScamGuard"
		p.ApplyDefaults(s.now())
		html, err := s.renderer.ToHTMLSanitized(p.Content)
		if err != nil {
			return 0, err
		}
		p.ContentHTML = html
		if err := s.repos.Blogs.Create(ctx, p); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}

func (s *Seeder) seedAdmin(ctx context.Context) (int, error) {
	count, err := s.repos.Admins.Count(ctx)
	if err != nil || count > 0 {
		return 0, err
	}
	if s.cfg.AdminUsername == "" || s.cfg.AdminPassword == "" {
		s.logger.Warnw("no default admin credentials configured, skipping admin seed")
		return 0, nil
	}

	hash, err := s.hasher.Hash(s.cfg.AdminPassword)
	if err != nil {
		return 0, err
	}
	fullName := "Administrator"
	a := &admin.Admin{
		Username:     s.cfg.AdminUsername,
		PasswordHash: hash,
		FullName:     &fullName,
		Role:         authorization.RoleAdmin,
		Permissions:  []string{},
		IsActive:     true,
	}
	if err := s.repos.Admins.Create(ctx, a); err != nil {
		return 0, err
	}
	s.logger.Warnw("default admin account created, change its password", "username", a.Username)
	return 1, nil
}

func (s *Seeder) seedReportCategories(ctx context.Context) (int, error) {
	count, err := s.repos.Categories.CountReportCategories(ctx)
	if err != nil || count > 0 {
		return 0, err
	}
	rows := sampleReportCategories()
	for _, c := range rows {
		if err := s.repos.Categories.CreateReportCategory(ctx, c); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}

func (s *Seeder) seedBlogCategories(ctx context.Context) (int, error) {
	count, err := s.repos.Categories.CountBlogCategories(ctx)
	if err != nil || count > 0 {
		return 0, err
	}
	rows := sampleBlogCategories()
	for _, c := range rows {
		if err := s.repos.Categories.CreateBlogCategory(ctx, c); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}

func (s *Seeder) seedSettings(ctx context.Context) (int, error) {
	count, err := s.repos.Settings.Count(ctx)
	if err != nil || count > 0 {
		return 0, err
	}
	rows := defaultSettings()
	for _, st := range rows {
		desc := st.description
		if _, err := s.repos.Settings.Upsert(ctx, st.key, st.value, &desc); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}
