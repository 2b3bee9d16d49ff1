package usecases

import (
	"context"
	"time"

	"github.com/scamguard-vn/scamguard/internal/domain/admin"
	"github.com/scamguard-vn/scamguard/internal/domain/blog"
	"github.com/scamguard-vn/scamguard/internal/domain/chat"
	"github.com/scamguard-vn/scamguard/internal/domain/report"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/auth"
	"github.com/scamguard-vn/scamguard/internal/shared/authorization"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

type mockAdminRepository struct {
	GetByUsernameFunc   func(ctx context.Context, username string) (*admin.Admin, error)
	UpdateLastLoginFunc func(ctx context.Context, id uint, at time.Time) error
}

func (m *mockAdminRepository) Create(context.Context, *admin.Admin) error { return nil }

func (m *mockAdminRepository) GetByID(context.Context, uint) (*admin.Admin, error) { return nil, nil }

func (m *mockAdminRepository) GetByUsername(ctx context.Context, username string) (*admin.Admin, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockAdminRepository) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	if m.UpdateLastLoginFunc != nil {
		return m.UpdateLastLoginFunc(ctx, id, at)
	}
	return nil
}

func (m *mockAdminRepository) Count(context.Context) (int64, error) { return 0, nil }

type mockTokenGenerator struct {
	GenerateFunc func(adminID uint, username string, role authorization.AdminRole) (*auth.Token, error)
}

func (m *mockTokenGenerator) Generate(adminID uint, username string, role authorization.AdminRole) (*auth.Token, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(adminID, username, role)
	}
	return &auth.Token{AccessToken: "token", ExpiresIn: 28800}, nil
}

type mockPermissionLister struct {
	policies map[string][][]string
}

func (m *mockPermissionLister) GetPermissionsForRole(role string) ([][]string, error) {
	return m.policies[role], nil
}

// report, blog and chat repositories only need Stats here.
type statsReportRepo struct {
	report.Repository
	stats *report.Stats
	err   error
	since time.Time
}

func (r *statsReportRepo) Stats(_ context.Context, since time.Time) (*report.Stats, error) {
	r.since = since
	return r.stats, r.err
}

type statsBlogRepo struct {
	blog.Repository
	stats *blog.Stats
}

func (r *statsBlogRepo) Stats(context.Context) (*blog.Stats, error) { return r.stats, nil }

type statsChatRepo struct {
	chat.Repository
	stats *chat.Stats
}

func (r *statsChatRepo) Stats(context.Context) (*chat.Stats, error) { return r.stats, nil }

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
