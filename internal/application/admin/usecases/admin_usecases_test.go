package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/scamguard-vn/scamguard/internal/domain/admin"
	"github.com/scamguard-vn/scamguard/internal/domain/blog"
	"github.com/scamguard-vn/scamguard/internal/domain/chat"
	"github.com/scamguard-vn/scamguard/internal/domain/report"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/auth"
	"github.com/scamguard-vn/scamguard/internal/shared/authorization"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	apperrors "github.com/scamguard-vn/scamguard/internal/shared/errors"
)

func newTestAdmin(t *testing.T, active bool) *admin.Admin {
	t.Helper()
	hash, err := auth.NewBcryptPasswordHasher(bcrypt.MinCost).Hash("admin123")
	require.NoError(t, err)
	name := "Quản trị viên"
	return &admin.Admin{
		ID:           1,
		Username:     "admin",
		PasswordHash: hash,
		FullName:     &name,
		Role:         authorization.RoleAdmin,
		Permissions:  []string{"report:export"},
		IsActive:     active,
	}
}

func TestLoginUseCase_Execute_Success(t *testing.T) {
	a := newTestAdmin(t, true)
	var lastLogin time.Time
	repo := &mockAdminRepository{
		GetByUsernameFunc: func(_ context.Context, username string) (*admin.Admin, error) {
			assert.Equal(t, "admin", username)
			return a, nil
		},
		UpdateLastLoginFunc: func(_ context.Context, id uint, at time.Time) error {
			lastLogin = at
			return nil
		},
	}
	perms := &mockPermissionLister{policies: map[string][][]string{
		"admin": {{"admin", "report", "*"}, {"moderator", "chat", "read"}},
	}}
	uc := NewLoginUseCase(repo, auth.NewBcryptPasswordHasher(bcrypt.MinCost), &mockTokenGenerator{}, perms, &mockLogger{})
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	got, err := uc.Execute(context.Background(), LoginCommand{Username: " admin ", Password: "admin123"})
	require.NoError(t, err)

	assert.Equal(t, "token", got.Token)
	assert.Equal(t, int64(28800), got.ExpiresIn)
	assert.Equal(t, uint(1), got.Admin.ID)
	assert.Equal(t, authorization.RoleAdmin, got.Admin.Role)
	assert.Equal(t, []string{"chat:read", "report:*", "report:export"}, got.Admin.Permissions)
	assert.Equal(t, fixed, lastLogin)
}

func TestLoginUseCase_Execute_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		admin    func(t *testing.T) *admin.Admin
		password string
	}{
		{"unknown user", func(*testing.T) *admin.Admin { return nil }, "admin123"},
		{"wrong password", func(t *testing.T) *admin.Admin { return newTestAdmin(t, true) }, "wrong"},
		{"inactive account", func(t *testing.T) *admin.Admin { return newTestAdmin(t, false) }, "admin123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.admin(t)
			updated := false
			repo := &mockAdminRepository{
				GetByUsernameFunc: func(context.Context, string) (*admin.Admin, error) { return a, nil },
				UpdateLastLoginFunc: func(context.Context, uint, time.Time) error {
					updated = true
					return nil
				},
			}
			uc := NewLoginUseCase(repo, auth.NewBcryptPasswordHasher(bcrypt.MinCost), &mockTokenGenerator{}, nil, &mockLogger{})

			_, err := uc.Execute(context.Background(), LoginCommand{Username: "admin", Password: tt.password})
			require.Error(t, err)
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, 401, appErr.Code)
			assert.Equal(t, constants.ErrMsgInvalidCredentials, appErr.Message)
			assert.False(t, updated)
		})
	}
}

func TestLoginUseCase_Execute_MissingFields(t *testing.T) {
	uc := NewLoginUseCase(&mockAdminRepository{}, auth.NewBcryptPasswordHasher(bcrypt.MinCost), &mockTokenGenerator{}, nil, &mockLogger{})
	_, err := uc.Execute(context.Background(), LoginCommand{Username: "admin"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestLoginUseCase_Execute_LastLoginFailureIgnored(t *testing.T) {
	a := newTestAdmin(t, true)
	repo := &mockAdminRepository{
		GetByUsernameFunc:   func(context.Context, string) (*admin.Admin, error) { return a, nil },
		UpdateLastLoginFunc: func(context.Context, uint, time.Time) error { return errors.New("read-only") },
	}
	uc := NewLoginUseCase(repo, auth.NewBcryptPasswordHasher(bcrypt.MinCost), &mockTokenGenerator{}, nil, &mockLogger{})

	got, err := uc.Execute(context.Background(), LoginCommand{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, []string{"report:export"}, got.Admin.Permissions)
}

func TestGetAnalyticsUseCase_Execute(t *testing.T) {
	reports := &statsReportRepo{stats: &report.Stats{Total: 3}}
	blogs := &statsBlogRepo{stats: &blog.Stats{Total: 2}}
	chats := &statsChatRepo{stats: &chat.Stats{TotalSessions: 1}}

	uc := NewGetAnalyticsUseCase(reports, blogs, chats, &mockLogger{})
	fixed := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	got, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Reports.Total)
	assert.Equal(t, int64(2), got.Blogs.Total)
	assert.Equal(t, int64(1), got.Chat.TotalSessions)
	assert.Equal(t, fixed.Add(-7*24*time.Hour), reports.since)
}

func TestGetAnalyticsUseCase_Execute_Error(t *testing.T) {
	reports := &statsReportRepo{err: errors.New("boom")}
	uc := NewGetAnalyticsUseCase(reports, &statsBlogRepo{stats: &blog.Stats{}}, &statsChatRepo{stats: &chat.Stats{}}, &mockLogger{})

	_, err := uc.Execute(context.Background())
	assert.Error(t, err)
}
