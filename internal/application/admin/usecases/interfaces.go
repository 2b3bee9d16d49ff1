package usecases

import (
	"context"

	"github.com/scamguard-vn/scamguard/internal/infrastructure/auth"
	"github.com/scamguard-vn/scamguard/internal/shared/authorization"
)

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type GetAnalyticsExecutor interface {
	Execute(ctx context.Context) (*Analytics, error)
}

type PasswordVerifier interface {
	Verify(password, hash string) error
}

type TokenGenerator interface {
	Generate(adminID uint, username string, role authorization.AdminRole) (*auth.Token, error)
}

// PermissionLister resolves the casbin policies a role holds, inherited ones included.
type PermissionLister interface {
	GetPermissionsForRole(role string) ([][]string, error)
}
