package usecases

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/scamguard-vn/scamguard/internal/domain/admin"
	"github.com/scamguard-vn/scamguard/internal/shared/authorization"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type AdminProfile struct {
	ID          uint                    `json:"id"`
	Username    string                  `json:"username"`
	Role        authorization.AdminRole `json:"role"`
	FullName    *string                 `json:"fullName"`
	Permissions []string                `json:"permissions"`
}

type LoginResult struct {
	Admin     AdminProfile `json:"admin"`
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn"`
}

type LoginUseCase struct {
	adminRepo   admin.Repository
	hasher      PasswordVerifier
	tokens      TokenGenerator
	permissions PermissionLister
	logger      logger.Interface
	now         func() time.Time
}

func NewLoginUseCase(
	adminRepo admin.Repository,
	hasher PasswordVerifier,
	tokens TokenGenerator,
	permissions PermissionLister,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		adminRepo:   adminRepo,
		hasher:      hasher,
		tokens:      tokens,
		permissions: permissions,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	username := strings.TrimSpace(cmd.Username)
	if username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	a, err := uc.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to load admin for login", "username", username, "error", err)
		return nil, err
	}
	if a == nil || !a.CanLogin() {
		uc.logger.Warnw("admin login rejected", "username", username, "reason", "unknown or disabled")
		return nil, errors.NewUnauthorizedError(constants.ErrMsgInvalidCredentials)
	}

	if err := uc.hasher.Verify(cmd.Password, a.PasswordHash); err != nil {
		uc.logger.Warnw("admin login rejected", "username", username, "reason", "password mismatch")
		return nil, errors.NewUnauthorizedError(constants.ErrMsgInvalidCredentials)
	}

	token, err := uc.tokens.Generate(a.ID, a.Username, a.Role)
	if err != nil {
		uc.logger.Errorw("failed to issue admin token", "admin_id", a.ID, "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	if err := uc.adminRepo.UpdateLastLogin(ctx, a.ID, uc.now()); err != nil {
		uc.logger.Warnw("failed to record admin last login", "admin_id", a.ID, "error", err)
	}

	uc.logger.Infow("admin logged in", "admin_id", a.ID, "role", a.Role)

	return &LoginResult{
		Admin: AdminProfile{
			ID:          a.ID,
			Username:    a.Username,
			Role:        a.Role,
			FullName:    a.FullName,
			Permissions: uc.resolvePermissions(a),
		},
		Token:     token.AccessToken,
		ExpiresIn: token.ExpiresIn,
	}, nil
}

// resolvePermissions merges the stored per-account grants with the role policies,
// rendered as "resource:action".
func (uc *LoginUseCase) resolvePermissions(a *admin.Admin) []string {
	seen := make(map[string]struct{}, len(a.Permissions))
	for _, p := range a.Permissions {
		seen[p] = struct{}{}
	}

	if uc.permissions != nil {
		policies, err := uc.permissions.GetPermissionsForRole(a.Role.String())
		if err != nil {
			uc.logger.Warnw("failed to resolve role permissions", "role", a.Role, "error", err)
		}
		for _, p := range policies {
			if len(p) < 3 {
				continue
			}
			seen[p[1]+":"+p[2]] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
