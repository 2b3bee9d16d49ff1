package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/domain/admin"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/auth"
	"github.com/scamguard-vn/scamguard/internal/shared/authorization"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

type TokenVerifier interface {
	Verify(tokenString string) (*auth.Claims, error)
}

// AdminLookup loads the current state of the account a token was issued to.
type AdminLookup interface {
	GetByID(ctx context.Context, id uint) (*admin.Admin, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	admins   AdminLookup
	logger   logger.Interface
}

// NewAuthMiddleware builds the bearer token guard. With a nil admins lookup the
// token claims are trusted as issued.
func NewAuthMiddleware(verifier TokenVerifier, admins AdminLookup, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		admins:   admins,
		logger:   logger,
	}
}

// RequireAdmin accepts "Authorization: Bearer <token>" and stores the admin identity
// in the gin context.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader(constants.HeaderAuthorization))
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgAdminAuthRequired)
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			m.logger.Debugw("rejected admin token", "error", err, "path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgAdminAuthRequired)
			c.Abort()
			return
		}

		active, err := m.refresh(c.Request.Context(), claims)
		if err != nil {
			m.logger.Errorw("failed to load admin for token", "admin_id", claims.AdminID, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
			c.Abort()
			return
		}
		if !active {
			m.logger.Infow("token of disabled admin rejected", "admin_id", claims.AdminID, "path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgAdminAuthRequired)
			c.Abort()
			return
		}

		setAdmin(c, claims)
		c.Next()
	}
}

// refresh reports whether the token's admin still exists and is active, and updates
// claims with the stored username and role.
func (m *AuthMiddleware) refresh(ctx context.Context, claims *auth.Claims) (bool, error) {
	if m.admins == nil {
		return true, nil
	}
	a, err := m.admins.GetByID(ctx, claims.AdminID)
	if err != nil {
		return false, err
	}
	if a == nil || !a.IsActive {
		return false, nil
	}
	claims.Username = a.Username
	claims.Role = a.Role
	return true, nil
}

func setAdmin(c *gin.Context, claims *auth.Claims) {
	c.Set(constants.ContextKeyAdminID, claims.AdminID)
	c.Set(constants.ContextKeyAdminName, claims.Username)
	c.Set(constants.ContextKeyAdminRole, claims.Role)
}

// OptionalAdmin behaves like RequireAdmin when a valid token is present and lets
// the request through anonymously otherwise.
func (m *AuthMiddleware) OptionalAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c.GetHeader(constants.HeaderAuthorization)); ok {
			if claims, err := m.verifier.Verify(token); err == nil {
				if active, err := m.refresh(c.Request.Context(), claims); err == nil && active {
					setAdmin(c, claims)
				}
			}
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// AdminFromContext returns the identity stored by RequireAdmin.
func AdminFromContext(c *gin.Context) (id uint, username string, role authorization.AdminRole, ok bool) {
	rawID, exists := c.Get(constants.ContextKeyAdminID)
	if !exists {
		return 0, "", "", false
	}
	id, ok = rawID.(uint)
	if !ok {
		return 0, "", "", false
	}
	username = c.GetString(constants.ContextKeyAdminName)
	if r, exists := c.Get(constants.ContextKeyAdminRole); exists {
		role, _ = r.(authorization.AdminRole)
	}
	return id, username, role, true
}
