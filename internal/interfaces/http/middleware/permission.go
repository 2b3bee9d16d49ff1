package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

type PolicyEnforcer interface {
	Enforce(role string, resource string, action string) (bool, error)
}

type PermissionMiddleware struct {
	enforcer PolicyEnforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer PolicyEnforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequirePermission must run after AuthMiddleware.RequireAdmin.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, _, role, ok := AdminFromContext(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgAdminAuthRequired)
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(role.String(), resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "admin_id", adminID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "admin_id", adminID, "role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
