package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/interfaces/http/middleware"
)

// AdminGuards bundles the middlewares every admin route needs.
type AdminGuards struct {
	Auth       *middleware.AuthMiddleware
	Permission *middleware.PermissionMiddleware
	AuditLog   *middleware.AuditMiddleware
}

// RequireAdmin rejects requests without a valid admin token.
func (g *AdminGuards) RequireAdmin() gin.HandlerFunc {
	return g.Auth.RequireAdmin()
}

// OptionalAdmin identifies an admin when a token is present.
func (g *AdminGuards) OptionalAdmin() gin.HandlerFunc {
	return g.Auth.OptionalAdmin()
}

// Can checks the casbin policy for the admin's role.
func (g *AdminGuards) Can(resource, action string) gin.HandlerFunc {
	return g.Permission.RequirePermission(resource, action)
}

// Audit records successful mutations on resource.
func (g *AdminGuards) Audit(resource string) gin.HandlerFunc {
	return g.AuditLog.Record(resource)
}

// AuditLogin records every admin login attempt.
func (g *AdminGuards) AuditLogin() gin.HandlerFunc {
	return g.AuditLog.RecordLogin()
}

// PublicGuards protects anonymous write endpoints.
type PublicGuards struct {
	RateLimiter *middleware.RateLimiter
	Maintenance gin.HandlerFunc
	AuditLog    *middleware.AuditMiddleware
}

// Limit applies the per-IP rate limit.
func (g *PublicGuards) Limit() gin.HandlerFunc {
	return g.RateLimiter.Limit()
}

// Write is rate limiting plus the maintenance switch.
func (g *PublicGuards) Write() []gin.HandlerFunc {
	return []gin.HandlerFunc{g.Maintenance, g.RateLimiter.Limit()}
}

// Audit records successful anonymous submissions on resource.
func (g *PublicGuards) Audit(resource string) gin.HandlerFunc {
	return g.AuditLog.Record(resource)
}

func with(chain []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(chain)+1)
	out = append(out, chain...)
	return append(out, handler)
}
