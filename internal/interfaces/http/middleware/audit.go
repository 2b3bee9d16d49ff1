package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	auditUsecases "github.com/scamguard-vn/scamguard/internal/application/audit/usecases"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
)

// resource id path parameters, in lookup order
var auditIDParams = []string{"id", "sessionId", "key", "source"}

type AuditMiddleware struct {
	recorder auditUsecases.RecordAuditExecutor
}

func NewAuditMiddleware(recorder auditUsecases.RecordAuditExecutor) *AuditMiddleware {
	return &AuditMiddleware{recorder: recorder}
}

// Record writes an audit entry for every successful mutating request on resourceType.
func (m *AuditMiddleware) Record(resourceType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		action := auditAction(c.Request.Method)
		if action == "" || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		cmd := auditUsecases.RecordAuditCommand{
			Action:       action,
			ResourceType: resourceType,
			Details: map[string]any{
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
				"status": c.Writer.Status(),
			},
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		if adminID, username, _, ok := AdminFromContext(c); ok {
			cmd.AdminID = &adminID
			cmd.Details["admin_username"] = username
		}
		for _, name := range auditIDParams {
			if v := c.Param(name); v != "" {
				cmd.ResourceID = &v
				break
			}
		}

		m.recorder.Execute(c.Request.Context(), cmd)
	}
}

// RecordLogin writes an audit entry for every login attempt that reached the handler,
// rejected ones included.
func (m *AuditMiddleware) RecordLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		cmd := auditUsecases.RecordAuditCommand{
			Action:       "login",
			ResourceType: "admin",
			Details: map[string]any{
				"username": c.GetString(constants.ContextKeyLoginUsername),
				"success":  status < http.StatusBadRequest,
				"status":   status,
			},
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		if adminID, _, _, ok := AdminFromContext(c); ok && status < http.StatusBadRequest {
			cmd.AdminID = &adminID
		}

		m.recorder.Execute(c.Request.Context(), cmd)
	}
}

func auditAction(method string) string {
	switch method {
	case http.MethodPost:
		return "create"
	case http.MethodPut, http.MethodPatch:
		return "update"
	case http.MethodDelete:
		return "delete"
	}
	return ""
}
