package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	settingUsecases "github.com/scamguard-vn/scamguard/internal/application/setting/usecases"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

const ErrMsgMaintenance = "Service is under maintenance, please try again later"

// Maintenance rejects public write requests with 503 while maintenance_mode is on.
// Reads always pass.
func Maintenance(checker settingUsecases.MaintenanceChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if checker != nil && checker.InMaintenance(c.Request.Context()) {
			utils.ErrorResponse(c, http.StatusServiceUnavailable, ErrMsgMaintenance)
			c.Abort()
			return
		}

		c.Next()
	}
}
