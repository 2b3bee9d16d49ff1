package middleware

import (
	stderrors "errors"
	"net"
	"net/http"
	"net/http/httputil"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

// Recovery turns panics into a 500 JSON body. Credentials are masked in the logged request dump.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if isBrokenConnection(recovered) {
			log.Warnw("connection broken during request",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"error", recovered)
			c.Abort()
			return
		}

		log.Errorw("panic recovered",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"headers", maskedHeaders(c.Request),
			"error", recovered,
			"stack", string(debug.Stack()))

		utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
		c.Abort()
	})
}

func maskedHeaders(r *http.Request) []string {
	dump, _ := httputil.DumpRequest(r, false)
	headers := strings.Split(string(dump), "\r\n")
	for idx, header := range headers {
		name, _, found := strings.Cut(header, ":")
		if !found {
			continue
		}
		switch http.CanonicalHeaderKey(name) {
		case constants.HeaderAuthorization, constants.HeaderAPIKey:
			headers[idx] = name + ": *"
		}
	}
	return headers
}

func isBrokenConnection(recovered any) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}

	var opErr *net.OpError
	if !stderrors.As(err, &opErr) {
		return false
	}
	var sysErr *os.SyscallError
	if !stderrors.As(opErr.Err, &sysErr) {
		return false
	}

	msg := strings.ToLower(sysErr.Error())
	return strings.Contains(msg, "broken pipe") || strings.Contains(msg, "connection reset by peer")
}
