package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubMaintenance bool

func (s stubMaintenance) InMaintenance(context.Context) bool { return bool(s) }

func TestMaintenance(t *testing.T) {
	tests := []struct {
		name     string
		on       bool
		method   string
		wantCode int
	}{
		{name: "write during maintenance", on: true, method: http.MethodPost, wantCode: http.StatusServiceUnavailable},
		{name: "read during maintenance", on: true, method: http.MethodGet, wantCode: http.StatusOK},
		{name: "write normally", on: false, method: http.MethodPost, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Handle(tt.method, "/api/reports", Maintenance(stubMaintenance(tt.on)), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, "/api/reports", nil))

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestMaintenance_NilChecker(t *testing.T) {
	r := gin.New()
	r.POST("/api/chat", Maintenance(nil), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/chat", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
