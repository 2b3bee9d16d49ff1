package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/shared/errors"
)

// ParseUintParam parses a numeric id from a URL path parameter.
// entityName is used in the error message (e.g. "report", "blog post").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("Invalid " + entityName + " id")
	}
	return uint(id), nil
}

// ParseBoolQuery returns nil when the query parameter is absent so callers can
// distinguish "not filtered" from false.
func ParseBoolQuery(c *gin.Context, key string) *bool {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// OptionalQuery returns a pointer to a non-empty query value.
func OptionalQuery(c *gin.Context, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}
