package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/shared/constants"
)

// Page holds limit/offset pagination parameters.
type Page struct {
	Limit  int
	Offset int
}

// NormalizeLimit applies the default when limit is not positive and caps it at MaxListLimit.
func NormalizeLimit(limit, defaultLimit int) int {
	if limit < 1 {
		return defaultLimit
	}
	if limit > constants.MaxListLimit {
		return constants.MaxListLimit
	}
	return limit
}

// ParseLimit reads ?limit= falling back to defaultLimit for missing or invalid values.
func ParseLimit(c *gin.Context, defaultLimit int) int {
	return NormalizeLimit(parseQueryInt(c, "limit", defaultLimit), defaultLimit)
}

// ParsePage reads ?limit=&offset=.
func ParsePage(c *gin.Context, defaultLimit int) Page {
	offset := parseQueryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	return Page{
		Limit:  ParseLimit(c, defaultLimit),
		Offset: offset,
	}
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
