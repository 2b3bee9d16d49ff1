package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%lừa đảo%", LikePattern("lừa đảo"))
	assert.Equal(t, "%100!%%", LikePattern("100%"))
	assert.Equal(t, "%a!_b%", LikePattern("a_b"))
	assert.Equal(t, "%wow!!%", LikePattern("wow!"))
	assert.Equal(t, "phone_number LIKE ? ESCAPE '!'", Like("phone_number"))
}
