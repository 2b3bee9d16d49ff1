package mapper

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapSlice(t *testing.T) {
	got := MapSlice([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got)

	empty := MapSlice[int, string](nil, strconv.Itoa)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestPointerHelpers(t *testing.T) {
	assert.Equal(t, 0, Deref[int](nil))
	assert.Equal(t, "vietcombank", Deref(Ptr("vietcombank")))
	assert.Nil(t, NilIfEmpty(""))
	assert.Equal(t, "x", *NilIfEmpty("x"))
}
