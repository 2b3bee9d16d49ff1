package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("Report not found"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("slug taken"), ErrorTypeConflict, http.StatusConflict},
		{"unauthorized", NewUnauthorizedError("no"), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewForbiddenError("no"), ErrorTypeForbidden, http.StatusForbidden},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{"bad request", NewBadRequestError("bad id"), ErrorTypeBadRequest, http.StatusBadRequest},
		{"upstream", NewUpstreamError("scam service unavailable", stderrors.New("timeout")), ErrorTypeUpstream, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestAppError_ErrorString(t *testing.T) {
	assert.Equal(t, "not_found: Report not found", NewNotFoundError("Report not found").Error())
	assert.Equal(t, "validation_error: bad (amount)", NewValidationError("bad", "amount").Error())
}

func TestGetAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("use case: %w", NewNotFoundError("Blog post not found"))

	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsConflictError(wrapped))
	assert.Nil(t, GetAppError(stderrors.New("plain")))
}

func TestUpstreamError_UnwrapsCause(t *testing.T) {
	cause := stderrors.New("context deadline exceeded")
	err := NewUpstreamError("scam service unavailable", cause)
	assert.ErrorIs(t, err, cause)
}

func TestNewFieldValidationError(t *testing.T) {
	err := NewFieldValidationError("Invalid data", []FieldError{{Field: "amount", Message: "amount must be greater than 0"}})
	assert.True(t, IsValidationError(err))
	require.Len(t, err.Fields, 1)
	assert.Equal(t, "amount", err.Fields[0].Field)
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"Error 1062: Duplicate entry 'x' for key 'slug'", true},
		{`ERROR: duplicate key value violates unique constraint "blog_posts_slug_key"`, true},
		{"UNIQUE constraint failed: blog_posts.slug", true},
		{"connection refused", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsDuplicateError(stderrors.New(tt.msg)), tt.msg)
	}
	assert.False(t, IsDuplicateError(nil))
}
