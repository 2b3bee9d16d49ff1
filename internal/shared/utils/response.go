package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Error   string              `json:"error"`
	Type    string              `json:"type,omitempty"`
	Details []errors.FieldError `json:"details,omitempty"`
}

// SuccessBody is returned by endpoints that have nothing else to report.
type SuccessBody struct {
	Success bool `json:"success"`
}

// SuccessResponse writes data as the bare JSON body.
func SuccessResponse(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// OKResponse writes data with 200.
func OKResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// CreatedResponse writes data with 201.
func CreatedResponse(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// DeletedResponse writes {"success": true}.
func DeletedResponse(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessBody{Success: true})
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// ErrorResponseWithError sends an error response based on error type.
// Errors that are not AppErrors, and upstream failures, never expose their text.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		c.JSON(http.StatusInternalServerError, ErrorBody{
			Error: constants.ErrMsgInternalServerError,
			Type:  string(errors.ErrorTypeInternal),
		})
		return
	}

	body := ErrorBody{
		Error:   appErr.Message,
		Type:    string(appErr.Type),
		Details: appErr.Fields,
	}
	if len(body.Details) == 0 && appErr.Details != "" {
		body.Details = []errors.FieldError{{Message: appErr.Details}}
	}

	c.JSON(appErr.Code, body)
}
