package scamclient

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// StatusError is returned for non-2xx replies.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
}

// ErrSendFailed wraps a messaging API reply with a non-zero error code.
var ErrSendFailed = errors.New("message send failed")

// IsTimeout reports whether err came from the client timeout or a context deadline.
func IsTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// StatusCode extracts the upstream status, or 0 when no response was received.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
