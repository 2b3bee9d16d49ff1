// Package goroutine provides utilities for safely launching goroutines with panic recovery.
package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

// SafeGo launches a goroutine with panic recovery. If the goroutine panics,
// the panic is caught and logged with stack trace instead of crashing the process.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer recoverAndLog(log, name)
		fn()
	}()
}

// Detached runs fn in the background with a context that survives the cancellation of
// parent (typically a request context) but is bounded by timeout. Values such as request
// ids remain readable.
func Detached(parent context.Context, log logger.Interface, name string, timeout time.Duration, fn func(ctx context.Context)) {
	ctx := context.WithoutCancel(parent)
	go func() {
		defer recoverAndLog(log, name)
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		fn(ctx)
	}()
}

func recoverAndLog(log logger.Interface, name string) {
	if r := recover(); r != nil {
		log.Errorw("goroutine panicked",
			"goroutine", name,
			"panic", fmt.Sprintf("%v", r),
			"stack", string(debug.Stack()),
		)
	}
}
