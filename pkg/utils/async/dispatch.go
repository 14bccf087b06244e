package async

import (
	"context"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
)

// Dispatch runs handler in a new goroutine detached from the request
// lifecycle. The handler receives a fresh background context carrying the
// logger of ctx, so cancellation of the inbound request does not abort
// outbound work. Panics are recovered; errors and panics are logged and
// reported to Sentry when the SDK is initialized.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	bgCtx := ctxlog.With(context.Background(), ctxlog.From(ctx))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				sentry.CurrentHub().Recover(r)
				ctxlog.From(bgCtx).Error("panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(bgCtx); err != nil {
			sentry.CaptureException(err)
			ctxlog.From(bgCtx).Error("error in async handler", "error", err)
		}
	}()
}
