package hostfuncs

import (
	"context"
	"log/slog"
)

// Middleware wraps a ByteHandler to add cross-cutting behavior. Middleware
// executes in FIFO order: the first registered wraps outermost.
type Middleware func(next ByteHandler) ByteHandler

// RegistryOption is a functional option for configuring a HandlerRegistry.
type RegistryOption func(*registryBuilder)

// PanicRecoveryMiddleware converts a panicking handler into a structured
// ErrorResponse payload. A misbehaving host function must never take the
// whole client down with it.
func PanicRecoveryMiddleware() Middleware {
	return func(next ByteHandler) ByteHandler {
		return func(ctx context.Context, payload []byte) (resp []byte, err error) {
			defer func() {
				if r := recover(); r != nil {
					resp = NewPanicError(r).ToJSON()
					err = nil
				}
			}()
			return next(ctx, payload)
		}
	}
}

// LoggingMiddleware logs every host function invocation through slog at
// debug level, with failures at warn. Keep it off the frame-critical
// registries in production; draw calls arrive every frame.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next ByteHandler) ByteHandler {
		return func(ctx context.Context, payload []byte) ([]byte, error) {
			name := "unknown"
			if hc, ok := ctx.(HostContext); ok {
				name = hc.FunctionName()
			}
			logger.Debug("host function invoked", "func", name, "payload_bytes", len(payload))
			resp, err := next(ctx, payload)
			if err != nil {
				logger.Warn("host function failed", "func", name, "error", err)
			}
			return resp, err
		}
	}
}
