package hostfuncs

import (
	"context"
	"fmt"
	"sort"
)

// HandlerRegistry is an immutable collection of named host functions. Once
// built it cannot change, which keeps lookups lock-free while the client's
// render loop drives mod callbacks.
type HandlerRegistry struct {
	handlers   map[string]ByteHandler
	names      []string // sorted for consistent iteration
	middleware []Middleware
}

type registryBuilder struct {
	handlers   map[string]ByteHandler
	middleware []Middleware
	errors     []error
}

// NewRegistry builds an immutable HandlerRegistry. Returns an error if any
// handler name is registered twice.
//
//	registry, err := hostfuncs.NewRegistry(
//	    hostfuncs.WithMiddleware(hostfuncs.PanicRecoveryMiddleware()),
//	    hostfuncs.WithBundle(hostfuncs.GameBundle(svc)),
//	)
func NewRegistry(opts ...RegistryOption) (*HandlerRegistry, error) {
	b := &registryBuilder{handlers: make(map[string]ByteHandler)}
	for _, opt := range opts {
		opt(b)
	}
	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}

	names := make([]string, 0, len(b.handlers))
	for name := range b.handlers {
		names = append(names, name)
	}
	sort.Strings(names)

	// Middleware applies in FIFO order: the first registered wraps outermost.
	wrapped := make(map[string]ByteHandler, len(b.handlers))
	for name, handler := range b.handlers {
		h := handler
		for i := len(b.middleware) - 1; i >= 0; i-- {
			h = b.middleware[i](h)
		}
		wrapped[name] = h
	}

	return &HandlerRegistry{
		handlers:   wrapped,
		names:      names,
		middleware: b.middleware,
	}, nil
}

// Invoke dispatches a host function call by name. An unknown name yields an
// ErrorResponse payload rather than an error, so the calling mod sees a
// parseable failure instead of a trap.
func (r *HandlerRegistry) Invoke(ctx context.Context, name string, payload []byte) ([]byte, error) {
	handler, ok := r.handlers[name]
	if !ok {
		return NewNotFoundError(name).ToJSON(), nil
	}
	hctx := HostContextFrom(ctx, name)
	return handler(hctx, payload)
}

// Has reports whether a handler with the given name is registered.
func (r *HandlerRegistry) Has(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

// Names returns a sorted list of all registered handler names.
func (r *HandlerRegistry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func (b *registryBuilder) addHandler(name string, handler ByteHandler) error {
	if name == "" {
		return fmt.Errorf("handler name cannot be empty")
	}
	if _, exists := b.handlers[name]; exists {
		return fmt.Errorf("duplicate handler name: %q", name)
	}
	b.handlers[name] = handler
	return nil
}

// WithByteHandler registers a raw ByteHandler under the given name.
func WithByteHandler(name string, handler ByteHandler) RegistryOption {
	return func(b *registryBuilder) {
		if err := b.addHandler(name, handler); err != nil {
			b.errors = append(b.errors, err)
		}
	}
}

// WithMiddleware appends middleware to the registry. Middleware executes in
// FIFO order.
func WithMiddleware(mw ...Middleware) RegistryOption {
	return func(b *registryBuilder) {
		b.middleware = append(b.middleware, mw...)
	}
}
