package hostfuncs

import (
	"context"
)

// HostContext wraps a context.Context with the name of the host function
// being invoked and a place for middleware to stash request-scoped values
// without allocating context chains on the frame path.
type HostContext interface {
	context.Context

	// FunctionName returns the name of the host function being invoked.
	FunctionName() string

	// SetValue stores a request-scoped value. Unlike context.WithValue this
	// mutates the existing HostContext.
	SetValue(key, value any)

	// GetValue retrieves a value stored with SetValue.
	GetValue(key any) (value any, ok bool)
}

type hostContext struct {
	context.Context
	values   map[any]any
	funcName string
}

// NewHostContext creates a HostContext wrapping ctx.
func NewHostContext(ctx context.Context, funcName string) HostContext {
	return &hostContext{
		Context:  ctx,
		funcName: funcName,
		values:   make(map[any]any),
	}
}

func (c *hostContext) FunctionName() string {
	return c.funcName
}

func (c *hostContext) SetValue(key, value any) {
	c.values[key] = value
}

func (c *hostContext) GetValue(key any) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// HostContextFrom returns ctx unchanged when it already is a HostContext,
// otherwise wraps it.
func HostContextFrom(ctx context.Context, funcName string) HostContext {
	if hc, ok := ctx.(HostContext); ok {
		return hc
	}
	return NewHostContext(ctx, funcName)
}
