// Package host loads compiled mods into the client process and drives
// their lifecycle exports over a wazero runtime.
package host

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/ugaris/modkit/hostfuncs"
)

// HostModule is the name under which the client's services are exported to
// mods. Part of the wire contract.
const HostModule = "ugaris_host"

// Executor owns the WASM runtime mods are instantiated into.
type Executor struct {
	runtime  wazero.Runtime
	registry *hostfuncs.HandlerRegistry
}

// Option configures the Executor.
type Option func(*Executor)

// WithHostFunctions sets the host function registry mods may call. Without
// it, mods load but every service call reports NOT_FOUND.
func WithHostFunctions(registry *hostfuncs.HandlerRegistry) Option {
	return func(e *Executor) {
		e.registry = registry
	}
}

// NewExecutor creates an executor and registers the host functions.
func NewExecutor(ctx context.Context, opts ...Option) (*Executor, error) {
	e := &Executor{}
	for _, opt := range opts {
		opt(e)
	}

	if e.registry == nil {
		reg, err := hostfuncs.NewRegistry()
		if err != nil {
			return nil, fmt.Errorf("failed to create default registry: %w", err)
		}
		e.registry = reg
	}

	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	e.runtime = rt

	if err := e.registerHostFunctions(ctx); err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("failed to register host functions: %w", err)
	}
	return e, nil
}

// Close releases the runtime and every mod instantiated into it.
func (e *Executor) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// LoadMod instantiates a compiled mod and returns a handle for driving its
// lifecycle.
func (e *Executor) LoadMod(ctx context.Context, wasmBytes []byte) (*ModInstance, error) {
	mod, err := e.runtime.Instantiate(ctx, wasmBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate mod: %w", err)
	}

	if init := mod.ExportedFunction("_initialize"); init != nil {
		if _, err := init.Call(ctx); err != nil {
			return nil, fmt.Errorf("failed to call _initialize: %w", err)
		}
	}
	return &ModInstance{module: mod}, nil
}
