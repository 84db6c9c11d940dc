package host

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero/api"
)

// registerHostFunctions exports every registry handler under HostModule.
// All handlers share one wire shape: a packed pointer/length to the JSON
// request in guest memory, returning a packed pointer/length to the JSON
// response written back into guest memory.
func (e *Executor) registerHostFunctions(ctx context.Context) error {
	builder := e.runtime.NewHostModuleBuilder(HostModule)

	for _, name := range e.registry.Names() {
		localName := name
		builder.NewFunctionBuilder().
			WithFunc(func(ctx context.Context, m api.Module, packed uint64) uint64 {
				var payload []byte
				if packed != 0 {
					ptr := uint32(packed >> 32)
					length := uint32(packed)
					data, ok := m.Memory().Read(ptr, length)
					if !ok {
						return 0
					}
					payload = data
				}

				resp, err := e.registry.Invoke(ctx, localName, payload)
				if err != nil || len(resp) == 0 {
					return 0
				}
				return writeToGuest(ctx, m, resp)
			}).
			Export(name)
	}

	_, err := builder.Instantiate(ctx)
	return err
}

// writeToGuest copies data into guest memory via the mod's allocate export
// and returns the packed pointer/length, or 0 when the guest cannot take
// the payload.
func writeToGuest(ctx context.Context, m api.Module, data []byte) uint64 {
	allocate := m.ExportedFunction("allocate")
	if allocate == nil {
		return 0
	}
	results, err := allocate.Call(ctx, uint64(len(data)))
	if err != nil || len(results) == 0 {
		return 0
	}
	ptr := uint32(results[0])
	if !m.Memory().Write(ptr, data) {
		return 0
	}
	return (uint64(ptr) << 32) | uint64(len(data))
}

// readPackedString reads a packed pointer/length string result out of guest
// memory. The copy is taken immediately; guest memory may move afterwards.
func (mi *ModInstance) readPackedString(packed uint64) (string, error) {
	ptr := uint32(packed >> 32)
	length := uint32(packed)
	if ptr == 0 || length == 0 {
		return "", fmt.Errorf("null string from mod")
	}
	data, ok := mi.module.Memory().Read(ptr, length)
	if !ok {
		return "", fmt.Errorf("failed to read string from mod memory")
	}
	out := make([]byte, length)
	copy(out, data)
	return string(out), nil
}
