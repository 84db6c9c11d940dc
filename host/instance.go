package host

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero/api"
)

// Lifecycle export names. These mirror the client's native mod ABI and are
// part of the wire contract.
const (
	ExportVersion    = "amod_version"
	ExportInit       = "amod_init"
	ExportGameStart  = "amod_gamestart"
	ExportExit       = "amod_exit"
	ExportTick       = "amod_tick"
	ExportFrame      = "amod_frame"
	ExportMouseMove  = "amod_mouse_move"
	ExportMouseClick = "amod_mouse_click"
	ExportKeyDown    = "amod_keydown"
	ExportKeyUp      = "amod_keyup"
	ExportClientCmd  = "amod_client_cmd"
)

// ModInstance is one loaded mod. The client must not call two methods
// concurrently; mods rely on the single-invocation guarantee for their
// internal state.
type ModInstance struct {
	module api.Module
}

// Close releases the instance.
func (mi *ModInstance) Close(ctx context.Context) error {
	return mi.module.Close(ctx)
}

func (mi *ModInstance) call(ctx context.Context, name string, params ...uint64) ([]uint64, error) {
	f := mi.module.ExportedFunction(name)
	if f == nil {
		return nil, fmt.Errorf("export %q not found", name)
	}
	results, err := f.Call(ctx, params...)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", name, err)
	}
	return results, nil
}

// Version calls the mod's version export. Callable at any time, including
// before Init.
func (mi *ModInstance) Version(ctx context.Context) (string, error) {
	results, err := mi.call(ctx, ExportVersion)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", fmt.Errorf("%s returned no result", ExportVersion)
	}
	return mi.readPackedString(results[0])
}

// Init runs the mod's load-time hook. Game state must not be served yet.
func (mi *ModInstance) Init(ctx context.Context) error {
	_, err := mi.call(ctx, ExportInit)
	return err
}

// GameStart tells the mod the player is in game.
func (mi *ModInstance) GameStart(ctx context.Context) error {
	_, err := mi.call(ctx, ExportGameStart)
	return err
}

// Exit runs the mod's unload hook.
func (mi *ModInstance) Exit(ctx context.Context) error {
	_, err := mi.call(ctx, ExportExit)
	return err
}

// Tick drives the mod's fixed-rate hook.
func (mi *ModInstance) Tick(ctx context.Context) error {
	_, err := mi.call(ctx, ExportTick)
	return err
}

// Frame drives the mod's per-frame hook.
func (mi *ModInstance) Frame(ctx context.Context) error {
	_, err := mi.call(ctx, ExportFrame)
	return err
}

// MouseMove reports cursor movement to the mod.
func (mi *ModInstance) MouseMove(ctx context.Context, x, y int) error {
	_, err := mi.call(ctx, ExportMouseMove, api.EncodeI32(int32(x)), api.EncodeI32(int32(y)))
	return err
}

// MouseClick reports a click; the returned bool is true when the mod
// consumed the event.
func (mi *ModInstance) MouseClick(ctx context.Context, x, y int, button int32) (bool, error) {
	results, err := mi.call(ctx, ExportMouseClick,
		api.EncodeI32(int32(x)), api.EncodeI32(int32(y)), api.EncodeI32(button))
	if err != nil {
		return false, err
	}
	return len(results) > 0 && api.DecodeI32(results[0]) != 0, nil
}

// KeyDown reports a key press; the returned bool is true when the mod
// consumed the event.
func (mi *ModInstance) KeyDown(ctx context.Context, key int) (bool, error) {
	results, err := mi.call(ctx, ExportKeyDown, api.EncodeI32(int32(key)))
	if err != nil {
		return false, err
	}
	return len(results) > 0 && api.DecodeI32(results[0]) != 0, nil
}

// KeyUp reports a key release.
func (mi *ModInstance) KeyUp(ctx context.Context, key int) error {
	_, err := mi.call(ctx, ExportKeyUp, api.EncodeI32(int32(key)))
	return err
}

// ClientCommand offers a chat command to the mod. The returned bool is true
// when the mod consumed it; false lets the client try other handlers.
func (mi *ModInstance) ClientCommand(ctx context.Context, cmd string) (bool, error) {
	payload := []byte(cmd)

	allocate := mi.module.ExportedFunction("allocate")
	if allocate == nil {
		return false, fmt.Errorf("mod does not export 'allocate'")
	}
	results, err := allocate.Call(ctx, uint64(len(payload)))
	if err != nil {
		return false, fmt.Errorf("failed to allocate in mod: %w", err)
	}
	if len(results) == 0 {
		return false, fmt.Errorf("allocate returned no result")
	}
	ptr := uint32(results[0])
	if len(payload) > 0 && !mi.module.Memory().Write(ptr, payload) {
		return false, fmt.Errorf("failed to write command to mod memory")
	}

	results, err = mi.call(ctx, ExportClientCmd,
		api.EncodeI32(int32(ptr)), api.EncodeI32(int32(len(payload))))
	if err != nil {
		return false, err
	}
	return len(results) > 0 && api.DecodeI32(results[0]) != 0, nil
}
