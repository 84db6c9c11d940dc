//go:build wasip1

package guest

import (
	"log/slog"

	"github.com/ugaris/modkit/internal/abi"
	modlog "github.com/ugaris/modkit/log"
	"github.com/ugaris/modkit/modapi"
)

func init() {
	// Route the mod's slog output through the client's log. Failures inside
	// Note are swallowed here; a log line that cannot be delivered is
	// dropped, not escalated.
	slog.SetDefault(slog.New(modlog.NewHandler(func(level slog.Level, msg string) {
		_ = theHost.Note("[" + level.String() + "] " + msg)
	})))
}

// guard keeps a panicking callback from trapping the client's loop. Pinned
// boundary buffers are released so a failed callback does not leak them.
func guard(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			abi.FreeAllTracked()
			slog.Error("guest: callback panicked", "panic", r)
		}
	}()
	fn()
}

func guardConsumed(fn func() bool) (consumed uint32) {
	defer func() {
		if r := recover(); r != nil {
			abi.FreeAllTracked()
			slog.Error("guest: callback panicked", "panic", r)
			consumed = 0
		}
	}()
	if fn() {
		return 1
	}
	return 0
}

//go:wasmexport amod_version
func amodVersion() uint64 {
	if current == nil {
		return 0
	}
	return abi.PtrFromBytes([]byte(current.Version()))
}

//go:wasmexport amod_init
func amodInit() {
	if current == nil {
		return
	}
	guard(func() { current.Init(theHost) })
}

//go:wasmexport amod_gamestart
func amodGameStart() {
	if current == nil {
		return
	}
	guard(func() { current.GameStart(theHost) })
}

//go:wasmexport amod_exit
func amodExit() {
	if current == nil {
		return
	}
	guard(func() { current.Exit(theHost) })
}

//go:wasmexport amod_tick
func amodTick() {
	if current == nil {
		return
	}
	guard(func() { current.Tick(theHost) })
}

//go:wasmexport amod_frame
func amodFrame() {
	if current == nil {
		return
	}
	guard(func() { current.Frame(theHost) })
}

//go:wasmexport amod_mouse_move
func amodMouseMove(x, y int32) {
	if current == nil {
		return
	}
	guard(func() { current.MouseMove(theHost, int(x), int(y)) })
}

//go:wasmexport amod_mouse_click
func amodMouseClick(x, y, button int32) uint32 {
	if current == nil {
		return 0
	}
	return guardConsumed(func() bool {
		return current.MouseClick(theHost, int(x), int(y), modapi.MouseButton(button))
	})
}

//go:wasmexport amod_keydown
func amodKeyDown(key int32) uint32 {
	if current == nil {
		return 0
	}
	return guardConsumed(func() bool { return current.KeyDown(theHost, int(key)) })
}

//go:wasmexport amod_keyup
func amodKeyUp(key int32) {
	if current == nil {
		return
	}
	guard(func() { current.KeyUp(theHost, int(key)) })
}

//go:wasmexport amod_client_cmd
func amodClientCmd(ptr, length uint32) uint32 {
	if current == nil {
		return 0
	}
	return guardConsumed(func() bool {
		var raw []byte
		if ptr != 0 && length > 0 {
			packed := abi.PackPtrLen(ptr, length)
			raw = abi.BytesFromPtr(packed)
			abi.DeallocatePacked(packed)
		}
		return current.ClientCommand(theHost, raw)
	})
}
