// Package guest is the runtime glue for mods compiled to WASM: it exposes
// the client's lifecycle entry points as exports and implements modapi.Host
// over the client's imported services. Mod authors call Register in main
// and never touch the boundary directly.
package guest

import (
	"log/slog"

	"github.com/ugaris/modkit/modapi"
)

// current holds the registered mod implementation.
var current modapi.Mod

// Register installs the mod the lifecycle exports forward to. Mod authors
// call this in their main function. A second call is ignored with a
// warning; the client loads exactly one mod per module.
func Register(m modapi.Mod) {
	if current != nil {
		slog.Warn("guest: mod already registered, ignoring second call")
		return
	}
	current = m
	slog.Info("guest: mod registered", "version", m.Version())
}
