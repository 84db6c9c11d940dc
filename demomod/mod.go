// Package demomod implements the demo HUD mod for the Ugaris client. It
// registers three chat commands (#hello, #stats, #overlay) and renders a
// small stats panel while the overlay is toggled on.
package demomod

import (
	"fmt"

	"github.com/ugaris/modkit/modapi"
)

const (
	modName    = "Ugaris Demo Mod"
	modVersion = "1.0.0"
)

// Mod is the demo mod. All of its state lives on the struct so tests can
// run several independent instances against fake hosts; nothing is ambient.
type Mod struct {
	state    State
	cfg      Config
	commands map[string]func(modapi.Host)
}

// Option configures a Mod.
type Option func(*Mod)

// WithConfig overrides the default overlay configuration. The config must
// already be validated; New panics on an invalid one to surface wiring
// mistakes at load time rather than mid-session.
func WithConfig(cfg Config) Option {
	return func(m *Mod) {
		if err := cfg.Validate(); err != nil {
			panic(fmt.Sprintf("demomod: invalid config: %v", err))
		}
		m.cfg = cfg
	}
}

// New creates the demo mod with overlay hidden and the frame counter at
// zero. State resets on every load; nothing persists across sessions.
func New(opts ...Option) *Mod {
	m := &Mod{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(m)
	}
	m.commands = map[string]func(modapi.Host){
		"#hello":   m.cmdHello,
		"#stats":   m.cmdStats,
		"#overlay": m.cmdOverlay,
	}
	return m
}

// Version implements modapi.Mod. Safe to call at any time.
func (m *Mod) Version() string {
	return modName + " " + modVersion
}

// Init implements modapi.Mod. Game state is not available yet, so only the
// client log is touched.
func (m *Mod) Init(h modapi.Host) {
	_ = h.Note(modName + " initializing...")
}

// GameStart implements modapi.Mod. First point at which game state is
// guaranteed valid.
func (m *Mod) GameStart(h modapi.Host) {
	snap, err := h.GameState()
	if err != nil {
		_ = h.Note(modName + ": Game started!")
		return
	}
	_ = h.Note(fmt.Sprintf("%s: Game started! Welcome, %s", modName, snap.Username))
	h.AddLine(modName + " loaded. Type #hello for commands.")
}

// Exit implements modapi.Mod. Game state may already be gone.
func (m *Mod) Exit(h modapi.Host) {
	_ = h.Note(modName + " shutting down.")
}

// Tick implements modapi.Mod. Intentionally empty; a safe extension point
// at the client's fixed simulation rate.
func (m *Mod) Tick(modapi.Host) {}

// Frame implements modapi.Mod.
func (m *Mod) Frame(h modapi.Host) {
	m.state.IncrementFrame()
	m.renderFrame(h)
}

// MouseMove implements modapi.Mod.
func (m *Mod) MouseMove(modapi.Host, int, int) {}

// MouseClick implements modapi.Mod. The demo never consumes input.
func (m *Mod) MouseClick(modapi.Host, int, int, modapi.MouseButton) bool {
	return false
}

// KeyDown implements modapi.Mod. The demo never consumes input.
func (m *Mod) KeyDown(modapi.Host, int) bool {
	return false
}

// KeyUp implements modapi.Mod.
func (m *Mod) KeyUp(modapi.Host, int) {}

// ClientCommand implements modapi.Mod.
func (m *Mod) ClientCommand(h modapi.Host, raw []byte) bool {
	return m.dispatch(h, raw)
}

// State exposes the mod's state for inspection in tests and host tooling.
func (m *Mod) State() *State {
	return &m.state
}
