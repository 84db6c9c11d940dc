// Package modapi defines the contract between the Ugaris client and a mod:
// the lifecycle entry points the client drives, the services the client
// exposes back to the mod, and the value types that cross the boundary.
package modapi

// Color is a packed 5-5-5 RGB value as the client's renderer consumes it.
type Color uint16

// RGB packs three 5-bit components into a Color. Matching the client's own
// packing, out-of-range components truncate silently through the shifts; no
// range validation is performed.
func RGB(r, g, b uint16) Color {
	return Color(r<<10 | g<<5 | b)
}

// Palette holds the client's named colors. It is queried, not cached: the
// client may change its theme between callbacks.
type Palette struct {
	White  Color `json:"white"`
	Text   Color `json:"text"`
	Health Color `json:"health"`
	Mana   Color `json:"mana"`
}

// Anchor identifies a client-defined screen reference point. Anchors resolve
// to pixel coordinates through Host.AnchorX/AnchorY and must be re-queried
// every frame; the client's layout moves on window resize and UI scaling.
type Anchor int32

// AnchorTopLeft is the top-left corner of the playfield.
const AnchorTopLeft Anchor = 0

// MouseButton identifies which button produced a click callback.
type MouseButton int32

// Mod is the interface a mod implements. The client invokes the methods on
// its own schedule; no two callbacks run concurrently, but no ordering is
// guaranteed beyond version, init, gamestart, repeated tick/frame/input,
// exit. None of the methods may block: a stalled frame or tick callback
// stalls the client's render or simulation loop.
type Mod interface {
	// Version returns a static identification string. It must be callable
	// at any time, including before Init.
	Version() string

	// Init runs when the client loads the mod. Game state is not available
	// yet; Host.GameState must not be called here.
	Init(Host)

	// GameStart runs once the player is in game. This is the first point at
	// which Host.GameState is guaranteed to succeed.
	GameStart(Host)

	// Exit runs when the client unloads the mod. Game state may already be
	// gone.
	Exit(Host)

	// Tick runs at the client's fixed simulation rate.
	Tick(Host)

	// Frame runs once per rendered frame.
	Frame(Host)

	// MouseMove reports cursor movement in screen coordinates.
	MouseMove(h Host, x, y int)

	// MouseClick reports a click; returning true consumes the event.
	MouseClick(h Host, x, y int, button MouseButton) bool

	// KeyDown reports a key press; returning true consumes the event.
	KeyDown(h Host, key int) bool

	// KeyUp reports a key release.
	KeyUp(h Host, key int)

	// ClientCommand offers a chat command the client did not handle itself.
	// raw is the command text as the client holds it; it may be malformed
	// and must not be retained. Returning true consumes the command,
	// returning false lets the client pass it to other handlers.
	ClientCommand(h Host, raw []byte) bool
}

// Host is the set of client services a mod may call. Every string passed in
// is a complete pre-formatted message; the implementation handles whatever
// termination or escaping the client's native calls require.
//
// All failures are reported in-band. A mod treats them as best-effort: a
// line or a draw that could not be delivered is skipped, never retried and
// never fatal.
type Host interface {
	// Note writes a line to the client's log. A non-nil error reports the
	// client's failure status; callers are free to ignore it.
	Note(msg string) error

	// AddLine appends a line to the in-game console.
	AddLine(msg string)

	// DrawRect fills the rectangle between the two corners.
	DrawRect(x1, y1, x2, y2 int, c Color)

	// DrawLine draws a line between the two points.
	DrawLine(x1, y1, x2, y2 int, c Color)

	// DrawText draws text at the given position and returns its rendered
	// width in pixels.
	DrawText(x, y int, c Color, flags int, text string) int

	// AnchorX resolves an anchor's current x coordinate.
	AnchorX(a Anchor) int

	// AnchorY resolves an anchor's current y coordinate.
	AnchorY(a Anchor) int

	// ExpToLevel converts experience points to a character level using the
	// client's progression table.
	ExpToLevel(exp int) int

	// GameState returns a snapshot of the local player's data. It fails
	// when no game is running; callers skip whatever the snapshot was for.
	GameState() (Snapshot, error)

	// Palette returns the client's current named colors.
	Palette() Palette
}
