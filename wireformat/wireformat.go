// Package wireformat defines the JSON payloads exchanged between the client
// and a mod. These types are the ABI contract across the boundary and must
// remain stable and backward compatible.
package wireformat

// ErrorDetail carries a structured failure across the boundary. Boundary
// calls never trap on failure; they report it in-band so the other side can
// degrade gracefully.
type ErrorDetail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// NoteRequest asks the client to write a line to its log. The message is
// fully formatted by the mod; the client performs no substitution.
type NoteRequest struct {
	Message string `json:"message"`
}

// NoteResponse reports the client's log status. A negative status means the
// line was dropped.
type NoteResponse struct {
	Status int          `json:"status"`
	Error  *ErrorDetail `json:"error,omitempty"`
}

// AddLineRequest asks the client to append a line to the in-game console.
type AddLineRequest struct {
	Message string `json:"message"`
}

// DrawRectRequest asks the client to fill a rectangle this frame.
type DrawRectRequest struct {
	X1    int    `json:"x1"`
	Y1    int    `json:"y1"`
	X2    int    `json:"x2"`
	Y2    int    `json:"y2"`
	Color uint16 `json:"color"`
}

// DrawLineRequest asks the client to draw a line this frame.
type DrawLineRequest struct {
	X1    int    `json:"x1"`
	Y1    int    `json:"y1"`
	X2    int    `json:"x2"`
	Y2    int    `json:"y2"`
	Color uint16 `json:"color"`
}

// DrawTextRequest asks the client to draw text this frame.
type DrawTextRequest struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color uint16 `json:"color"`
	Flags int    `json:"flags,omitempty"`
	Text  string `json:"text"`
}

// DrawTextResponse returns the rendered width of the text in pixels.
type DrawTextResponse struct {
	Width int `json:"width"`
}

// AnchorQuery resolves one axis of a named screen anchor. Anchors are
// re-queried every frame; their positions follow window size and UI scale.
type AnchorQuery struct {
	Anchor int32 `json:"anchor"`
}

// AnchorCoord is the resolved pixel coordinate for an AnchorQuery.
type AnchorCoord struct {
	Value int `json:"value"`
}

// ExpToLevelRequest converts experience points through the client's
// progression table.
type ExpToLevelRequest struct {
	Experience int `json:"experience"`
}

// ExpToLevelResponse is the resulting character level.
type ExpToLevelResponse struct {
	Level int `json:"level"`
}

// GameState is the client's per-callback projection of the local player.
// Max is indexed by modapi.StatKind declaration order.
type GameState struct {
	Error      *ErrorDetail `json:"error,omitempty"`
	Username   string       `json:"username"`
	HP         int          `json:"hp"`
	Mana       int          `json:"mana"`
	Gold       int          `json:"gold"`
	Experience int          `json:"experience"`
	Max        [6]int       `json:"max"`
}

// Palette carries the client's named colors, packed 5-5-5.
type Palette struct {
	White  uint16 `json:"white"`
	Text   uint16 `json:"text"`
	Health uint16 `json:"health"`
	Mana   uint16 `json:"mana"`
}

// LogRecord routes a structured guest log record through the client's log.
type LogRecord struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}
