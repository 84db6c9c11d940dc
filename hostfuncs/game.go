package hostfuncs

import (
	"context"

	"github.com/ugaris/modkit/wireformat"
)

// Host function names exported to mods. These are the wire contract; a
// renamed function breaks every compiled mod.
const (
	FuncNote       = "note"
	FuncAddLine    = "addline"
	FuncRenderRect = "render_rect"
	FuncRenderLine = "render_line"
	FuncRenderText = "render_text"
	FuncAnchorX    = "dotx"
	FuncAnchorY    = "doty"
	FuncExpToLevel = "exp2level"
	FuncGameState  = "game_state"
	FuncPalette    = "palette"
)

// GameService is the surface the embedding client implements to back the
// mod-facing host functions. Implementations run on the client's own
// threads; the mod boundary adds no synchronization because the client
// never delivers two callbacks concurrently.
type GameService interface {
	// Note writes a line to the client log and returns the client's status
	// code; negative means the line was dropped.
	Note(msg string) int

	// AddLine appends a line to the in-game console.
	AddLine(msg string)

	// DrawRect fills a rectangle on the current frame.
	DrawRect(x1, y1, x2, y2 int, color uint16)

	// DrawLine draws a line on the current frame.
	DrawLine(x1, y1, x2, y2 int, color uint16)

	// DrawText draws text on the current frame and returns its width.
	DrawText(x, y int, color uint16, flags int, text string) int

	// AnchorX resolves the x coordinate of a screen anchor.
	AnchorX(anchor int32) int

	// AnchorY resolves the y coordinate of a screen anchor.
	AnchorY(anchor int32) int

	// ExpToLevel converts experience to a level via the progression table.
	ExpToLevel(exp int) int

	// GameState projects the local player's current data. Returns an error
	// while no game is running.
	GameState() (wireformat.GameState, error)

	// Palette returns the client's named colors.
	Palette() wireformat.Palette
}

// GameBundle exposes a GameService as the full set of mod-facing host
// functions.
func GameBundle(svc GameService) HostFuncBundle {
	return &staticBundle{
		handlers: map[string]ByteHandler{
			FuncNote: NewJSONHandler(func(_ context.Context, req wireformat.NoteRequest) wireformat.NoteResponse {
				return wireformat.NoteResponse{Status: svc.Note(req.Message)}
			}),
			FuncAddLine: NewJSONHandler(func(_ context.Context, req wireformat.AddLineRequest) struct{} {
				svc.AddLine(req.Message)
				return struct{}{}
			}),
			FuncRenderRect: NewJSONHandler(func(_ context.Context, req wireformat.DrawRectRequest) struct{} {
				svc.DrawRect(req.X1, req.Y1, req.X2, req.Y2, req.Color)
				return struct{}{}
			}),
			FuncRenderLine: NewJSONHandler(func(_ context.Context, req wireformat.DrawLineRequest) struct{} {
				svc.DrawLine(req.X1, req.Y1, req.X2, req.Y2, req.Color)
				return struct{}{}
			}),
			FuncRenderText: NewJSONHandler(func(_ context.Context, req wireformat.DrawTextRequest) wireformat.DrawTextResponse {
				return wireformat.DrawTextResponse{
					Width: svc.DrawText(req.X, req.Y, req.Color, req.Flags, req.Text),
				}
			}),
			FuncAnchorX: NewJSONHandler(func(_ context.Context, req wireformat.AnchorQuery) wireformat.AnchorCoord {
				return wireformat.AnchorCoord{Value: svc.AnchorX(req.Anchor)}
			}),
			FuncAnchorY: NewJSONHandler(func(_ context.Context, req wireformat.AnchorQuery) wireformat.AnchorCoord {
				return wireformat.AnchorCoord{Value: svc.AnchorY(req.Anchor)}
			}),
			FuncExpToLevel: NewJSONHandler(func(_ context.Context, req wireformat.ExpToLevelRequest) wireformat.ExpToLevelResponse {
				return wireformat.ExpToLevelResponse{Level: svc.ExpToLevel(req.Experience)}
			}),
			FuncGameState: NewJSONHandler(func(context.Context, struct{}) wireformat.GameState {
				state, err := svc.GameState()
				if err != nil {
					return wireformat.GameState{Error: &wireformat.ErrorDetail{
						Type:    "game_state",
						Message: err.Error(),
					}}
				}
				return state
			}),
			FuncPalette: NewJSONHandler(func(context.Context, struct{}) wireformat.Palette {
				return svc.Palette()
			}),
		},
	}
}
