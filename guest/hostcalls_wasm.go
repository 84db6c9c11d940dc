//go:build wasip1

package guest

import (
	"encoding/json"
	"fmt"

	"github.com/ugaris/modkit/internal/abi"
	"github.com/ugaris/modkit/modapi"
	"github.com/ugaris/modkit/wireformat"
)

//go:wasmimport ugaris_host note
func hostNote(packed uint64) uint64

//go:wasmimport ugaris_host addline
func hostAddLine(packed uint64) uint64

//go:wasmimport ugaris_host render_rect
func hostRenderRect(packed uint64) uint64

//go:wasmimport ugaris_host render_line
func hostRenderLine(packed uint64) uint64

//go:wasmimport ugaris_host render_text
func hostRenderText(packed uint64) uint64

//go:wasmimport ugaris_host dotx
func hostAnchorX(packed uint64) uint64

//go:wasmimport ugaris_host doty
func hostAnchorY(packed uint64) uint64

//go:wasmimport ugaris_host exp2level
func hostExpToLevel(packed uint64) uint64

//go:wasmimport ugaris_host game_state
func hostGameState(packed uint64) uint64

//go:wasmimport ugaris_host palette
func hostPalette(packed uint64) uint64

// callHost marshals a request, hands it to a client import over the packed
// pointer/length ABI, and unmarshals the response. Both buffers are freed
// before returning; nothing crossing the boundary is retained.
func callHost[Req any, Resp any](fn func(uint64) uint64, req Req) (Resp, error) {
	var resp Resp

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return resp, fmt.Errorf("failed to marshal request: %w", err)
	}

	packedReq := abi.PtrFromBytes(reqBytes)
	packedResp := fn(packedReq)
	abi.DeallocatePacked(packedReq)

	if packedResp == 0 {
		return resp, fmt.Errorf("client returned no data")
	}
	respBytes := abi.BytesFromPtr(packedResp)
	abi.DeallocatePacked(packedResp)

	if err := json.Unmarshal(respBytes, &resp); err != nil {
		return resp, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return resp, nil
}

// fireHost is callHost for services without a meaningful response (console
// lines, draw primitives). The acknowledgment buffer is still freed.
func fireHost[Req any](fn func(uint64) uint64, req Req) {
	reqBytes, err := json.Marshal(req)
	if err != nil {
		return
	}
	packedReq := abi.PtrFromBytes(reqBytes)
	packedResp := fn(packedReq)
	abi.DeallocatePacked(packedReq)
	abi.DeallocatePacked(packedResp)
}

// hostCalls implements modapi.Host over the client's imports.
type hostCalls struct{}

// theHost is the single Host handed to every callback.
var theHost modapi.Host = hostCalls{}

func (hostCalls) Note(msg string) error {
	resp, err := callHost[wireformat.NoteRequest, wireformat.NoteResponse](
		hostNote, wireformat.NoteRequest{Message: msg})
	if err != nil {
		return err
	}
	if resp.Error != nil {
		return fmt.Errorf("client log: %s", resp.Error.Message)
	}
	if resp.Status < 0 {
		return fmt.Errorf("client log dropped line (status %d)", resp.Status)
	}
	return nil
}

func (hostCalls) AddLine(msg string) {
	fireHost(hostAddLine, wireformat.AddLineRequest{Message: msg})
}

func (hostCalls) DrawRect(x1, y1, x2, y2 int, c modapi.Color) {
	fireHost(hostRenderRect, wireformat.DrawRectRequest{
		X1: x1, Y1: y1, X2: x2, Y2: y2, Color: uint16(c)})
}

func (hostCalls) DrawLine(x1, y1, x2, y2 int, c modapi.Color) {
	fireHost(hostRenderLine, wireformat.DrawLineRequest{
		X1: x1, Y1: y1, X2: x2, Y2: y2, Color: uint16(c)})
}

func (hostCalls) DrawText(x, y int, c modapi.Color, flags int, text string) int {
	resp, err := callHost[wireformat.DrawTextRequest, wireformat.DrawTextResponse](
		hostRenderText, wireformat.DrawTextRequest{
			X: x, Y: y, Color: uint16(c), Flags: flags, Text: text})
	if err != nil {
		return 0
	}
	return resp.Width
}

func (hostCalls) AnchorX(a modapi.Anchor) int {
	resp, err := callHost[wireformat.AnchorQuery, wireformat.AnchorCoord](
		hostAnchorX, wireformat.AnchorQuery{Anchor: int32(a)})
	if err != nil {
		return 0
	}
	return resp.Value
}

func (hostCalls) AnchorY(a modapi.Anchor) int {
	resp, err := callHost[wireformat.AnchorQuery, wireformat.AnchorCoord](
		hostAnchorY, wireformat.AnchorQuery{Anchor: int32(a)})
	if err != nil {
		return 0
	}
	return resp.Value
}

func (hostCalls) ExpToLevel(exp int) int {
	resp, err := callHost[wireformat.ExpToLevelRequest, wireformat.ExpToLevelResponse](
		hostExpToLevel, wireformat.ExpToLevelRequest{Experience: exp})
	if err != nil {
		return 0
	}
	return resp.Level
}

func (hostCalls) GameState() (modapi.Snapshot, error) {
	state, err := callHost[struct{}, wireformat.GameState](hostGameState, struct{}{})
	if err != nil {
		return modapi.Snapshot{}, err
	}
	if state.Error != nil {
		return modapi.Snapshot{}, fmt.Errorf("game state: %s", state.Error.Message)
	}
	snap := modapi.Snapshot{
		HP:         state.HP,
		Mana:       state.Mana,
		Gold:       state.Gold,
		Experience: state.Experience,
		Username:   state.Username,
	}
	copy(snap.Max[:], state.Max[:])
	return snap, nil
}

func (hostCalls) Palette() modapi.Palette {
	pal, err := callHost[struct{}, wireformat.Palette](hostPalette, struct{}{})
	if err != nil {
		return modapi.Palette{}
	}
	return modapi.Palette{
		White:  modapi.Color(pal.White),
		Text:   modapi.Color(pal.Text),
		Health: modapi.Color(pal.Health),
		Mana:   modapi.Color(pal.Mana),
	}
}
