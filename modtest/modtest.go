// Package modtest provides an in-memory modapi.Host for exercising mods
// without a running client. Every service call is recorded in order, and
// the game data a mod reads back is scripted per test.
package modtest

import (
	"fmt"
	"testing"

	"github.com/ugaris/modkit/modapi"
)

// DrawKind discriminates recorded drawing calls.
type DrawKind string

const (
	DrawRect DrawKind = "rect"
	DrawLine DrawKind = "line"
	DrawText DrawKind = "text"
)

// DrawCall is one recorded drawing primitive.
type DrawCall struct {
	Kind  DrawKind
	X1    int
	Y1    int
	X2    int
	Y2    int
	Color modapi.Color
	Flags int
	Text  string
}

// FakeHost implements modapi.Host against scripted data. The zero value is
// not usable; call NewFakeHost.
type FakeHost struct {
	// Scripted responses.
	Snap       modapi.Snapshot
	SnapErr    error
	Pal        modapi.Palette
	Anchors    map[modapi.Anchor][2]int
	LevelTable func(exp int) int
	NoteStatus int
	TextWidth  func(text string) int

	// Recorded calls, in invocation order.
	Notes []string
	Lines []string
	Draws []DrawCall
}

// NewFakeHost returns a host with benign defaults: anchors at the origin,
// a distinct non-zero palette, level = experience / 100, notes accepted.
func NewFakeHost() *FakeHost {
	return &FakeHost{
		Pal: modapi.Palette{
			White:  modapi.RGB(31, 31, 31),
			Text:   modapi.RGB(24, 24, 24),
			Health: modapi.RGB(31, 0, 0),
			Mana:   modapi.RGB(0, 0, 31),
		},
		Anchors:    map[modapi.Anchor][2]int{modapi.AnchorTopLeft: {0, 0}},
		LevelTable: func(exp int) int { return exp / 100 },
		TextWidth:  func(text string) int { return 6 * len(text) },
	}
}

// Reset clears the recorded calls, keeping the scripted data.
func (f *FakeHost) Reset() {
	f.Notes = nil
	f.Lines = nil
	f.Draws = nil
}

// HostCalls returns how many host calls were recorded in total.
func (f *FakeHost) HostCalls() int {
	return len(f.Notes) + len(f.Lines) + len(f.Draws)
}

func (f *FakeHost) Note(msg string) error {
	f.Notes = append(f.Notes, msg)
	if f.NoteStatus < 0 {
		return fmt.Errorf("note rejected by client (status %d)", f.NoteStatus)
	}
	return nil
}

func (f *FakeHost) AddLine(msg string) {
	f.Lines = append(f.Lines, msg)
}

func (f *FakeHost) DrawRect(x1, y1, x2, y2 int, c modapi.Color) {
	f.Draws = append(f.Draws, DrawCall{Kind: DrawRect, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c})
}

func (f *FakeHost) DrawLine(x1, y1, x2, y2 int, c modapi.Color) {
	f.Draws = append(f.Draws, DrawCall{Kind: DrawLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c})
}

func (f *FakeHost) DrawText(x, y int, c modapi.Color, flags int, text string) int {
	f.Draws = append(f.Draws, DrawCall{Kind: DrawText, X1: x, Y1: y, Color: c, Flags: flags, Text: text})
	return f.TextWidth(text)
}

func (f *FakeHost) AnchorX(a modapi.Anchor) int {
	return f.Anchors[a][0]
}

func (f *FakeHost) AnchorY(a modapi.Anchor) int {
	return f.Anchors[a][1]
}

func (f *FakeHost) ExpToLevel(exp int) int {
	return f.LevelTable(exp)
}

func (f *FakeHost) GameState() (modapi.Snapshot, error) {
	if f.SnapErr != nil {
		return modapi.Snapshot{}, f.SnapErr
	}
	return f.Snap, nil
}

func (f *FakeHost) Palette() modapi.Palette {
	return f.Pal
}

// DrawKinds returns the kinds of the recorded draw calls in order.
func (f *FakeHost) DrawKinds() []DrawKind {
	kinds := make([]DrawKind, len(f.Draws))
	for i, d := range f.Draws {
		kinds[i] = d.Kind
	}
	return kinds
}

// TextAt returns the text of the i-th recorded text draw, counting only
// text draws.
func (f *FakeHost) TextAt(t *testing.T, i int) string {
	t.Helper()
	n := 0
	for _, d := range f.Draws {
		if d.Kind != DrawText {
			continue
		}
		if n == i {
			return d.Text
		}
		n++
	}
	t.Fatalf("no text draw at index %d (have %d)", i, n)
	return ""
}
