package demomod

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaris/modkit/modapi"
	"github.com/ugaris/modkit/modtest"
)

func testSnapshot() modapi.Snapshot {
	snap := modapi.Snapshot{HP: 50, Mana: 20, Gold: 1000, Experience: 500}
	snap.Max[modapi.StatHP] = 100
	snap.Max[modapi.StatMana] = 40
	return snap
}

func TestRenderFrame_HiddenIsNoOp(t *testing.T) {
	m := New()
	h := modtest.NewFakeHost()
	h.Snap = testSnapshot()

	m.Frame(h)
	m.Frame(h)

	assert.Zero(t, h.HostCalls())
	assert.Equal(t, uint32(2), m.State().FrameCount())
}

func TestRenderFrame_VisibleSequence(t *testing.T) {
	m := New()
	h := modtest.NewFakeHost()
	h.Snap = testSnapshot()
	h.Anchors[modapi.AnchorTopLeft] = [2]int{30, 40}

	require.True(t, m.ClientCommand(h, []byte("#overlay")))
	h.Reset()

	m.Frame(h)

	require.Len(t, h.Draws, 10)
	assert.Equal(t, []modtest.DrawKind{
		modtest.DrawRect,
		modtest.DrawLine, modtest.DrawLine, modtest.DrawLine, modtest.DrawLine,
		modtest.DrawText, modtest.DrawText, modtest.DrawText, modtest.DrawText, modtest.DrawText,
	}, h.DrawKinds())

	// Panel rectangle: anchor (30,40) plus the 10 pixel margin, 180x80.
	x, y := 40, 50
	bg := h.Draws[0]
	assert.Equal(t, modtest.DrawCall{
		Kind: modtest.DrawRect, X1: x, Y1: y, X2: x + 180, Y2: y + 80,
		Color: modapi.RGB(4, 4, 6),
	}, bg)

	// Border lines close the outline: top, bottom, left, right.
	border := modapi.RGB(12, 12, 16)
	assert.Equal(t, modtest.DrawCall{Kind: modtest.DrawLine, X1: x, Y1: y, X2: x + 180, Y2: y, Color: border}, h.Draws[1])
	assert.Equal(t, modtest.DrawCall{Kind: modtest.DrawLine, X1: x, Y1: y + 80, X2: x + 180, Y2: y + 80, Color: border}, h.Draws[2])
	assert.Equal(t, modtest.DrawCall{Kind: modtest.DrawLine, X1: x, Y1: y, X2: x, Y2: y + 80, Color: border}, h.Draws[3])
	assert.Equal(t, modtest.DrawCall{Kind: modtest.DrawLine, X1: x + 180, Y1: y, X2: x + 180, Y2: y + 80, Color: border}, h.Draws[4])

	// Title at the fixed inset, stat rows at 14 pixel steps from y+20.
	title := h.Draws[5]
	assert.Equal(t, "Ugaris Demo Mod", title.Text)
	assert.Equal(t, x+4, title.X1)
	assert.Equal(t, y+4, title.Y1)
	assert.Equal(t, h.Pal.White, title.Color)

	assert.Equal(t, "HP: 50 / 100", h.TextAt(t, 1))
	assert.Equal(t, "Mana: 20 / 40", h.TextAt(t, 2))
	assert.Equal(t, "Gold: 1000", h.TextAt(t, 3))
	assert.Equal(t, "Frame: 1", h.TextAt(t, 4))

	for i, wantY := range []int{y + 20, y + 34, y + 48, y + 62} {
		d := h.Draws[6+i]
		assert.Equal(t, x+4, d.X1)
		assert.Equal(t, wantY, d.Y1)
	}

	assert.Equal(t, h.Pal.Health, h.Draws[6].Color)
	assert.Equal(t, h.Pal.Mana, h.Draws[7].Color)
	assert.Equal(t, modapi.RGB(31, 31, 0), h.Draws[8].Color)
	assert.Equal(t, h.Pal.Text, h.Draws[9].Color)
}

func TestRenderFrame_ReadsFreshValuesEachFrame(t *testing.T) {
	m := New()
	h := modtest.NewFakeHost()
	h.Snap = testSnapshot()

	require.True(t, m.ClientCommand(h, []byte("#overlay")))

	for frame := 1; frame <= 3; frame++ {
		h.Reset()
		h.Snap.HP = 50 - frame
		m.Frame(h)

		assert.Equal(t, fmt.Sprintf("HP: %d / 100", 50-frame), h.TextAt(t, 1))
		assert.Equal(t, fmt.Sprintf("Frame: %d", frame), h.TextAt(t, 4))
	}
}

func TestRenderFrame_AnchorRequeriedEachFrame(t *testing.T) {
	m := New()
	h := modtest.NewFakeHost()
	h.Snap = testSnapshot()

	require.True(t, m.ClientCommand(h, []byte("#overlay")))
	h.Reset()

	m.Frame(h)
	require.NotEmpty(t, h.Draws)
	assert.Equal(t, 10, h.Draws[0].X1)

	// Simulate a window move; the panel must follow without caching.
	h.Anchors[modapi.AnchorTopLeft] = [2]int{200, 0}
	h.Reset()
	m.Frame(h)
	require.NotEmpty(t, h.Draws)
	assert.Equal(t, 210, h.Draws[0].X1)
}

func TestRenderFrame_SkipsWhenGameStateUnavailable(t *testing.T) {
	m := New()
	h := modtest.NewFakeHost()
	h.SnapErr = assert.AnError

	require.True(t, m.ClientCommand(h, []byte("#overlay")))
	h.Reset()

	m.Frame(h)

	// Frame still counts, but nothing is drawn.
	assert.Empty(t, h.Draws)
	assert.Equal(t, uint32(1), m.State().FrameCount())
}

func TestRenderFrame_CustomConfigGeometry(t *testing.T) {
	m := New(WithConfig(Config{Width: 200, Height: 100, Margin: 5, Title: "Custom"}))
	h := modtest.NewFakeHost()
	h.Snap = testSnapshot()

	require.True(t, m.ClientCommand(h, []byte("#overlay")))
	h.Reset()
	m.Frame(h)

	require.Len(t, h.Draws, 10)
	assert.Equal(t, modtest.DrawCall{
		Kind: modtest.DrawRect, X1: 5, Y1: 5, X2: 205, Y2: 105,
		Color: modapi.RGB(4, 4, 6),
	}, h.Draws[0])
	assert.Equal(t, "Custom", h.TextAt(t, 0))
}
