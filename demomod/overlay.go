package demomod

import (
	"fmt"

	"github.com/ugaris/modkit/modapi"
)

// Overlay panel colors. Background and border are dim fixed tones; gold
// gets its own literal because the client has no named color for it.
var (
	panelBackground = modapi.RGB(4, 4, 6)
	panelBorder     = modapi.RGB(12, 12, 16)
	goldColor       = modapi.RGB(31, 31, 0)
)

const (
	textInset    = 4
	statRowStart = 20
	statRowStep  = 14
)

// renderFrame draws the overlay panel for the current frame. While the
// overlay is hidden this is a true no-op: zero client calls, since the
// frame callback is latency sensitive. While visible it issues a fixed
// sequence against the client's immediate-mode renderer: one filled
// background rect, four border lines, the title, then four stat rows. All
// values are read fresh each frame; nothing is cached or smoothed.
func (m *Mod) renderFrame(h modapi.Host) {
	if !m.state.OverlayVisible() {
		return
	}

	snap, err := h.GameState()
	if err != nil {
		return
	}
	pal := h.Palette()

	x := h.AnchorX(modapi.AnchorTopLeft) + m.cfg.Margin
	y := h.AnchorY(modapi.AnchorTopLeft) + m.cfg.Margin
	w := m.cfg.Width
	ht := m.cfg.Height

	h.DrawRect(x, y, x+w, y+ht, panelBackground)

	h.DrawLine(x, y, x+w, y, panelBorder)
	h.DrawLine(x, y+ht, x+w, y+ht, panelBorder)
	h.DrawLine(x, y, x, y+ht, panelBorder)
	h.DrawLine(x+w, y, x+w, y+ht, panelBorder)

	h.DrawText(x+textInset, y+textInset, pal.White, 0, m.cfg.Title)

	ty := y + statRowStart
	h.DrawText(x+textInset, ty, pal.Health, 0,
		fmt.Sprintf("HP: %d / %d", snap.HP, snap.MaxOf(modapi.StatHP)))
	ty += statRowStep
	h.DrawText(x+textInset, ty, pal.Mana, 0,
		fmt.Sprintf("Mana: %d / %d", snap.Mana, snap.MaxOf(modapi.StatMana)))
	ty += statRowStep
	h.DrawText(x+textInset, ty, goldColor, 0,
		fmt.Sprintf("Gold: %d", snap.Gold))
	ty += statRowStep
	h.DrawText(x+textInset, ty, pal.Text, 0,
		fmt.Sprintf("Frame: %d", m.state.FrameCount()))
}
