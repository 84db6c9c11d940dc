package demomod

import (
	"fmt"

	"github.com/ugaris/modkit/internal/abi"
	"github.com/ugaris/modkit/modapi"
)

// dispatch decodes a raw command from the client and runs the matching
// handler. Matching is exact and case-sensitive against the fixed command
// set. Returns false for anything that is not ours, including text that
// fails to decode, so the client can offer the command to other handlers.
func (m *Mod) dispatch(h modapi.Host, raw []byte) bool {
	cmd, err := abi.DecodeText(raw)
	if err != nil {
		return false
	}
	handler, ok := m.commands[cmd]
	if !ok {
		return false
	}
	handler(h)
	return true
}

func (m *Mod) cmdHello(h modapi.Host) {
	h.AddLine("=== " + modName + " Commands ===")
	h.AddLine("#hello   - Show this help")
	h.AddLine("#stats   - Display current stats")
	h.AddLine("#overlay - Toggle HUD overlay")
}

// cmdStats prints the player's current numbers. Everything is read from a
// fresh snapshot, so two invocations in different frames may legitimately
// show different values.
func (m *Mod) cmdStats(h modapi.Host) {
	snap, err := h.GameState()
	if err != nil {
		return
	}
	level := h.ExpToLevel(snap.Experience)
	h.AddLine(fmt.Sprintf("Level: %d  Experience: %d", level, snap.Experience))
	h.AddLine(fmt.Sprintf("HP: %d/%d  Mana: %d/%d",
		snap.HP, snap.MaxOf(modapi.StatHP), snap.Mana, snap.MaxOf(modapi.StatMana)))
	h.AddLine(fmt.Sprintf("STR: %d  AGI: %d  INT: %d  WIS: %d",
		snap.MaxOf(modapi.StatStrength), snap.MaxOf(modapi.StatAgility),
		snap.MaxOf(modapi.StatIntelligence), snap.MaxOf(modapi.StatWisdom)))
	h.AddLine(fmt.Sprintf("Gold: %d", snap.Gold))
}

func (m *Mod) cmdOverlay(h modapi.Host) {
	if m.state.ToggleOverlay() {
		h.AddLine("Overlay: ON")
	} else {
		h.AddLine("Overlay: OFF")
	}
}
