package modapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint16
		want    Color
	}{
		{name: "black", r: 0, g: 0, b: 0, want: 0},
		{name: "white", r: 31, g: 31, b: 31, want: 0x7FFF},
		{name: "red", r: 31, g: 0, b: 0, want: 0x7C00},
		{name: "green", r: 0, g: 31, b: 0, want: 0x03E0},
		{name: "blue", r: 0, g: 0, b: 31, want: 0x001F},
		{name: "gold", r: 31, g: 31, b: 0, want: 0x7FE0},
		// Out-of-range components truncate through the shifts, matching
		// the client's own packing.
		{name: "overflow red", r: 32, g: 0, b: 0, want: 0x8000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RGB(tc.r, tc.g, tc.b))
		})
	}
}

func TestStatKind_Index(t *testing.T) {
	// The raw table positions are a wire contract with the client.
	assert.Equal(t, 0, StatHP.Index())
	assert.Equal(t, 2, StatMana.Index())
	assert.Equal(t, 3, StatWisdom.Index())
	assert.Equal(t, 4, StatIntelligence.Index())
	assert.Equal(t, 5, StatAgility.Index())
	assert.Equal(t, 6, StatStrength.Index())
}

func TestStatKinds_CoversAll(t *testing.T) {
	kinds := StatKinds()

	assert.Len(t, kinds, 6)
	seen := map[string]bool{}
	for _, k := range kinds {
		assert.NotEqual(t, "unknown", k.String())
		seen[k.String()] = true
	}
	assert.Len(t, seen, 6)
}

func TestSnapshot_MaxOf(t *testing.T) {
	var s Snapshot
	s.Max[StatHP] = 100
	s.Max[StatStrength] = 20

	assert.Equal(t, 100, s.MaxOf(StatHP))
	assert.Equal(t, 20, s.MaxOf(StatStrength))
	assert.Zero(t, s.MaxOf(StatAgility))
}
