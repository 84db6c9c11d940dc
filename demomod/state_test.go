package demomod

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_ToggleOverlay(t *testing.T) {
	var s State

	assert.False(t, s.OverlayVisible())
	assert.True(t, s.ToggleOverlay())
	assert.True(t, s.OverlayVisible())
	assert.False(t, s.ToggleOverlay())
	assert.False(t, s.OverlayVisible())
}

func TestState_IncrementFrame(t *testing.T) {
	var s State

	assert.Equal(t, uint32(1), s.IncrementFrame())
	assert.Equal(t, uint32(2), s.IncrementFrame())
	assert.Equal(t, uint32(2), s.FrameCount())
}

func TestState_FrameCounterWraps(t *testing.T) {
	s := State{frameCount: math.MaxUint32}

	assert.Equal(t, uint32(0), s.IncrementFrame())
	assert.Equal(t, uint32(1), s.IncrementFrame())
}
