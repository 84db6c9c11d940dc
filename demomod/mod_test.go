package demomod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaris/modkit/modapi"
	"github.com/ugaris/modkit/modtest"
)

func TestVersion_StaticAndSideEffectFree(t *testing.T) {
	m := New()

	assert.Equal(t, "Ugaris Demo Mod 1.0.0", m.Version())
	assert.Equal(t, m.Version(), m.Version())
}

func TestInit_LogsWithoutTouchingGameState(t *testing.T) {
	m := New()
	h := modtest.NewFakeHost()
	h.SnapErr = assert.AnError // would surface if Init read game state

	m.Init(h)

	require.Len(t, h.Notes, 1)
	assert.Equal(t, "Ugaris Demo Mod initializing...", h.Notes[0])
	assert.Empty(t, h.Lines)
}

func TestGameStart_Welcome(t *testing.T) {
	m := New()
	h := modtest.NewFakeHost()
	h.Snap.Username = "Farli"

	m.GameStart(h)

	require.Len(t, h.Notes, 1)
	assert.Equal(t, "Ugaris Demo Mod: Game started! Welcome, Farli", h.Notes[0])
	require.Len(t, h.Lines, 1)
	assert.Equal(t, "Ugaris Demo Mod loaded. Type #hello for commands.", h.Lines[0])
}

func TestGameStart_SnapshotUnavailableDegrades(t *testing.T) {
	m := New()
	h := modtest.NewFakeHost()
	h.SnapErr = assert.AnError

	m.GameStart(h)

	require.Len(t, h.Notes, 1)
	assert.Equal(t, "Ugaris Demo Mod: Game started!", h.Notes[0])
	assert.Empty(t, h.Lines)
}

func TestExit_LogsShutdown(t *testing.T) {
	m := New()
	h := modtest.NewFakeHost()
	h.SnapErr = assert.AnError // game state may be gone at exit

	m.Exit(h)

	require.Len(t, h.Notes, 1)
	assert.Equal(t, "Ugaris Demo Mod shutting down.", h.Notes[0])
}

func TestTick_NoOp(t *testing.T) {
	m := New()
	h := modtest.NewFakeHost()

	m.Tick(h)

	assert.Zero(t, h.HostCalls())
}

func TestInputHooks_NeverConsume(t *testing.T) {
	m := New()
	h := modtest.NewFakeHost()

	m.MouseMove(h, 10, 20)
	assert.False(t, m.MouseClick(h, 10, 20, modapi.MouseButton(0)))
	assert.False(t, m.KeyDown(h, 13))
	m.KeyUp(h, 13)

	assert.Zero(t, h.HostCalls())
}

func TestNoteFailureIsBestEffort(t *testing.T) {
	m := New()
	h := modtest.NewFakeHost()
	h.NoteStatus = -1

	// A failing log call must not panic or change behavior.
	m.Init(h)
	m.Exit(h)

	assert.Len(t, h.Notes, 2)
}
