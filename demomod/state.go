package demomod

// State is the mod's only mutable data. It survives across callbacks for
// the whole load-to-unload lifetime and is accessed without locks: the
// client guarantees no two callbacks run concurrently. A client without
// that guarantee would need these two fields made atomic.
type State struct {
	overlayVisible bool
	frameCount     uint32
}

// ToggleOverlay flips overlay visibility and returns the new state.
func (s *State) ToggleOverlay() bool {
	s.overlayVisible = !s.overlayVisible
	return s.overlayVisible
}

// OverlayVisible reports whether the overlay is currently shown.
func (s *State) OverlayVisible() bool {
	return s.overlayVisible
}

// IncrementFrame advances the frame counter and returns the new value.
// Wrapping past the uint32 maximum is expected, not an error.
func (s *State) IncrementFrame() uint32 {
	s.frameCount++
	return s.frameCount
}

// FrameCount returns the current frame counter.
func (s *State) FrameCount() uint32 {
	return s.frameCount
}
