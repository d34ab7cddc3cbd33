package render

// State is everything the render loop mutates between frames. It is owned by
// the render thread; input callbacks reach it through the Controller.
type State struct {
	Camera *Camera

	// Timing, in seconds on the window clock
	DeltaTime float32
	LastFrame float64

	CloseRequested bool
	MouseCaptured  bool
}

// NewState wraps camera in a fresh application state
func NewState(camera *Camera) *State {
	return &State{Camera: camera}
}

// Tick advances the frame clock to now and returns the elapsed time
func (s *State) Tick(now float64) float32 {
	s.DeltaTime = float32(now - s.LastFrame)
	s.LastFrame = now
	return s.DeltaTime
}
