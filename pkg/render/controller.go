package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/leterax/go-grass/internal/openglhelper"
)

// KeySource reports held keys
type KeySource interface {
	KeyPressed(key glfw.Key) bool
}

// WindowControl is the part of the window the controller drives
type WindowControl interface {
	KeySource
	SetShouldClose(value bool)
	SetMouseCaptured(captured bool)
}

// Controller turns window input into camera and state changes
type Controller struct {
	state  *State
	window WindowControl
}

var _ openglhelper.InputSink = (*Controller)(nil)

// NewController creates a controller that mutates state
func NewController(state *State, window WindowControl) *Controller {
	return &Controller{state: state, window: window}
}

// SetMouseCaptured grabs or releases the cursor. Capturing re-arms the
// first-mouse baseline so the next cursor event causes no jump.
func (c *Controller) SetMouseCaptured(captured bool) {
	c.state.MouseCaptured = captured
	c.window.SetMouseCaptured(captured)
	if captured {
		c.state.Camera.ResetMouseState()
	}
}

// ProcessKeyboard polls movement keys once per frame. Escape requests close.
func (c *Controller) ProcessKeyboard() {
	if c.window.KeyPressed(KeyEscape) {
		c.state.CloseRequested = true
		c.window.SetShouldClose(true)
	}
	c.state.Camera.ProcessKeyboardInput(c.state.DeltaTime, c.window)
}

// FramebufferResized keeps the camera aspect in step with the framebuffer
func (c *Controller) FramebufferResized(width, height int) {
	c.state.Camera.UpdateProjectionMatrix(width, height)
}

// CursorMoved rotates the camera while the cursor is captured
func (c *Controller) CursorMoved(xpos, ypos float64) {
	if !c.state.MouseCaptured {
		return
	}
	c.state.Camera.HandleMouseMovement(xpos, ypos)
}

// Scrolled zooms the camera
func (c *Controller) Scrolled(_, yoffset float64) {
	c.state.Camera.HandleMouseScroll(yoffset)
}

// KeyChanged toggles cursor capture on C
func (c *Controller) KeyChanged(key glfw.Key, action glfw.Action) {
	if key == KeyC && action == Press {
		c.SetMouseCaptured(!c.state.MouseCaptured)
	}
}
