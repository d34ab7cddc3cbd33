package render

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func newTestController(keys ...glfw.Key) (*Controller, *State, *fakeWindow) {
	state := NewState(NewCamera(DefaultCameraPosition, 800, 600))
	window := newFakeWindow(keys...)
	return NewController(state, window), state, window
}

func TestEscapeRequestsClose(t *testing.T) {
	ctrl, state, window := newTestController(KeyEscape)
	ctrl.ProcessKeyboard()

	if !state.CloseRequested {
		t.Error("CloseRequested not set")
	}
	if !window.shouldClose {
		t.Error("window not asked to close")
	}
}

func TestProcessKeyboardMovesCamera(t *testing.T) {
	ctrl, state, window := newTestController(KeyW)
	state.Tick(0.5)
	ctrl.ProcessKeyboard()

	want := DefaultCameraPosition.Add(mgl32.Vec3{0, 0, -DefaultMoveSpeed * 0.5})
	if !vecClose(state.Camera.Position(), want) {
		t.Errorf("position = %v, want %v", state.Camera.Position(), want)
	}
	if state.CloseRequested || window.shouldClose {
		t.Error("close requested without Escape")
	}
}

func TestCursorIgnoredWhileReleased(t *testing.T) {
	ctrl, state, _ := newTestController()

	ctrl.CursorMoved(0, 0)
	ctrl.CursorMoved(500, 500)
	yaw, pitch := state.Camera.Orientation()
	if yaw != DefaultYaw || pitch != DefaultPitch {
		t.Errorf("released cursor rotated camera to (%v, %v)", yaw, pitch)
	}
}

func TestCaptureToggleRearmsFirstMouse(t *testing.T) {
	ctrl, state, window := newTestController()
	ctrl.SetMouseCaptured(true)
	if !window.captured || !state.MouseCaptured {
		t.Fatal("capture not applied")
	}

	ctrl.CursorMoved(100, 100)
	ctrl.CursorMoved(110, 100)
	yaw, _ := state.Camera.Orientation()

	ctrl.KeyChanged(KeyC, Press)
	if window.captured || state.MouseCaptured {
		t.Fatal("C did not release the cursor")
	}

	// Releases do not toggle.
	ctrl.KeyChanged(KeyC, Release)
	if state.MouseCaptured {
		t.Fatal("key release toggled capture")
	}

	ctrl.KeyChanged(KeyC, Press)
	if !window.captured || !state.MouseCaptured {
		t.Fatal("C did not recapture the cursor")
	}

	// The cursor moved far away while released; the first captured event
	// must not jump.
	ctrl.CursorMoved(900, 900)
	if got, _ := state.Camera.Orientation(); got != yaw {
		t.Errorf("yaw jumped from %v to %v after recapture", yaw, got)
	}
}

func TestOtherKeysDoNotToggleCapture(t *testing.T) {
	ctrl, state, _ := newTestController()
	ctrl.SetMouseCaptured(true)
	ctrl.KeyChanged(KeyW, Press)
	if !state.MouseCaptured {
		t.Error("W toggled capture")
	}
}

func TestScrolledZooms(t *testing.T) {
	ctrl, state, _ := newTestController()
	ctrl.Scrolled(0, 10)
	if state.Camera.FOV() != 35 {
		t.Errorf("fov = %v, want 35", state.Camera.FOV())
	}
}

func TestFramebufferResizedUpdatesAspect(t *testing.T) {
	ctrl, state, _ := newTestController()
	ctrl.FramebufferResized(1000, 500)

	want := mgl32.Perspective(mgl32.DegToRad(DefaultFOV), 2, NearPlane, FarPlane)
	if !state.Camera.ProjectionMatrix().ApproxEqualThreshold(want, epsilon) {
		t.Errorf("projection = %v, want aspect 2", state.Camera.ProjectionMatrix())
	}
}
