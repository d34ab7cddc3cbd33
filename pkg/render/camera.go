package render

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a free-flying fly-through camera driven by yaw and pitch
type Camera struct {
	position mgl32.Vec3
	worldUp  mgl32.Vec3

	// Derived basis, rebuilt whenever yaw or pitch change
	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3

	yaw   float32
	pitch float32
	fov   float32

	speed       float32
	sensitivity float32

	// Cursor baseline for the next mouse delta
	lastX, lastY float64
	firstMouse   bool

	projection    mgl32.Mat4
	width, height int
}

// NewCamera creates a camera at position for a viewport of the given size
func NewCamera(position mgl32.Vec3, width, height int) *Camera {
	c := &Camera{
		position:    position,
		worldUp:     mgl32.Vec3{0, 1, 0},
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		fov:         DefaultFOV,
		speed:       DefaultMoveSpeed,
		sensitivity: DefaultSensitivity,
		lastX:       InitialCursorX,
		lastY:       InitialCursorY,
		firstMouse:  true,
		width:       width,
		height:      height,
	}
	c.rebuildBasis()
	c.rebuildProjection()
	return c
}

// rebuildBasis derives front, right and up from yaw and pitch
func (c *Camera) rebuildBasis() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	c.front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func (c *Camera) rebuildProjection() {
	aspect := float32(1)
	if c.height > 0 {
		aspect = float32(c.width) / float32(c.height)
	}
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, NearPlane, FarPlane)
}

// UpdateProjectionMatrix resizes the viewport the projection is built for
func (c *Camera) UpdateProjectionMatrix(width, height int) {
	c.width, c.height = width, height
	c.rebuildProjection()
}

// ViewMatrix looks from the camera position along front
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix returns the perspective for the current fov and aspect
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// Orientation returns yaw and pitch in degrees
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// FOV returns the vertical field of view in degrees
func (c *Camera) FOV() float32 {
	return c.fov
}

func (c *Camera) FrontVector() mgl32.Vec3 { return c.front }
func (c *Camera) RightVector() mgl32.Vec3 { return c.right }
func (c *Camera) UpVector() mgl32.Vec3 { return c.up }

// movement pairs a key with the direction it moves the camera in
type movement struct {
	key glfw.Key
	dir func(c *Camera) mgl32.Vec3
}

var movements = []movement{
	{KeyW, func(c *Camera) mgl32.Vec3 { return c.front }},
	{KeyS, func(c *Camera) mgl32.Vec3 { return c.front.Mul(-1) }},
	{KeyA, func(c *Camera) mgl32.Vec3 { return c.right.Mul(-1) }},
	{KeyD, func(c *Camera) mgl32.Vec3 { return c.right }},
	{KeySpace, func(c *Camera) mgl32.Vec3 { return c.worldUp }},
	{KeyLeftShift, func(c *Camera) mgl32.Vec3 { return c.worldUp.Mul(-1) }},
}

// ProcessKeyboardInput moves the camera by speed*dt along every held
// direction. Space and Shift move along world up regardless of pitch.
func (c *Camera) ProcessKeyboardInput(deltaTime float32, keys KeySource) {
	step := c.speed * deltaTime
	for _, m := range movements {
		if keys.KeyPressed(m.key) {
			c.position = c.position.Add(m.dir(c).Mul(step))
		}
	}
}

// HandleMouseMovement turns the camera by the cursor delta since the last
// event. The first event after ResetMouseState only records the baseline.
func (c *Camera) HandleMouseMovement(xpos, ypos float64) {
	if c.firstMouse {
		c.lastX, c.lastY = xpos, ypos
		c.firstMouse = false
		return
	}

	dx := float32(xpos-c.lastX) * c.sensitivity
	dy := float32(c.lastY-ypos) * c.sensitivity // screen y grows downwards
	c.lastX, c.lastY = xpos, ypos

	c.yaw += dx
	c.pitch = clamp(c.pitch+dy, MinPitch, MaxPitch)
	c.rebuildBasis()
}

// HandleMouseScroll zooms by narrowing or widening the field of view
func (c *Camera) HandleMouseScroll(yoffset float64) {
	c.fov = clamp(c.fov-float32(yoffset), MinFOV, MaxFOV)
	c.rebuildProjection()
}

// ResetMouseState re-arms the first-mouse baseline
func (c *Camera) ResetMouseState() {
	c.firstMouse = true
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
