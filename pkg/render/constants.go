package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Key constants for keyboard input
const (
	KeyW         = glfw.KeyW
	KeyA         = glfw.KeyA
	KeyS         = glfw.KeyS
	KeyD         = glfw.KeyD
	KeyC         = glfw.KeyC
	KeySpace     = glfw.KeySpace
	KeyLeftShift = glfw.KeyLeftShift
	KeyEscape    = glfw.KeyEscape
)

// Action constants for key states
const (
	Press   = glfw.Press
	Release = glfw.Release
	Repeat  = glfw.Repeat
)

// Camera constants
const (
	// Movement speeds
	DefaultMoveSpeed   = 2.5
	DefaultSensitivity = 0.1

	// Default orientation
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0

	// Field of view
	DefaultFOV = 45.0
	MinFOV     = 1.0
	MaxFOV     = 45.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0

	// Clip planes
	NearPlane = 0.1
	FarPlane  = 1000.0

	// Cursor baseline before the first mouse event arrives
	InitialCursorX = 400.0
	InitialCursorY = 300.0
)

// DefaultCameraPosition is slightly below the origin, looking into the field.
var DefaultCameraPosition = mgl32.Vec3{0, -0.5, 3}

// ClearColor is the background behind the skybox.
var ClearColor = mgl32.Vec4{0.215, 0.215, 0.215, 1}

// Shader uniform names shared by the three programs
const (
	UniformProjection = "u_projection"
	UniformView       = "u_view"
	UniformCameraPos  = "u_cameraPosition"
	UniformTime       = "u_time"

	SamplerGrass  = "u_grassTexture1"
	SamplerLand   = "u_landTexture"
	SamplerSkybox = "u_skybox"
)
