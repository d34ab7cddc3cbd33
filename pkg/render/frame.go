package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-grass/internal/openglhelper"
)

// Program is a linked shader program that takes uniforms by name
type Program interface {
	Use()
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVec3(name string, vec mgl32.Vec3)
	SetMat4(name string, mat mgl32.Mat4)
	Delete()
}

// Drawable is static geometry that knows its own primitive and count
type Drawable interface {
	Draw()
	Delete()
}

// Texture is a GPU image that can be bound to a texture unit
type Texture interface {
	Bind(unit uint32)
	Delete()
}

// Device is the global pipeline state the frame touches
type Device interface {
	Clear()
	SetDepthFunc(fn openglhelper.DepthFunc)
}

// Pass is one draw: a program, its geometry and the texture it samples
type Pass struct {
	Name    string
	Program Program
	Mesh    Drawable
	Texture Texture
	Sampler string
	Unit    uint32
}

// Scene holds the three passes, drawn sky first
type Scene struct {
	Sky   *Pass
	Land  *Pass
	Grass *Pass
}

// Bind assigns texture units in grass, land, sky order, points each sampler
// at its unit and uploads the startup projection and view. Units are fixed
// from here on.
func (s *Scene) Bind(units *TextureUnits, projection, view mgl32.Mat4) {
	for _, p := range []*Pass{s.Grass, s.Land, s.Sky} {
		p.Unit = units.Next()
		p.Program.Use()
		p.Program.SetMat4(UniformProjection, projection)
		p.Program.SetMat4(UniformView, view)
		p.Program.SetInt(p.Sampler, int32(p.Unit))
		p.Texture.Bind(p.Unit)
	}
}

// Delete releases every pass's geometry, program and texture
func (s *Scene) Delete() {
	for _, p := range []*Pass{s.Grass, s.Land, s.Sky} {
		if p == nil {
			continue
		}
		p.Mesh.Delete()
		p.Program.Delete()
		p.Texture.Delete()
	}
}

// Frame is the per-frame input to the draw calls
type Frame struct {
	View           mgl32.Mat4
	Projection     mgl32.Mat4
	CameraPosition mgl32.Vec3
	Time           float32

	// PushProjection re-uploads Projection to land and grass. The sky always
	// receives it.
	PushProjection bool
}

// frameRenderer issues the draw calls for one frame
type frameRenderer struct {
	scene  *Scene
	device Device
}

// Draw clears the targets and draws sky, land and grass in that order
func (fr *frameRenderer) Draw(f Frame) {
	fr.device.Clear()
	fr.drawSky(f)
	fr.drawLand(f)
	fr.drawGrass(f)
}

// drawSky renders the cube at the far plane. LEQUAL lets depth 1.0 pass
// against the cleared buffer; LESS is restored before anything else draws.
func (fr *frameRenderer) drawSky(f Frame) {
	sky := fr.scene.Sky

	fr.device.SetDepthFunc(openglhelper.DepthLessEqual)
	sky.Program.Use()
	sky.Program.SetMat4(UniformProjection, f.Projection)
	sky.Program.SetMat4(UniformView, f.View)
	sky.Texture.Bind(sky.Unit)
	sky.Mesh.Draw()
	fr.device.SetDepthFunc(openglhelper.DepthLess)
}

func (fr *frameRenderer) drawLand(f Frame) {
	land := fr.scene.Land

	land.Program.Use()
	if f.PushProjection {
		land.Program.SetMat4(UniformProjection, f.Projection)
	}
	land.Program.SetMat4(UniformView, f.View)
	land.Program.SetVec3(UniformCameraPos, f.CameraPosition)
	land.Mesh.Draw()
}

func (fr *frameRenderer) drawGrass(f Frame) {
	grass := fr.scene.Grass

	grass.Program.Use()
	grass.Program.SetFloat(UniformTime, f.Time)
	if f.PushProjection {
		grass.Program.SetMat4(UniformProjection, f.Projection)
	}
	grass.Program.SetMat4(UniformView, f.View)
	grass.Program.SetVec3(UniformCameraPos, f.CameraPosition)
	grass.Mesh.Draw()
}
