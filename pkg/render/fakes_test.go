package render

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-grass/internal/openglhelper"
)

// recorder tracks the GL-like state the fakes mutate and logs every call.
type recorder struct {
	calls     []string
	current   *fakeProgram
	depthFunc openglhelper.DepthFunc

	// misplaced counts uniform writes to a program that is not in use
	misplaced int
}

func (r *recorder) log(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

type uniformWrite struct {
	name  string
	value any
}

type fakeProgram struct {
	name     string
	rec      *recorder
	uniforms []uniformWrite
	deleted  int
}

func (p *fakeProgram) Use() {
	p.rec.current = p
	p.rec.log("use %s", p.name)
}

func (p *fakeProgram) set(name string, v any) {
	if p.rec.current != p {
		p.rec.misplaced++
	}
	p.uniforms = append(p.uniforms, uniformWrite{name, v})
	p.rec.log("%s.%s", p.name, name)
}

func (p *fakeProgram) SetInt(name string, value int32) { p.set(name, value) }
func (p *fakeProgram) SetFloat(name string, value float32) { p.set(name, value) }
func (p *fakeProgram) SetVec3(name string, v mgl32.Vec3) { p.set(name, v) }
func (p *fakeProgram) SetMat4(name string, m mgl32.Mat4) { p.set(name, m) }
func (p *fakeProgram) Delete() { p.deleted++ }

func (p *fakeProgram) writes(name string) []any {
	var out []any
	for _, u := range p.uniforms {
		if u.name == name {
			out = append(out, u.value)
		}
	}
	return out
}

type drawRecord struct {
	depth   openglhelper.DepthFunc
	program string
}

type fakeMesh struct {
	name    string
	rec     *recorder
	draws   []drawRecord
	deleted int
}

func (m *fakeMesh) Draw() {
	program := ""
	if m.rec.current != nil {
		program = m.rec.current.name
	}
	m.draws = append(m.draws, drawRecord{depth: m.rec.depthFunc, program: program})
	m.rec.log("draw %s", m.name)
}

func (m *fakeMesh) Delete() { m.deleted++ }

type fakeTexture struct {
	name    string
	rec     *recorder
	units   []uint32
	deleted int
}

func (t *fakeTexture) Bind(unit uint32) {
	t.units = append(t.units, unit)
	t.rec.log("bind %s@%d", t.name, unit)
}

func (t *fakeTexture) Delete() { t.deleted++ }

type fakeDevice struct {
	rec    *recorder
	clears int
}

func (d *fakeDevice) Clear() {
	d.clears++
	d.rec.log("clear")
}

func (d *fakeDevice) SetDepthFunc(fn openglhelper.DepthFunc) {
	d.rec.depthFunc = fn
	d.rec.log("depth %d", fn)
}

// fakeScene bundles a scene of fakes with handles to inspect them.
type fakeScene struct {
	rec      *recorder
	scene    *Scene
	device   *fakeDevice
	programs map[string]*fakeProgram
	meshes   map[string]*fakeMesh
	textures map[string]*fakeTexture
}

func newFakeScene() *fakeScene {
	rec := &recorder{depthFunc: openglhelper.DepthLess}
	fs := &fakeScene{
		rec:      rec,
		device:   &fakeDevice{rec: rec},
		programs: map[string]*fakeProgram{},
		meshes:   map[string]*fakeMesh{},
		textures: map[string]*fakeTexture{},
	}
	pass := func(name, sampler string) *Pass {
		p := &fakeProgram{name: name, rec: rec}
		m := &fakeMesh{name: name, rec: rec}
		t := &fakeTexture{name: name, rec: rec}
		fs.programs[name], fs.meshes[name], fs.textures[name] = p, m, t
		return &Pass{Name: name, Program: p, Mesh: m, Texture: t, Sampler: sampler}
	}
	fs.scene = &Scene{
		Sky:   pass("skybox", SamplerSkybox),
		Land:  pass("land", SamplerLand),
		Grass: pass("grass", SamplerGrass),
	}
	return fs
}

func (fs *fakeScene) renderer() *frameRenderer {
	return &frameRenderer{scene: fs.scene, device: fs.device}
}

// fakeWindow implements WindowControl with a settable key set.
type fakeWindow struct {
	held        map[glfw.Key]bool
	shouldClose bool
	captured    bool
}

func newFakeWindow(keys ...glfw.Key) *fakeWindow {
	w := &fakeWindow{held: map[glfw.Key]bool{}}
	for _, k := range keys {
		w.held[k] = true
	}
	return w
}

func (w *fakeWindow) KeyPressed(key glfw.Key) bool { return w.held[key] }
func (w *fakeWindow) SetShouldClose(value bool) { w.shouldClose = value }
func (w *fakeWindow) SetMouseCaptured(captured bool) { w.captured = captured }
