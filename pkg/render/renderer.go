package render

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-grass/internal/config"
	"github.com/leterax/go-grass/internal/logger"
	"github.com/leterax/go-grass/internal/openglhelper"
)

// Renderer owns the window, the scene and the render loop
type Renderer struct {
	cfg        config.Config
	window     *openglhelper.Window
	state      *State
	controller *Controller
	scene      *Scene
	frame      *frameRenderer
	units      TextureUnits

	// projection is computed once at startup; see config.Config.LiveFOV
	projection mgl32.Mat4

	pacer  Pacer
	stats  FrameStats
	closed bool
}

// NewRenderer opens the window, builds the scene and binds its textures
func NewRenderer(cfg config.Config) (*Renderer, error) {
	window, err := openglhelper.NewWindow(openglhelper.WindowConfig{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Title:      cfg.Title,
		Samples:    cfg.Samples,
		VSync:      cfg.VSync,
		ClearColor: ClearColor,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	camera := NewCamera(DefaultCameraPosition, cfg.Width, cfg.Height)
	state := NewState(camera)
	controller := NewController(state, window)

	window.SetInputSink(controller)
	controller.SetMouseCaptured(true)

	sc, err := loadScene(cfg.Assets(), cfg.GridStrategy())
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}

	r := &Renderer{
		cfg:        cfg,
		window:     window,
		state:      state,
		controller: controller,
		scene:      sc,
		frame:      &frameRenderer{scene: sc, device: windowDevice{window: window}},
		projection: camera.ProjectionMatrix(),
		pacer:      NewPacer(cfg.Pacing, cfg.TargetFPS),
	}
	sc.Bind(&r.units, r.projection, camera.ViewMatrix())

	logger.Logger().Info("renderer ready",
		"texture_units", r.units.Used(),
		"pacing", string(cfg.Pacing),
		"live_fov", cfg.LiveFOV)

	return r, nil
}

// Run starts the main rendering loop and tears down when it ends
func (r *Renderer) Run() {
	defer r.Cleanup()

	for !r.window.ShouldClose() && !r.state.CloseRequested {
		frameStart := time.Now()
		r.state.Tick(r.window.Time())

		// Process input
		r.controller.ProcessKeyboard()
		if r.state.CloseRequested {
			break
		}

		r.frame.Draw(r.currentFrame())

		// Swap buffers and poll events
		r.window.SwapBuffers()
		r.window.PollEvents()

		if fps, ok := r.stats.Frame(time.Now()); ok {
			logger.Logger().Debug("frame rate", "fps", fps, "dt", r.state.DeltaTime)
		}
		r.pacer.Wait(frameStart)
	}
}

// currentFrame collects the per-frame uniforms from the camera
func (r *Renderer) currentFrame() Frame {
	camera := r.state.Camera
	f := Frame{
		View:           camera.ViewMatrix(),
		Projection:     r.projection,
		CameraPosition: camera.Position(),
		Time:           float32(r.window.Time()),
	}
	if r.cfg.LiveFOV {
		f.Projection = camera.ProjectionMatrix()
		f.PushProjection = true
	}
	return f
}

// Cleanup frees all GPU resources and terminates GLFW. Safe to call twice.
func (r *Renderer) Cleanup() {
	if r.closed {
		return
	}
	r.closed = true

	r.scene.Delete()
	r.window.Close()
	logger.Logger().Info("renderer closed")
}
