// Package config holds the runtime settings for the grass renderer and the
// fixed table of asset paths it loads at startup.
package config

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/leterax/go-grass/internal/logger"
	"github.com/leterax/go-grass/pkg/scene"
)

// Pacing selects how the render loop waits between frames.
type Pacing string

const (
	// PacingLegacy sleeps a fixed 50ms after every frame.
	PacingLegacy Pacing = "legacy"
	// PacingBudget sleeps only what is left of the 1/FPS frame budget.
	PacingBudget Pacing = "budget"
	// PacingOff never sleeps.
	PacingOff Pacing = "off"
)

// Config is everything the renderer can be told from the command line.
type Config struct {
	Width    int
	Height   int
	Title    string
	AssetDir string
	VSync    bool
	Samples  int

	Grid      string // accumulate or indexed
	Pacing    Pacing
	TargetFPS int

	// LiveFOV recomputes the projection every frame from the scroll-driven
	// field of view. Off by default: projection is fixed at startup.
	LiveFOV bool

	LogLevel string
}

// Default returns the settings the renderer ships with.
func Default() Config {
	return Config{
		Width:     1920,
		Height:    1080,
		Title:     "Grass Simulation!",
		AssetDir:  "assets",
		Samples:   4,
		Grid:      scene.GridAccumulate.String(),
		Pacing:    PacingLegacy,
		TargetFPS: 60,
		LogLevel:  "info",
	}
}

// RegisterFlags binds every field to a flag on fs, using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "Window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "Window height in pixels")
	fs.StringVar(&c.AssetDir, "assets", c.AssetDir, "Directory holding shaders/ and textures/")
	fs.BoolVar(&c.VSync, "vsync", c.VSync, "Enable vertical sync")
	fs.IntVar(&c.Samples, "samples", c.Samples, "MSAA samples per pixel")
	fs.StringVar(&c.Grid, "grid", c.Grid, "Grass grid layout: accumulate or indexed")
	fs.Func("pacing", "Frame pacing: legacy, budget or off (default "+string(c.Pacing)+")", func(s string) error {
		c.Pacing = Pacing(s)
		return nil
	})
	fs.IntVar(&c.TargetFPS, "fps", c.TargetFPS, "Target frame rate for budget pacing")
	fs.BoolVar(&c.LiveFOV, "live-fov", c.LiveFOV, "Apply scroll zoom to the projection every frame")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn or error")
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Samples < 0 {
		errs = append(errs, fmt.Errorf("samples %d must not be negative", c.Samples))
	}
	if _, err := scene.ParseGridStrategy(c.Grid); err != nil {
		errs = append(errs, err)
	}
	switch c.Pacing {
	case PacingLegacy, PacingOff:
	case PacingBudget:
		if c.TargetFPS <= 0 {
			errs = append(errs, fmt.Errorf("target fps %d must be positive for budget pacing", c.TargetFPS))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown pacing %q", c.Pacing))
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	return errors.Join(errs...)
}

// GridStrategy returns the parsed grid strategy. Call Validate first.
func (c Config) GridStrategy() scene.GridStrategy {
	s, err := scene.ParseGridStrategy(c.Grid)
	if err != nil {
		return scene.GridAccumulate
	}
	return s
}

// Assets lists every file the renderer loads.
type Assets struct {
	GrassVertex, GrassGeometry, GrassFragment string
	LandVertex, LandFragment                  string
	SkyboxVertex, SkyboxFragment              string

	GrassTexture string
	LandTexture  string
	SkyboxFaces  [6]string // +X, -X, +Y, -Y, +Z, -Z
}

// Assets resolves the fixed asset layout under AssetDir.
func (c Config) Assets() Assets {
	shader := func(name string) string { return filepath.Join(c.AssetDir, "shaders", name) }
	texture := func(name string) string { return filepath.Join(c.AssetDir, "textures", name) }
	sky := func(face string) string { return texture(filepath.Join("skybox", "grass_"+face+".png")) }

	return Assets{
		GrassVertex:    shader("grass.vs"),
		GrassGeometry:  shader("grass.gs"),
		GrassFragment:  shader("grass.fs"),
		LandVertex:     shader("land.vs"),
		LandFragment:   shader("land.fs"),
		SkyboxVertex:   shader("skybox.vs"),
		SkyboxFragment: shader("skybox.fs"),
		GrassTexture:   texture("grass.png"),
		LandTexture:    texture("land.png"),
		SkyboxFaces: [6]string{
			sky("right"), sky("left"), sky("up"), sky("down"), sky("front"), sky("back"),
		},
	}
}
