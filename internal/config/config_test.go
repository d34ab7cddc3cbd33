package config

import (
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leterax/go-grass/pkg/scene"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestDefaultMatchesShippedSettings(t *testing.T) {
	c := Default()
	if c.Width != 1920 || c.Height != 1080 {
		t.Errorf("size = %dx%d, want 1920x1080", c.Width, c.Height)
	}
	if c.Pacing != PacingLegacy {
		t.Errorf("pacing = %q, want legacy", c.Pacing)
	}
	if c.LiveFOV {
		t.Error("LiveFOV should default to false")
	}
	if c.GridStrategy() != scene.GridAccumulate {
		t.Errorf("grid = %v, want accumulate", c.GridStrategy())
	}
}

func TestRegisterFlags(t *testing.T) {
	c := Default()
	fs := flag.NewFlagSet("grass", flag.ContinueOnError)
	c.RegisterFlags(fs)

	args := []string{
		"-width", "800", "-height", "600",
		"-assets", "/tmp/a", "-vsync",
		"-grid", "indexed", "-pacing", "budget", "-fps", "144",
		"-live-fov", "-log-level", "debug",
	}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if c.Width != 800 || c.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", c.Width, c.Height)
	}
	if c.AssetDir != "/tmp/a" || !c.VSync || !c.LiveFOV {
		t.Errorf("unexpected config %+v", c)
	}
	if c.GridStrategy() != scene.GridIndexed {
		t.Errorf("grid = %v, want indexed", c.GridStrategy())
	}
	if c.Pacing != PacingBudget || c.TargetFPS != 144 {
		t.Errorf("pacing = %q @ %d, want budget @ 144", c.Pacing, c.TargetFPS)
	}
	if c.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug", c.LogLevel)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "window size"},
		{"negative samples", func(c *Config) { c.Samples = -1 }, "samples"},
		{"bad grid", func(c *Config) { c.Grid = "hex" }, "grid strategy"},
		{"bad pacing", func(c *Config) { c.Pacing = "vsync" }, "unknown pacing"},
		{"budget without fps", func(c *Config) { c.Pacing = PacingBudget; c.TargetFPS = 0 }, "target fps"},
		{"bad log level", func(c *Config) { c.LogLevel = "chatty" }, "log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	c := Default()
	c.Width = -1
	c.Grid = "hex"
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "window size") || !strings.Contains(msg, "grid strategy") {
		t.Errorf("error %q should mention both problems", msg)
	}
}

func TestAssets(t *testing.T) {
	c := Default()
	c.AssetDir = "res"
	a := c.Assets()

	if a.GrassGeometry != filepath.Join("res", "shaders", "grass.gs") {
		t.Errorf("grass geometry = %q", a.GrassGeometry)
	}
	if a.LandTexture != filepath.Join("res", "textures", "land.png") {
		t.Errorf("land texture = %q", a.LandTexture)
	}

	faces := []string{"right", "left", "up", "down", "front", "back"}
	for i, face := range faces {
		want := filepath.Join("res", "textures", "skybox", "grass_"+face+".png")
		if a.SkyboxFaces[i] != want {
			t.Errorf("face %d = %q, want %q", i, a.SkyboxFaces[i], want)
		}
	}
}
