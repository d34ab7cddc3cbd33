package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/leterax/go-grass/internal/config"
	"github.com/leterax/go-grass/internal/logger"
	"github.com/leterax/go-grass/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	level, _ := logger.ParseLevel(cfg.LogLevel)
	logger.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	renderer, err := render.NewRenderer(cfg)
	if err != nil {
		logger.Logger().Error("failed to initialize renderer", "err", err)
		os.Exit(-1)
	}

	renderer.Run()
}
