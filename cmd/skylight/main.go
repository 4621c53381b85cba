package main

import (
	"log/slog"
	"os"

	"github.com/tversted/skylight/app"
	"github.com/tversted/skylight/backend"
	"github.com/tversted/skylight/window"
)

const (
	title  = "skylight"
	width  = 1280
	height = 720
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	lc, err := app.New(app.Config{
		Title:  title,
		Width:  width,
		Height: height,
		Mode:   window.ModeWindowed,
		Debug:  backend.DebugText | backend.DebugStats,
	})
	if err != nil {
		return err
	}

	if err := lc.Init(); err != nil {
		return err
	}

	if err := lc.Run(); err != nil {
		return err
	}

	return lc.Shutdown()
}
