package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"doorlab/internal/assets"
	"doorlab/internal/rgl"
	"doorlab/internal/viewer"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configPath := flag.String("config", "doorlab.yaml", "viewer config file")
	flag.Parse()

	cfg, err := viewer.LoadAppConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}

	loader := assets.FallbackLoader{
		Files: assets.FileLoader{Dir: cfg.AssetDir},
	}
	v := viewer.New(cfg, rgl.New(cfg.TargetFPS), loader)
	if err := v.Init(); err != nil {
		slog.Error("viewer init failed", "error", err)
		v.Dispose()
		os.Exit(1)
	}
	defer v.Dispose()

	v.Run()
}
