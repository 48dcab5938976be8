// texgen bakes the builtin procedural textures to PNG files, so the viewer
// can run against real files instead of the in-memory fallbacks.
package main

import (
	"flag"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"doorlab/internal/assets"
)

func main() {
	size := flag.Int("size", 512, "texture size in pixels")
	out := flag.String("out", "assets/textures", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*out, 0755); err != nil {
		slog.Error("create output dir", "dir", *out, "error", err)
		os.Exit(1)
	}

	bake := map[string]*image.RGBA{
		"wood.png":   assets.Wood(*size),
		"marble.png": assets.Marble(*size),
		"wall.png":   assets.Plaster(*size),
	}
	for name, img := range bake {
		path := filepath.Join(*out, name)
		if err := writePNG(path, img); err != nil {
			slog.Error("write texture", "path", path, "error", err)
			os.Exit(1)
		}
		slog.Info("baked", "path", path, "size", *size)
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
