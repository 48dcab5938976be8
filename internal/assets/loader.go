package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/clone"
)

// FileLoader decodes texture images from a directory on disk.
type FileLoader struct {
	Dir string
}

func (l FileLoader) Load(path string) (*image.RGBA, error) {
	f, err := os.Open(filepath.Join(l.Dir, path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return clone.AsRGBA(img), nil
}

// FallbackLoader tries the wrapped loader first and falls back to a builtin
// procedural texture matched by file name, so the viewer runs from a bare
// checkout with no texture files at all.
type FallbackLoader struct {
	Files Loader
}

func (l FallbackLoader) Load(path string) (*image.RGBA, error) {
	img, err := l.Files.Load(path)
	if err == nil {
		return img, nil
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	switch {
	case strings.Contains(name, "wood"):
		return Wood(proceduralSize), nil
	case strings.Contains(name, "marble"):
		return Marble(proceduralSize), nil
	case strings.Contains(name, "wall"), strings.Contains(name, "plaster"):
		return Plaster(proceduralSize), nil
	}
	return nil, err
}
