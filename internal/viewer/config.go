package viewer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AppConfig is the static application config, loaded once at startup from
// doorlab.yaml. Anything the file leaves out keeps its default.
type AppConfig struct {
	Title       string `yaml:"title"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	TargetFPS   int    `yaml:"targetFps"`
	AssetDir    string `yaml:"assetDir"`
	CaptureSize int    `yaml:"captureSize"`

	WoodTexture   string `yaml:"woodTexture"`
	MarbleTexture string `yaml:"marbleTexture"`
	WallTexture   string `yaml:"wallTexture"`

	WidthMin  float32 `yaml:"widthMin"`
	WidthMax  float32 `yaml:"widthMax"`
	HeightMin float32 `yaml:"heightMin"`
	HeightMax float32 `yaml:"heightMax"`
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		Title:         "doorlab",
		Width:         1280,
		Height:        720,
		TargetFPS:     60,
		AssetDir:      "assets/textures",
		CaptureSize:   256,
		WoodTexture:   "wood.png",
		MarbleTexture: "marble.png",
		WallTexture:   "wall.png",
		WidthMin:      1,
		WidthMax:      5,
		HeightMin:     2,
		HeightMax:     8,
	}
}

// LoadAppConfig reads the yaml config at path. A missing file is not an
// error; it just means all defaults.
func LoadAppConfig(path string) (AppConfig, error) {
	cfg := DefaultAppConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultAppConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
