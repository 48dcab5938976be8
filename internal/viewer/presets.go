package viewer

import (
	"encoding/json"
	"fmt"
	"os"

	"doorlab/internal/door"
)

const (
	presetsFile = "doorlab_presets.json"
	maxPresets  = 9
)

type presetFile struct {
	Slots []door.Config `json:"slots"`
}

func loadPresets() presetFile {
	var p presetFile
	data, err := os.ReadFile(presetsFile)
	if err != nil {
		return p
	}
	if err := json.Unmarshal(data, &p); err != nil {
		fmt.Printf("Failed to parse presets: %v\n", err)
		return presetFile{}
	}
	return p
}

func writePresets(p presetFile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(presetsFile, data, 0644)
}

// savePreset stores the current door config in the next free slot.
func (v *Viewer) savePreset() {
	p := loadPresets()
	if len(p.Slots) >= maxPresets {
		v.toastf("All %d preset slots in use", maxPresets)
		return
	}
	p.Slots = append(p.Slots, v.doorCfg)
	if err := writePresets(p); err != nil {
		v.toastf("Failed to save preset: %v", err)
		return
	}
	v.toastf("Saved preset %d (%.1f x %.1f)", len(p.Slots), v.doorCfg.Width, v.doorCfg.Height)
}

// applyPreset applies the config in slot n (1-based).
func (v *Viewer) applyPreset(n int) {
	p := loadPresets()
	if n < 1 || n > len(p.Slots) {
		return
	}
	cfg := p.Slots[n-1]
	v.applyConfig(cfg)
	v.toastf("Preset %d: %.1f x %.1f", n, cfg.Width, cfg.Height)
}
