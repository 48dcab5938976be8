package viewer

import (
	"encoding/json"
	"fmt"
	"os"
)

// Prefs holds state persisted between sessions: window size, camera orbit
// and the last door config.
type Prefs struct {
	WindowWidth     int     `json:"windowWidth"`
	WindowHeight    int     `json:"windowHeight"`
	CameraAzimuth   float32 `json:"cameraAzimuth"`
	CameraElevation float32 `json:"cameraElevation"`
	CameraRadius    float32 `json:"cameraRadius"`
	DoorWidth       float32 `json:"doorWidth"`
	DoorHeight      float32 `json:"doorHeight"`
}

const prefsFile = ".doorlab_prefs.json"

// LoadPrefs loads preferences from disk, or nil if there are none.
func LoadPrefs() *Prefs {
	data, err := os.ReadFile(prefsFile)
	if err != nil {
		return nil
	}

	var prefs Prefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		fmt.Printf("Failed to parse prefs: %v\n", err)
		return nil
	}
	return &prefs
}

// savePrefs writes the current session state to disk, best effort.
func (v *Viewer) savePrefs() {
	if v.camera == nil {
		return
	}
	prefs := Prefs{
		WindowWidth:     v.viewW,
		WindowHeight:    v.viewH,
		CameraAzimuth:   v.camera.Azimuth,
		CameraElevation: v.camera.Elevation,
		CameraRadius:    v.camera.Radius,
		DoorWidth:       v.doorCfg.Width,
		DoorHeight:      v.doorCfg.Height,
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		fmt.Printf("Failed to marshal prefs: %v\n", err)
		return
	}
	if err := os.WriteFile(prefsFile, data, 0644); err != nil {
		fmt.Printf("Failed to save prefs: %v\n", err)
	}
}
