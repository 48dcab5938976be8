package world

import (
	"doorlab/internal/engine"
	"doorlab/internal/render"
)

// EnvironmentUpdater refreshes the reflective probe's environment capture.
// The probe must not see itself, so the step is strictly hide, capture,
// show. It costs a full extra scene pass, so it runs at most once per frame.
type EnvironmentUpdater struct {
	Probe   *engine.Node
	Capture render.EnvCapture
}

func NewEnvironmentUpdater(probe *engine.Node, capture render.EnvCapture) *EnvironmentUpdater {
	return &EnvironmentUpdater{Probe: probe, Capture: capture}
}

// Step performs the per-frame refresh. The probe is visible again before
// Step returns, whatever the capture does.
func (u *EnvironmentUpdater) Step(scene *engine.Scene) {
	if u.Probe == nil || u.Capture == nil {
		return
	}
	u.Probe.Visible = false
	u.Capture.SetPosition(u.Probe.WorldPosition())
	u.Capture.Refresh(scene)
	u.Probe.Visible = true
}
