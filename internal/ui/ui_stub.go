//go:build !ebiten

package ui

import (
	"tidewalker/internal/core"
	"tidewalker/internal/player"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(interface{ Parameters() core.ParameterSnapshot }, int) *HUD { return nil }

// Width is zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct {
	Status string
}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, *player.Menu, *player.State, int, int) {}
