//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"tidewalker/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel to the right of the world view.
type HUD struct {
	src      parameterProvider
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
}

// NewHUD constructs a HUD reading from src with the given panel width.
func NewHUD(src parameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{src: src, width: width}
}

// Width is the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot.
func (h *HUD) Update() {
	if h == nil || h.src == nil {
		return
	}
	h.snapshot = h.src.Parameters()
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawHealth()
	h.drawGroups()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawHealth() {
	frac := 0.0
	if p, ok := h.snapshot.Lookup("health_fraction"); ok {
		frac, _ = strconv.ParseFloat(p.Value, 64)
	}
	barW := float32(h.width - 2*panelPadding)
	vector.DrawFilledRect(h.panel, panelPadding, panelPadding, barW, 8, color.RGBA{R: 60, G: 20, B: 20, A: 255}, false)
	vector.DrawFilledRect(h.panel, panelPadding, panelPadding, barW*float32(frac), 8, color.RGBA{R: 200, G: 50, B: 50, A: 255}, false)
}

func (h *HUD) drawGroups() {
	face := basicfont.Face7x13
	y := panelPadding + 8 + headerBaseline
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += lineHeight
		for _, param := range group.Params {
			text.Draw(h.panel, param.Label, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
			bounds := text.BoundString(face, param.Value)
			text.Draw(h.panel, param.Value, face, h.width-panelPadding-bounds.Dx(), y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			y += lineHeight
		}
		y += groupGap
	}
}
