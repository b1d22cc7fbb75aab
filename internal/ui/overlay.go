//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"tidewalker/internal/player"
)

// Overlay draws the pause menu and the inventory screen over the world view.
type Overlay struct {
	Status string
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay { return &Overlay{} }

// Draw renders the screen matching the player's pause mode. Nothing is drawn
// while the game is running.
func (o *Overlay) Draw(screen *ebiten.Image, menu *player.Menu, p *player.State, w, h int) {
	if !p.Paused {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{A: 160}, false)
	switch p.PauseMode {
	case player.InventoryMode:
		o.drawInventory(screen, &p.Inventory, w, h)
	default:
		o.drawMenu(screen, menu, w, h)
	}
	if o.Status != "" {
		drawCentred(screen, o.Status, image.Rect(0, h-2*buttonHeight, w, h), color.RGBA{R: 220, G: 200, B: 120, A: 255})
	}
}

func (o *Overlay) drawMenu(screen *ebiten.Image, menu *player.Menu, w, h int) {
	buttons := menu.Buttons()
	rects := MenuButtons(w, h, len(buttons))
	for i, b := range buttons {
		bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
		if i == menu.Index() {
			bg = color.RGBA{R: 90, G: 110, B: 150, A: 255}
		}
		fillRect(screen, rects[i], bg)
		drawCentred(screen, b.Label, rects[i], color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
}

func (o *Overlay) drawInventory(screen *ebiten.Image, inv *player.Inventory, w, h int) {
	face := basicfont.Face7x13
	rects := InventorySlots(w, h, inv.Slots)
	for i, r := range rects {
		fillRect(screen, r, color.RGBA{R: 40, G: 42, B: 50, A: 255})
		if i >= len(inv.Stacks) {
			continue
		}
		st := inv.Stacks[i]
		drawCentred(screen, st.Item.String(), r, color.RGBA{R: 230, G: 230, B: 240, A: 255})
		if st.Count > 1 {
			n := strconv.Itoa(st.Count)
			b := text.BoundString(face, n)
			text.Draw(screen, n, face, r.Max.X-b.Dx()-3, r.Max.Y-3, color.RGBA{R: 250, G: 220, B: 120, A: 255})
		}
	}
	if len(rects) > 0 {
		title := image.Rect(rects[0].Min.X, rects[0].Min.Y-2*lineHeight, rects[len(rects)-1].Max.X, rects[0].Min.Y)
		drawCentred(screen, "Inventory", title, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	}
}

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func drawCentred(dst *ebiten.Image, label string, r image.Rectangle, c color.Color) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-bounds.Dx())/2
	y := r.Min.Y + (r.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, label, face, x, y, c)
}
