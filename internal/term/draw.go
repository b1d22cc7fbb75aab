package term

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"tidewalker/internal/player"
	"tidewalker/internal/render"
	"tidewalker/internal/session"
	"tidewalker/internal/tiles"
)

var glyphs = map[tiles.Kind]rune{
	tiles.DeepOcean: '≈',
	tiles.Ocean:     '~',
	tiles.Sand:      '.',
	tiles.Grass:     ',',
	tiles.Tree:      '♣',
	tiles.Kelp:      '%',
	tiles.Lilypad:   'o',
	tiles.Cactus:    '¥',
}

const (
	playerGlyph = '@'
	hudGap      = 2
)

var (
	textStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	dimStyle      = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	selectedStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Glyph returns the character drawn for a tile kind.
func Glyph(k tiles.Kind) rune {
	if g, ok := glyphs[k]; ok {
		return g
	}
	return '?'
}

// terminalView snaps the view to whole cells: terminals cannot scroll by a
// fraction of a character. The snap keeps the feet cell under the player.
func terminalView(p *player.State, cam player.Camera) render.View {
	fx, fy := cam.FeetCell(p.X, p.Y)
	return render.NewView(float32(fx-cam.Width/2), float32(fy-cam.Height/2-2), cam)
}

func drawWorld(scr tcell.Screen, s *session.Session, pal *render.Palette) {
	p := s.Player()
	cam := s.Camera()
	v := terminalView(p, cam)
	grid := s.Grid()

	for y := 0; y < cam.Height; y++ {
		for x := 0; x < cam.Width; x++ {
			k, ok := grid.At(v.OriginX+x, v.OriginY+y)
			if !ok {
				scr.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(rgb(render.Tint(pal.Void, p.Light))))
				continue
			}
			g := render.Ground(k)
			bg := pal.Color(g, p.Ticks, p.Light)
			fg := render.Shade(bg, 1.4)
			scr.SetContent(x, y, Glyph(g), nil, tcell.StyleDefault.Background(rgb(bg)).Foreground(rgb(fg)))
		}
	}

	for _, sp := range v.Sprites(grid) {
		if sp.Player {
			feetY := int(sp.Base() - 1)
			_, _, under, _ := scr.GetContent(int(sp.X), feetY)
			_, bg, _ := under.Decompose()
			scr.SetContent(int(sp.X), feetY, playerGlyph, nil, tcell.StyleDefault.Background(bg).Foreground(rgb(pal.Player)).Bold(true))
			continue
		}
		bg := pal.Color(sp.Kind, p.Ticks, p.Light)
		style := tcell.StyleDefault.Background(rgb(bg)).Foreground(rgb(render.Shade(bg, 1.6)))
		for y := int(sp.Y); y < int(sp.Y+sp.H); y++ {
			for x := int(sp.X); x < int(sp.X+sp.W); x++ {
				if x >= 0 && y >= 0 && x < cam.Width && y < cam.Height {
					scr.SetContent(x, y, Glyph(sp.Kind), nil, style)
				}
			}
		}
	}
}

func drawText(scr tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		scr.SetContent(x, y, r, nil, style)
		x++
	}
}

func drawHUD(scr tcell.Screen, s *session.Session) {
	x := s.Camera().Width + hudGap
	y := 0
	for _, group := range s.Parameters().Groups {
		drawText(scr, x, y, group.Name, textStyle.Bold(true))
		y++
		for _, param := range group.Params {
			drawText(scr, x, y, fmt.Sprintf("%-12s %s", param.Label, param.Value), dimStyle)
			y++
		}
		y++
	}
}

// menuTop is the first row of the pause menu for a camera of height h.
func menuTop(h, n int) int {
	return max((h-n)/2, 0)
}

func drawPause(scr tcell.Screen, s *session.Session, status string) {
	p := s.Player()
	cam := s.Camera()
	if !p.Paused {
		return
	}
	switch p.PauseMode {
	case player.InventoryMode:
		inv := &p.Inventory
		top := menuTop(cam.Height, inv.Slots+1)
		drawText(scr, 1, top, "Inventory", textStyle.Bold(true))
		for i := 0; i < inv.Slots; i++ {
			line := fmt.Sprintf("%2d  -", i+1)
			if i < len(inv.Stacks) {
				st := inv.Stacks[i]
				line = fmt.Sprintf("%2d  %s x%d", i+1, st.Item, st.Count)
			}
			drawText(scr, 1, top+1+i, line, textStyle)
		}
	default:
		menu := s.Menu()
		buttons := menu.Buttons()
		top := menuTop(cam.Height, len(buttons))
		for i, b := range buttons {
			style := textStyle
			if i == menu.Index() {
				style = selectedStyle
			}
			drawText(scr, 1, top+i, fmt.Sprintf(" %-8s ", b.Label), style)
		}
	}
	if status != "" {
		drawText(scr, 0, cam.Height, status, textStyle)
	}
}
