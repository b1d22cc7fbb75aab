//go:build ebiten

package app

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tidewalker/internal/player"
	"tidewalker/internal/render"
	"tidewalker/internal/session"
	"tidewalker/internal/ui"
)

const hudWidth = 200

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	ctx     context.Context
	ctl     *Controller
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay
}

// New constructs a Game for the provided session.
func New(ctx context.Context, s *session.Session, scale int) *Game {
	return &Game{
		ctx:     ctx,
		ctl:     NewController(s),
		painter: render.NewPainter(s.Camera(), scale, render.DefaultPalette),
		hud:     ui.NewHUD(s, hudWidth),
		overlay: ui.NewOverlay(),
	}
}

var heldKeys = []struct {
	keys []ebiten.Key
	dir  player.Keys
}{
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, player.Up},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, player.Down},
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, player.Left},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, player.Right},
}

func (g *Game) input() Input {
	var in Input
	for _, h := range heldKeys {
		for _, k := range h.keys {
			if ebiten.IsKeyPressed(k) {
				in.Held.Press(h.dir)
			}
		}
	}
	in.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.Inventory = inpututil.IsKeyJustPressed(ebiten.KeyI)
	in.MenuUp = inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW)
	in.MenuDown = inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS)
	in.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w, h := g.painter.Size()
		mx, my := ebiten.CursorPosition()
		n := len(g.ctl.Session().Menu().Buttons())
		if i := ui.HitTest(ui.MenuButtons(w, h, n), mx, my); i >= 0 {
			in.Clicked, in.Click = true, i
		}
	}
	return in
}

// Update handles per-frame logic and advances the session.
func (g *Game) Update() error {
	if g.ctl.Step(g.ctx, g.input()) {
		return ebiten.Termination
	}
	g.overlay.Status = g.ctl.Status()
	g.hud.Update()
	return nil
}

// Draw renders the world, the HUD and any pause screen.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.ctl.Session()
	w, h := g.painter.Size()
	g.painter.Draw(screen, s.Grid(), s.Player())
	g.overlay.Draw(screen, s.Menu(), s.Player(), w, h)
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w + g.hud.Width(), h
}
