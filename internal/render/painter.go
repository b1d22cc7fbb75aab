//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tidewalker/internal/player"
)

// TilePixels is the edge of one tile at scale 1.
const TilePixels = 8

// Painter draws the view around the player onto an ebiten image.
type Painter struct {
	cam    player.Camera
	tilePx int
	pal    *Palette

	ground *ebiten.Image
	buf    []byte
}

// NewPainter allocates a painter for a camera at the given pixel scale.
func NewPainter(cam player.Camera, scale int, pal *Palette) *Painter {
	if scale <= 0 {
		scale = 1
	}
	if pal == nil {
		pal = DefaultPalette
	}
	v := View{Cam: cam}
	p := &Painter{
		cam:    cam,
		tilePx: TilePixels * scale,
		pal:    pal,
		buf:    make([]byte, 4*v.Cols()*v.Rows()),
	}
	p.ground = ebiten.NewImage(v.Cols(), v.Rows())
	return p
}

// Size returns the viewport size in pixels.
func (p *Painter) Size() (int, int) {
	return p.cam.Width * p.tilePx, p.cam.Height * p.tilePx
}

// TilePx is the on-screen edge of one tile.
func (p *Painter) TilePx() int { return p.tilePx }

// Draw paints the ground, then the footprints and the player ordered by base.
func (p *Painter) Draw(dst *ebiten.Image, world player.Terrain, s *player.State) {
	v := NewView(s.X, s.Y, p.cam)
	FillGround(p.buf, world, v, p.pal, s.Ticks, s.Light)
	p.ground.WritePixels(p.buf)

	px := float64(p.tilePx)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(px, px)
	op.GeoM.Translate(-float64(v.ShiftX)*px, -float64(v.ShiftY)*px)
	dst.DrawImage(p.ground, op)

	for _, sp := range v.Sprites(world) {
		if sp.Player {
			p.fill(dst, sp, Tint(p.pal.Player, s.Light))
			continue
		}
		p.fill(dst, sp, p.pal.Color(sp.Kind, s.Ticks, s.Light))
	}
}

func (p *Painter) fill(dst *ebiten.Image, sp Sprite, clr color.Color) {
	px := float32(p.tilePx)
	vector.DrawFilledRect(dst, sp.X*px, sp.Y*px, sp.W*px, sp.H*px, clr, false)
}
