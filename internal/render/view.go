package render

import (
	"math"
	"sort"

	"tidewalker/internal/player"
	"tidewalker/internal/tiles"
)

// View is the window of world cells visible around the player. Screen
// coordinates are in tiles, with (0, 0) at the top-left of the viewport.
type View struct {
	// OriginX and OriginY are the world cell drawn at screen tile (0, 0)
	// before scrolling.
	OriginX, OriginY int
	// ShiftX and ShiftY are the sub-tile scroll in [0, 1).
	ShiftX, ShiftY float32
	Cam            player.Camera
}

// NewView centres the camera on a player position.
func NewView(x, y float32, cam player.Camera) View {
	fx := math.Floor(float64(x))
	fy := math.Floor(float64(y))
	return View{
		OriginX: int(fx),
		OriginY: int(fy),
		ShiftX:  x - float32(fx),
		ShiftY:  y - float32(fy),
		Cam:     cam,
	}
}

// Cols is the number of cell columns touched by the viewport.
func (v View) Cols() int { return v.Cam.Width + 1 }

// Rows is the number of cell rows touched by the viewport.
func (v View) Rows() int { return v.Cam.Height + 1 }

// Screen returns the top-left screen position of world cell (cx, cy).
func (v View) Screen(cx, cy int) (float32, float32) {
	return float32(cx-v.OriginX) - v.ShiftX, float32(cy-v.OriginY) - v.ShiftY
}

// Sprite is a flat rectangle in screen tile units. Kind is meaningless
// when Player is set.
type Sprite struct {
	Kind       tiles.Kind
	Player     bool
	X, Y, W, H float32
}

// Base is the screen row at the bottom edge of the sprite.
func (s Sprite) Base() float32 { return s.Y + s.H }

// PlayerSprite is where the avatar is drawn: a column one tile wide whose
// bottom row is the feet cell.
func (v View) PlayerSprite() Sprite {
	return Sprite{
		Player: true,
		X:      float32(v.Cam.Width / 2),
		Y:      float32(v.Cam.Height / 2),
		W:      1,
		H:      3,
	}
}

// Tall reports whether a kind's footprint spans more than one cell.
func Tall(k tiles.Kind) bool {
	p := tiles.Props(k)
	return p.Width > 1 || p.Height > 1
}

// Ground is the 1x1 tile drawn under a kind. Tall kinds stand on grass.
func Ground(k tiles.Kind) tiles.Kind {
	if Tall(k) {
		return tiles.Grass
	}
	return k
}

// Footprints returns the tall sprites overlapping the viewport, ordered top
// to bottom so lower sprites are drawn over higher ones.
func (v View) Footprints(t player.Terrain) []Sprite {
	// A footprint can reach into the view from cells outside it.
	const margin = 4
	var out []Sprite
	for cy := v.OriginY - margin; cy < v.OriginY+v.Rows()+margin; cy++ {
		for cx := v.OriginX - margin; cx < v.OriginX+v.Cols()+margin; cx++ {
			k, ok := t.At(cx, cy)
			if !ok || !Tall(k) {
				continue
			}
			p := tiles.Props(k)
			sx, sy := v.Screen(cx+p.OffsetX, cy+p.OffsetY)
			s := Sprite{Kind: k, X: sx, Y: sy, W: float32(p.Width), H: float32(p.Height)}
			if v.overlaps(s) {
				out = append(out, s)
			}
		}
	}
	sortByBase(out)
	return out
}

// Sprites returns the footprints and the player sprite in draw order. The
// player is drawn after footprints sharing its base row and before those
// standing lower on screen.
func (v View) Sprites(t player.Terrain) []Sprite {
	out := append(v.Footprints(t), v.PlayerSprite())
	sortByBase(out)
	return out
}

func sortByBase(s []Sprite) {
	sort.SliceStable(s, func(i, j int) bool { return s[i].Base() < s[j].Base() })
}

func (v View) overlaps(s Sprite) bool {
	return s.X < float32(v.Cam.Width) && s.X+s.W > 0 &&
		s.Y < float32(v.Cam.Height) && s.Y+s.H > 0
}

// FillGround writes one RGBA pixel per visible cell into buf, row-major over
// Cols() x Rows(). Cells off the grid take the palette's void colour.
func FillGround(buf []byte, t player.Terrain, v View, pal *Palette, tick uint64, light [3]float32) {
	cols, rows := v.Cols(), v.Rows()
	if len(buf) < 4*cols*rows {
		return
	}
	void := Tint(pal.Void, light)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			col := void
			if k, ok := t.At(v.OriginX+x, v.OriginY+y); ok {
				col = pal.Color(Ground(k), tick, light)
			}
			base := (y*cols + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
