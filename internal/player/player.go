// Package player integrates the avatar's movement against the world grid
// once per simulation tick and derives the values the renderer consumes.
package player

import (
	"math"

	"tidewalker/internal/tiles"
)

// Movement constants, per tick.
const (
	Accel     = 0.02
	LandDrag  = 1.2
	WaterDrag = 1.8
	TimeStep  = 0.01

	// feetRowBias moves the collision lookup from the sprite's top-left
	// anchor down to its feet.
	feetRowBias = 2
)

// Default stats for a new character.
const (
	DefaultMaxHealth = 10
	DefaultSlots     = 10
)

// Terrain is the read-only view of the world grid used by movement.
// worldgen.Grid satisfies it.
type Terrain interface {
	At(x, y int) (tiles.Kind, bool)
}

// Camera is the visible window in tiles. The player is drawn at its centre.
type Camera struct {
	Width  int
	Height int
}

// DefaultCamera is the viewport used when none is configured.
var DefaultCamera = Camera{Width: 16, Height: 12}

// FeetCell returns the grid cell under the player's feet for a position.
// Negative coordinates are clamped to zero before the lookup so the result
// never depends on float-to-int truncation of negative values. The +0.5 is
// rounded in float32, matching the precision of the stored position.
func (c Camera) FeetCell(x, y float32) (int, int) {
	fx := math.Floor(float64(float32(max(x, 0) + 0.5)))
	fy := math.Floor(float64(max(y, 0)))
	return int(fx) + c.Width/2, int(fy) + c.Height/2 + feetRowBias
}

// TileSize is the size of one tile in normalised device coordinates, where
// the viewport spans [-1, 1] on both axes.
func (c Camera) TileSize() (float32, float32) {
	w, h := c.Width, c.Height
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return 2 / float32(w), 2 / float32(h)
}

// PauseMode selects which screen a paused game shows.
type PauseMode uint8

const (
	MenuMode PauseMode = iota
	InventoryMode
)

func (m PauseMode) String() string {
	if m == InventoryMode {
		return "inventory"
	}
	return "menu"
}

// State is the per-session player record.
type State struct {
	X, Y           float32
	XSpeed, YSpeed float32
	Swimming       bool

	Health    Health
	Inventory Inventory

	Paused    bool
	PauseMode PauseMode

	// Time accumulates TimeStep per active tick and drives the light cycle.
	Time      float64
	DayLength float64

	Seed      uint32
	WorldName string

	// Derived each tick.
	Offset [2]float32
	Light  [3]float32
	Ticks  uint64
}

// New returns a player with default stats for the given world.
func New(seed uint32, worldName string) *State {
	s := &State{
		Health:    NewHealth(DefaultMaxHealth),
		Inventory: NewInventory(DefaultSlots),
		DayLength: DefaultDayLength,
		Seed:      seed,
		WorldName: worldName,
	}
	s.Inventory.Add(tiles.Stick, 1)
	s.Light = Light(0, s.DayLength)
	return s
}

// Tick advances the player by one simulation step. Paused players do not
// move and their clock does not advance.
func (s *State) Tick(world Terrain, cam Camera, keys Keys) {
	if s.Paused {
		return
	}

	drag := float32(LandDrag)
	if s.Swimming {
		drag = WaterDrag
	}
	s.XSpeed /= drag
	s.YSpeed /= drag

	// Diagonals are not normalised.
	if keys.Held(Left) {
		s.XSpeed -= Accel
	}
	if keys.Held(Right) {
		s.XSpeed += Accel
	}
	if keys.Held(Down) {
		s.YSpeed += Accel
	}
	if keys.Held(Up) {
		s.YSpeed -= Accel
	}

	// Resolve x then y so the player slides along walls.
	prev := s.X
	s.X += s.XSpeed
	if blocked(world, cam, s.X, s.Y) {
		s.X = prev
	}
	prev = s.Y
	s.Y += s.YSpeed
	if blocked(world, cam, s.X, s.Y) {
		s.Y = prev
	}

	s.Swimming = false
	if swimmable(world, cam, s.X, s.Y) {
		s.Swimming = true
	}

	if s.X < 0 {
		s.X = 0
	}
	if s.Y < 0 {
		s.Y = 0
	}

	s.Time += TimeStep
	s.Ticks++
	s.Light = Light(s.Time, s.DayLength)
	s.Offset = Offset(s.X, s.Y, cam)
}

// TogglePause switches between the active state and the pause menu.
func (s *State) TogglePause() {
	if s.Paused {
		s.Paused = false
		return
	}
	s.Paused = true
	s.PauseMode = MenuMode
}

// ToggleInventory opens the inventory screen, or resumes if it is open.
func (s *State) ToggleInventory() {
	if s.Paused && s.PauseMode == InventoryMode {
		s.Paused = false
		return
	}
	s.Paused = true
	s.PauseMode = InventoryMode
}

// Offset returns the sub-tile scroll offset for a position in NDC units.
func Offset(x, y float32, cam Camera) [2]float32 {
	tw, th := cam.TileSize()
	fx := float32(math.Mod(float64(x), 1))
	fy := float32(math.Mod(float64(y), 1))
	return [2]float32{fx * tw, fy * th}
}

// Feet returns the feet cell for the current position.
func (s *State) Feet(cam Camera) (int, int) { return cam.FeetCell(s.X, s.Y) }

// Cells outside the grid block movement and are never water.
func blocked(world Terrain, cam Camera, x, y float32) bool {
	fx, fy := cam.FeetCell(x, y)
	k, ok := world.At(fx, fy)
	return !ok || tiles.Props(k).Solid
}

func swimmable(world Terrain, cam Camera, x, y float32) bool {
	fx, fy := cam.FeetCell(x, y)
	k, ok := world.At(fx, fy)
	return ok && tiles.Props(k).Swimmable
}
