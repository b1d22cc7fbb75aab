package player

import (
	"math"
	"math/rand/v2"
	"testing"

	"tidewalker/internal/tiles"
)

// mapTerrain is a fixed-size terrain filled with one kind plus overrides.
type mapTerrain struct {
	w, h  int
	fill  tiles.Kind
	cells map[[2]int]tiles.Kind
}

func newTerrain(w, h int, fill tiles.Kind) *mapTerrain {
	return &mapTerrain{w: w, h: h, fill: fill, cells: map[[2]int]tiles.Kind{}}
}

func (m *mapTerrain) set(x, y int, k tiles.Kind) { m.cells[[2]int{x, y}] = k }

func (m *mapTerrain) At(x, y int) (tiles.Kind, bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return 0, false
	}
	if k, ok := m.cells[[2]int{x, y}]; ok {
		return k, true
	}
	return m.fill, true
}

// With this camera the feet cell of (x, y) is (floor(x+0.5)+2, floor(y)+3).
var testCam = Camera{Width: 4, Height: 2}

func TestFeetCell(t *testing.T) {
	cases := []struct {
		x, y   float32
		fx, fy int
	}{
		{0, 0, 2, 3},
		{0.49, 0.99, 2, 3},
		{0.5, 1, 3, 4},
		{-3, -0.2, 2, 3},
		{10.2, 7.7, 12, 10},
		{math.Nextafter32(0.5, 0), 0, 3, 3},
		{math.Nextafter32(1.5, 0), 0, 3, 3},
		{math.Nextafter32(2.5, 0), 0, 4, 3},
	}
	for _, tc := range cases {
		fx, fy := testCam.FeetCell(tc.x, tc.y)
		if fx != tc.fx || fy != tc.fy {
			t.Errorf("FeetCell(%v,%v) = (%d,%d), want (%d,%d)", tc.x, tc.y, fx, fy, tc.fx, tc.fy)
		}
	}
}

func TestIdleTickKeepsPosition(t *testing.T) {
	world := newTerrain(20, 20, tiles.Grass)
	p := New(1, "w")
	p.X, p.Y = 3.25, 4.5
	p.Tick(world, testCam, 0)
	if p.X != 3.25 || p.Y != 4.5 {
		t.Fatalf("idle tick moved player to (%v,%v)", p.X, p.Y)
	}
	if p.Swimming {
		t.Fatal("grass is not swimmable")
	}
}

func TestDampingBeforeAcceleration(t *testing.T) {
	world := newTerrain(50, 50, tiles.Grass)
	p := New(1, "w")
	p.X, p.Y = 10, 10
	p.XSpeed = 0.12
	p.Tick(world, testCam, Right)
	want := float32(0.12)/1.2 + 0.02
	if math.Abs(float64(p.XSpeed-want)) > 1e-6 {
		t.Fatalf("XSpeed = %v, want %v", p.XSpeed, want)
	}

	water := newTerrain(50, 50, tiles.Ocean)
	q := New(1, "w")
	q.X, q.Y = 10, 10
	q.Swimming = true
	q.XSpeed = 0.18
	q.Tick(water, testCam, 0)
	if math.Abs(float64(q.XSpeed-0.1)) > 1e-6 {
		t.Fatalf("swimming XSpeed = %v, want 0.1", q.XSpeed)
	}
}

func TestDiagonalIsNotNormalised(t *testing.T) {
	world := newTerrain(50, 50, tiles.Grass)
	p := New(1, "w")
	p.X, p.Y = 10, 10
	p.Tick(world, testCam, Down|Right)
	if p.XSpeed != Accel || p.YSpeed != Accel {
		t.Fatalf("diagonal speeds = (%v,%v), want both %v", p.XSpeed, p.YSpeed, Accel)
	}
}

func TestCollisionBlocksAxisButAllowsSlide(t *testing.T) {
	world := newTerrain(20, 20, tiles.Grass)
	// Player at (0.49, 0.5) stands on (2,3); stepping right enters (3,3).
	world.set(3, 3, tiles.Tree)

	p := New(1, "w")
	p.X, p.Y = 0.49, 0.5
	p.Tick(world, testCam, Right|Down)

	if p.X != 0.49 {
		t.Fatalf("x moved into solid tile: %v", p.X)
	}
	if p.Y <= 0.5 {
		t.Fatalf("y should still respond to input, got %v", p.Y)
	}
}

func TestCollisionChecksYWithUpdatedX(t *testing.T) {
	world := newTerrain(20, 20, tiles.Grass)
	// Moving diagonally from (0.49, 0.99): x lands on column 3 (free),
	// y then checks row 4 at column 3, which is a cactus.
	world.set(3, 4, tiles.Cactus)

	p := New(1, "w")
	p.X, p.Y = 0.49, 0.99
	p.Tick(world, testCam, Right|Down)

	if p.X <= 0.49 {
		t.Fatalf("x should move, got %v", p.X)
	}
	if p.Y != 0.99 {
		t.Fatalf("y should be blocked by the cactus at the new column, got %v", p.Y)
	}
}

func TestGridEdgeBlocks(t *testing.T) {
	world := newTerrain(4, 5, tiles.Grass)
	p := New(1, "w")
	// Feet at (3,4), the last cell; right or down leaves the grid.
	p.X, p.Y = 1.49, 1.99
	for i := 0; i < 50; i++ {
		p.Tick(world, testCam, Right|Down)
	}
	fx, fy := p.Feet(testCam)
	if _, ok := world.At(fx, fy); !ok {
		t.Fatalf("player walked off the grid to feet cell (%d,%d)", fx, fy)
	}
}

func TestPositionNeverNegative(t *testing.T) {
	world := newTerrain(64, 64, tiles.Grass)
	world.set(5, 5, tiles.Tree)
	world.set(2, 6, tiles.Ocean)
	rng := rand.New(rand.NewPCG(7, 7))
	p := New(1, "w")
	for i := 0; i < 5000; i++ {
		keys := Keys(rng.IntN(16))
		if i%400 < 200 {
			keys |= Up | Left
		}
		p.Tick(world, testCam, keys)
		if p.X < 0 || p.Y < 0 {
			t.Fatalf("tick %d: negative position (%v,%v)", i, p.X, p.Y)
		}
	}
}

func TestSwimmingTracksFeetCell(t *testing.T) {
	world := newTerrain(40, 40, tiles.Grass)
	for x := 0; x < 40; x++ {
		for y := 10; y < 40; y++ {
			world.set(x, y, tiles.Ocean)
		}
		world.set(x, 12, tiles.Kelp)
		world.set(x, 14, tiles.Lilypad)
	}
	rng := rand.New(rand.NewPCG(1, 2))
	p := New(1, "w")
	p.X, p.Y = 5, 3
	for i := 0; i < 3000; i++ {
		p.Tick(world, testCam, Keys(rng.IntN(16))|Down)
		fx, fy := p.Feet(testCam)
		k, _ := world.At(fx, fy)
		if p.Swimming != tiles.Props(k).Swimmable {
			t.Fatalf("tick %d: swimming=%v but feet tile %v", i, p.Swimming, k)
		}
	}
}

func TestPausedTickIsFrozen(t *testing.T) {
	world := newTerrain(20, 20, tiles.Grass)
	p := New(1, "w")
	p.X, p.Y, p.XSpeed = 3, 3, 0.05
	p.TogglePause()
	before := *p
	p.Tick(world, testCam, Right|Down)
	if p.X != before.X || p.Y != before.Y || p.XSpeed != before.XSpeed || p.Time != before.Time {
		t.Fatal("paused tick changed state")
	}
	if p.PauseMode != MenuMode {
		t.Fatal("toggling pause should open the menu")
	}
	p.TogglePause()
	p.Tick(world, testCam, 0)
	if p.Time != TimeStep {
		t.Fatalf("time = %v after one active tick", p.Time)
	}
}

func TestInventoryToggle(t *testing.T) {
	p := New(1, "w")
	p.ToggleInventory()
	if !p.Paused || p.PauseMode != InventoryMode {
		t.Fatal("inventory should pause the game")
	}
	p.ToggleInventory()
	if p.Paused {
		t.Fatal("second toggle should resume")
	}
}

func TestOffsetIsFractionalTile(t *testing.T) {
	cam := Camera{Width: 10, Height: 8}
	got := Offset(3.5, 2.25, cam)
	if math.Abs(float64(got[0]-0.1)) > 1e-6 || math.Abs(float64(got[1]-0.0625)) > 1e-6 {
		t.Fatalf("Offset = %v", got)
	}
	if Offset(4, 7, cam) != [2]float32{0, 0} {
		t.Fatal("whole positions have no offset")
	}
}

func TestNewPlayerDefaults(t *testing.T) {
	p := New(99, "isle")
	if p.Health.Current != DefaultMaxHealth || p.Health.Max != DefaultMaxHealth {
		t.Fatalf("health = %+v", p.Health)
	}
	if p.Inventory.Count(tiles.Stick) != 1 {
		t.Fatal("new players carry a stick")
	}
	if p.Seed != 99 || p.WorldName != "isle" {
		t.Fatal("seed and world name not recorded")
	}
}
