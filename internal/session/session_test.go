package session

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"tidewalker/internal/noise"
	"tidewalker/internal/player"
	"tidewalker/internal/save"
	"tidewalker/internal/tiles"
	"tidewalker/internal/worldgen"
)

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func newTestSession(t *testing.T, store save.Store) *Session {
	t.Helper()
	s, err := New(context.Background(), Options{
		World:  worldgen.Config{Width: 50, Height: 50, Seed: 42},
		Name:   "alpha",
		Store:  store,
		Logger: quietLogger(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func newFileStore(t *testing.T) save.Store {
	t.Helper()
	st, err := save.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return st
}

func TestNewSpawnsOnWalkableCell(t *testing.T) {
	s := newTestSession(t, nil)
	fx, fy := s.Player().Feet(s.Camera())
	pr, ok := s.Grid().Props(fx, fy)
	if !ok {
		t.Fatalf("feet cell (%d,%d) outside grid", fx, fy)
	}
	if pr.Solid {
		t.Fatalf("spawned on solid %s", pr.Name)
	}
	if s.Player().X < 0 || s.Player().Y < 0 {
		t.Fatalf("negative spawn position (%v,%v)", s.Player().X, s.Player().Y)
	}
}

func TestIdleTickKeepsSpawn(t *testing.T) {
	s := newTestSession(t, nil)
	p := s.Player()
	x, y := p.X, p.Y
	s.Tick(0)
	if p.X != x || p.Y != y {
		t.Fatalf("idle tick moved player from (%v,%v) to (%v,%v)", x, y, p.X, p.Y)
	}
	k, _ := s.Grid().At(p.Feet(s.Camera()))
	if p.Swimming != tiles.Props(k).Swimmable {
		t.Fatalf("swimming = %v on %s", p.Swimming, k)
	}
	if p.Time != player.TimeStep {
		t.Fatalf("time = %v, want %v", p.Time, player.TimeStep)
	}
}

func TestNewRejectsBadWorld(t *testing.T) {
	_, err := New(context.Background(), Options{
		World:  worldgen.Config{Width: 0, Height: 50},
		Name:   "alpha",
		Logger: quietLogger(),
	})
	if !errors.Is(err, worldgen.ErrInvalidDimensions) {
		t.Fatalf("err = %v, want ErrInvalidDimensions", err)
	}
	_, err = New(context.Background(), Options{
		World:  worldgen.Config{Width: 50, Height: 50},
		Name:   "../etc",
		Logger: quietLogger(),
	})
	if !errors.Is(err, save.ErrInvalidName) {
		t.Fatalf("err = %v, want ErrInvalidName", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, newFileStore(t))
	for range 30 {
		s.Tick(player.Right | player.Down)
	}
	p := s.Player()
	p.Health.Damage(3)
	want := s.Record()

	if eff, err := s.Dispatch(ctx, player.Save); err != nil || eff != Saved {
		t.Fatalf("Dispatch(Save) = %v, %v", eff, err)
	}

	for range 30 {
		s.Tick(player.Left)
	}
	if s.Record() == want {
		t.Fatal("player did not move after save")
	}

	if eff, err := s.Dispatch(ctx, player.Load); err != nil || eff != Loaded {
		t.Fatalf("Dispatch(Load) = %v, %v", eff, err)
	}
	if got := s.Record(); got != want {
		t.Fatalf("loaded record = %+v, want %+v", got, want)
	}
	if s.Player().Paused {
		t.Fatal("player still paused after load")
	}
}

func TestLoadFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	s := newTestSession(t, store)
	grid, p := s.Grid(), s.Player()

	if err := s.Load(ctx, "missing"); !errors.Is(err, save.ErrNotFound) {
		t.Fatalf("Load(missing) = %v, want ErrNotFound", err)
	}
	if s.Grid() != grid || s.Player() != p {
		t.Fatal("failed load replaced state")
	}

	far := save.Record{X: 5000, Y: 5000, Health: 5, MaxHealth: 10, Seed: 7, Time: 1}
	if err := store.Save(ctx, "far", far); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Load(ctx, "far"); !errors.Is(err, ErrOutsideWorld) {
		t.Fatalf("Load(far) = %v, want ErrOutsideWorld", err)
	}
	if s.Grid() != grid || s.Player() != p {
		t.Fatal("failed load replaced state")
	}
}

func TestLoadRegeneratesFromSeed(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	s := newTestSession(t, store)
	rec := save.Record{X: 1, Y: 1, Health: 4, MaxHealth: 10, Seed: 99, Time: 2.5}
	if err := store.Save(ctx, "beta", rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Load(ctx, "beta"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	want, err := worldgen.Generate(ctx, worldgen.Config{Width: 50, Height: 50, Seed: 99})
	if err != nil {
		t.Fatal(err)
	}
	if !s.Grid().Equal(want) {
		t.Fatal("loaded grid differs from a fresh seed-99 grid")
	}
	if s.Player().WorldName != "beta" || s.Player().Seed != 99 {
		t.Fatalf("player = %q seed %d", s.Player().WorldName, s.Player().Seed)
	}
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, nil)

	s.TogglePause()
	if !s.Player().Paused {
		t.Fatal("not paused after toggle")
	}
	if eff, err := s.Dispatch(ctx, player.Resume); err != nil || eff != Resumed || s.Player().Paused {
		t.Fatalf("Dispatch(Resume) = %v, %v paused=%v", eff, err, s.Player().Paused)
	}
	if eff, _ := s.Dispatch(ctx, player.Quit); eff != QuitRequested {
		t.Fatalf("Dispatch(Quit) = %v", eff)
	}
	if eff, _ := s.Dispatch(ctx, player.NoIntent); eff != None {
		t.Fatalf("Dispatch(NoIntent) = %v", eff)
	}
	if _, err := s.Dispatch(ctx, player.Save); !errors.Is(err, ErrNoStore) {
		t.Fatalf("Dispatch(Save) without store = %v", err)
	}
}

type constField noise.Sample

func (c constField) Sample(int32, int32) noise.Sample { return noise.Sample(c) }

func TestSpawnFallsBackToWater(t *testing.T) {
	grid := worldgen.Build(30, 30, constField{Elevation: -1})
	p := player.New(1, "w")
	if err := Spawn(grid, player.DefaultCamera, p); err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	if !p.Swimming {
		t.Fatal("spawned in deep ocean but not swimming")
	}
	fx, fy := p.Feet(player.DefaultCamera)
	if fx != 15 || fy != 15 {
		t.Fatalf("feet = (%d,%d), want centre (15,15)", fx, fy)
	}
}

func TestSpawnAllSolid(t *testing.T) {
	grid := worldgen.Build(30, 30, constField{Elevation: 1, Vegetation: 1})
	if err := Spawn(grid, player.DefaultCamera, player.New(1, "w")); !errors.Is(err, ErrNoSpawn) {
		t.Fatalf("Spawn on all trees = %v, want ErrNoSpawn", err)
	}
}

func TestParameters(t *testing.T) {
	s := newTestSession(t, nil)
	snap := s.Parameters()
	seed, ok := snap.Lookup("seed")
	if !ok || seed.Value != "42" {
		t.Fatalf("seed param = %+v, %v", seed, ok)
	}
	if _, ok := snap.Lookup("health"); !ok {
		t.Fatal("missing health param")
	}

	tests := []struct {
		damage float64
		want   string
	}{
		{0, "1.00"},
		{2.5, "0.75"},
		{100, "0.00"},
	}
	for _, tt := range tests {
		s.Player().Health.Damage(tt.damage)
		got, ok := s.Parameters().Lookup("health_fraction")
		if !ok || got.Value != tt.want {
			t.Errorf("after %v damage health_fraction = %+v, want %s", tt.damage, got, tt.want)
		}
	}
}
