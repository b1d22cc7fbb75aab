package save

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()
	stores := map[string]Store{}
	for _, backend := range []string{"yaml", "sqlite"} {
		s, err := Open(backend, t.TempDir())
		if err != nil {
			t.Fatalf("open %s: %v", backend, err)
		}
		t.Cleanup(func() { s.Close() })
		stores[backend] = s
	}
	return stores
}

func TestStoresRoundTrip(t *testing.T) {
	ctx := context.Background()
	want := Record{X: 12.5, Y: 3.25, Health: 7, MaxHealth: 10, Seed: 4000000000, Time: 18.33}
	for name, s := range openStores(t) {
		if err := s.Save(ctx, "isle", want); err != nil {
			t.Fatalf("%s save: %v", name, err)
		}
		got, err := s.Load(ctx, "isle")
		if err != nil {
			t.Fatalf("%s load: %v", name, err)
		}
		if got != want {
			t.Fatalf("%s: got %+v, want %+v", name, got, want)
		}

		want2 := want
		want2.X = 99
		if err := s.Save(ctx, "isle", want2); err != nil {
			t.Fatal(err)
		}
		if got, _ := s.Load(ctx, "isle"); got.X != 99 {
			t.Fatalf("%s: overwrite not persisted", name)
		}
	}
}

func TestStoresNotFound(t *testing.T) {
	for name, s := range openStores(t) {
		_, err := s.Load(context.Background(), "nowhere")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("%s: expected ErrNotFound, got %v", name, err)
		}
	}
}

func TestStoresList(t *testing.T) {
	ctx := context.Background()
	rec := Record{Health: 1, MaxHealth: 1}
	for name, s := range openStores(t) {
		for _, w := range []string{"beta", "alpha"} {
			if err := s.Save(ctx, w, rec); err != nil {
				t.Fatal(err)
			}
		}
		got, err := s.List(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(got, []string{"alpha", "beta"}) {
			t.Fatalf("%s: List = %v", name, got)
		}
	}
}

func TestStoresRejectBadInput(t *testing.T) {
	ctx := context.Background()
	for name, s := range openStores(t) {
		if err := s.Save(ctx, "../escape", Record{MaxHealth: 1}); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("%s: expected ErrInvalidName, got %v", name, err)
		}
		if err := s.Save(ctx, "ok", Record{MaxHealth: 0}); !errors.Is(err, ErrInvalidRecord) {
			t.Fatalf("%s: expected ErrInvalidRecord, got %v", name, err)
		}
	}
}

func TestFileStoreRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string]string{
		"garbage": "::: not yaml [",
		"partial": "x: 1\ny: 2\n",
		"scalar":  "hello",
		"empty":   "",
		"badhp":   "x: 1\ny: 1\nhealth: 20\nmax_health: 10\nseed: 1\ntime: 0\n",
	}
	for world, body := range cases {
		if err := os.WriteFile(filepath.Join(dir, world+".yaml"), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := s.Load(context.Background(), world); !errors.Is(err, ErrInvalidRecord) {
			t.Fatalf("%s: expected ErrInvalidRecord, got %v", world, err)
		}
	}
}

func TestRecordValidate(t *testing.T) {
	good := Record{X: 1, Y: 2, Health: 5, MaxHealth: 10, Seed: 1, Time: 3}
	if err := good.Validate(); err != nil {
		t.Fatal(err)
	}
	bad := []Record{
		{X: -1, Health: 1, MaxHealth: 1},
		{Health: 1, MaxHealth: 1, Time: math.NaN()},
		{Health: -1, MaxHealth: 1},
		{X: float32(math.Inf(1)), Health: 1, MaxHealth: 1},
		{Health: 1, MaxHealth: 1, Time: -2},
	}
	for _, r := range bad {
		if err := r.Validate(); !errors.Is(err, ErrInvalidRecord) {
			t.Fatalf("%+v: expected ErrInvalidRecord, got %v", r, err)
		}
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open("floppy", t.TempDir()); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
