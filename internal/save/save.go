// Package save persists the scalar player record for a named world. The
// world grid is never stored; loading regenerates it from the seed.
package save

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
)

var (
	// ErrNotFound reports a world name with no save.
	ErrNotFound = errors.New("save: no such save")
	// ErrInvalidRecord reports a save whose contents cannot describe a player.
	ErrInvalidRecord = errors.New("save: invalid record")
	// ErrInvalidName reports a world name that cannot be used as a key.
	ErrInvalidName = errors.New("save: invalid world name")
)

// Record is the flat persisted player state.
type Record struct {
	X         float32 `yaml:"x"`
	Y         float32 `yaml:"y"`
	Health    float64 `yaml:"health"`
	MaxHealth float64 `yaml:"max_health"`
	Seed      uint32  `yaml:"seed"`
	Time      float64 `yaml:"time"`
}

// Validate rejects records that would produce a broken player.
func (r Record) Validate() error {
	for name, v := range map[string]float64{
		"x": float64(r.X), "y": float64(r.Y), "health": r.Health, "max_health": r.MaxHealth, "time": r.Time,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidRecord, name)
		}
	}
	if r.X < 0 || r.Y < 0 {
		return fmt.Errorf("%w: negative position (%v, %v)", ErrInvalidRecord, r.X, r.Y)
	}
	if r.MaxHealth <= 0 {
		return fmt.Errorf("%w: max_health %v", ErrInvalidRecord, r.MaxHealth)
	}
	if r.Health < 0 || r.Health > r.MaxHealth {
		return fmt.Errorf("%w: health %v of %v", ErrInvalidRecord, r.Health, r.MaxHealth)
	}
	if r.Time < 0 {
		return fmt.Errorf("%w: negative time %v", ErrInvalidRecord, r.Time)
	}
	return nil
}

// Store reads and writes records keyed by world name.
type Store interface {
	Save(ctx context.Context, world string, r Record) error
	Load(ctx context.Context, world string) (Record, error)
	List(ctx context.Context) ([]string, error)
	Close() error
}

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

// CheckName validates a world name. Names double as file names, so path
// separators and dots are not allowed.
func CheckName(world string) error {
	if !namePattern.MatchString(world) {
		return fmt.Errorf("%w: %q", ErrInvalidName, world)
	}
	return nil
}

// Open returns the store for a backend name: "yaml" (default) or "sqlite".
func Open(backend, dir string) (Store, error) {
	switch backend {
	case "", "yaml":
		return NewFileStore(dir)
	case "sqlite":
		return OpenSQLite(dir)
	default:
		return nil, fmt.Errorf("save: unknown backend %q", backend)
	}
}
