// Package noise produces the two coherent scalar fields the world is
// classified from: a coarse elevation channel and a fine vegetation channel.
package noise

import (
	"errors"
	"fmt"
	"sort"
)

const (
	// ElevationScale is the period, in cells, of the elevation channel.
	ElevationScale = 16.0
	// VegetationScale is the period, in cells, of the vegetation channel.
	VegetationScale = 1.6

	// DefaultBackend names the generator used when none is configured.
	DefaultBackend = "perlin"
)

// ErrUnknownBackend is returned by New for unregistered backend names.
var ErrUnknownBackend = errors.New("noise: unknown backend")

// Sample is the pair of channel values at one grid coordinate. Values lie
// roughly in [-1, 1] and are not clamped.
type Sample struct {
	Elevation  float64
	Vegetation float64
}

// Field maps integer grid coordinates to samples. Implementations are pure:
// the same seed and coordinates always give the same sample.
type Field interface {
	Sample(x, y int32) Sample
}

// Factory builds a Field for a world seed. The vegetation channel must be
// seeded with seed+1.
type Factory func(seed uint32) Field

var backends = map[string]Factory{}

// Register adds a backend under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	backends[name] = f
}

// Backends lists the registered backend names in sorted order.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns the named backend seeded with seed. An empty name selects
// DefaultBackend.
func New(backend string, seed uint32) (Field, error) {
	if backend == "" {
		backend = DefaultBackend
	}
	f, ok := backends[backend]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, backend)
	}
	return f(seed), nil
}

// vegetationSeed derives the secondary seed. Wrapping at MaxUint32 is intended.
func vegetationSeed(seed uint32) uint32 { return seed + 1 }

func elevationCoords(x, y int32) (float64, float64) {
	return float64(x) / ElevationScale, float64(y) / ElevationScale
}

func vegetationCoords(x, y int32) (float64, float64) {
	return float64(x) / VegetationScale, float64(y) / VegetationScale
}
