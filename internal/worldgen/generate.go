// Package worldgen classifies noise samples into tiles and materialises the
// world grid for a seed.
package worldgen

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"tidewalker/internal/noise"
	"tidewalker/internal/telemetry"
)

// MaxDimension bounds either side of a generated grid.
const MaxDimension = 8192

// ErrInvalidDimensions reports a grid size that is non-positive or too large.
var ErrInvalidDimensions = errors.New("worldgen: invalid dimensions")

// Config selects the size, seed and noise backend of a world.
type Config struct {
	Width  int
	Height int
	Seed   uint32
	Noise  string
}

// Validate checks the dimensions.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Width > MaxDimension || c.Height > MaxDimension {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	return nil
}

// Generate samples the noise field for every cell in [0,W)x[0,H) and
// classifies it. The result depends only on cfg.
func Generate(ctx context.Context, cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	field, err := noise.New(cfg.Noise, cfg.Seed)
	if err != nil {
		return nil, err
	}

	_, span := telemetry.Tracer("worldgen").Start(ctx, "worldgen.Generate")
	defer span.End()
	span.SetAttributes(
		attribute.Int("world.width", cfg.Width),
		attribute.Int("world.height", cfg.Height),
		attribute.Int64("world.seed", int64(cfg.Seed)),
	)

	return Build(cfg.Width, cfg.Height, field), nil
}

// Build classifies an arbitrary field without validating the size. Callers
// must pass positive dimensions.
func Build(w, h int, field noise.Field) *Grid {
	g := newGrid(w, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			g.set(x, y, Classify(field.Sample(int32(x), int32(y))))
		}
	}
	return g
}
