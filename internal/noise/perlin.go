package noise

import perlin "github.com/aquilax/go-perlin"

// Single octave: with n=1 the generator returns raw gradient noise.
const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 1
)

// go-perlin uses unit-length gradients, so a z=0 slice peaks near ±0.65.
// perlinGain stretches both channels to about [-1, 1], the range the
// classifier thresholds assume. The result is not clamped.
const perlinGain = 1.633

type perlinField struct {
	elevation  *perlin.Perlin
	vegetation *perlin.Perlin
}

// NewPerlin returns the gradient-noise backend.
func NewPerlin(seed uint32) Field {
	return &perlinField{
		elevation:  perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, int64(seed)),
		vegetation: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, int64(vegetationSeed(seed))),
	}
}

func (p *perlinField) Sample(x, y int32) Sample {
	ex, ey := elevationCoords(x, y)
	vx, vy := vegetationCoords(x, y)
	return Sample{
		Elevation:  p.elevation.Noise3D(ex, ey, 0) * perlinGain,
		Vegetation: p.vegetation.Noise3D(vx, vy, 0) * perlinGain,
	}
}

func init() {
	Register("perlin", NewPerlin)
}
