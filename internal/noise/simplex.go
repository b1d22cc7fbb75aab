package noise

import opensimplex "github.com/ojrac/opensimplex-go"

type simplexField struct {
	elevation  opensimplex.Noise
	vegetation opensimplex.Noise
}

// NewSimplex returns the OpenSimplex backend. It shares the seed derivation
// and sampling scales of the gradient backend but yields a different world.
func NewSimplex(seed uint32) Field {
	return &simplexField{
		elevation:  opensimplex.New(int64(seed)),
		vegetation: opensimplex.New(int64(vegetationSeed(seed))),
	}
}

func (s *simplexField) Sample(x, y int32) Sample {
	ex, ey := elevationCoords(x, y)
	vx, vy := vegetationCoords(x, y)
	return Sample{
		Elevation:  s.elevation.Eval3(ex, ey, 0),
		Vegetation: s.vegetation.Eval3(vx, vy, 0),
	}
}

func init() {
	Register("simplex", NewSimplex)
}
