package worldgen

import (
	"tidewalker/internal/noise"
	"tidewalker/internal/tiles"
)

// Band thresholds on the elevation channel. Lower bounds are inclusive.
const (
	shallowFloor = -0.3
	beachFloor   = 0.0
	grassFloor   = 0.2
)

// Vegetation thresholds that override the band's base tile.
const (
	kelpCutoff  = 0.5
	decorCutoff = 0.7
)

// Classify maps a noise sample to a tile kind. Elevation picks the band and
// vegetation may replace the band's base tile with a decoration or obstacle.
func Classify(s noise.Sample) tiles.Kind {
	e, v := s.Elevation, s.Vegetation
	switch {
	case e < shallowFloor:
		if v > kelpCutoff {
			return tiles.Kelp
		}
		return tiles.DeepOcean
	case e < beachFloor:
		if v > decorCutoff {
			return tiles.Lilypad
		}
		return tiles.Ocean
	case e < grassFloor:
		if v > decorCutoff {
			return tiles.Cactus
		}
		return tiles.Sand
	default:
		// NaN elevation also lands here: every comparison above is false.
		if v > decorCutoff {
			return tiles.Tree
		}
		return tiles.Grass
	}
}
