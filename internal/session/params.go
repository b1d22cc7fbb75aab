package session

import (
	"fmt"
	"math"

	"tidewalker/internal/core"
)

// Parameters exposes world and player values for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	p := s.player
	fx, fy := p.Feet(s.opts.Camera)
	tile := "void"
	if k, ok := s.grid.At(fx, fy); ok {
		tile = k.String()
	}
	day := math.Mod(p.Time, p.DayLength) / p.DayLength
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.StringParam("world", "World", p.WorldName),
				core.IntParam("seed", "Seed", int64(p.Seed)),
				core.StringParam("size", "Size", fmt.Sprintf("%dx%d", s.grid.W, s.grid.H)),
				core.StringParam("noise", "Noise", noiseName(s.opts.World.Noise)),
			},
		},
		{
			Name: "Player",
			Params: []core.Parameter{
				core.FloatParam("x", "X", float64(p.X), 2),
				core.FloatParam("y", "Y", float64(p.Y), 2),
				core.StringParam("tile", "Standing on", tile),
				core.BoolParam("swimming", "Swimming", p.Swimming),
				core.FloatParam("health", "Health", p.Health.Current, 0),
				core.FloatParam("max_health", "Max health", p.Health.Max, 0),
				core.FloatParam("health_fraction", "Health %", p.Health.Fraction(), 2),
				core.FloatParam("day", "Day", day, 2),
			},
		},
	}}
}

func noiseName(n string) string {
	if n == "" {
		return "perlin"
	}
	return n
}
