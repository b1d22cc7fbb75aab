// Package render turns the world around the player into flat-coloured tile
// sprites. The ebiten painter and the terminal client both draw from it.
package render

import (
	"image/color"

	"tidewalker/internal/tiles"
)

// Palette maps tile kinds to their base colours.
type Palette struct {
	base   []color.RGBA
	Void   color.RGBA
	Player color.RGBA
}

// DefaultPalette is used when no palette is configured.
var DefaultPalette = NewPalette(map[tiles.Kind]color.RGBA{
	tiles.DeepOcean: {R: 16, G: 44, B: 110, A: 255},
	tiles.Ocean:     {R: 38, G: 92, B: 170, A: 255},
	tiles.Sand:      {R: 222, G: 204, B: 140, A: 255},
	tiles.Grass:     {R: 86, G: 160, B: 64, A: 255},
	tiles.Tree:      {R: 34, G: 98, B: 40, A: 255},
	tiles.Kelp:      {R: 40, G: 112, B: 96, A: 255},
	tiles.Lilypad:   {R: 110, G: 176, B: 90, A: 255},
	tiles.Cactus:    {R: 70, G: 140, B: 70, A: 255},
})

// NewPalette builds a palette from base colours. Kinds without an entry are
// drawn in magenta so gaps are obvious.
func NewPalette(colors map[tiles.Kind]color.RGBA) *Palette {
	kinds := tiles.Kinds()
	p := &Palette{
		base:   make([]color.RGBA, len(kinds)),
		Void:   color.RGBA{A: 255},
		Player: color.RGBA{R: 230, G: 80, B: 60, A: 255},
	}
	for _, k := range kinds {
		c, ok := colors[k]
		if !ok {
			c = color.RGBA{R: 255, B: 255, A: 255}
		}
		p.base[k] = c
	}
	return p
}

// Base returns the unlit colour of k.
func (p *Palette) Base(k tiles.Kind) color.RGBA {
	if int(k) >= len(p.base) {
		return p.Void
	}
	return p.base[k]
}

// frameShade brightens and darkens animated tiles in a slow ripple.
var frameShade = [...]float32{1, 1.08, 1, 0.92}

// Color returns the colour of k on tick under the given light.
func (p *Palette) Color(k tiles.Kind, tick uint64, light [3]float32) color.RGBA {
	c := p.Base(k)
	if f := tiles.Frame(k, tick); f > 0 {
		c = Shade(c, frameShade[f%len(frameShade)])
	}
	return Tint(c, light)
}

// Shade scales the RGB channels by f, saturating at 255.
func Shade(c color.RGBA, f float32) color.RGBA {
	return color.RGBA{R: scale(c.R, f), G: scale(c.G, f), B: scale(c.B, f), A: c.A}
}

// Tint multiplies each channel by the matching light component.
func Tint(c color.RGBA, light [3]float32) color.RGBA {
	return color.RGBA{
		R: scale(c.R, light[0]),
		G: scale(c.G, light[1]),
		B: scale(c.B, light[2]),
		A: c.A,
	}
}

func scale(v uint8, f float32) uint8 {
	s := float32(v)*f + 0.5
	if s <= 0 {
		return 0
	}
	if s >= 255 {
		return 255
	}
	return uint8(s)
}
