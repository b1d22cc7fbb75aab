package session

import (
	"tidewalker/internal/player"
	"tidewalker/internal/tiles"
	"tidewalker/internal/worldgen"
)

// Spawn places p so its feet stand on dry, walkable land as close to the
// centre of the grid as possible. If the world has no dry land, any
// non-solid cell will do.
func Spawn(grid *worldgen.Grid, cam player.Camera, p *player.State) error {
	// Feet cells left of or above the camera offset need a negative position.
	minX := cam.Width / 2
	minY := cam.Height/2 + 2
	if grid.W <= minX || grid.H <= minY {
		return ErrNoSpawn
	}
	cx := max(grid.W/2, minX)
	cy := max(grid.H/2, minY)

	fx, fy, ok := nearest(grid, cx, cy, minX, minY, func(pr tiles.Properties) bool {
		return !pr.Solid && !pr.Swimmable
	})
	if !ok {
		fx, fy, ok = nearest(grid, cx, cy, minX, minY, func(pr tiles.Properties) bool {
			return !pr.Solid
		})
	}
	if !ok {
		return ErrNoSpawn
	}

	p.X = float32(fx - minX)
	p.Y = float32(fy - minY)
	p.XSpeed, p.YSpeed = 0, 0
	pr, _ := grid.Props(fx, fy)
	p.Swimming = pr.Swimmable
	p.Offset = player.Offset(p.X, p.Y, cam)
	return nil
}

// nearest scans square rings of growing radius around (cx, cy).
func nearest(grid *worldgen.Grid, cx, cy, minX, minY int, accept func(tiles.Properties) bool) (int, int, bool) {
	maxR := max(grid.W, grid.H)
	for r := 0; r <= maxR; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(abs(dx), abs(dy)) != r {
					continue
				}
				x, y := cx+dx, cy+dy
				if x < minX || y < minY {
					continue
				}
				pr, ok := grid.Props(x, y)
				if ok && accept(pr) {
					return x, y, true
				}
			}
		}
	}
	return 0, 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
