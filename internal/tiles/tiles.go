// Package tiles holds the closed catalog of terrain kinds and items.
package tiles

import "fmt"

// Kind identifies a terrain tile. The set is closed; every value has a static
// Properties record.
type Kind uint8

const (
	DeepOcean Kind = iota
	Ocean
	Sand
	Grass
	Tree
	Kelp
	Lilypad
	Cactus

	kindCount
)

// Properties are the static gameplay and atlas attributes of a tile kind.
type Properties struct {
	Name string

	AtlasX          int
	AtlasY          int
	AnimationFrames int

	Solid     bool
	Swimmable bool
	Slowing   bool // not applied by movement yet
	Damaging  bool // not applied by movement yet

	// Footprint in cells and the render offset of its top-left corner
	// relative to the logical cell.
	Width   int
	Height  int
	OffsetX int
	OffsetY int
}

var catalog = [kindCount]Properties{
	DeepOcean: {Name: "deep ocean", AtlasX: 0, AtlasY: 0, AnimationFrames: 4, Swimmable: true, Slowing: true, Width: 1, Height: 1},
	Ocean:     {Name: "ocean", AtlasX: 1, AtlasY: 0, AnimationFrames: 4, Swimmable: true, Slowing: true, Width: 1, Height: 1},
	Sand:      {Name: "sand", AtlasX: 2, AtlasY: 0, AnimationFrames: 1, Width: 1, Height: 1},
	Grass:     {Name: "grass", AtlasX: 3, AtlasY: 0, AnimationFrames: 1, Width: 1, Height: 1},
	Tree:      {Name: "tree", AtlasX: 4, AtlasY: 0, AnimationFrames: 1, Solid: true, Width: 3, Height: 4, OffsetX: -1, OffsetY: -3},
	Kelp:      {Name: "kelp", AtlasX: 5, AtlasY: 0, AnimationFrames: 4, Swimmable: true, Slowing: true, Width: 1, Height: 1},
	Lilypad:   {Name: "lilypad", AtlasX: 6, AtlasY: 0, AnimationFrames: 4, Width: 1, Height: 1},
	Cactus:    {Name: "cactus", AtlasX: 7, AtlasY: 0, AnimationFrames: 1, Solid: true, Damaging: true, Width: 1, Height: 1},
}

// Kinds returns every tile kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k is part of the catalog.
func (k Kind) Valid() bool { return k < kindCount }

// Props returns the catalog record for k. Unknown kinds yield the zero record.
func Props(k Kind) Properties {
	if !k.Valid() {
		return Properties{}
	}
	return catalog[k]
}

// Props is shorthand for Props(k).
func (k Kind) Props() Properties { return Props(k) }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return catalog[k].Name
}

// Frame returns the animation frame a tile shows on the given tick. Animated
// tiles advance one frame every FrameTicks ticks.
func Frame(k Kind, tick uint64) int {
	frames := Props(k).AnimationFrames
	if frames <= 1 {
		return 0
	}
	return int((tick / FrameTicks) % uint64(frames))
}

// FrameTicks is the number of simulation ticks each animation frame lasts.
const FrameTicks = 15
