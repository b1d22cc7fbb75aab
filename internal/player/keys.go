package player

import "strings"

// Keys is the set of directional inputs held during a tick.
type Keys uint8

const (
	Up Keys = 1 << iota
	Down
	Left
	Right
)

// Held reports whether every key in k is held.
func (held Keys) Held(k Keys) bool { return held&k == k && k != 0 }

// Press adds k to the set.
func (held *Keys) Press(k Keys) { *held |= k }

// Release removes k from the set.
func (held *Keys) Release(k Keys) { *held &^= k }

func (held Keys) String() string {
	var parts []string
	for _, k := range []struct {
		key  Keys
		name string
	}{{Up, "up"}, {Down, "down"}, {Left, "left"}, {Right, "right"}} {
		if held.Held(k.key) {
			parts = append(parts, k.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}
