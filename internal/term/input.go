package term

import (
	"github.com/gdamore/tcell/v2"

	"tidewalker/internal/app"
	"tidewalker/internal/player"
)

// DefaultHoldTicks is how long a direction stays held after its last key
// event. Terminals report presses and auto-repeat but never releases.
const DefaultHoldTicks = 30

// heldKeys turns discrete key presses into a held-key set that decays.
type heldKeys struct {
	hold uint64
	tick uint64
	last map[player.Keys]uint64
}

func newHeldKeys(hold uint64) *heldKeys {
	if hold == 0 {
		hold = DefaultHoldTicks
	}
	return &heldKeys{hold: hold, last: map[player.Keys]uint64{}}
}

func (h *heldKeys) press(dir player.Keys) {
	for _, k := range []player.Keys{player.Up, player.Down, player.Left, player.Right} {
		if dir.Held(k) {
			h.last[k] = h.tick
		}
	}
	// A press cancels the opposite direction so turning is immediate.
	switch dir {
	case player.Up:
		delete(h.last, player.Down)
	case player.Down:
		delete(h.last, player.Up)
	case player.Left:
		delete(h.last, player.Right)
	case player.Right:
		delete(h.last, player.Left)
	}
}

func (h *heldKeys) keys() player.Keys {
	var out player.Keys
	for k, t := range h.last {
		if h.tick-t < h.hold {
			out.Press(k)
		}
	}
	return out
}

func (h *heldKeys) advance() { h.tick++ }

func (h *heldKeys) clear() { clear(h.last) }

// translateKey maps a key event to a direction and one-shot input flags. It
// reports quit for Ctrl-C, which leaves without going through the menu.
func translateKey(ev *tcell.EventKey, in *app.Input) (dir player.Keys, quit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return 0, true
	case tcell.KeyEscape:
		in.Pause = true
	case tcell.KeyEnter:
		in.Confirm = true
	case tcell.KeyUp:
		dir, in.MenuUp = player.Up, true
	case tcell.KeyDown:
		dir, in.MenuDown = player.Down, true
	case tcell.KeyLeft:
		dir = player.Left
	case tcell.KeyRight:
		dir = player.Right
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			dir, in.MenuUp = player.Up, true
		case 's', 'S':
			dir, in.MenuDown = player.Down, true
		case 'a', 'A':
			dir = player.Left
		case 'd', 'D':
			dir = player.Right
		case 'i', 'I':
			in.Inventory = true
		case ' ':
			in.Confirm = true
		}
	}
	return dir, false
}
