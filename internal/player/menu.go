package player

// Intent is a request emitted by the pause menu. The session maps intents to
// effects; the menu itself holds no behaviour.
type Intent uint8

const (
	NoIntent Intent = iota
	Resume
	Save
	Load
	Quit
)

func (i Intent) String() string {
	switch i {
	case Resume:
		return "Resume"
	case Save:
		return "Save"
	case Load:
		return "Load"
	case Quit:
		return "Quit"
	default:
		return "None"
	}
}

// Button is a labelled menu entry.
type Button struct {
	Label  string
	Intent Intent
}

// Menu is a vertical list of buttons with one selected entry.
type Menu struct {
	buttons  []Button
	selected int
}

// NewPauseMenu returns the pause menu: Resume, Save, Load, Quit.
func NewPauseMenu() *Menu {
	return &Menu{buttons: []Button{
		{Label: "Resume", Intent: Resume},
		{Label: "Save", Intent: Save},
		{Label: "Load", Intent: Load},
		{Label: "Quit", Intent: Quit},
	}}
}

// Buttons returns the entries in display order.
func (m *Menu) Buttons() []Button { return m.buttons }

// Index returns the selected entry's position.
func (m *Menu) Index() int { return m.selected }

// Next moves the selection down, wrapping at the end.
func (m *Menu) Next() {
	if len(m.buttons) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.buttons)
}

// Prev moves the selection up, wrapping at the start.
func (m *Menu) Prev() {
	if len(m.buttons) == 0 {
		return
	}
	m.selected = (m.selected - 1 + len(m.buttons)) % len(m.buttons)
}

// Select moves the selection to entry i. Out-of-range indices are ignored.
func (m *Menu) Select(i int) bool {
	if i < 0 || i >= len(m.buttons) {
		return false
	}
	m.selected = i
	return true
}

// Choose returns the selected entry's intent.
func (m *Menu) Choose() Intent {
	if len(m.buttons) == 0 {
		return NoIntent
	}
	return m.buttons[m.selected].Intent
}

// Reset selects the first entry.
func (m *Menu) Reset() { m.selected = 0 }
