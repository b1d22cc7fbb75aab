package app

import (
	"context"
	"fmt"
	"log"

	"tidewalker/internal/player"
	"tidewalker/internal/session"
)

// Input is one frame of player input, already mapped from device events.
type Input struct {
	Held      player.Keys
	Pause     bool
	Inventory bool

	MenuUp   bool
	MenuDown bool
	Confirm  bool

	// Clicked reports a click on menu button Click.
	Clicked bool
	Click   int
}

// Controller applies input to a session. Both front ends drive the game
// through it.
type Controller struct {
	s      *session.Session
	status string
}

// NewController wraps s.
func NewController(s *session.Session) *Controller {
	return &Controller{s: s}
}

// Session returns the controlled session.
func (c *Controller) Session() *session.Session { return c.s }

// Status is a one-line message about the last menu action.
func (c *Controller) Status() string { return c.status }

// Step applies in and advances the world one tick if it is running. It
// reports true when the player asked to quit.
func (c *Controller) Step(ctx context.Context, in Input) bool {
	p := c.s.Player()
	if in.Pause {
		c.s.TogglePause()
		c.status = ""
	}
	if in.Inventory {
		p.ToggleInventory()
		c.status = ""
	}
	if !p.Paused {
		c.s.Tick(in.Held)
		return false
	}
	if p.PauseMode != player.MenuMode {
		return false
	}

	menu := c.s.Menu()
	if in.MenuUp {
		menu.Prev()
	}
	if in.MenuDown {
		menu.Next()
	}
	intent := player.NoIntent
	if in.Clicked && menu.Select(in.Click) {
		intent = menu.Choose()
	}
	if in.Confirm {
		intent = menu.Choose()
	}
	if intent == player.NoIntent {
		return false
	}

	eff, err := c.s.Dispatch(ctx, intent)
	if err != nil {
		c.status = fmt.Sprintf("%s failed: %v", intent, err)
		log.Printf("menu %s: %v", intent, err)
		return false
	}
	switch eff {
	case session.Saved:
		c.status = "Saved " + c.s.Player().WorldName
	case session.Loaded:
		c.status = "Loaded " + c.s.Player().WorldName
	case session.Resumed:
		c.status = ""
	case session.QuitRequested:
		return true
	}
	return false
}
