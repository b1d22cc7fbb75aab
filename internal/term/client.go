// Package term is the terminal front end: it draws the world with tcell and
// feeds keyboard and mouse input to the game controller.
package term

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"tidewalker/internal/app"
	"tidewalker/internal/core"
	"tidewalker/internal/render"
)

// Options configures a Client.
type Options struct {
	TPS       int
	HoldTicks uint64
	Palette   *render.Palette
	// LogPath receives log output while the screen is active. Empty
	// discards it.
	LogPath string
}

// Client runs a game controller on a terminal screen.
type Client struct {
	screen tcell.Screen
	ctl    *app.Controller
	pal    *render.Palette
	step   *core.FixedStep
	held   *heldKeys

	pending app.Input
	quit    bool
	logPath string
}

// NewClient wraps an uninitialised screen. Pass tcell.NewScreen() for a real
// terminal or a simulation screen in tests.
func NewClient(screen tcell.Screen, ctl *app.Controller, opts Options) *Client {
	pal := opts.Palette
	if pal == nil {
		pal = render.DefaultPalette
	}
	return &Client{
		screen:  screen,
		ctl:     ctl,
		pal:     pal,
		step:    core.NewFixedStep(opts.TPS),
		held:    newHeldKeys(opts.HoldTicks),
		logPath: opts.LogPath,
	}
}

// Run initialises the screen and loops until the player quits or ctx ends.
func (c *Client) Run(ctx context.Context) error {
	restore, err := c.redirectLog()
	if err != nil {
		return err
	}
	defer restore()

	if err := c.screen.Init(); err != nil {
		return err
	}
	defer c.screen.Fini()
	c.screen.SetStyle(textStyle)
	c.screen.EnableMouse()
	c.screen.Clear()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(c.step.Interval())
	defer ticker.Stop()
	c.Draw()
	for !c.quit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			c.HandleEvent(ev)
		case <-ticker.C:
			for !c.quit && c.step.ShouldStep() {
				c.Tick(ctx)
			}
			c.Draw()
		}
	}
	return nil
}

func (c *Client) redirectLog() (func(), error) {
	prev := log.Writer()
	var out io.Writer = io.Discard
	var f *os.File
	if c.logPath != "" {
		var err error
		f, err = os.OpenFile(c.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		out = f
	}
	log.SetOutput(out)
	return func() {
		log.SetOutput(prev)
		if f != nil {
			f.Close()
		}
	}, nil
}

// HandleEvent folds one terminal event into the input for the next tick.
func (c *Client) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		dir, quit := translateKey(ev, &c.pending)
		if quit {
			c.quit = true
			return
		}
		if dir != 0 {
			c.held.press(dir)
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return
		}
		x, y := ev.Position()
		n := len(c.ctl.Session().Menu().Buttons())
		i := y - menuTop(c.ctl.Session().Camera().Height, n)
		if x >= 1 && x <= 10 && i >= 0 && i < n {
			c.pending.Clicked, c.pending.Click = true, i
		}
	case *tcell.EventResize:
		c.screen.Sync()
	}
}

// Tick advances the game one step with the input gathered since the last
// tick.
func (c *Client) Tick(ctx context.Context) {
	in := c.pending
	c.pending = app.Input{}
	in.Held = c.held.keys()
	wasPaused := c.ctl.Session().Player().Paused
	if c.ctl.Step(ctx, in) {
		c.quit = true
	}
	if wasPaused != c.ctl.Session().Player().Paused {
		c.held.clear()
	}
	c.held.advance()
}

// Quit reports whether the player asked to leave.
func (c *Client) Quit() bool { return c.quit }

// Draw repaints the whole screen.
func (c *Client) Draw() {
	c.screen.Clear()
	s := c.ctl.Session()
	drawWorld(c.screen, s, c.pal)
	drawHUD(c.screen, s)
	drawPause(c.screen, s, c.ctl.Status())
	c.screen.Show()
}
