// Package session owns the active world and player and turns pause-menu
// intents into effects.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"tidewalker/internal/player"
	"tidewalker/internal/save"
	"tidewalker/internal/telemetry"
	"tidewalker/internal/tiles"
	"tidewalker/internal/worldgen"
)

var (
	// ErrNoSpawn reports a world without a single walkable cell.
	ErrNoSpawn = errors.New("session: no walkable spawn cell")
	// ErrNoStore reports a save or load without a configured store.
	ErrNoStore = errors.New("session: no save store configured")
	// ErrOutsideWorld reports a saved position whose feet cell is off the grid.
	ErrOutsideWorld = errors.New("session: saved position outside world")
)

// Effect is the outcome of dispatching a menu intent.
type Effect uint8

const (
	None Effect = iota
	Resumed
	Saved
	Loaded
	QuitRequested
)

func (e Effect) String() string {
	switch e {
	case Resumed:
		return "resumed"
	case Saved:
		return "saved"
	case Loaded:
		return "loaded"
	case QuitRequested:
		return "quit"
	default:
		return "none"
	}
}

// Options configures a session.
type Options struct {
	World     worldgen.Config
	Name      string
	Camera    player.Camera
	DayLength float64
	Store     save.Store
	Logger    *log.Logger
}

// Session is the single-threaded game state driven by a host loop.
type Session struct {
	opts   Options
	grid   *worldgen.Grid
	player *player.State
	menu   *player.Menu

	log    *log.Logger
	tracer trace.Tracer
}

// New generates the configured world and spawns a fresh player in it.
func New(ctx context.Context, opts Options) (*Session, error) {
	if opts.Camera.Width <= 0 || opts.Camera.Height <= 0 {
		opts.Camera = player.DefaultCamera
	}
	if opts.DayLength <= 0 {
		opts.DayLength = player.DefaultDayLength
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	s := &Session{
		opts:   opts,
		menu:   player.NewPauseMenu(),
		log:    opts.Logger,
		tracer: telemetry.Tracer("session"),
	}
	if err := s.NewGame(ctx, opts.World.Seed, opts.Name); err != nil {
		return nil, err
	}
	return s, nil
}

// NewGame replaces the world and player with a fresh game for seed.
func (s *Session) NewGame(ctx context.Context, seed uint32, name string) error {
	if err := save.CheckName(name); err != nil {
		return err
	}
	cfg := s.opts.World
	cfg.Seed = seed
	grid, err := s.generate(ctx, cfg)
	if err != nil {
		return err
	}
	p := player.New(seed, name)
	p.DayLength = s.opts.DayLength
	if err := Spawn(grid, s.opts.Camera, p); err != nil {
		return err
	}
	s.grid, s.player = grid, p
	s.opts.World = cfg
	s.menu.Reset()
	return nil
}

func (s *Session) generate(ctx context.Context, cfg worldgen.Config) (*worldgen.Grid, error) {
	start := time.Now()
	grid, err := worldgen.Generate(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("generate world: %w", err)
	}
	s.log.Printf("generated %dx%d world seed=%d noise=%q in %s",
		cfg.Width, cfg.Height, cfg.Seed, cfg.Noise, time.Since(start).Round(time.Millisecond))
	return grid, nil
}

// Grid returns the active world grid.
func (s *Session) Grid() *worldgen.Grid { return s.grid }

// Player returns the active player.
func (s *Session) Player() *player.State { return s.player }

// Menu returns the pause menu.
func (s *Session) Menu() *player.Menu { return s.menu }

// Camera returns the viewport size.
func (s *Session) Camera() player.Camera { return s.opts.Camera }

// World returns the generation config of the active grid.
func (s *Session) World() worldgen.Config { return s.opts.World }

// Tick advances the player one step.
func (s *Session) Tick(keys player.Keys) {
	s.player.Tick(s.grid, s.opts.Camera, keys)
}

// TogglePause opens or closes the pause menu.
func (s *Session) TogglePause() {
	s.player.TogglePause()
	s.menu.Reset()
}

// Dispatch performs the effect of a menu intent.
func (s *Session) Dispatch(ctx context.Context, intent player.Intent) (Effect, error) {
	switch intent {
	case player.Resume:
		s.player.Paused = false
		return Resumed, nil
	case player.Save:
		if err := s.Save(ctx); err != nil {
			return None, err
		}
		return Saved, nil
	case player.Load:
		if err := s.Load(ctx, s.player.WorldName); err != nil {
			return None, err
		}
		return Loaded, nil
	case player.Quit:
		return QuitRequested, nil
	default:
		return None, nil
	}
}

// Record captures the persisted fields of the player.
func (s *Session) Record() save.Record {
	p := s.player
	return save.Record{
		X:         p.X,
		Y:         p.Y,
		Health:    p.Health.Current,
		MaxHealth: p.Health.Max,
		Seed:      p.Seed,
		Time:      p.Time,
	}
}

// Save writes the player record under the active world name.
func (s *Session) Save(ctx context.Context) (err error) {
	ctx, span := s.tracer.Start(ctx, "session.Save")
	defer endSpan(span, &err)
	span.SetAttributes(attribute.String("world.name", s.player.WorldName))

	if s.opts.Store == nil {
		return ErrNoStore
	}
	if err := s.opts.Store.Save(ctx, s.player.WorldName, s.Record()); err != nil {
		return err
	}
	s.log.Printf("saved world %q at (%.2f, %.2f)", s.player.WorldName, s.player.X, s.player.Y)
	return nil
}

// Load restores the named save: it regenerates the grid from the stored seed
// and restores the player's scalar fields. On any error the current world
// and player are left untouched.
func (s *Session) Load(ctx context.Context, name string) (err error) {
	ctx, span := s.tracer.Start(ctx, "session.Load")
	defer endSpan(span, &err)
	span.SetAttributes(attribute.String("world.name", name))

	if s.opts.Store == nil {
		return ErrNoStore
	}
	rec, err := s.opts.Store.Load(ctx, name)
	if err != nil {
		return err
	}
	cfg := s.opts.World
	cfg.Seed = rec.Seed
	grid, err := s.generate(ctx, cfg)
	if err != nil {
		return err
	}

	fx, fy := s.opts.Camera.FeetCell(rec.X, rec.Y)
	k, ok := grid.At(fx, fy)
	if !ok {
		return fmt.Errorf("%w: feet cell (%d, %d) in %dx%d grid", ErrOutsideWorld, fx, fy, grid.W, grid.H)
	}

	p := player.New(rec.Seed, name)
	p.DayLength = s.opts.DayLength
	p.X, p.Y = rec.X, rec.Y
	p.Health = player.Health{Current: rec.Health, Max: rec.MaxHealth}
	p.Time = rec.Time
	p.Swimming = tiles.Props(k).Swimmable
	p.Light = player.Light(p.Time, p.DayLength)
	p.Offset = player.Offset(p.X, p.Y, s.opts.Camera)

	s.grid, s.player = grid, p
	s.opts.World = cfg
	s.menu.Reset()
	s.log.Printf("loaded world %q seed=%d", name, rec.Seed)
	return nil
}

// Saves lists the worlds available to Load.
func (s *Session) Saves(ctx context.Context) ([]string, error) {
	if s.opts.Store == nil {
		return nil, ErrNoStore
	}
	return s.opts.Store.List(ctx)
}

func endSpan(span trace.Span, err *error) {
	if *err != nil {
		span.RecordError(*err)
		span.SetStatus(codes.Error, (*err).Error())
	}
	span.End()
}
