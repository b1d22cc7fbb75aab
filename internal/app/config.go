package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"tidewalker/internal/core"
	"tidewalker/internal/noise"
	"tidewalker/internal/player"
	"tidewalker/internal/save"
	"tidewalker/internal/worldgen"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TIDEWALKER_"

// ErrInvalidConfig reports a value Validate rejects.
var ErrInvalidConfig = errors.New("app: invalid config")

// Config represents the runtime parameters for the game.
type Config struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Seed        uint32  `yaml:"seed"`
	World       string  `yaml:"world"`
	Noise       string  `yaml:"noise"`
	CamWidth    int     `yaml:"cam_width"`
	CamHeight   int     `yaml:"cam_height"`
	TPS         int     `yaml:"tps"`
	Scale       int     `yaml:"scale"`
	DayLength   float64 `yaml:"day_length"`
	SaveDir     string  `yaml:"save_dir"`
	SaveBackend string  `yaml:"save_backend"`
	Telemetry   bool    `yaml:"telemetry"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:       1000,
		Height:      1000,
		Seed:        42,
		World:       "world",
		Noise:       noise.DefaultBackend,
		CamWidth:    player.DefaultCamera.Width,
		CamHeight:   player.DefaultCamera.Height,
		TPS:         60,
		Scale:       4,
		DayLength:   player.DefaultDayLength,
		SaveDir:     "saves",
		SaveBackend: "yaml",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "world width in tiles")
	fs.IntVar(&c.Height, "height", c.Height, "world height in tiles")
	fs.Func("seed", fmt.Sprintf("world seed, or \"random\" (default %d)", c.Seed), func(v string) error {
		seed, err := ParseSeed(v)
		if err != nil {
			return err
		}
		c.Seed = seed
		return nil
	})
	fs.StringVar(&c.World, "world", c.World, "world name used for saves")
	fs.StringVar(&c.Noise, "noise", c.Noise, "noise backend ("+strings.Join(noise.Backends(), ", ")+")")
	fs.IntVar(&c.CamWidth, "cam-width", c.CamWidth, "visible tiles across")
	fs.IntVar(&c.CamHeight, "cam-height", c.CamHeight, "visible tiles down")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per tile edge divided by 8")
	fs.Float64Var(&c.DayLength, "day-length", c.DayLength, "length of a day in time units")
	fs.StringVar(&c.SaveDir, "save-dir", c.SaveDir, "directory for save files")
	fs.StringVar(&c.SaveBackend, "save-backend", c.SaveBackend, "save store (yaml, sqlite)")
	fs.BoolVar(&c.Telemetry, "telemetry", c.Telemetry, "export traces over OTLP/HTTP")
}

// ParseSeed reads a decimal uint32 seed. "random" picks one from the clock.
func ParseSeed(v string) (uint32, error) {
	if v == "random" {
		return core.RandomSeed(), nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

// LoadFile overlays the keys present in a YAML file onto c.
func (c *Config) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadDotEnv reads .env files into the process environment. Variables that
// are already set win.
func LoadDotEnv(files ...string) error {
	return godotenv.Load(files...)
}

// ApplyEnv overrides fields from TIDEWALKER_* variables found by lookup.
// A nil lookup reads the process environment.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	ints := map[string]*int{
		"WIDTH":      &c.Width,
		"HEIGHT":     &c.Height,
		"CAM_WIDTH":  &c.CamWidth,
		"CAM_HEIGHT": &c.CamHeight,
		"TPS":        &c.TPS,
		"SCALE":      &c.Scale,
	}
	for key, dst := range ints {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = n
	}

	strs := map[string]*string{
		"WORLD":        &c.World,
		"NOISE":        &c.Noise,
		"SAVE_DIR":     &c.SaveDir,
		"SAVE_BACKEND": &c.SaveBackend,
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}

	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		seed, err := ParseSeed(v)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvPrefix + "DAY_LENGTH"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sDAY_LENGTH: %w", EnvPrefix, err)
		}
		c.DayLength = f
	}
	if v, ok := lookup(EnvPrefix + "TELEMETRY"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sTELEMETRY: %w", EnvPrefix, err)
		}
		c.Telemetry = b
	}
	return nil
}

// Validate rejects values the game cannot run with.
func (c *Config) Validate() error {
	if err := c.WorldConfig().Validate(); err != nil {
		return err
	}
	if err := save.CheckName(c.World); err != nil {
		return err
	}
	switch {
	case c.CamWidth <= 0 || c.CamHeight <= 0:
		return fmt.Errorf("%w: camera %dx%d", ErrInvalidConfig, c.CamWidth, c.CamHeight)
	case c.CamWidth/2 >= c.Width || c.CamHeight/2+2 >= c.Height:
		return fmt.Errorf("%w: camera %dx%d larger than world %dx%d", ErrInvalidConfig, c.CamWidth, c.CamHeight, c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %d", ErrInvalidConfig, c.Scale)
	case !(c.DayLength > 0):
		return fmt.Errorf("%w: day length %v", ErrInvalidConfig, c.DayLength)
	case c.SaveBackend != "" && c.SaveBackend != "yaml" && c.SaveBackend != "sqlite":
		return fmt.Errorf("%w: save backend %q", ErrInvalidConfig, c.SaveBackend)
	}
	if _, err := noise.New(c.Noise, c.Seed); err != nil {
		return err
	}
	return nil
}

// WorldConfig returns the generation parameters.
func (c *Config) WorldConfig() worldgen.Config {
	return worldgen.Config{Width: c.Width, Height: c.Height, Seed: c.Seed, Noise: c.Noise}
}

// Camera returns the viewport size.
func (c *Config) Camera() player.Camera {
	return player.Camera{Width: c.CamWidth, Height: c.CamHeight}
}
