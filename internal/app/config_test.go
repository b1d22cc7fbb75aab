package app

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"tidewalker/internal/noise"
	"tidewalker/internal/worldgen"
)

func TestDefaultsValidate(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-width", "64", "-height", "48", "-seed", "4000000000", "-noise", "simplex", "-save-backend", "sqlite", "-telemetry"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 48 || cfg.Seed != 4000000000 {
		t.Fatalf("world = %dx%d seed %d", cfg.Width, cfg.Height, cfg.Seed)
	}
	if cfg.Noise != "simplex" || cfg.SaveBackend != "sqlite" || !cfg.Telemetry {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestBindRejectsNegativeSeed(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-seed", "-1"}); err == nil {
		t.Fatal("negative seed accepted")
	}
}

func TestLoadFileOverlaysKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tidewalker.yaml")
	if err := os.WriteFile(path, []byte("width: 200\nworld: island\nday_length: 12.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Width != 200 || cfg.World != "island" || cfg.DayLength != 12.5 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Height != 1000 {
		t.Fatalf("height = %d, want default kept", cfg.Height)
	}
}

func TestLoadFileErrors(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: [1, 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := cfg.LoadFile(path); err == nil {
		t.Fatal("malformed yaml accepted")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"TIDEWALKER_WIDTH":      "300",
		"TIDEWALKER_SEED":       "7",
		"TIDEWALKER_WORLD":      "cove",
		"TIDEWALKER_DAY_LENGTH": "20",
		"TIDEWALKER_TELEMETRY":  "true",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	cfg := NewConfig()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Width != 300 || cfg.Seed != 7 || cfg.World != "cove" || cfg.DayLength != 20 || !cfg.Telemetry {
		t.Fatalf("cfg = %+v", cfg)
	}

	env["TIDEWALKER_TPS"] = "fast"
	if err := cfg.ApplyEnv(lookup); err == nil {
		t.Fatal("non-numeric TPS accepted")
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, worldgen.ErrInvalidDimensions},
		{"huge height", func(c *Config) { c.Height = worldgen.MaxDimension + 1 }, worldgen.ErrInvalidDimensions},
		{"camera", func(c *Config) { c.CamWidth = 0 }, ErrInvalidConfig},
		{"camera wider than world", func(c *Config) { c.Width, c.CamWidth = 8, 16 }, ErrInvalidConfig},
		{"tps", func(c *Config) { c.TPS = 0 }, ErrInvalidConfig},
		{"day length", func(c *Config) { c.DayLength = 0 }, ErrInvalidConfig},
		{"backend", func(c *Config) { c.SaveBackend = "mongo" }, ErrInvalidConfig},
		{"noise", func(c *Config) { c.Noise = "worley" }, noise.ErrUnknownBackend},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseSeed(t *testing.T) {
	if n, err := ParseSeed("4294967295"); err != nil || n != 4294967295 {
		t.Fatalf("ParseSeed(max) = %d, %v", n, err)
	}
	if _, err := ParseSeed("4294967296"); err == nil {
		t.Fatal("seed above uint32 accepted")
	}
	if n, err := ParseSeed("random"); err != nil || n == 0 {
		t.Fatalf("ParseSeed(random) = %d, %v", n, err)
	}
}
