package save

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const fileExt = ".yaml"

// FileStore keeps one YAML file per world in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates dir if needed and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("save: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(world string) string {
	return filepath.Join(s.dir, world+fileExt)
}

// Save writes the record atomically via a temp file and rename.
func (s *FileStore) Save(_ context.Context, world string, r Record) error {
	if err := CheckName(world); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}
	raw, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("save %s: %w", world, err)
	}
	tmp, err := os.CreateTemp(s.dir, world+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.path(world)); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// Load reads and validates the record for world.
func (s *FileStore) Load(_ context.Context, world string) (Record, error) {
	var r Record
	if err := CheckName(world); err != nil {
		return r, err
	}
	raw, err := os.ReadFile(s.path(world))
	if errors.Is(err, fs.ErrNotExist) {
		return r, fmt.Errorf("%w: %s", ErrNotFound, world)
	}
	if err != nil {
		return r, err
	}

	// Pointer fields tell a missing key apart from a zero value.
	var doc struct {
		X         *float32 `yaml:"x"`
		Y         *float32 `yaml:"y"`
		Health    *float64 `yaml:"health"`
		MaxHealth *float64 `yaml:"max_health"`
		Seed      *uint32  `yaml:"seed"`
		Time      *float64 `yaml:"time"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return r, fmt.Errorf("%w: %s: %v", ErrInvalidRecord, world, err)
	}
	if doc.X == nil || doc.Y == nil || doc.Health == nil || doc.MaxHealth == nil || doc.Seed == nil || doc.Time == nil {
		return r, fmt.Errorf("%w: %s: missing field", ErrInvalidRecord, world)
	}
	r = Record{X: *doc.X, Y: *doc.Y, Health: *doc.Health, MaxHealth: *doc.MaxHealth, Seed: *doc.Seed, Time: *doc.Time}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// List returns the saved world names in sorted order.
func (s *FileStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), fileExt)
		if CheckName(name) == nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Close is a no-op.
func (s *FileStore) Close() error { return nil }
