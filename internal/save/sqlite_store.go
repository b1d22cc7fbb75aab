package save

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteFile is the database file name inside the save directory.
const SQLiteFile = "saves.db"

// SQLiteStore keeps all worlds in a single SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) dir/saves.db.
func OpenSQLite(dir string) (*SQLiteStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("save: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, SQLiteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=2000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("sqlite pragma %q: %w", p, err)
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS saves (
	world      TEXT PRIMARY KEY,
	x          REAL    NOT NULL,
	y          REAL    NOT NULL,
	health     REAL    NOT NULL,
	max_health REAL    NOT NULL,
	seed       INTEGER NOT NULL,
	time       REAL    NOT NULL,
	updated_at TEXT    NOT NULL
);`)
	if err != nil {
		return fmt.Errorf("sqlite schema: %w", err)
	}
	return nil
}

// Save upserts the record for world.
func (s *SQLiteStore) Save(ctx context.Context, world string, r Record) error {
	if err := CheckName(world); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO saves (world, x, y, health, max_health, seed, time, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(world) DO UPDATE SET
	x = excluded.x, y = excluded.y, health = excluded.health,
	max_health = excluded.max_health, seed = excluded.seed,
	time = excluded.time, updated_at = excluded.updated_at`,
		world, float64(r.X), float64(r.Y), r.Health, r.MaxHealth, int64(r.Seed), r.Time,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save %s: %w", world, err)
	}
	return nil
}

// Load reads and validates the record for world.
func (s *SQLiteStore) Load(ctx context.Context, world string) (Record, error) {
	if err := CheckName(world); err != nil {
		return Record{}, err
	}
	var (
		x, y, health, maxHealth, tm float64
		seed                        int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT x, y, health, max_health, seed, time FROM saves WHERE world = ?`, world,
	).Scan(&x, &y, &health, &maxHealth, &seed, &tm)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, world)
	}
	if err != nil {
		return Record{}, err
	}
	if seed < 0 || seed > int64(^uint32(0)) {
		return Record{}, fmt.Errorf("%w: seed %d out of range", ErrInvalidRecord, seed)
	}
	r := Record{X: float32(x), Y: float32(y), Health: health, MaxHealth: maxHealth, Seed: uint32(seed), Time: tm}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// List returns the saved world names in sorted order.
func (s *SQLiteStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT world FROM saves ORDER BY world`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }
