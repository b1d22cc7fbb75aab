package worldgen

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"tidewalker/internal/core"
	"tidewalker/internal/tiles"
)

const dumpVersion = 1

// ErrBadDump reports a map dump that cannot be decoded into a valid grid.
var ErrBadDump = errors.New("worldgen: bad map dump")

// DumpHeader is written as a JSON line ahead of the gob body so a dump can be
// identified with zstdcat | head -1.
type DumpHeader struct {
	Version int    `json:"version"`
	Seed    uint32 `json:"seed"`
	Noise   string `json:"noise"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

type dumpBody struct {
	Header DumpHeader
	Cells  []byte
}

// WriteDump writes a zstd-compressed snapshot of g. Dumps are an inspection
// aid for tooling; saves never include the grid.
func WriteDump(w io.Writer, g *Grid, cfg Config) error {
	hdr := DumpHeader{Version: dumpVersion, Seed: cfg.Seed, Noise: cfg.Noise, Width: g.W, Height: g.H}
	hb, err := json.Marshal(hdr)
	if err != nil {
		return fmt.Errorf("header encode: %w", err)
	}
	cells := g.Cells()
	body := dumpBody{Header: hdr, Cells: make([]byte, len(cells))}
	for i, k := range cells {
		body.Cells[i] = byte(k)
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(enc)
	if _, err := bw.Write(hb); err != nil {
		enc.Close()
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		enc.Close()
		return err
	}
	if err := gob.NewEncoder(bw).Encode(&body); err != nil {
		enc.Close()
		return fmt.Errorf("gob encode: %w", err)
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// ReadDump decodes a dump produced by WriteDump.
func ReadDump(r io.Reader) (*Grid, DumpHeader, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, DumpHeader{}, err
	}
	defer dec.Close()

	br := bufio.NewReader(dec)
	line, err := br.ReadBytes('\n')
	if err != nil {
		return nil, DumpHeader{}, fmt.Errorf("%w: header: %v", ErrBadDump, err)
	}
	var lineHdr DumpHeader
	if err := json.Unmarshal(line, &lineHdr); err != nil {
		return nil, DumpHeader{}, fmt.Errorf("%w: header: %v", ErrBadDump, err)
	}
	var body dumpBody
	if err := gob.NewDecoder(br).Decode(&body); err != nil {
		return nil, DumpHeader{}, fmt.Errorf("%w: gob decode: %v", ErrBadDump, err)
	}

	hdr := body.Header
	if hdr != lineHdr {
		return nil, hdr, fmt.Errorf("%w: header line %+v disagrees with body %+v", ErrBadDump, lineHdr, hdr)
	}
	if hdr.Version != dumpVersion {
		return nil, hdr, fmt.Errorf("%w: version %d", ErrBadDump, hdr.Version)
	}
	if err := (Config{Width: hdr.Width, Height: hdr.Height}).Validate(); err != nil {
		return nil, hdr, fmt.Errorf("%w: %v", ErrBadDump, err)
	}
	if len(body.Cells) != (core.Size{W: hdr.Width, H: hdr.Height}).Area() {
		return nil, hdr, fmt.Errorf("%w: %d cells for %dx%d", ErrBadDump, len(body.Cells), hdr.Width, hdr.Height)
	}

	g := newGrid(hdr.Width, hdr.Height)
	for i, b := range body.Cells {
		k := tiles.Kind(b)
		if !k.Valid() {
			return nil, hdr, fmt.Errorf("%w: unknown tile %d at %d", ErrBadDump, b, i)
		}
		g.cells[i] = k
	}
	return g, hdr, nil
}

// WriteDumpFile writes a dump to path, creating parent directories.
func WriteDumpFile(path string, g *Grid, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if err := WriteDump(f, g, cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadDumpFile reads a dump from path.
func ReadDumpFile(path string) (*Grid, DumpHeader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, DumpHeader{}, err
	}
	defer f.Close()
	return ReadDump(f)
}
