package vox

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// Atlas snapshots cache the populated volumes on disk so startup can
// skip worldgen and the distance transform. The format is gob inside a
// zstd stream; any mismatch (version, chunk edge, render distance)
// rejects the file and the caller regenerates.

const snapshotVersion = 1

type atlasSnapshot struct {
	Version        int
	Seed           int64
	ChunkEdge      int
	RenderDistance int

	Color []RGBA
	Dist  []float32
}

// SaveAtlas writes the atlas to path via a temp file and rename.
func SaveAtlas(path string, seed int64, a *Atlas) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snapshot dir: %w", err)
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("snapshot create: %w", err)
	}

	bw := bufio.NewWriter(f)
	enc, err := zstd.NewWriter(bw, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		f.Close()
		return fmt.Errorf("zstd writer: %w", err)
	}

	snap := atlasSnapshot{
		Version:        snapshotVersion,
		Seed:           seed,
		ChunkEdge:      ChunkSize,
		RenderDistance: a.RenderDistance,
		Color:          a.Color,
		Dist:           a.Dist,
	}
	if err := gob.NewEncoder(enc).Encode(&snap); err != nil {
		enc.Close()
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("snapshot encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("zstd close: %w", err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("snapshot flush: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("snapshot close: %w", err)
	}
	return os.Rename(tmp, path)
}

// LoadAtlas reads a snapshot and reconstructs the atlas. renderDistance
// must match the caller's configuration; a stale snapshot is an error,
// not a silent partial load.
func LoadAtlas(path string, renderDistance int) (int64, *Atlas, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(bufio.NewReader(f))
	if err != nil {
		return 0, nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()

	var snap atlasSnapshot
	if err := gob.NewDecoder(dec).Decode(&snap); err != nil {
		return 0, nil, fmt.Errorf("snapshot decode: %w", err)
	}
	if snap.Version != snapshotVersion {
		return 0, nil, fmt.Errorf("snapshot version %d, want %d", snap.Version, snapshotVersion)
	}
	if snap.ChunkEdge != ChunkSize {
		return 0, nil, fmt.Errorf("snapshot chunk edge %d, want %d", snap.ChunkEdge, ChunkSize)
	}
	if snap.RenderDistance != renderDistance {
		return 0, nil, fmt.Errorf("snapshot render distance %d, want %d", snap.RenderDistance, renderDistance)
	}

	a := NewAtlas(snap.RenderDistance)
	if len(snap.Color) != len(a.Color) || len(snap.Dist) != len(a.Dist) {
		return 0, nil, fmt.Errorf("snapshot volume size mismatch")
	}
	a.Color = snap.Color
	a.Dist = snap.Dist
	return snap.Seed, a, nil
}
