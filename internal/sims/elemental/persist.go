package elemental

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// SnapshotFileVersion is written into every snapshot file header.
const SnapshotFileVersion = 1

// SnapshotHeader is the human-readable first line of a snapshot file.
type SnapshotHeader struct {
	Version int    `json:"version"`
	Label   string `json:"label"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Tick    uint64 `json:"tick"`
}

type snapshotFile struct {
	Header SnapshotHeader
	Cells  []Cell
}

// WriteSnapshotFile stores snap at path as a JSON header line followed by a
// gob body, all inside a zstd stream.
func WriteSnapshotFile(path string, snap ArenaSnapshot, tick uint64) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	bw := bufio.NewWriterSize(enc, 64*1024)

	body := snapshotFile{
		Header: SnapshotHeader{
			Version: SnapshotFileVersion,
			Label:   snap.Label,
			Width:   snap.Width,
			Height:  snap.Height,
			Tick:    tick,
		},
		Cells: snap.Cells,
	}
	hb, err := json.Marshal(body.Header)
	if err != nil {
		_ = enc.Close()
		return err
	}
	if _, err := bw.Write(hb); err != nil {
		_ = enc.Close()
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		_ = enc.Close()
		return err
	}
	if err := gob.NewEncoder(bw).Encode(&body); err != nil {
		_ = enc.Close()
		return fmt.Errorf("%s: gob encode: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

// ReadSnapshotFile loads a snapshot written by WriteSnapshotFile.
func ReadSnapshotFile(path string) (ArenaSnapshot, SnapshotHeader, error) {
	f, err := os.Open(path)
	if err != nil {
		return ArenaSnapshot{}, SnapshotHeader{}, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return ArenaSnapshot{}, SnapshotHeader{}, err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 64*1024)
	line, err := br.ReadBytes('\n')
	if err != nil {
		return ArenaSnapshot{}, SnapshotHeader{}, fmt.Errorf("%s: read header: %w", path, err)
	}
	var hdr SnapshotHeader
	if err := json.Unmarshal(line, &hdr); err != nil {
		return ArenaSnapshot{}, SnapshotHeader{}, fmt.Errorf("%s: header: %w", path, err)
	}
	if hdr.Version != SnapshotFileVersion {
		return ArenaSnapshot{}, hdr, fmt.Errorf("%s: unsupported snapshot version %d", path, hdr.Version)
	}

	var body snapshotFile
	if err := gob.NewDecoder(br).Decode(&body); err != nil {
		return ArenaSnapshot{}, hdr, fmt.Errorf("%s: gob decode: %w", path, err)
	}
	if len(body.Cells) != hdr.Width*hdr.Height {
		return ArenaSnapshot{}, hdr, fmt.Errorf("%s: %d cells for %dx%d grid", path, len(body.Cells), hdr.Width, hdr.Height)
	}
	return ArenaSnapshot{
		Cells:  body.Cells,
		Width:  hdr.Width,
		Height: hdr.Height,
		Label:  hdr.Label,
	}, hdr, nil
}
