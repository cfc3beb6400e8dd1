// Package snapshot saves and restores the state of the CPU and its
// memory. A snapshot is the concatenated state of each component,
// compressed with brotli and prefixed by a header holding a checksum of
// the uncompressed state.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/cespare/xxhash"
	"github.com/google/brotli/go/cbrotli"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

// Version is the version of the snapshot format written by Encode.
const Version uint8 = 1

var magic = []byte("GBCS")

// headerSize is magic, version, checksum and uncompressed length.
const headerSize = 4 + 1 + 8 + 4

var (
	// ErrNotSnapshot is returned when the data does not start with a
	// snapshot header.
	ErrNotSnapshot = errors.New("snapshot: not a snapshot")
	// ErrVersion is returned for a snapshot written by an unknown version.
	ErrVersion = errors.New("snapshot: unsupported version")
	// ErrChecksum is returned when the state does not match its checksum.
	ErrChecksum = errors.New("snapshot: checksum mismatch")
)

// Fingerprint returns a hash of the state of the given components.
func Fingerprint(components ...types.Stater) uint64 {
	return xxhash.Sum64(state(components).Bytes())
}

func state(components []types.Stater) *types.State {
	s := types.NewState()
	for _, c := range components {
		c.Save(s)
	}
	return s
}

// Encode saves the state of the given components, in order.
func Encode(components ...types.Stater) ([]byte, error) {
	payload := state(components).Bytes()
	compressed, err := cbrotli.Encode(payload, cbrotli.WriterOptions{
		Quality: 9,
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot: compressing state: %w", err)
	}

	out := make([]byte, headerSize, headerSize+len(compressed))
	copy(out, magic)
	out[4] = Version
	binary.LittleEndian.PutUint64(out[5:], xxhash.Sum64(payload))
	binary.LittleEndian.PutUint32(out[13:], uint32(len(payload)))
	return append(out, compressed...), nil
}

// Decode restores the state of the given components from a snapshot
// produced by Encode with the same components in the same order.
func Decode(data []byte, components ...types.Stater) error {
	if len(data) < headerSize || !bytes.Equal(data[:4], magic) {
		return ErrNotSnapshot
	}
	if data[4] != Version {
		return fmt.Errorf("%w: %d", ErrVersion, data[4])
	}
	checksum := binary.LittleEndian.Uint64(data[5:])
	length := binary.LittleEndian.Uint32(data[13:])

	payload, err := cbrotli.Decode(data[headerSize:])
	if err != nil {
		return fmt.Errorf("snapshot: decompressing state: %w", err)
	}
	if uint32(len(payload)) != length || xxhash.Sum64(payload) != checksum {
		return ErrChecksum
	}

	s := types.StateFromBytes(payload)
	for _, c := range components {
		c.Load(s)
	}
	return s.Err()
}

// Save writes a snapshot of the given components to path. The snapshot
// is written to a temporary file first, which is then renamed over path.
func Save(path string, components ...types.Stater) error {
	data, err := Encode(components...)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load restores the given components from the snapshot at path.
func Load(path string, components ...types.Stater) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := Decode(data, components...); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
