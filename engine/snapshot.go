package engine

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/ordnance/component"
)

// snapshotVersion is bumped whenever ProjectileInstance changes shape
const snapshotVersion = 1

var (
	ErrSnapshotVersion  = errors.New("snapshot version mismatch")
	ErrSnapshotCapacity = errors.New("snapshot capacity mismatch")
	ErrSnapshotCorrupt  = errors.New("snapshot slot violates timer bounds")
)

// poolBlob is the save-blob layout: every slot verbatim, enabled or not
type poolBlob struct {
	Version int                            `msgpack:"v"`
	Slots   []component.ProjectileInstance `msgpack:"slots"`
}

// Save encodes the whole pool for the host's save file
func (p *Pool) Save() ([]byte, error) {
	blob := poolBlob{
		Version: snapshotVersion,
		Slots:   p.slots[:],
	}
	data, err := msgpack.Marshal(&blob)
	if err != nil {
		return nil, fmt.Errorf("pool save: %w", err)
	}
	return data, nil
}

// Load replaces the pool contents from a Save blob
// The pool is untouched when the blob is rejected
func (p *Pool) Load(data []byte) error {
	var blob poolBlob
	if err := msgpack.Unmarshal(data, &blob); err != nil {
		return fmt.Errorf("pool load: %w", err)
	}
	if blob.Version != snapshotVersion {
		return fmt.Errorf("pool load: %w: got %d, want %d", ErrSnapshotVersion, blob.Version, snapshotVersion)
	}
	if len(blob.Slots) != len(p.slots) {
		return fmt.Errorf("pool load: %w: got %d, want %d", ErrSnapshotCapacity, len(blob.Slots), len(p.slots))
	}

	active := 0
	for i := range blob.Slots {
		s := &blob.Slots[i]
		if !s.Enabled {
			continue
		}
		if s.Timer < 0 || s.TimeRequired < 1 || s.Timer > s.TimeRequired {
			return fmt.Errorf("pool load: slot %d: %w", i, ErrSnapshotCorrupt)
		}
		active++
	}

	copy(p.slots[:], blob.Slots)
	p.active = active
	return nil
}
