package entity

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/rocketscienceinc/latix/internal/apperror"
)

const (
	// SnapshotVersion is the only record layout this build reads and writes.
	SnapshotVersion = 1

	snapshotMagic  = "LTXS"
	tilesOffset    = len(snapshotMagic) + 1
	spawnsOffset   = tilesOffset + Dimension*Dimension
	snapshotLength = spawnsOffset + 4 + 4
)

// Snapshot is the persisted state of a session: the grid and both spawn budgets.
//
// Binary layout (big-endian):
//
//	[0:4]   magic "LTXS"
//	[4]     version
//	[5:86]  tiles, y-major, one byte each
//	[86:90] player 1 remaining spawns, int32
//	[90:94] player 2 remaining spawns, int32
type Snapshot struct {
	Tiles         [Dimension][Dimension]Tile
	Player1Spawns int
	Player2Spawns int
}

// Validate - checks every tile and both budgets.
func (that *Snapshot) Validate() error {
	for y := 0; y < Dimension; y++ {
		for x := 0; x < Dimension; x++ {
			if !that.Tiles[y][x].Valid() {
				return fmt.Errorf("%w: tile %s holds %d", apperror.ErrCorruptSave, At(x, y), that.Tiles[y][x])
			}
		}
	}

	if that.Player1Spawns < 0 || that.Player1Spawns > InitialSpawns {
		return fmt.Errorf("%w: player 1 spawns %d", apperror.ErrCorruptSave, that.Player1Spawns)
	}

	if that.Player2Spawns < 0 || that.Player2Spawns > InitialSpawns {
		return fmt.Errorf("%w: player 2 spawns %d", apperror.ErrCorruptSave, that.Player2Spawns)
	}

	return nil
}

// MarshalBinary - encodes the snapshot in the versioned record layout.
func (that *Snapshot) MarshalBinary() ([]byte, error) {
	if err := that.Validate(); err != nil {
		return nil, err
	}

	buf := bytes.NewBuffer(make([]byte, 0, snapshotLength))
	buf.WriteString(snapshotMagic)
	buf.WriteByte(SnapshotVersion)

	for y := 0; y < Dimension; y++ {
		for x := 0; x < Dimension; x++ {
			buf.WriteByte(byte(that.Tiles[y][x]))
		}
	}

	spawns := make([]byte, 8)
	binary.BigEndian.PutUint32(spawns[0:4], uint32(int32(that.Player1Spawns)))
	binary.BigEndian.PutUint32(spawns[4:8], uint32(int32(that.Player2Spawns)))
	buf.Write(spawns)

	return buf.Bytes(), nil
}

// UnmarshalBinary - decodes a record. The receiver is only written once the
// whole record has been validated.
func (that *Snapshot) UnmarshalBinary(data []byte) error {
	if len(data) != snapshotLength {
		return fmt.Errorf("%w: record is %d bytes, want %d", apperror.ErrCorruptSave, len(data), snapshotLength)
	}

	if string(data[:len(snapshotMagic)]) != snapshotMagic {
		return fmt.Errorf("%w: bad magic", apperror.ErrCorruptSave)
	}

	if version := data[len(snapshotMagic)]; version != SnapshotVersion {
		return fmt.Errorf("%w: %d", apperror.ErrUnsupportedVersion, version)
	}

	var decoded Snapshot
	for i, raw := range data[tilesOffset:spawnsOffset] {
		decoded.Tiles[i/Dimension][i%Dimension] = Tile(raw)
	}

	decoded.Player1Spawns = int(int32(binary.BigEndian.Uint32(data[spawnsOffset : spawnsOffset+4])))
	decoded.Player2Spawns = int(int32(binary.BigEndian.Uint32(data[spawnsOffset+4 : spawnsOffset+8])))

	if err := decoded.Validate(); err != nil {
		return err
	}

	*that = decoded

	return nil
}
