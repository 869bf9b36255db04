package checkpoint

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/Nephatrine/geomesh/cell"
)

// recordSize is the on-disk width of one cell.Cell record: six link IDs
// (uint32), three position components (float64), one region (uint16).
// This is "cell_record_size_bytes" in §6.1's file layout; it is a
// compile-time property of this build, just like cell.ID's and the
// position components' widths (§9, "compile-time size selection").
const recordSize = cell.Spokes*4 + 3*8 + 2

// headerSize is the width, in bytes, of the two header words written
// before the record stream: cell_record_size_bytes (uint32) and
// cell_count (cell.ID, uint32).
const headerSize = 4 + 4

// Save writes s's live prefix to path: the header (record size, cell
// count), then that many records sequentially, little-endian (§4.5).
//
// Writes are atomic only at the OS level; Save does not write to a
// temporary path and rename, leaving that choice to the caller per §4.5's
// note that partial writes on crash leave a corrupt file.
//
// Save also writes an advisory sidecar manifest (writeManifest); a
// failure to write the sidecar does not fail Save — the binary checkpoint
// is the contract, the sidecar is a convenience for humans.
func Save(s *cell.Store, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("checkpoint.Save: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	count := s.Extant()

	var header [headerSize]byte
	binary.LittleEndian.PutUint32(header[0:4], uint32(recordSize))
	binary.LittleEndian.PutUint32(header[4:8], uint32(count))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("checkpoint.Save: writing header: %w", err)
	}

	var rec [recordSize]byte
	for i := 0; i < count; i++ {
		c, err := s.Get(cell.ID(i))
		if err != nil {
			return fmt.Errorf("checkpoint.Save: %w", err)
		}
		encodeRecord(&rec, c)
		if _, err := w.Write(rec[:]); err != nil {
			return fmt.Errorf("checkpoint.Save: writing record %d: %w", i, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("checkpoint.Save: %w", err)
	}

	// Advisory only: the binary file above is already durable and correct,
	// so a sidecar write failure is not propagated as a Save error.
	_ = writeManifest(path, count)
	return nil
}

// Load reads requestedCount records from path into s, starting at index 0.
//
// Returns Absent if path does not exist, Incompatible if the file's header
// record size differs from this build's, or the stored count is smaller
// than requestedCount (s is left untouched in both cases), and OK once
// requestedCount records have been read and s.Extant() advanced to match.
func Load(s *cell.Store, path string, requestedCount int) (Status, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Absent, nil
		}
		return Absent, fmt.Errorf("checkpoint.Load: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return Incompatible, nil
	}
	fileRecordSize := binary.LittleEndian.Uint32(header[0:4])
	fileCellCount := binary.LittleEndian.Uint32(header[4:8])

	if fileRecordSize != uint32(recordSize) || fileCellCount < uint32(requestedCount) {
		return Incompatible, nil
	}

	var rec [recordSize]byte
	for i := 0; i < requestedCount; i++ {
		if _, err := io.ReadFull(r, rec[:]); err != nil {
			return Incompatible, nil
		}
		c := decodeRecord(&rec)
		if err := s.Set(cell.ID(i), c); err != nil {
			return Incompatible, fmt.Errorf("checkpoint.Load: %w", err)
		}
	}

	if err := s.SetExtant(requestedCount); err != nil {
		return Incompatible, fmt.Errorf("checkpoint.Load: %w", err)
	}
	return OK, nil
}

// encodeRecord serialises c into rec per the §6.1 record layout: six
// links, three position components, one region.
func encodeRecord(rec *[recordSize]byte, c cell.Cell) {
	off := 0
	for _, l := range c.Link {
		binary.LittleEndian.PutUint32(rec[off:off+4], uint32(l))
		off += 4
	}
	for _, comp := range c.V {
		binary.LittleEndian.PutUint64(rec[off:off+8], math.Float64bits(comp))
		off += 8
	}
	binary.LittleEndian.PutUint16(rec[off:off+2], uint16(c.Region))
}

// decodeRecord is the inverse of encodeRecord.
func decodeRecord(rec *[recordSize]byte) cell.Cell {
	var c cell.Cell
	off := 0
	for i := range c.Link {
		c.Link[i] = cell.ID(binary.LittleEndian.Uint32(rec[off : off+4]))
		off += 4
	}
	for i := range c.V {
		c.V[i] = math.Float64frombits(binary.LittleEndian.Uint64(rec[off : off+8]))
		off += 8
	}
	c.Region = cell.Region(binary.LittleEndian.Uint16(rec[off : off+2]))
	return c
}
