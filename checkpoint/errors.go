// Package checkpoint persists a cell.Store to a binary file and restores
// it, per §4.5/§6.1 of the mesh specification: a little-endian,
// host-float-width record stream gated by a header that records the
// in-memory record size, so a reader with a different build's integer or
// float widths declines cleanly rather than misinterpreting the bytes.
//
// Save additionally writes an advisory YAML sidecar describing the
// checkpoint (iteration count, cell count, a build identifier) for
// operators inspecting checkpoints on disk; Load never consults it — the
// ok/absent/incompatible decision is made exclusively from the binary
// header (§6.1).
package checkpoint

import "errors"

// ErrMismatch indicates the file's header record size does not match this
// build's cell.Cell encoding, or the stored cell count is smaller than the
// requested count (§4.5's "incompatible" outcome). The file is left
// untouched. Load reports this condition as the Incompatible status with a
// nil error; it does not return ErrMismatch.
var ErrMismatch = errors.New("checkpoint: incompatible checkpoint file")

// Status is the tri-state outcome of Load (§4.5/§6.2).
type Status int

const (
	// Absent means the named file does not exist.
	Absent Status = iota
	// Incompatible means the file exists but its header does not match
	// this build, or holds fewer cells than requested.
	Incompatible
	// OK means requested_count records were read successfully.
	OK
)

// String renders a Status for diagnostics and test failure messages.
func (st Status) String() string {
	switch st {
	case Absent:
		return "absent"
	case Incompatible:
		return "incompatible"
	case OK:
		return "ok"
	default:
		return "unknown"
	}
}
