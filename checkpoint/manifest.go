package checkpoint

import (
	"os"

	"github.com/rs/xid"
	"gopkg.in/yaml.v3"

	"github.com/Nephatrine/geomesh/cell"
)

// manifestSuffix names the advisory sidecar Save writes next to the
// binary checkpoint.
const manifestSuffix = ".meta.yaml"

// manifest is the advisory, human-readable companion to a binary
// checkpoint: enough to identify which engine run produced it without
// parsing the record stream. Load never reads this file — see the package
// doc comment.
type manifest struct {
	BuildID         string `yaml:"build_id"`
	Iterations      *int   `yaml:"iterations,omitempty"`
	CellCount       int    `yaml:"cell_count"`
	RecordSizeBytes int    `yaml:"record_size_bytes"`
}

// writeManifest renders a manifest for a checkpoint holding count cells
// and writes it to path+manifestSuffix. BuildID is a fresh xid per Save
// call, so two checkpoints written moments apart (even to the same path,
// overwriting each other) remain distinguishable in logs that recorded
// the id ahead of time. Iterations is omitted when count does not land on
// an exact C(k) (e.g. a store saved mid-construction by a caller that
// manages Extant itself); the binary file is still fully well-formed.
func writeManifest(path string, count int) error {
	m := manifest{
		BuildID:         xid.New().String(),
		CellCount:       count,
		RecordSizeBytes: recordSize,
	}
	if k, ok := cell.IterationForCount(cell.ID(count)); ok {
		m.Iterations = &k
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path+manifestSuffix, data, 0o644)
}
