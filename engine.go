package geomesh

import (
	"fmt"
	"log"

	"github.com/Nephatrine/geomesh/cell"
	"github.com/Nephatrine/geomesh/checkpoint"
	"github.com/Nephatrine/geomesh/subdivide"
)

// Option customizes an Engine at construction time, in the manner of
// lvlath/builder's BuilderOption / builderConfig resolution: later options
// override earlier ones, and an Engine's behaviour never depends on
// package-level mutable state.
type Option func(*Engine)

// WithLogger attaches a logger that receives one line per completed pass
// (extant count, pass index) during Reach. A nil logger (the default)
// produces no output — logging is strictly opt-in, never required for
// correctness (§2's ambient logging note).
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithRegionOptions forwards options to the subdivide.RegionState Reach
// constructs for each invocation, e.g. subdivide.WithRegionLimit.
func WithRegionOptions(opts ...subdivide.Option) Option {
	return func(e *Engine) { e.regionOpts = append(e.regionOpts, opts...) }
}

// Engine is a thin orchestrator over the mesh primitives, realizing §6.3's
// invocation pattern as a single call. Engine holds no mesh state itself
// between calls to Reach — every Reach constructs a fresh RegionState, per
// §9's resolution of the region-tiebreak open question — so one Engine
// value may be reused safely across independent builds.
type Engine struct {
	logger     *log.Logger
	regionOpts []subdivide.Option
}

// NewEngine returns an Engine configured by opts.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reach implements §6.3's invocation pattern: probe the checkpoint at
// checkpointPath (if non-empty) for a mesh already built to
// targetIterations; on "ok", return it unchanged. On "absent" or
// "incompatible", seed the icosahedron and apply Subdivide until
// extant == CellsPerIteration(targetIterations), then, if checkpointPath is
// non-empty, save the result.
//
// Reach performs exactly the loop described in the specification and
// nothing more; callers who need to resume from a lower-iteration
// checkpoint and continue from there should drive AllocateFor, Load, and
// Subdivide directly (see checkpoint package tests for that composition).
func (e *Engine) Reach(targetIterations int, checkpointPath string) (*cell.Store, error) {
	s, err := AllocateFor(targetIterations)
	if err != nil {
		return nil, fmt.Errorf("geomesh.Engine.Reach: %w", err)
	}

	if checkpointPath != "" {
		status, err := Load(s, checkpointPath, int(cell.CellsPerIteration(targetIterations)))
		if err != nil {
			return nil, fmt.Errorf("geomesh.Engine.Reach: %w", err)
		}
		if status == checkpoint.OK {
			e.logf("reach: loaded %s, extant=%d", checkpointPath, s.Extant())
			return s, nil
		}
	}

	if err := SeedIcosahedron(s); err != nil {
		return nil, fmt.Errorf("geomesh.Engine.Reach: %w", err)
	}

	state := subdivide.NewRegionState(e.regionOpts...)
	for pass := 1; pass <= targetIterations; pass++ {
		if err := Subdivide(s, state); err != nil {
			return nil, fmt.Errorf("geomesh.Engine.Reach: %w", err)
		}
		e.logf("reach: pass %d/%d complete, extant=%d", pass, targetIterations, s.Extant())
	}

	if checkpointPath != "" {
		if err := Save(s, checkpointPath); err != nil {
			return nil, fmt.Errorf("geomesh.Engine.Reach: %w", err)
		}
	}

	return s, nil
}

// logf writes a progress line if a logger is configured; it is a no-op
// otherwise.
func (e *Engine) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}
