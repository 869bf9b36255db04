package subdivide

import "github.com/Nephatrine/geomesh/cell"

// DefaultRegionLimit is the reference value from §4.4's "Alternative
// early-pass override": until created < DefaultRegionLimit, a new cell is
// assigned its own index as its region rather than inheriting from its
// parent/child, producing up to DefaultRegionLimit distinct regions during
// early passes. This matches original_source/geodesic.hpp's
// `#define REGION_LIMIT 10242`.
const DefaultRegionLimit cell.Region = 10242

// ancestralRegions is the number of seed (ancestral) regions the 12-region
// inheritance rule starts from (§4.4). It is independent of RegionLimit,
// which only gates how long the "assign created itself" override stays
// active; the score table itself must be sized to RegionLimit, not to
// ancestralRegions, because every cell created under the early-pass
// override carries a region value up to RegionLimit-1, and any of those
// cells can later become a parent or child once created reaches the limit.
const ancestralRegions = 12

// RegionState carries the region-assignment rule's mutable state: the
// per-region score counters and the tiebreak toggle (§4.4, §9's resolution
// of the "region tiebreak determinism" open question). It is owned
// exclusively by whichever Pass call is using it and must be constructed
// fresh — via NewRegionState — for each independent engine invocation to
// get deterministic output; it is never file-scope or package-level state.
//
// score is sized to the configured RegionLimit (original_source/
// geodesic.cpp: "static zw::cell_size_t region_score[REGION_LIMIT]"), not
// to the 12 ancestral regions: once created reaches the limit, the
// inheritance branch looks up the score of whatever region its parent and
// child actually carry, and during the early-pass override those regions
// range over [0, RegionLimit), not just [0, 12).
type RegionState struct {
	score       []int
	greaterNext bool
	limit       cell.Region
}

// Option customizes a RegionState at construction time, in the manner of
// lvlath/builder's BuilderOption / builderConfig resolution.
type Option func(*RegionState)

// WithRegionLimit overrides DefaultRegionLimit.
func WithRegionLimit(limit cell.Region) Option {
	return func(s *RegionState) { s.limit = limit }
}

// NewRegionState returns a RegionState ready for the first Pass of a fresh
// invocation: every ancestral region's score starts at 1, mirroring the
// icosahedron seeder incrementing each seed's own region score by one
// (§4.4: "initialised to zero ... where each seed increments its own").
// The tiebreak toggle starts false, so the first encountered tie assigns
// the lower of the two regions.
func NewRegionState(opts ...Option) *RegionState {
	s := &RegionState{limit: DefaultRegionLimit}
	for _, opt := range opts {
		opt(s)
	}

	size := int(s.limit)
	if size < ancestralRegions {
		size = ancestralRegions
	}
	s.score = make([]int, size)
	for i := 0; i < ancestralRegions; i++ {
		s.score[i] = 1
	}
	return s
}

// assign implements §4.4's region-assignment rule for a midpoint born
// between a cell with region a and a cell with region b, to be written at
// index created.
//
// While created is still below the configured RegionLimit, the midpoint
// is assigned its own index as a distinct region (the early-pass
// override). Once created reaches the limit, the midpoint inherits from
// its lower-scored parent, breaking ties by alternating between the
// greater and lesser of the two regions. Either way, the assigned
// region's score is incremented unconditionally — including for the
// early-pass override — matching original_source/geodesic.cpp's
// unconditional `region_score[data[created].region]++` after every cell
// is created, so the score table reflects every region actually in use by
// the time inheritance starts comparing it.
func (s *RegionState) assign(created cell.ID, a, b cell.Region) cell.Region {
	var assigned cell.Region

	if created < cell.ID(s.limit) {
		assigned = cell.Region(created)
	} else {
		switch {
		case s.score[a] > s.score[b]:
			assigned = b
		case s.score[b] > s.score[a]:
			assigned = a
		default:
			if s.greaterNext {
				assigned = max(a, b)
			} else {
				assigned = min(a, b)
			}
			s.greaterNext = !s.greaterNext
		}
	}

	s.score[assigned]++
	return assigned
}
