package autoaxis

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot/vg"
)

// Search defaults, overridable per call through Options.
const (
	// DefaultRadius is how far the search explores on each side of the
	// strategy's density guess.
	DefaultRadius = 5

	// DefaultMinDistCaps is the required gap between adjacent labels, in
	// capital-letter heights.
	DefaultMinDistCaps = 1.0
)

// degenerateRelTol guards the zero-width test against catastrophic
// cancellation for domains far from the origin.
const degenerateRelTol = 1e-10

// A DensityStrategy defines what "tick density" means for one mapping kind
// and how to synthesize an axis at a given density. Density indices are
// signed and unbounded: a larger index always means a larger step and
// sparser ticks. Generate must be a pure function of (mapping, index).
type DensityStrategy interface {
	// GuessIndex returns a reasonable starting density for the mapping
	// and optional hard bounds on the explorable index range.
	GuessIndex(m Mapping) (guess int, bounds IndexBounds)

	// Generate deterministically synthesizes the candidate axis at the
	// given density index.
	Generate(m Mapping, index int) (Axis, error)
}

// IndexBounds optionally limits the density indices a search may explore.
// A side with its Has flag unset does not constrain that side.
type IndexBounds struct {
	Min, Max       int
	HasMin, HasMax bool
}

// StrategyFor returns the default density strategy for a mapping, selected
// by its concrete type. It returns ErrUnknownMapping for mapping kinds
// with no registered strategy.
func StrategyFor(m Mapping) (DensityStrategy, error) {
	switch m.(type) {
	case *LinearMapping:
		return Linear{}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownMapping, m)
}

// Options configures one axis resolution. The zero value means defaults:
// radius DefaultRadius, minimum distance DefaultMinDistCaps capital
// heights, and the strategy chosen by StrategyFor.
type Options struct {
	Radius      int
	MinDistCaps float64
	Strategy    DensityStrategy
}

// ResolveAxis produces the axis to draw for a mapping. A non-nil manual
// axis passes through untouched; otherwise the best-axis search runs over
// densities near the strategy's guess, scoring candidates by measured
// label overlap along ext. meas must already reflect the style the labels
// will be drawn with, or the measured widths are meaningless.
func ResolveAxis(m Mapping, manual *Axis, ext Extent, meas Measurer, opts Options) (Axis, error) {
	if manual != nil {
		return *manual, nil
	}
	strat := opts.Strategy
	if strat == nil {
		var err error
		strat, err = StrategyFor(m)
		if err != nil {
			return Axis{}, err
		}
	}
	radius := opts.Radius
	if radius == 0 {
		radius = DefaultRadius
	}
	caps := opts.MinDistCaps
	if caps == 0 {
		caps = DefaultMinDistCaps
	}
	minDist := vg.Length(caps) * meas.CapHeight()
	return PickBestAxis(m, strat, ext, meas, minDist, radius)
}

// PickBestAxis runs the density search: generate a candidate axis at every
// index within radius of the strategy's guess (clamped to its bounds),
// score each by badness, and return the least bad. Ties go to the lowest
// index. A zero-width domain short-circuits to a single labeled tick at
// the left endpoint.
//
// The search is a bounded brute force: the badness tiers make the score
// discontinuous, and there are only 2*radius+1 candidates, so there is
// nothing cleverer worth doing.
func PickBestAxis(m Mapping, strat DensityStrategy, ext Extent, meas Measurer, minDist vg.Length, radius int) (Axis, error) {
	d := m.Domain()
	if degenerate(d) {
		return NewAxis([]float64{d.Left}, []Mark{Label(defaultLabel(d.Left))})
	}

	guess, bounds := strat.GuessIndex(m)
	if bounds.HasMin && bounds.HasMax && bounds.Min > bounds.Max {
		return Axis{}, fmt.Errorf("%w: min %d, max %d", ErrUnboundedSearch, bounds.Min, bounds.Max)
	}
	lo, hi := guess-radius, guess+radius
	if bounds.HasMin && bounds.Min > lo {
		lo = bounds.Min
	}
	if bounds.HasMax && bounds.Max < hi {
		hi = bounds.Max
	}
	if lo > hi {
		return Axis{}, fmt.Errorf("%w: [%d, %d] after clamping", ErrUnboundedSearch, lo, hi)
	}

	var best Axis
	bestScore := math.Inf(1)
	for index := lo; index <= hi; index++ {
		ax, err := strat.Generate(m, index)
		if err != nil {
			return Axis{}, err
		}
		score := badnessTierEmpty
		if hasMarks(ax) {
			overlap, ok, err := MeasureOverlap(m, ax, ext, meas)
			if err != nil {
				// The measurer can't size this candidate's labels.
				// Other candidates may still work, so rank it with
				// the empty axes instead of failing the search.
				score = badnessTierEmpty
			} else {
				score = badness(overlap, ok, minDist)
			}
		}
		if score < bestScore {
			best, bestScore = ax, score
		}
	}
	return best, nil
}

// Badness tiers, worst to best. Within a tier the squashed overlap
// magnitude breaks ties; squash keeps every tier's scores inside a unit
// band so no amount of overlap can promote a candidate across tiers.
const (
	badnessTierEmpty    = 4.0 // nothing labeled at all
	badnessTierCollide  = 3.0 // labels visually overlap
	badnessTierNoSignal = 2.0 // one label: spacing unmeasurable
	badnessTierTight    = 1.0 // gap exists but under the minimum
)

// badness scores a measured overlap. Lower is better. Among comfortably
// spaced candidates the one packed closest to the minimum gap wins, so the
// search prefers the densest axis that still reads cleanly.
func badness(overlap vg.Length, ok bool, minDist vg.Length) float64 {
	switch {
	case !ok:
		return badnessTierNoSignal
	case overlap > 0:
		return badnessTierCollide + squash(float64(overlap))
	case overlap > -minDist:
		return badnessTierTight + squash(float64(overlap+minDist))
	default:
		return squash(float64(minDist - overlap))
	}
}

// squash maps [0, inf) monotonically onto [0, 1).
func squash(x float64) float64 {
	return x / (1 + x)
}

func hasMarks(ax Axis) bool {
	for i := 0; i < ax.Len(); i++ {
		if ax.Mark(i).Valid {
			return true
		}
	}
	return false
}

// degenerate reports whether the domain's width is zero or numerically
// negligible next to its endpoints.
func degenerate(d Domain) bool {
	w := math.Abs(d.Width())
	return w == 0 || w <= degenerateRelTol*max(math.Abs(d.Left), math.Abs(d.Right))
}

func defaultLabel(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
