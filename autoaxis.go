// Package autoaxis chooses tick positions and labels for one axis of a 2D
// plot so that labels don't overlap while showing as much resolution as the
// available space allows. It is built as an extension to gonum/plot: plane
// coordinates are vg.Lengths, text is measured through gonum's text styles,
// and a resolved axis can be fed back into gonum as a plot.Ticker.
//
// The search itself is pure and keeps no shared state, but text measurement
// and drawing touch whatever rendering backend the Measurer and canvas wrap.
// Callers resolving axes against the same backend concurrently must
// serialize the whole span from measurement through drawing themselves.
package autoaxis

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/plot/vg"
)

var (
	// ErrInvalidAxis reports a positions/marks length mismatch at
	// construction.
	ErrInvalidAxis = errors.New("autoaxis: positions and marks differ in length")

	// ErrUnboundedSearch reports density bounds that leave no index to
	// explore (min > max, or the clamped window is empty).
	ErrUnboundedSearch = errors.New("autoaxis: density index bounds leave empty search range")

	// ErrUnknownMapping reports a mapping kind with no registered density
	// strategy.
	ErrUnknownMapping = errors.New("autoaxis: no density strategy for mapping")
)

// A Mark is an optional tick label. An invalid Mark means "tick only, no
// label, skip it when checking overlap"; a valid Mark with empty Text is a
// blank label that still occupies (zero) space in the overlap check. The
// two are not interchangeable.
type Mark struct {
	Text  string
	Valid bool
}

// Label returns a valid Mark with the given text.
func Label(s string) Mark {
	return Mark{Text: s, Valid: true}
}

// An Axis is an ordered list of tick positions in domain coordinates, each
// paired with an optional label. Axes are immutable once constructed.
type Axis struct {
	positions []float64
	marks     []Mark
}

// NewAxis constructs an Axis from index-aligned positions and marks. It
// returns ErrInvalidAxis if the slices differ in length.
func NewAxis(positions []float64, marks []Mark) (Axis, error) {
	if len(positions) != len(marks) {
		return Axis{}, fmt.Errorf("%w: %d positions, %d marks",
			ErrInvalidAxis, len(positions), len(marks))
	}
	return Axis{
		positions: slices.Clone(positions),
		marks:     slices.Clone(marks),
	}, nil
}

// Len returns the number of ticks.
func (a Axis) Len() int { return len(a.positions) }

// Position returns the i-th tick position.
func (a Axis) Position(i int) float64 { return a.positions[i] }

// Mark returns the i-th tick's optional label.
func (a Axis) Mark(i int) Mark { return a.marks[i] }

// Positions returns a copy of the tick positions in drawing order.
func (a Axis) Positions() []float64 { return slices.Clone(a.positions) }

// Marks returns a copy of the marks, index-aligned with Positions.
func (a Axis) Marks() []Mark { return slices.Clone(a.marks) }

func (a Axis) String() string {
	var sb strings.Builder
	sb.WriteString("axis[")
	for i, p := range a.positions {
		if i > 0 {
			sb.WriteString(" ")
		}
		if m := a.marks[i]; m.Valid {
			fmt.Fprintf(&sb, "%g=%q", p, m.Text)
		} else {
			fmt.Fprintf(&sb, "%g", p)
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// A Domain is the closed data-space interval [Left, Right] an axis
// represents. Left > Right is allowed and means the axis runs in
// decreasing order.
type Domain struct {
	Left, Right float64
}

// Width returns Right - Left; negative for a reversed domain.
func (d Domain) Width() float64 { return d.Right - d.Left }

// Increasing reports whether the domain was given in increasing order.
func (d Domain) Increasing() bool { return d.Left <= d.Right }

// Min returns the smaller endpoint.
func (d Domain) Min() float64 {
	return min(d.Left, d.Right)
}

// Max returns the larger endpoint.
func (d Domain) Max() float64 {
	return max(d.Left, d.Right)
}

// A Mapping converts a domain-space position to a plane-space position. It
// must be a pure function of its input.
type Mapping interface {
	Domain() Domain
	Map(x float64) vg.Length
}

// LinearMapping maps a Domain linearly onto the plane interval [Lo, Hi].
type LinearMapping struct {
	Dom    Domain
	Lo, Hi vg.Length
}

// NewLinearMapping returns a linear mapping from dom onto [lo, hi].
func NewLinearMapping(dom Domain, lo, hi vg.Length) *LinearMapping {
	return &LinearMapping{Dom: dom, Lo: lo, Hi: hi}
}

// Domain returns the mapping's data-space interval.
func (m *LinearMapping) Domain() Domain { return m.Dom }

// Map converts a domain position to a plane position.
func (m *LinearMapping) Map(x float64) vg.Length {
	w := m.Dom.Width()
	if w == 0 {
		return m.Lo
	}
	t := (x - m.Dom.Left) / w
	return m.Lo + vg.Length(t)*(m.Hi-m.Lo)
}

// Extent selects which screen dimension a label's size is measured along
// when checking for overlap.
type Extent int

const (
	// Widthwise measures label widths; use it for horizontal axes, where
	// neighboring labels collide side to side.
	Widthwise Extent = iota
	// Heightwise measures label heights; use it for vertical axes.
	Heightwise
)

func (e Extent) String() string {
	switch e {
	case Widthwise:
		return "width"
	case Heightwise:
		return "height"
	}
	return fmt.Sprintf("Extent(%d)", int(e))
}
