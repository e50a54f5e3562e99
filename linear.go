package autoaxis

import (
	"fmt"
	"math"
	"strconv"
)

// Default scientific-notation thresholds: labels switch to mantissa-e-exp
// form when the domain's order of magnitude falls outside [MinExp, MaxExp].
const (
	DefaultMinExp = -5
	DefaultMaxExp = 5
)

// Linear is the density strategy for linear mappings. The density index
// encodes a step size of 10^e * {1, 2, 5}: index = 3*e + 0, 1 or 2. Each
// index step up multiplies the tick spacing by 2, 2.5 or 2, so the search
// moves through the usual 1-2-5 progression.
//
// If MinExp and MaxExp are both zero the default thresholds are used. A
// non-nil Label overrides the built-in numeric formatting entirely.
type Linear struct {
	MinExp, MaxExp int
	Label          func(v float64) string
}

func (l Linear) exps() (minExp, maxExp int) {
	if l.MinExp == 0 && l.MaxExp == 0 {
		return DefaultMinExp, DefaultMaxExp
	}
	return l.MinExp, l.MaxExp
}

// GuessIndex starts the search at the order of magnitude of the domain's
// width, with no bounds in either direction.
func (l Linear) GuessIndex(m Mapping) (int, IndexBounds) {
	w := math.Abs(m.Domain().Width())
	return 3 * int(math.Floor(math.Log10(w))), IndexBounds{}
}

// Generate synthesizes the tick axis for the given density index. Every
// tick is a multiple of the step implied by index, lies within the domain,
// and carries a label.
func (l Linear) Generate(m Mapping, index int) (Axis, error) {
	d := m.Domain()
	exp10, _ := splitIndex(index)
	step := stepSize(index)

	format := l.Label
	if format == nil {
		format = l.formatter(d, exp10)
	}

	// Round both endpoints toward the inside of the domain so no tick
	// lands outside it, then sweep in domain order.
	var positions []float64
	var marks []Mark
	emit := func(i int) {
		v := float64(i) * step
		positions = append(positions, v)
		marks = append(marks, Label(format(v)))
	}
	if d.Increasing() {
		first := int(math.Ceil(d.Left / step))
		last := int(math.Floor(d.Right / step))
		for i := first; i <= last; i++ {
			emit(i)
		}
	} else {
		first := int(math.Floor(d.Left / step))
		last := int(math.Ceil(d.Right / step))
		for i := first; i >= last; i-- {
			emit(i)
		}
	}
	return NewAxis(positions, marks)
}

// formatter picks the numeric rendering for ticks of a domain at step
// exponent exp10: plain decimal with just enough digits to write the step
// exactly, or mantissa-e-exp once the domain's magnitude leaves the plain
// range.
func (l Linear) formatter(d Domain, exp10 int) func(float64) string {
	minExp, maxExp := l.exps()
	mag := max(math.Abs(d.Left), math.Abs(d.Right))
	magExp := 0
	if mag > 0 {
		magExp = int(math.Floor(math.Log10(mag)))
	}
	if magExp < minExp || magExp > maxExp {
		digits := max(0, magExp-exp10)
		scale := math.Pow(10, float64(magExp))
		return func(v float64) string {
			return fmt.Sprintf("%.*fe%d", digits, v/scale, magExp)
		}
	}
	digits := max(0, -exp10)
	return func(v float64) string {
		return strconv.FormatFloat(v, 'f', digits, 64)
	}
}

// splitIndex decomposes a density index into its power-of-ten exponent and
// 1-2-5 selector, using floored division so negative indices decompose the
// same way positive ones do. step10 is always in {0, 1, 2}.
func splitIndex(index int) (exp10, step10 int) {
	exp10 = index / 3
	step10 = index % 3
	if step10 < 0 {
		exp10--
		step10 += 3
	}
	return exp10, step10
}

// stepSize returns the tick spacing for a density index, in domain units.
func stepSize(index int) float64 {
	exp10, step10 := splitIndex(index)
	mul := [3]float64{1, 2, 5}[step10]
	return mul * math.Pow(10, float64(exp10))
}
