package autoaxis

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// A Measurer reports rendered text sizes for the font an axis will be drawn
// with. Measurements must be deterministic for a fixed measurer. Measure
// may fail for label/font combinations the backend cannot size; the search
// treats such a candidate as unusable rather than aborting.
type Measurer interface {
	// Measure returns the rendered width and height of txt.
	Measure(txt string) (w, h vg.Length, err error)

	// CapHeight returns the height of a capital letter, used as the unit
	// for the minimum-distance tolerance between labels.
	CapHeight() vg.Length
}

// StyleMeasurer adapts a gonum text.Style to the Measurer interface, so the
// same style used to draw tick labels also drives overlap measurement. The
// font ascent stands in for the capital height.
type StyleMeasurer struct {
	Style text.Style
}

// Measure returns the style's rendered size for txt.
func (m StyleMeasurer) Measure(txt string) (vg.Length, vg.Length, error) {
	return m.Style.Width(txt), m.Style.Height(txt), nil
}

// CapHeight returns the style's font ascent.
func (m StyleMeasurer) CapHeight() vg.Length {
	return m.Style.FontExtents().Ascent
}

// DefaultMeasurer returns a StyleMeasurer backed by gonum/plot's default
// text handler and font at 10pt, matching what a plot drawn with default
// styles will produce.
func DefaultMeasurer() Measurer {
	return StyleMeasurer{Style: text.Style{
		Font:    font.From(plot.DefaultFont, vg.Points(10)),
		Handler: plot.DefaultTextHandler,
	}}
}
