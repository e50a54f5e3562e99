package autoaxis

import (
	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Side selects which edge of the plotting frame an axis occupies, which
// fixes the direction ticks point and how labels are aligned.
type Side int

const (
	BottomSide Side = iota
	LeftSide
	TopSide
	RightSide
)

// Extent returns the screen dimension along which this side's labels
// collide with each other.
func (s Side) Extent() Extent {
	if s == LeftSide || s == RightSide {
		return Heightwise
	}
	return Widthwise
}

// AxisStyle carries the drawing geometry for one axis. The Label style
// should be the same one wrapped by the StyleMeasurer used to resolve the
// axis, so measured widths match what gets drawn.
type AxisStyle struct {
	Line       draw.LineStyle
	Label      text.Style
	TickLength vg.Length
	Padding    vg.Length
}

// DrawAxis strokes a resolved axis onto c along the given side. The
// mapping must produce plane coordinates in c's coordinate system: x for
// horizontal sides, y for vertical ones. Ticks point into the plot area
// and labels sit Padding outside the frame edge.
func DrawAxis(c draw.Canvas, m Mapping, ax Axis, sty AxisStyle, side Side) {
	d := m.Domain()
	lsty := sty.Label

	switch side {
	case BottomSide, TopSide:
		base, dir := c.Min.Y, vg.Length(1)
		lsty.XAlign, lsty.YAlign = text.XCenter, text.YTop
		if side == TopSide {
			base, dir = c.Max.Y, -1
			lsty.YAlign = text.YBottom
		}
		c.StrokeLine2(sty.Line, m.Map(d.Left), base, m.Map(d.Right), base)
		for i := 0; i < ax.Len(); i++ {
			x := m.Map(ax.Position(i))
			c.StrokeLine2(sty.Line, x, base, x, base+dir*sty.TickLength)
			if mk := ax.Mark(i); mk.Valid {
				c.FillText(lsty, vg.Point{X: x, Y: base - dir*sty.Padding}, mk.Text)
			}
		}

	case LeftSide, RightSide:
		base, dir := c.Min.X, vg.Length(1)
		lsty.XAlign, lsty.YAlign = text.XRight, text.YCenter
		if side == RightSide {
			base, dir = c.Max.X, -1
			lsty.XAlign = text.XLeft
		}
		c.StrokeLine2(sty.Line, base, m.Map(d.Left), base, m.Map(d.Right))
		for i := 0; i < ax.Len(); i++ {
			y := m.Map(ax.Position(i))
			c.StrokeLine2(sty.Line, base, y, base+dir*sty.TickLength, y)
			if mk := ax.Mark(i); mk.Valid {
				c.FillText(lsty, vg.Point{X: base - dir*sty.Padding, Y: y}, mk.Text)
			}
		}
	}
}

// Ticker adapts the axis search to gonum's plot.Ticker, so a gonum axis
// can use overlap-aware tick selection directly. Dim is the plane extent
// the axis will span; if 0, 800 points is assumed.
type Ticker struct {
	Dim      vg.Length
	Measurer Measurer
	Options  Options
}

// Ticks returns ticks covering [min, max].
func (t Ticker) Ticks(min, max float64) []plot.Tick {
	dim := t.Dim
	if dim == 0 {
		dim = 800
	}
	meas := t.Measurer
	if meas == nil {
		meas = DefaultMeasurer()
	}

	m := NewLinearMapping(Domain{Left: min, Right: max}, 0, dim)
	ax, err := ResolveAxis(m, nil, Widthwise, meas, t.Options)
	if err != nil {
		return nil
	}
	ticks := make([]plot.Tick, ax.Len())
	for i := range ticks {
		ticks[i] = plot.Tick{Value: ax.Position(i)}
		if mk := ax.Mark(i); mk.Valid {
			ticks[i].Label = mk.Text
		}
	}
	return ticks
}

// SILabel formats a tick value with a metric prefix ("2.5M", "10µ").
// Install it as a Linear strategy's Label override for humanized axes.
func SILabel(v float64) string {
	return humanize.SI(v, "")
}
