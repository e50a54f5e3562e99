package autoaxis

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func TestSideExtent(t *testing.T) {
	table := []struct {
		side Side
		ext  Extent
	}{
		{BottomSide, Widthwise},
		{TopSide, Widthwise},
		{LeftSide, Heightwise},
		{RightSide, Heightwise},
	}
	for _, row := range table {
		if got := row.side.Extent(); got != row.ext {
			t.Errorf("Side(%d).Extent() = %v, want %v", row.side, got, row.ext)
		}
	}
}

func TestTicker(t *testing.T) {
	dut := Ticker{Dim: 400, Measurer: runeMeasurer{charW: 6, lineH: 10, cap: 10}}

	got := dut.Ticks(0, 97)
	want := []plot.Tick{
		{Value: 0, Label: "0"},
		{Value: 10, Label: "10"},
		{Value: 20, Label: "20"},
		{Value: 30, Label: "30"},
		{Value: 40, Label: "40"},
		{Value: 50, Label: "50"},
		{Value: 60, Label: "60"},
		{Value: 70, Label: "70"},
		{Value: 80, Label: "80"},
		{Value: 90, Label: "90"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Ticks(0, 97) mismatch (-want +got):\n%s", diff)
	}
}

func TestTickerDegenerate(t *testing.T) {
	dut := Ticker{Dim: 400, Measurer: runeMeasurer{charW: 6, lineH: 10, cap: 10}}

	got := dut.Ticks(5, 5)
	want := []plot.Tick{{Value: 5, Label: "5"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Ticks(5, 5) mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawAxis(t *testing.T) {
	// Smoke test against a real image canvas: resolve and draw one axis
	// per side with the default gonum text stack.
	img := vgimg.New(6*vg.Inch, 4*vg.Inch)
	c := draw.New(img)

	sty := AxisStyle{
		Line: draw.LineStyle{Width: vg.Points(1)},
		Label: text.Style{
			Font:    font.From(plot.DefaultFont, vg.Points(10)),
			Handler: plot.DefaultTextHandler,
		},
		TickLength: vg.Points(4),
		Padding:    vg.Points(2),
	}
	meas := StyleMeasurer{Style: sty.Label}

	for _, side := range []Side{BottomSide, LeftSide, TopSide, RightSide} {
		var m Mapping
		if side.Extent() == Widthwise {
			m = NewLinearMapping(Domain{0, 97}, c.Min.X, c.Max.X)
		} else {
			m = NewLinearMapping(Domain{-12.6, -5}, c.Min.Y, c.Max.Y)
		}
		ax, err := ResolveAxis(m, nil, side.Extent(), meas, Options{})
		if err != nil {
			t.Fatalf("side %d: %v", side, err)
		}
		if ax.Len() == 0 {
			t.Fatalf("side %d: empty axis", side)
		}
		DrawAxis(c, m, ax, sty, side)
	}
}
