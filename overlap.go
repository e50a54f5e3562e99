package autoaxis

import "gonum.org/v1/plot/vg"

// MeasureOverlap reports the worst-case collision between adjacent labels
// of ax along ext. Each labeled position is mapped through m to plane space
// and its label sized through meas; unlabeled (invalid-Mark) positions are
// skipped. For each consecutive labeled pair in list order the overlap is
//
//	(size_i + size_i-1)/2 - |plane_i - plane_i-1|
//
// and the maximum over all pairs is returned. Positive means the rendered
// text collides somewhere; negative means every pair has that much gap to
// spare. ok is false when fewer than two positions carry labels, in which
// case there is no spacing signal at all and the overlap value is
// meaningless.
//
// Pairs are compared in the order positions appear on the axis, not sorted
// by plane coordinate; generated axes are already in sweep order.
func MeasureOverlap(m Mapping, ax Axis, ext Extent, meas Measurer) (overlap vg.Length, ok bool, err error) {
	var (
		prevPos  vg.Length
		prevSize vg.Length
		n        int
	)
	for i := 0; i < ax.Len(); i++ {
		mk := ax.Mark(i)
		if !mk.Valid {
			continue
		}
		w, h, err := meas.Measure(mk.Text)
		if err != nil {
			return 0, false, err
		}
		size := w
		if ext == Heightwise {
			size = h
		}
		pos := m.Map(ax.Position(i))
		if n > 0 {
			d := pos - prevPos
			if d < 0 {
				d = -d
			}
			if o := (size+prevSize)/2 - d; n == 1 || o > overlap {
				overlap = o
			}
		}
		prevPos, prevSize = pos, size
		n++
	}
	if n < 2 {
		return 0, false, nil
	}
	return overlap, true, nil
}
