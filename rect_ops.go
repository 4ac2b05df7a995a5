package geom

import "math"

// Translate moves r by (dx, dy).
func (r *Rect) Translate(dx, dy float64) *Rect {
	r.Left += dx
	r.Right += dx
	r.Top += dy
	r.Bottom += dy
	return r
}

// Round grows r to integer bounds: Left and Top are floored, Right and
// Bottom are ceiled. It never shrinks r.
func (r *Rect) Round() *Rect {
	r.Left = math.Floor(r.Left)
	r.Top = math.Floor(r.Top)
	r.Right = math.Ceil(r.Right)
	r.Bottom = math.Ceil(r.Bottom)
	return r
}

// Scale multiplies the horizontal edges by xs and the vertical edges by ys.
// Scaling is about the origin, not the center of r.
func (r *Rect) Scale(xs, ys float64) *Rect {
	r.Left *= xs
	r.Right *= xs
	r.Top *= ys
	r.Bottom *= ys
	return r
}

// Map replaces Left, Top, Right and Bottom, in that order, with f applied to
// each.
func (r *Rect) Map(f func(float64) float64) *Rect {
	r.Left = f(r.Left)
	r.Top = f(r.Top)
	r.Right = f(r.Right)
	r.Bottom = f(r.Bottom)
	return r
}

// Inflate is InflateXY(s, s).
func (r *Rect) Inflate(s float64) *Rect {
	return r.InflateXY(s, s)
}

// InflateXY resizes r about its center so that its width becomes
// width*xs and its height becomes height*ys. A factor of 1 leaves the axis
// unchanged; 2 doubles it. Use InflateFixed for an absolute margin.
func (r *Rect) InflateXY(xs, ys float64) *Rect {
	w, h := r.Width(), r.Height()
	xAdj := (w*xs - w) / 2
	yAdj := (h*ys - h) / 2
	r.Left -= xAdj
	r.Right += xAdj
	r.Top -= yAdj
	r.Bottom += yAdj
	return r
}

// InflateFixed moves every edge outward by d. Negative d shrinks r.
func (r *Rect) InflateFixed(d float64) *Rect {
	r.Left -= d
	r.Right += d
	r.Top -= d
	r.Bottom += d
	return r
}

// RanslateInside translates r, without resizing, so that it does not stick
// out of bounds. On each axis, if the low edge of r is at or before the low
// edge of bounds, r is aligned to the low edge; otherwise if the high edge
// is past the high edge of bounds, r is aligned to the high edge. A rect
// larger than bounds on an axis is aligned to the low edge only when its low
// edge starts at or before the low edge of bounds; otherwise it is aligned
// to the high edge and sticks out past the low edge.
func (r *Rect) RanslateInside(bounds *Rect) *Rect {
	var dx float64
	if r.Left <= bounds.Left {
		dx = bounds.Left - r.Left
	} else if r.Right > bounds.Right {
		dx = bounds.Right - r.Right
	}

	var dy float64
	if r.Top <= bounds.Top {
		dy = bounds.Top - r.Top
	} else if r.Bottom > bounds.Bottom {
		dy = bounds.Bottom - r.Bottom
	}

	return r.Translate(dx, dy)
}
