package geom

// RestrictTo shrinks r to its overlap with other. If either rectangle is
// empty, r becomes (0,0,0,0). Disjoint rectangles leave r with a zero width
// or height rather than an inverted one.
func (r *Rect) RestrictTo(other *Rect) *Rect {
	if r.IsEmpty() || other.IsEmpty() {
		return r.SetRect(0, 0, 0, 0)
	}

	x1 := max(r.Left, other.Left)
	x2 := min(r.Right, other.Right)
	y1 := max(r.Top, other.Top)
	y2 := min(r.Bottom, other.Bottom)
	return r.SetRect(x1, y1, max(0, x2-x1), max(0, y2-y1))
}

// Intersect returns the overlap of r and other as a new Rect.
func (r *Rect) Intersect(other *Rect) *Rect {
	return r.Clone().RestrictTo(other)
}

// ExpandToContain grows r to the smallest rectangle covering both r and
// other. An empty r takes other's bounds; an empty other leaves r unchanged.
func (r *Rect) ExpandToContain(other *Rect) *Rect {
	if r.IsEmpty() {
		return r.CopyFrom(other)
	}
	if other.IsEmpty() {
		return r
	}

	l := min(r.Left, other.Left)
	t := min(r.Top, other.Top)
	rt := max(r.Right, other.Right)
	b := max(r.Bottom, other.Bottom)
	return r.SetRect(l, t, rt-l, b-t)
}

// Union returns the smallest rectangle covering r and other as a new Rect.
func (r *Rect) Union(other *Rect) *Rect {
	return r.Clone().ExpandToContain(other)
}

// Subtract returns the area of r not covered by other, as up to four
// disjoint fragments. The fragments are always in the order left,
// top, bottom, right:
//
//	+---+-----+---+
//	|   | top |   |
//	|   +-----+   |
//	| L |other| R |
//	|   +-----+   |
//	|   | bot |   |
//	+---+-----+---+
//
// The left and right fragments span the full height of r and every fragment
// is non-empty, except in one case: if other does not overlap r, the result
// is a single copy of r, so an empty r yields one empty fragment.
func (r *Rect) Subtract(other *Rect) []*Rect {
	clip := other.Intersect(r)
	if clip.IsEmpty() {
		return []*Rect{r.Clone()}
	}

	candidates := [4]Rect{
		{Left: r.Left, Top: r.Top, Right: clip.Left, Bottom: r.Bottom},
		{Left: clip.Left, Top: r.Top, Right: clip.Right, Bottom: clip.Top},
		{Left: clip.Left, Top: clip.Bottom, Right: clip.Right, Bottom: r.Bottom},
		{Left: clip.Right, Top: r.Top, Right: r.Right, Bottom: r.Bottom},
	}

	result := make([]*Rect, 0, len(candidates))
	for i := range candidates {
		if !candidates[i].IsEmpty() {
			result = append(result, candidates[i].Clone())
		}
	}
	return result
}

// Blend returns a new Rect interpolated from r toward other by t. The
// position and size (not the far edges) are interpolated independently, so
// t=0 yields r's frame and t=1 yields other's. Values of t outside [0, 1]
// extrapolate.
func (r *Rect) Blend(other *Rect, t float64) *Rect {
	return NewRect(
		r.Left+(other.Left-r.Left)*t,
		r.Top+(other.Top-r.Top)*t,
		r.Width()+(other.Width()-r.Width())*t,
		r.Height()+(other.Height()-r.Height())*t,
	)
}
