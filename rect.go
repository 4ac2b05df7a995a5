package geom

// Rect represents an axis-aligned rectangle stored as its four edges.
// Left and Top are inclusive; Right and Bottom are the far edges.
// The rectangle is empty when Left >= Right or Top >= Bottom.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// NewRect creates a Rect with its top-left corner at (x, y) and the given
// dimensions. Negative dimensions are kept as-is and produce an empty Rect.
func NewRect(x, y, width, height float64) *Rect {
	return &Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
}

// X returns the left edge.
func (r *Rect) X() float64 { return r.Left }

// Y returns the top edge.
func (r *Rect) Y() float64 { return r.Top }

// MaxX returns the right edge.
func (r *Rect) MaxX() float64 { return r.Right }

// MaxY returns the bottom edge.
func (r *Rect) MaxY() float64 { return r.Bottom }

// Width returns Right - Left. It is negative for inverted rectangles.
func (r *Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top. It is negative for inverted rectangles.
func (r *Rect) Height() float64 { return r.Bottom - r.Top }

// SetX moves the left edge to v, keeping the width.
func (r *Rect) SetX(v float64) *Rect {
	diff := r.Left - v
	r.Left = v
	r.Right -= diff
	return r
}

// SetY moves the top edge to v, keeping the height.
func (r *Rect) SetY(v float64) *Rect {
	diff := r.Top - v
	r.Top = v
	r.Bottom -= diff
	return r
}

// SetWidth moves the right edge so the width becomes v.
func (r *Rect) SetWidth(v float64) *Rect {
	r.Right = r.Left + v
	return r
}

// SetHeight moves the bottom edge so the height becomes v.
func (r *Rect) SetHeight(v float64) *Rect {
	r.Bottom = r.Top + v
	return r
}

// SetRect overwrites r from frame form.
func (r *Rect) SetRect(x, y, width, height float64) *Rect {
	r.Left = x
	r.Top = y
	r.Right = x + width
	r.Bottom = y + height
	return r
}

// SetBounds overwrites r from bounds form.
func (r *Rect) SetBounds(left, top, right, bottom float64) *Rect {
	r.Left = left
	r.Top = top
	r.Right = right
	r.Bottom = bottom
	return r
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r *Rect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Area returns the area of the rectangle, or 0 if it is empty.
func (r *Rect) Area() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Width() * r.Height()
}

// Equals reports whether r and other describe the same rectangle.
// Any two empty rectangles are equal regardless of their coordinates.
func (r *Rect) Equals(other *Rect) bool {
	if other == nil {
		return false
	}
	if r.IsEmpty() && other.IsEmpty() {
		return true
	}
	return r.Left == other.Left && r.Top == other.Top &&
		r.Right == other.Right && r.Bottom == other.Bottom
}

// Contains returns true if other lies entirely within r, edges included.
// An empty other is contained by every rectangle; a non-empty other is never
// contained by an empty r.
func (r *Rect) Contains(other *Rect) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.Left >= r.Left && other.Right <= r.Right &&
		other.Top >= r.Top && other.Bottom <= r.Bottom
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as overlapping.
func (r *Rect) Intersects(other *Rect) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	x1 := max(r.Left, other.Left)
	x2 := min(r.Right, other.Right)
	y1 := max(r.Top, other.Top)
	y2 := min(r.Bottom, other.Bottom)
	return x1 < x2 && y1 < y2
}

// Center returns the midpoint of r. It returns ErrEmptyRect if r is empty.
func (r *Rect) Center() (*Point, error) {
	if r.IsEmpty() {
		return nil, ErrEmptyRect
	}
	return &Point{
		X: r.Left + (r.Right-r.Left)/2,
		Y: r.Top + (r.Bottom-r.Top)/2,
	}, nil
}

// Clone returns an independent copy of r.
func (r *Rect) Clone() *Rect {
	c := *r
	return &c
}

// CopyFrom overwrites r with the bounds of other.
func (r *Rect) CopyFrom(other *Rect) *Rect {
	*r = *other
	return r
}

// String returns r in frame form as "[x,y,width,height]".
func (r *Rect) String() string {
	return "[" + formatNum(r.X()) + "," + formatNum(r.Y()) + "," +
		formatNum(r.Width()) + "," + formatNum(r.Height()) + "]"
}
