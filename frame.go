package geom

// DefaultUnit is the unit suffix used by PixelFrame.
const DefaultUnit = "px"

// Frame is the x/y/width/height representation of a rectangle.
type Frame struct {
	Left, Top, Width, Height float64
}

// Bounds is the left/top/right/bottom representation of a rectangle.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// UnitFrame is a frame projected to presentation strings, each value
// followed by a unit suffix (for example "12px").
type UnitFrame struct {
	Top, Left, Width, Height string
}

// FromFrame creates a Rect from frame form.
func FromFrame(f Frame) *Rect {
	return NewRect(f.Left, f.Top, f.Width, f.Height)
}

// FromBounds creates a Rect from bounds form.
func FromBounds(b Bounds) *Rect {
	return &Rect{Left: b.Left, Top: b.Top, Right: b.Right, Bottom: b.Bottom}
}

// Frame returns r in frame form.
func (r *Rect) Frame() Frame {
	return Frame{Left: r.Left, Top: r.Top, Width: r.Width(), Height: r.Height()}
}

// Bounds returns r in bounds form.
func (r *Rect) Bounds() Bounds {
	return Bounds{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

// UnitFrame projects r to strings with unit appended to each value.
// Values are not rounded and unit is not validated.
func (r *Rect) UnitFrame(unit string) UnitFrame {
	return UnitFrame{
		Top:    formatNum(r.Top) + unit,
		Left:   formatNum(r.Left) + unit,
		Width:  formatNum(r.Width()) + unit,
		Height: formatNum(r.Height()) + unit,
	}
}

// PixelFrame is UnitFrame(DefaultUnit).
func (r *Rect) PixelFrame() UnitFrame {
	return r.UnitFrame(DefaultUnit)
}
