package geom

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y float64
}

// NewPoint allocates a Point at (x, y).
func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

// Pt is a convenience constructor for a Point value.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Clone returns an independent copy of p.
func (p *Point) Clone() *Point {
	return &Point{X: p.X, Y: p.Y}
}

// Equals returns true if p is exactly (x, y).
func (p *Point) Equals(x, y float64) bool {
	return p.X == x && p.Y == y
}

// Map replaces X and then Y with f applied to each.
func (p *Point) Map(f func(float64) float64) *Point {
	p.X = f(p.X)
	p.Y = f(p.Y)
	return p
}

// Add translates p by (x, y).
func (p *Point) Add(x, y float64) *Point {
	p.X += x
	p.Y += y
	return p
}

// Subtract translates p by (-x, -y).
func (p *Point) Subtract(x, y float64) *Point {
	p.X -= x
	p.Y -= y
	return p
}

// Scale multiplies both coordinates by s.
func (p *Point) Scale(s float64) *Point {
	p.X *= s
	p.Y *= s
	return p
}

// IsZero returns true if both coordinates are exactly zero.
func (p *Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// String returns p in the form "(x,y)".
func (p *Point) String() string {
	return "(" + formatNum(p.X) + "," + formatNum(p.Y) + ")"
}
