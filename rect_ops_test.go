package geom

import (
	"math"
	"testing"
)

func TestRect_Translate(t *testing.T) {
	type tc struct {
		rect     *Rect
		dx, dy   float64
		expected *Rect
	}

	tests := map[string]tc{
		"positive translation": {
			rect:     NewRect(10, 20, 30, 40),
			dx:       5,
			dy:       15,
			expected: NewRect(15, 35, 30, 40),
		},
		"negative translation": {
			rect:     NewRect(10, 20, 30, 40),
			dx:       -5,
			dy:       -10,
			expected: NewRect(5, 10, 30, 40),
		},
		"no translation": {
			rect:     NewRect(10, 20, 30, 40),
			expected: NewRect(10, 20, 30, 40),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.rect.Translate(tt.dx, tt.dy)
			if got != tt.rect {
				t.Error("Translate() should return the receiver")
			}
			if *got != *tt.expected {
				t.Errorf("Translate(%v, %v) = %+v, want %+v", tt.dx, tt.dy, *got, *tt.expected)
			}
		})
	}
}

func TestRect_Round(t *testing.T) {
	type tc struct {
		rect     *Rect
		expected Rect
	}

	tests := map[string]tc{
		"already integral": {
			rect:     NewRect(1, 2, 3, 4),
			expected: Rect{Left: 1, Top: 2, Right: 4, Bottom: 6},
		},
		"fractional grows outward": {
			rect:     FromBounds(Bounds{Left: 0.5, Top: 1.9, Right: 2.1, Bottom: 3.5}),
			expected: Rect{Left: 0, Top: 1, Right: 3, Bottom: 4},
		},
		"negative fractional": {
			rect:     FromBounds(Bounds{Left: -0.5, Top: -1.1, Right: -0.2, Bottom: 0.1}),
			expected: Rect{Left: -1, Top: -2, Right: 0, Bottom: 1},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			before := *tt.rect
			got := tt.rect.Round()
			if *got != tt.expected {
				t.Errorf("Round() = %+v, want %+v", *got, tt.expected)
			}
			if got.Left > before.Left || got.Top > before.Top ||
				got.Right < before.Right || got.Bottom < before.Bottom {
				t.Errorf("Round() shrank %+v to %+v", before, *got)
			}
		})
	}
}

func TestRect_Scale(t *testing.T) {
	type tc struct {
		rect     *Rect
		xs, ys   float64
		expected Rect
	}

	tests := map[string]tc{
		"uniform about origin": {
			rect:     NewRect(2, 3, 4, 5),
			xs:       2,
			ys:       2,
			expected: Rect{Left: 4, Top: 6, Right: 12, Bottom: 16},
		},
		"per axis": {
			rect:     NewRect(2, 4, 2, 4),
			xs:       0.5,
			ys:       3,
			expected: Rect{Left: 1, Top: 12, Right: 2, Bottom: 24},
		},
		"identity": {
			rect:     NewRect(2, 3, 4, 5),
			xs:       1,
			ys:       1,
			expected: Rect{Left: 2, Top: 3, Right: 6, Bottom: 8},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Scale(tt.xs, tt.ys); *got != tt.expected {
				t.Errorf("Scale(%v, %v) = %+v, want %+v", tt.xs, tt.ys, *got, tt.expected)
			}
		})
	}
}

func TestRect_Map(t *testing.T) {
	r := FromBounds(Bounds{Left: 1, Top: 2, Right: 3, Bottom: 4})
	var seen []float64
	r.Map(func(v float64) float64 {
		seen = append(seen, v)
		return v * 10
	})

	want := []float64{1, 2, 3, 4}
	if len(seen) != len(want) {
		t.Fatalf("Map() visited %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("Map() visited %v, want %v", seen, want)
			break
		}
	}
	if *r != (Rect{Left: 10, Top: 20, Right: 30, Bottom: 40}) {
		t.Errorf("Map() = %+v, want {10 20 30 40}", *r)
	}
}

func TestRect_Inflate(t *testing.T) {
	type tc struct {
		rect     *Rect
		xs, ys   float64
		expected Rect
	}

	tests := map[string]tc{
		"identity": {
			rect:     NewRect(10, 10, 20, 10),
			xs:       1,
			ys:       1,
			expected: Rect{Left: 10, Top: 10, Right: 30, Bottom: 20},
		},
		"double": {
			rect:     NewRect(10, 10, 20, 10),
			xs:       2,
			ys:       2,
			expected: Rect{Left: 0, Top: 5, Right: 40, Bottom: 25},
		},
		"halve": {
			rect:     NewRect(0, 0, 8, 4),
			xs:       0.5,
			ys:       0.5,
			expected: Rect{Left: 2, Top: 1, Right: 6, Bottom: 3},
		},
		"x only": {
			rect:     NewRect(0, 0, 10, 10),
			xs:       3,
			ys:       1,
			expected: Rect{Left: -10, Top: 0, Right: 20, Bottom: 10},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.InflateXY(tt.xs, tt.ys); *got != tt.expected {
				t.Errorf("InflateXY(%v, %v) = %+v, want %+v", tt.xs, tt.ys, *got, tt.expected)
			}
		})
	}
}

func TestRect_InflateUniform(t *testing.T) {
	rects := map[string]*Rect{
		"square":     NewRect(0, 0, 4, 4),
		"wide":       NewRect(-3, 7, 12, 2),
		"fractional": NewRect(0.25, 0.5, 1.5, 3),
	}

	for name, r := range rects {
		t.Run(name, func(t *testing.T) {
			before := r.Clone()
			if got := r.Clone().Inflate(1); !got.Equals(before) {
				t.Errorf("Inflate(1) = %v, want %v", got, before)
			}

			wantCenter, _ := before.Center()
			got := r.Clone().Inflate(2)
			if got.Width() != 2*before.Width() || got.Height() != 2*before.Height() {
				t.Errorf("Inflate(2) = %v, want double of %v", got, before)
			}
			center, err := got.Center()
			if err != nil {
				t.Fatalf("Center() unexpected error: %v", err)
			}
			if *center != *wantCenter {
				t.Errorf("Inflate(2) moved center from %v to %v", wantCenter, center)
			}
		})
	}
}

func TestRect_InflateFixed(t *testing.T) {
	type tc struct {
		rect     *Rect
		d        float64
		expected Rect
	}

	tests := map[string]tc{
		"grow": {
			rect:     NewRect(10, 10, 10, 10),
			d:        2,
			expected: Rect{Left: 8, Top: 8, Right: 22, Bottom: 22},
		},
		"shrink": {
			rect:     NewRect(10, 10, 10, 10),
			d:        -2,
			expected: Rect{Left: 12, Top: 12, Right: 18, Bottom: 18},
		},
		"shrink past empty": {
			rect:     NewRect(0, 0, 2, 2),
			d:        -2,
			expected: Rect{Left: 2, Top: 2, Right: 0, Bottom: 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.InflateFixed(tt.d); *got != tt.expected {
				t.Errorf("InflateFixed(%v) = %+v, want %+v", tt.d, *got, tt.expected)
			}
		})
	}
}

func TestRect_RanslateInside(t *testing.T) {
	type tc struct {
		rect     *Rect
		bounds   *Rect
		expected *Rect
	}

	bounds := NewRect(0, 0, 100, 50)

	tests := map[string]tc{
		"fully inside": {
			rect:     NewRect(10, 10, 20, 20),
			bounds:   bounds,
			expected: NewRect(10, 10, 20, 20),
		},
		"protrudes left": {
			rect:     NewRect(-5, 10, 20, 20),
			bounds:   bounds,
			expected: NewRect(0, 10, 20, 20),
		},
		"protrudes right": {
			rect:     NewRect(90, 10, 20, 20),
			bounds:   bounds,
			expected: NewRect(80, 10, 20, 20),
		},
		"protrudes top": {
			rect:     NewRect(10, -8, 20, 20),
			bounds:   bounds,
			expected: NewRect(10, 0, 20, 20),
		},
		"protrudes bottom and right": {
			rect:     NewRect(95, 45, 10, 10),
			bounds:   bounds,
			expected: NewRect(90, 40, 10, 10),
		},
		"wider than bounds starting left of it aligns left": {
			rect:     NewRect(-30, 10, 150, 20),
			bounds:   bounds,
			expected: NewRect(0, 10, 150, 20),
		},
		"wider than bounds starting inside it aligns right": {
			rect:     NewRect(30, 10, 150, 20),
			bounds:   bounds,
			expected: NewRect(-50, 10, 150, 20),
		},
		"taller than bounds aligns top": {
			rect:     NewRect(10, -20, 20, 80),
			bounds:   bounds,
			expected: NewRect(10, 0, 20, 80),
		},
		"flush with left edge": {
			rect:     NewRect(0, 10, 20, 20),
			bounds:   bounds,
			expected: NewRect(0, 10, 20, 20),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.rect.RanslateInside(tt.bounds)
			if got != tt.rect {
				t.Error("RanslateInside() should return the receiver")
			}
			if !got.Equals(tt.expected) {
				t.Errorf("RanslateInside() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRect_MapRound(t *testing.T) {
	r := FromBounds(Bounds{Left: 0.4, Top: 0.6, Right: 2.5, Bottom: 3.49})
	r.Map(math.Round)

	if *r != (Rect{Left: 0, Top: 1, Right: 3, Bottom: 3}) {
		t.Errorf("Map(math.Round) = %+v, want {0 1 3 3}", *r)
	}
}
