package main

import (
	"fmt"
	"io"

	"github.com/grindlemire/go-geom"
	"github.com/grindlemire/go-geom/internal/debug"
)

// commandFunc executes one command against its parsed operands.
type commandFunc func(opts options, operands []string, w io.Writer) error

var commands = map[string]commandFunc{
	"union":      runUnion,
	"intersect":  runIntersect,
	"subtract":   runSubtract,
	"contains":   runContains,
	"intersects": runIntersects,
	"center":     runCenter,
	"area":       runArea,
	"frame":      runFrame,
	"translate":  runTranslate,
	"scale":      runScale,
	"inflate":    runInflate,
	"grow":       runGrow,
	"round":      runRound,
	"inside":     runInside,
	"blend":      runBlend,
}

// runUnion folds every operand into a single covering rect.
func runUnion(_ options, operands []string, w io.Writer) error {
	rects, err := rectsAtLeast("union", operands, 1)
	if err != nil {
		return err
	}

	acc := rects[0].Clone()
	for _, r := range rects[1:] {
		acc.ExpandToContain(r)
	}
	fmt.Fprintln(w, acc)
	return nil
}

// runIntersect folds every operand into their common overlap.
func runIntersect(_ options, operands []string, w io.Writer) error {
	rects, err := rectsAtLeast("intersect", operands, 1)
	if err != nil {
		return err
	}

	acc := rects[0].Clone()
	for _, r := range rects[1:] {
		acc.RestrictTo(r)
	}
	fmt.Fprintln(w, acc)
	return nil
}

func runSubtract(_ options, operands []string, w io.Writer) error {
	rects, err := rectsExactly("subtract", operands, 2)
	if err != nil {
		return err
	}

	frags := rects[0].Subtract(rects[1])
	debug.Log("subtract produced %d fragment(s)", len(frags))
	for _, f := range frags {
		fmt.Fprintln(w, f)
	}
	return nil
}

func runContains(_ options, operands []string, w io.Writer) error {
	rects, err := rectsExactly("contains", operands, 2)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, rects[0].Contains(rects[1]))
	return nil
}

func runIntersects(_ options, operands []string, w io.Writer) error {
	rects, err := rectsExactly("intersects", operands, 2)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, rects[0].Intersects(rects[1]))
	return nil
}

func runCenter(_ options, operands []string, w io.Writer) error {
	rects, err := rectsExactly("center", operands, 1)
	if err != nil {
		return err
	}

	c, err := rects[0].Center()
	if err != nil {
		return fmt.Errorf("center of %v: %w", rects[0], err)
	}
	fmt.Fprintln(w, c)
	return nil
}

func runArea(_ options, operands []string, w io.Writer) error {
	rects, err := rectsExactly("area", operands, 1)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, rects[0].Area())
	return nil
}

// runFrame prints the rect as CSS-style declarations.
func runFrame(opts options, operands []string, w io.Writer) error {
	rects, err := rectsExactly("frame", operands, 1)
	if err != nil {
		return err
	}

	f := rects[0].UnitFrame(opts.unit)
	fmt.Fprintf(w, "top: %s; left: %s; width: %s; height: %s;\n", f.Top, f.Left, f.Width, f.Height)
	return nil
}

func runTranslate(_ options, operands []string, w io.Writer) error {
	r, nums, err := rectAndNumbers("translate", operands, []string{"dx", "dy"}, 2)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, r.Translate(nums[0], nums[1]))
	return nil
}

func runScale(_ options, operands []string, w io.Writer) error {
	r, nums, err := rectAndNumbers("scale", operands, []string{"xs", "ys"}, 2)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, r.Scale(nums[0], nums[1]))
	return nil
}

// runInflate applies a single scale to both axes unless ys is given.
func runInflate(_ options, operands []string, w io.Writer) error {
	r, nums, err := rectAndNumbers("inflate", operands, []string{"xs", "ys"}, 1)
	if err != nil {
		return err
	}
	if len(nums) == 1 {
		r.Inflate(nums[0])
	} else {
		r.InflateXY(nums[0], nums[1])
	}
	fmt.Fprintln(w, r)
	return nil
}

func runGrow(_ options, operands []string, w io.Writer) error {
	r, nums, err := rectAndNumbers("grow", operands, []string{"d"}, 1)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, r.InflateFixed(nums[0]))
	return nil
}

func runRound(_ options, operands []string, w io.Writer) error {
	rects, err := rectsExactly("round", operands, 1)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, rects[0].Round())
	return nil
}

func runInside(_ options, operands []string, w io.Writer) error {
	rects, err := rectsExactly("inside", operands, 2)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, rects[0].RanslateInside(rects[1]))
	return nil
}

func runBlend(_ options, operands []string, w io.Writer) error {
	if len(operands) != 3 {
		return fmt.Errorf("blend expects RECT RECT T, got %d operand(s)", len(operands))
	}
	rects, err := parseRects(operands[:2])
	if err != nil {
		return err
	}
	t, err := parseNumber("t", operands[2])
	if err != nil {
		return err
	}
	fmt.Fprintln(w, rects[0].Blend(rects[1], t))
	return nil
}

// rectsExactly parses exactly n rect operands.
func rectsExactly(command string, operands []string, n int) ([]*geom.Rect, error) {
	if len(operands) != n {
		return nil, fmt.Errorf("%s expects %d rect(s), got %d", command, n, len(operands))
	}
	return parseRects(operands)
}

// rectsAtLeast parses n or more rect operands.
func rectsAtLeast(command string, operands []string, n int) ([]*geom.Rect, error) {
	if len(operands) < n {
		return nil, fmt.Errorf("%s expects at least %d rect(s), got %d", command, n, len(operands))
	}
	return parseRects(operands)
}

// rectAndNumbers parses a rect followed by between required and len(names)
// scalar operands.
func rectAndNumbers(command string, operands []string, names []string, required int) (*geom.Rect, []float64, error) {
	if len(operands) < 1+required || len(operands) > 1+len(names) {
		return nil, nil, fmt.Errorf("%s expects RECT and %d to %d number(s), got %d operand(s)",
			command, required, len(names), len(operands))
	}

	r, err := parseRect(operands[0])
	if err != nil {
		return nil, nil, err
	}

	nums := make([]float64, 0, len(operands)-1)
	for i, s := range operands[1:] {
		f, err := parseNumber(names[i], s)
		if err != nil {
			return nil, nil, err
		}
		nums = append(nums, f)
	}
	return r, nums, nil
}
