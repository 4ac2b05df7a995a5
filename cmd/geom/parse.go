package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-geom"
)

// options holds the flags shared by every command.
type options struct {
	verbose bool
	logPath string
	unit    string
}

// parseOptions separates recognized flags from operands.
// Anything that is not a known flag is an operand, so negative numbers and
// rects such as -5,0,1,1 pass through untouched.
func parseOptions(args []string) (options, []string, error) {
	opts := options{unit: geom.DefaultUnit}
	var operands []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-v", "--verbose":
			opts.verbose = true
		case "--log", "--unit":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("%s requires a value", arg)
			}
			i++
			if arg == "--log" {
				opts.logPath = args[i]
			} else {
				opts.unit = args[i]
			}
		default:
			operands = append(operands, arg)
		}
	}

	return opts, operands, nil
}

// parseRect parses a rect operand in x,y,width,height form.
func parseRect(s string) (*geom.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("invalid rect %q: expected x,y,width,height", s)
	}

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rect %q: %w", s, err)
		}
		v[i] = f
	}
	return geom.NewRect(v[0], v[1], v[2], v[3]), nil
}

// parseRects parses every operand as a rect.
func parseRects(operands []string) ([]*geom.Rect, error) {
	rects := make([]*geom.Rect, 0, len(operands))
	for _, op := range operands {
		r, err := parseRect(op)
		if err != nil {
			return nil, err
		}
		rects = append(rects, r)
	}
	return rects, nil
}

// parseNumber parses a scalar operand.
func parseNumber(name, s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return f, nil
}
