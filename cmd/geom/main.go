// Package main provides a command-line calculator for rectangle algebra.
//
// Usage:
//
//	geom union RECT RECT...      Smallest rect covering all operands
//	geom subtract RECT RECT      Fragments of the first rect not covered by the second
//	geom center RECT             Midpoint of a non-empty rect
//	geom help                    Show help
//
// Rectangles are written in frame form as x,y,width,height.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/go-geom/internal/debug"
)

const version = "0.1.0"

const usage = `geom - axis-aligned rectangle calculator

Usage:
  geom <command> [options] [operands...]

Commands:
  union       Smallest rect covering every operand
  intersect   Overlap of every operand
  subtract    Fragments of the first rect not covered by the second
  contains    Whether the first rect contains the second
  intersects  Whether two rects overlap (touching edges do not count)
  center      Midpoint of a rect
  area        Area of a rect (0 when empty)
  frame       Rect as top/left/width/height with a unit suffix
  translate   Move a rect by dx dy
  scale       Scale a rect about the origin by xs ys
  inflate     Resize a rect about its center by xs [ys]
  grow        Move every edge of a rect outward by d
  round       Grow a rect to integer bounds
  inside      Translate the first rect so it stays within the second
  blend       Interpolate between two rects by t
  version     Print version information
  help        Show this help message

Operands:
  RECT        x,y,width,height (for example 0,0,10,10)

Options:
  -v          Verbose output (debug log to geom-debug.log)
  --log PATH  Write the debug log to PATH
  --unit U    Unit suffix for frame (default px)

Examples:
  geom union 0,0,10,10 20,20,5,5
  geom subtract 0,0,10,10 2,2,4,4
  geom frame --unit em 1,2,3,4
  geom inflate 0,0,10,10 2
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	if err := debug.InitFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer debug.Close()

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "version":
		fmt.Printf("geom version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		if err := run(command, args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			debug.Close()
			os.Exit(1)
		}
	}
}

// run parses the options for command and executes it, writing results to w.
func run(command string, args []string, w io.Writer) error {
	cmd, ok := commands[command]
	if !ok {
		return fmt.Errorf("unknown command: %s (see 'geom help')", command)
	}

	opts, operands, err := parseOptions(args)
	if err != nil {
		return err
	}

	if opts.verbose || opts.logPath != "" {
		if err := debug.Init(opts.logPath); err != nil {
			return err
		}
	}

	debug.Log("%s %v", command, operands)
	return cmd(opts, operands, w)
}
