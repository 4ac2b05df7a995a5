package geom

import "errors"

// ErrEmptyRect is returned by operations that are undefined for empty
// rectangles.
var ErrEmptyRect = errors.New("empty rectangles do not have centers")
