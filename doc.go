// Package geom provides 2D axis-aligned geometry for layout and hit testing.
//
// The package has two types. [Point] is a mutable coordinate pair. [Rect] is a
// mutable axis-aligned rectangle stored as left/top/right/bottom bounds, with
// queries (containment, overlap), transforms (translate, scale, inflate,
// round) and set operations (union, intersection, subtraction into disjoint
// fragments).
//
// Most methods mutate the receiver in place and return it so calls can be
// chained:
//
//	r := geom.NewRect(0, 0, 10, 10).Translate(5, 5).InflateFixed(1)
//
// [Rect.Clone], [Rect.Union], [Rect.Intersect], [Rect.Subtract] and
// [Rect.Blend] return new values and never modify the receiver. Callers that
// need an independent copy of a rectangle they are about to mutate must call
// Clone first.
//
// A rectangle is empty when Left >= Right or Top >= Bottom. Empty rectangles
// are never normalized on construction, but every operation treats them as
// equivalent regardless of their coordinates.
package geom
