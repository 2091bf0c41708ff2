package geometry

// Point represents a 2D coordinate in container pixels.
type Point struct {
	X int
	Y int
}

// Size represents dimensions (width and height).
type Size struct {
	Width  int
	Height int
}

// Add returns the component-wise sum of two sizes.
func (s Size) Add(o Size) Size {
	return Size{Width: s.Width + o.Width, Height: s.Height + o.Height}
}

// Rect represents a rectangular region. Width and Height may be zero
// for a collapsed rect but are never negative when produced by
// MakeRect.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// MakeRect builds a rect, clamping negative extents to zero. Degenerate
// layouts collapse to zero-area rects instead of producing negative
// widths or heights.
func MakeRect(x, y, width, height int) Rect {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// IsEmpty returns true if the rect covers no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside the rect. The right and
// bottom edges are exclusive, matching pixel coverage.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Clamp bounds v to [lo, hi]. When lo > hi the lower bound wins, so a
// value squeezed between contradictory bounds degrades to lo rather
// than oscillating.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
