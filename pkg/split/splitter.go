package split

import (
	"image/color"
	"math"

	"quadsplit/pkg/geometry"
)

// Direction tells which side of its adjacent region a splitter pushes
// when dragged. It fixes both the splitter's orientation and the sign
// of the drag-to-length conversion.
type Direction int

const (
	Right Direction = iota
	Left
	Top
	Bottom
)

// Orientation is the axis along which a splitter is dragged:
// Horizontal splitters are vertical bars dragged left-right,
// Vertical splitters are horizontal bars dragged up-down.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Unbounded is the maximum length of a splitter whose range has no
// upper constraint yet.
const Unbounded = math.MaxInt

// Default band thicknesses, in pixels.
const (
	DefaultGrabWidth      = 10
	DefaultHighlightWidth = 4
)

// Splitter is the draggable separator between the viewer and one
// satellite region. It owns the length the engine turns into region
// geometry, the grab/highlight band widths, and the hover/press
// interaction state. It has no toolkit dependency; an adapter feeds it
// pointer events and reads back its rects.
type Splitter struct {
	direction Direction
	resizable bool
	visible   bool

	length        int
	minimumLength int
	maximumLength int

	centerlineStart  geometry.Point
	centerlineLength int

	grabWidth      int
	highlightWidth int
	highlightColor color.Color

	grabRect      geometry.Rect
	highlightRect geometry.Rect

	hovered       bool
	pressed       bool
	lengthOnPress int
	zOnPress      int

	// onChange is invoked synchronously by drag updates so the owning
	// engine can recompute all geometries in the same call stack.
	onChange func()
}

// NewSplitter creates a splitter with the given role parameters. The
// initial length is clamped into [minimumLength, maximumLength].
func NewSplitter(direction Direction, resizable bool, length, minimumLength, maximumLength int) *Splitter {
	s := &Splitter{
		direction:      direction,
		resizable:      resizable,
		visible:        true,
		length:         geometry.Clamp(length, minimumLength, maximumLength),
		minimumLength:  minimumLength,
		maximumLength:  maximumLength,
		grabWidth:      DefaultGrabWidth,
		highlightWidth: DefaultHighlightWidth,
		highlightColor: color.Transparent,
	}
	s.updateRects()
	return s
}

func (s *Splitter) Direction() Direction { return s.direction }

// Orientation derives from the direction: splitters pushing Left or
// Right are vertical bars with a horizontal drag axis.
func (s *Splitter) Orientation() Orientation {
	if s.direction == Left || s.direction == Right {
		return Horizontal
	}
	return Vertical
}

func (s *Splitter) Resizable() bool     { return s.resizable }
func (s *Splitter) Visible() bool       { return s.visible }
func (s *Splitter) Length() int         { return s.length }
func (s *Splitter) MinimumLength() int  { return s.minimumLength }
func (s *Splitter) MaximumLength() int  { return s.maximumLength }
func (s *Splitter) GrabWidth() int      { return s.grabWidth }
func (s *Splitter) HighlightWidth() int { return s.highlightWidth }

func (s *Splitter) HighlightColor() color.Color { return s.highlightColor }

// GrabRect is the input-accepting region. Empty when the splitter is
// hidden or not resizable.
func (s *Splitter) GrabRect() geometry.Rect { return s.grabRect }

// HighlightRect is the drawn band, centered on the centerline inside
// the grab rect.
func (s *Splitter) HighlightRect() geometry.Rect { return s.highlightRect }

// Hovered reports whether the pointer is over the splitter. It affects
// drawing only.
func (s *Splitter) Hovered() bool { return s.hovered }

// Pressed reports whether a drag is in progress.
func (s *Splitter) Pressed() bool { return s.pressed }

// SetResizable toggles whether the splitter occupies space at all.
// When false both rects collapse and the splitter accepts no input.
func (s *Splitter) SetResizable(resizable bool) {
	if s.resizable != resizable {
		s.resizable = resizable
		s.updateRects()
		s.notify()
	}
}

// SetVisible is driven by the engine when the adjacent region is
// toggled. A hidden splitter collapses like a non-resizable one.
func (s *Splitter) SetVisible(visible bool) {
	if s.visible != visible {
		s.visible = visible
		s.updateRects()
	}
}

// SetLength clamps the requested length into the current range. A
// changed length recomputes the splitter's own rects and notifies the
// owner.
func (s *Splitter) SetLength(length int) {
	length = geometry.Clamp(length, s.minimumLength, s.maximumLength)
	if s.length != length {
		s.length = length
		s.updateRects()
		s.notify()
	}
}

// SetMinimumLength updates the lower bound and re-clamps the length.
func (s *Splitter) SetMinimumLength(min int) {
	s.minimumLength = min
	s.SetLength(s.length)
}

// SetMaximumLength updates the upper bound and re-clamps the length.
// Called twice per engine recompute during max-length reconciliation;
// the engine guards against the resulting re-entrant notification.
func (s *Splitter) SetMaximumLength(max int) {
	s.maximumLength = max
	s.SetLength(s.length)
}

// SetLengthRange updates both bounds and re-clamps the length.
func (s *Splitter) SetLengthRange(min, max int) {
	s.SetMinimumLength(min)
	s.SetMaximumLength(max)
}

// SetGrabWidth sets the input band thickness, clamped at zero. The
// highlight band is lowered if it would exceed the new grab width.
func (s *Splitter) SetGrabWidth(width int) {
	s.grabWidth = width
	if s.grabWidth < 0 {
		s.grabWidth = 0
	}
	if s.grabWidth < s.highlightWidth {
		s.highlightWidth = s.grabWidth
	}
	s.updateRects()
}

// SetHighlightWidth sets the drawn band thickness, clamped at zero.
// The grab band is raised if it would fall below the new highlight
// width.
func (s *Splitter) SetHighlightWidth(width int) {
	s.highlightWidth = width
	if s.highlightWidth < 0 {
		s.highlightWidth = 0
	}
	if s.grabWidth < s.highlightWidth {
		s.grabWidth = s.highlightWidth
	}
	s.updateRects()
}

func (s *Splitter) SetHighlightColor(c color.Color) {
	s.highlightColor = c
}

// SetGeometryFromCenterline places the splitter along the logical line
// starting at (x, y) and spanning l pixels, then expands it into the
// grab and highlight rects.
func (s *Splitter) SetGeometryFromCenterline(x, y, l int) {
	s.centerlineStart = geometry.Point{X: x, Y: y}
	s.centerlineLength = l
	s.updateRects()
}

// updateRects expands the centerline into the grab rect (input) and
// highlight rect (drawn). The widths are split into half-widths so odd
// bands stay centered on the line.
func (s *Splitter) updateRects() {
	if !s.resizable || !s.visible {
		s.grabRect = geometry.Rect{}
		s.highlightRect = geometry.Rect{}
		return
	}

	x := s.centerlineStart.X
	y := s.centerlineStart.Y
	l := s.centerlineLength

	hw1 := s.highlightWidth / 2
	gw1 := s.grabWidth / 2

	if s.Orientation() == Horizontal {
		s.grabRect = geometry.MakeRect(x-gw1, y, s.grabWidth, l)
		s.highlightRect = geometry.MakeRect(x-hw1, y, s.highlightWidth, l)
	} else {
		s.grabRect = geometry.MakeRect(x, y-gw1, l, s.grabWidth)
		s.highlightRect = geometry.MakeRect(x, y-hw1, l, s.highlightWidth)
	}
}

// HitTest reports whether p lands in the input-accepting band.
func (s *Splitter) HitTest(p geometry.Point) bool {
	return s.resizable && s.visible && s.grabRect.Contains(p)
}

// HoverEnter marks the splitter hovered. Drawing-only state.
func (s *Splitter) HoverEnter() {
	s.hovered = true
}

// HoverLeave clears the hovered state.
func (s *Splitter) HoverLeave() {
	s.hovered = false
}

// Press starts a drag at axis coordinate z, capturing the length and
// position the following drag offsets are measured against.
func (s *Splitter) Press(z int) {
	if !s.resizable || !s.visible {
		return
	}
	s.pressed = true
	s.lengthOnPress = s.length
	s.zOnPress = z
}

// DragTo updates the length from the pointer's current axis
// coordinate. Dragging away from the container origin grows the
// region for Right/Bottom splitters and shrinks it for Left/Top ones.
// The owner is notified synchronously so the full geometry is
// consistent before the call returns.
func (s *Splitter) DragTo(z int) {
	if !s.pressed {
		return
	}
	offset := z - s.zOnPress
	length := s.lengthOnPress
	if s.direction == Right || s.direction == Bottom {
		length += offset
	} else {
		length -= offset
	}
	s.length = geometry.Clamp(length, s.minimumLength, s.maximumLength)
	s.updateRects()
	s.notify()
}

// Release ends the drag. The hovered flag is left to the adapter's
// pointer-leave handling.
func (s *Splitter) Release() {
	s.pressed = false
}

// SetOnChange registers the owner's relayout callback. The engine sets
// this once at construction; splitters never hold a back-pointer to
// their owner.
func (s *Splitter) SetOnChange(fn func()) {
	s.onChange = fn
}

func (s *Splitter) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}
