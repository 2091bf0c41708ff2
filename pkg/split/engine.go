package split

import "quadsplit/pkg/geometry"

// Role-specific splitter construction parameters: the toolbar strip is
// a fixed 68px column, the side panel and console start at 200px and
// can be dragged down to 200px and 50px respectively.
const (
	toolbarLength    = 68
	panelLength      = 200
	panelMinLength   = 200
	consoleLength    = 200
	consoleMinLength = 50
)

// Preferred size of the whole workspace.
var preferredSize = geometry.Size{Width: 1920, Height: 1080}

// Engine owns the four regions and three splitters of the workspace
// and is the single writer of their geometry. Every mutation funnels
// into UpdateGeometries, which runs synchronously on the caller's
// stack and leaves all seven rects consistent before returning.
type Engine struct {
	margin int
	size   geometry.Size

	regions   [4]*Region
	splitters [3]*Splitter

	// updating breaks the notification cycle: reconciling splitter
	// maxima mid-recompute must not start a nested recompute.
	updating bool

	// onUpdate lets an adapter repaint after a recompute. Optional.
	onUpdate func()
}

// Splitter indices, in the order the recompute walks them.
const (
	toolbarSplitter = iota
	panelSplitter
	consoleSplitter
)

// NewEngine builds the fixed workspace topology: a viewer that is
// always visible, three hideable satellites, and their splitters. All
// geometry starts degenerate until SetContainerSize is called.
func NewEngine() *Engine {
	e := &Engine{}
	for kind := Viewer; kind <= Panel; kind++ {
		e.regions[kind] = newRegion(kind)
	}
	e.splitters[toolbarSplitter] = NewSplitter(Right, false, toolbarLength, toolbarLength, Unbounded)
	e.splitters[panelSplitter] = NewSplitter(Left, true, panelLength, panelMinLength, Unbounded)
	e.splitters[consoleSplitter] = NewSplitter(Top, true, consoleLength, consoleMinLength, Unbounded)

	for _, r := range e.regions {
		r.onChange = e.UpdateGeometries
	}
	for _, s := range e.splitters {
		s.SetOnChange(e.UpdateGeometries)
	}
	e.UpdateGeometries()
	return e
}

func (e *Engine) Viewer() *Region  { return e.regions[Viewer] }
func (e *Engine) Toolbar() *Region { return e.regions[Toolbar] }
func (e *Engine) Console() *Region { return e.regions[Console] }
func (e *Engine) Panel() *Region   { return e.regions[Panel] }

// Region returns the region for a kind, for callers iterating all four.
func (e *Engine) Region(kind RegionKind) *Region { return e.regions[kind] }

func (e *Engine) ToolbarSplitter() *Splitter { return e.splitters[toolbarSplitter] }
func (e *Engine) PanelSplitter() *Splitter   { return e.splitters[panelSplitter] }
func (e *Engine) ConsoleSplitter() *Splitter { return e.splitters[consoleSplitter] }

// Splitters returns the three splitters in toolbar, panel, console
// order.
func (e *Engine) Splitters() [3]*Splitter { return e.splitters }

func (e *Engine) Margin() int { return e.margin }

// SetMargin sets the uniform gap around and between regions.
func (e *Engine) SetMargin(margin int) {
	if margin < 0 {
		margin = 0
	}
	if e.margin != margin {
		e.margin = margin
		e.UpdateGeometries()
	}
}

func (e *Engine) ContainerSize() geometry.Size { return e.size }

// SetContainerSize is called by the owning window on every resize.
func (e *Engine) SetContainerSize(width, height int) {
	size := geometry.Size{Width: width, Height: height}
	if e.size != size {
		e.size = size
		e.UpdateGeometries()
	}
}

// SetOnUpdate registers a repaint hook invoked after every recompute.
func (e *Engine) SetOnUpdate(fn func()) {
	e.onUpdate = fn
}

// PreferredSize is the workspace's natural size hint.
func (e *Engine) PreferredSize() geometry.Size {
	return preferredSize
}

// MinimumSizeHint is the smallest container that fits the viewer's
// minimum size plus every visible satellite at its splitter's minimum
// length, with margins.
func (e *Engine) MinimumSizeHint() geometry.Size {
	res := geometry.Size{Width: 2 * e.margin, Height: 2 * e.margin}
	res = res.Add(e.regions[Viewer].MinSize())
	if e.regions[Toolbar].visible {
		res.Width += e.margin + e.splitters[toolbarSplitter].MinimumLength()
	}
	if e.regions[Panel].visible {
		res.Width += e.margin + e.splitters[panelSplitter].MinimumLength()
	}
	if e.regions[Console].visible {
		res.Height += e.margin + e.splitters[consoleSplitter].MinimumLength()
	}
	return res
}

// UpdateGeometries derives all region and splitter rects from the
// container size, margin, visibility flags, and splitter lengths.
//
// The edge coordinates are, left to right: x1 (container left edge
// inset by the first half-margin), x2 (toolbar/viewer centerline), x3
// (viewer/panel centerline), x4 (right edge); and top to bottom: y1,
// y2 (viewer/console centerline), y3. An odd margin M splits into
// m1 = M/2 before a centerline and m2 = M-m1 after it, so centering
// stays pixel-accurate.
func (e *Engine) UpdateGeometries() {
	if e.updating {
		return
	}
	e.updating = true
	defer func() {
		e.updating = false
		if e.onUpdate != nil {
			e.onUpdate()
		}
	}()

	M := e.margin
	m1 := M / 2
	m2 := M - m1

	w := e.size.Width
	h := e.size.Height

	x1 := m1
	x4 := w - m2
	y1 := m1
	y3 := h - m2

	s0 := e.splitters[toolbarSplitter]
	s1 := e.splitters[panelSplitter]
	s2 := e.splitters[consoleSplitter]

	toolbarVisible := e.regions[Toolbar].visible
	panelVisible := e.regions[Panel].visible
	consoleVisible := e.regions[Console].visible

	s0.SetVisible(toolbarVisible)
	s1.SetVisible(panelVisible)
	s2.SetVisible(consoleVisible)

	var x2, x3, y2 int
	place := func() {
		x2 = x1
		if toolbarVisible {
			x2 += M + s0.Length()
		}
		x3 = x4
		if panelVisible {
			x3 -= M + s1.Length()
		}
		y2 = y3
		if consoleVisible {
			y2 -= M + s2.Length()
		}
	}

	// Maximum-length reconciliation. Each splitter's maximum depends
	// on where the other two landed and on the viewer's minimum size,
	// so the placement and the maxima are applied twice: the first
	// pass may shrink a length against a tightened maximum, the
	// second recomputes the centerlines from the shrunk lengths.
	// Lengths only ever decrease under clamping and the cross
	// dependency has depth two, so a third pass cannot change
	// anything. Without the second pass, showing the panel while the
	// window sits at its minimum size leaves the viewer below its
	// minimum width.
	//
	// An empty container carries no constraint information: leaving
	// the maxima alone preserves the configured lengths until the
	// first real resize.
	if w > 0 && h > 0 {
		viewerMin := e.regions[Viewer].MinSize()
		for i := 0; i < 2; i++ {
			place()
			s0.SetMaximumLength(x3 - x1 - 2*M - viewerMin.Width)
			s1.SetMaximumLength(x4 - x2 - 2*M - viewerMin.Width)
			s2.SetMaximumLength(y3 - y1 - 2*M - viewerMin.Height)
		}
	}
	place()

	s0.SetGeometryFromCenterline(x2, y1+m2, y3-y1-M)
	s1.SetGeometryFromCenterline(x3, y1+m2, y3-y1-M)
	s2.SetGeometryFromCenterline(x2+m2, y2, x3-x2-M)

	e.regions[Toolbar].rect = geometry.MakeRect(x1+m2, y1+m2, x2-x1-M, y3-y1-M)
	e.regions[Viewer].rect = geometry.MakeRect(x2+m2, y1+m2, x3-x2-M, y2-y1-M)
	e.regions[Console].rect = geometry.MakeRect(x2+m2, y2+m2, x3-x2-M, y3-y2-M)
	e.regions[Panel].rect = geometry.MakeRect(x3+m2, y1+m2, x4-x3-M, y3-y1-M)
}
