package split

import "quadsplit/pkg/geometry"

// RegionKind identifies one of the four fixed content slots.
type RegionKind int

const (
	Viewer RegionKind = iota
	Toolbar
	Console
	Panel
)

func (k RegionKind) String() string {
	switch k {
	case Viewer:
		return "viewer"
	case Toolbar:
		return "toolbar"
	case Console:
		return "console"
	case Panel:
		return "panel"
	}
	return "unknown"
}

// Region is a rectangle-owning slot for one content area. The engine
// owns its rect exclusively and overwrites it on every recompute; the
// minimum size is queried from the content on demand rather than
// cached.
type Region struct {
	kind    RegionKind
	visible bool
	rect    geometry.Rect

	// minSize reports the content's minimum-size hint. Nil means no
	// constraint.
	minSize func() geometry.Size

	// onChange is set by the owning engine to trigger a recompute when
	// visibility flips.
	onChange func()
}

func newRegion(kind RegionKind) *Region {
	return &Region{kind: kind, visible: true}
}

func (r *Region) Kind() RegionKind { return r.kind }

func (r *Region) Visible() bool { return r.visible }

// SetVisible toggles the region and synchronously recomputes the whole
// layout. The viewer region ignores attempts to hide it.
func (r *Region) SetVisible(visible bool) {
	if r.kind == Viewer && !visible {
		return
	}
	if r.visible != visible {
		r.visible = visible
		if r.onChange != nil {
			r.onChange()
		}
	}
}

// Rect is the geometry assigned by the last recompute.
func (r *Region) Rect() geometry.Rect { return r.rect }

// SetMinSizeFunc installs the content's minimum-size hint callback and
// recomputes, since the hint bounds the splitter maxima.
func (r *Region) SetMinSizeFunc(fn func() geometry.Size) {
	r.minSize = fn
	if r.onChange != nil {
		r.onChange()
	}
}

// MinSize queries the content's current minimum-size hint.
func (r *Region) MinSize() geometry.Size {
	if r.minSize == nil {
		return geometry.Size{}
	}
	return r.minSize()
}
