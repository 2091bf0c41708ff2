package widgets

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"quadsplit/pkg/geometry"
	"quadsplit/pkg/split"
)

// CentralWidget hosts the four content areas and the three splitter
// handles. All geometry decisions live in the split engine; this
// widget only feeds it the container size and copies the resulting
// rects onto the canvas objects.
type CentralWidget struct {
	widget.BaseWidget
	engine  *split.Engine
	content map[split.RegionKind]fyne.CanvasObject
	handles [3]*SplitterHandle
}

// NewCentralWidget wires the content objects into a fresh engine. The
// viewer's fyne minimum size becomes the engine's viewer minimum-size
// hint, queried on demand so content changes propagate.
func NewCentralWidget(viewer, toolbar, console, panel fyne.CanvasObject) *CentralWidget {
	cw := &CentralWidget{
		engine: split.NewEngine(),
		content: map[split.RegionKind]fyne.CanvasObject{
			split.Viewer:  viewer,
			split.Toolbar: toolbar,
			split.Console: console,
			split.Panel:   panel,
		},
	}
	cw.engine.Viewer().SetMinSizeFunc(func() geometry.Size {
		min := viewer.MinSize()
		return geometry.Size{
			Width:  int(math.Ceil(float64(min.Width))),
			Height: int(math.Ceil(float64(min.Height))),
		}
	})

	splitters := cw.engine.Splitters()
	for i, s := range splitters {
		cw.handles[i] = NewSplitterHandle(s)
	}
	cw.engine.SetOnUpdate(cw.applyGeometry)

	cw.ExtendBaseWidget(cw)
	return cw
}

// Engine exposes the layout model, for configuring splitters and
// toggling regions.
func (cw *CentralWidget) Engine() *split.Engine { return cw.engine }

// Handle returns the drag handle for one of the three splitters, in
// toolbar, panel, console order.
func (cw *CentralWidget) Handle(i int) *SplitterHandle { return cw.handles[i] }

// applyGeometry copies the engine's rects onto the canvas objects.
// Runs after every engine recompute, including mid-drag ones.
func (cw *CentralWidget) applyGeometry() {
	for kind, obj := range cw.content {
		region := cw.engine.Region(kind)
		if !region.Visible() {
			obj.Hide()
			continue
		}
		obj.Show()
		r := region.Rect()
		obj.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
		obj.Resize(fyne.NewSize(float32(r.Width), float32(r.Height)))
	}
	for _, h := range cw.handles {
		grab := h.Model().GrabRect()
		if grab.IsEmpty() {
			h.Hide()
			continue
		}
		h.Show()
		h.Move(fyne.NewPos(float32(grab.X), float32(grab.Y)))
		h.Resize(fyne.NewSize(float32(grab.Width), float32(grab.Height)))
	}
}

func (cw *CentralWidget) CreateRenderer() fyne.WidgetRenderer {
	return &centralRenderer{cw: cw}
}

type centralRenderer struct {
	cw *CentralWidget
}

func (r *centralRenderer) Layout(size fyne.Size) {
	r.cw.engine.SetContainerSize(int(size.Width), int(size.Height))
	// Same size recomputes nothing, but visibility or splitter state
	// may still have changed since the last pass.
	r.cw.applyGeometry()
}

func (r *centralRenderer) MinSize() fyne.Size {
	hint := r.cw.engine.MinimumSizeHint()
	return fyne.NewSize(float32(hint.Width), float32(hint.Height))
}

// Objects lists content first and handles last, so the handles win
// pointer hit-testing along the region boundaries.
func (r *centralRenderer) Objects() []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, 7)
	for kind := split.Viewer; kind <= split.Panel; kind++ {
		objs = append(objs, r.cw.content[kind])
	}
	for _, h := range r.cw.handles {
		objs = append(objs, h)
	}
	return objs
}

func (r *centralRenderer) Refresh() {
	r.cw.applyGeometry()
	for _, h := range r.cw.handles {
		h.Refresh()
	}
}

func (r *centralRenderer) Destroy() {}
