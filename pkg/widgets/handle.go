// Package widgets binds the pure layout model in pkg/split to fyne:
// a drag handle per splitter and a container widget that hands its
// size to the engine and places the content from the engine's rects.
package widgets

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"quadsplit/pkg/split"
)

// SplitterHandle is the interactive widget for one splitter. The
// CentralWidget positions it over the model's grab rect; the handle
// translates fyne pointer events into model calls and draws the
// highlight band while hovered.
type SplitterHandle struct {
	widget.BaseWidget
	model *split.Splitter

	// dragZ accumulates drag deltas along the drag axis. fyne reports
	// deltas, the model wants an axis coordinate; pressing at z=0 and
	// feeding the running total keeps the two in agreement even while
	// the handle itself moves with the boundary.
	dragZ float32
}

func NewSplitterHandle(model *split.Splitter) *SplitterHandle {
	h := &SplitterHandle{model: model}
	h.ExtendBaseWidget(h)
	return h
}

// Model returns the splitter this handle drives.
func (h *SplitterHandle) Model() *split.Splitter { return h.model }

func (h *SplitterHandle) CreateRenderer() fyne.WidgetRenderer {
	band := canvas.NewRectangle(color.Transparent)
	return &handleRenderer{handle: h, band: band}
}

// Cursor selects the resize cursor matching the drag axis, or the
// default cursor for a fixed splitter.
func (h *SplitterHandle) Cursor() desktop.Cursor {
	if !h.model.Resizable() {
		return desktop.DefaultCursor
	}
	if h.model.Orientation() == split.Horizontal {
		return desktop.HResizeCursor
	}
	return desktop.VResizeCursor
}

func (h *SplitterHandle) MouseIn(*desktop.MouseEvent) {
	h.model.HoverEnter()
	h.Refresh()
}

func (h *SplitterHandle) MouseMoved(*desktop.MouseEvent) {}

func (h *SplitterHandle) MouseOut() {
	h.model.HoverLeave()
	h.Refresh()
}

func (h *SplitterHandle) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button == desktop.MouseButtonPrimary {
		h.model.Press(0)
		h.dragZ = 0
		h.Refresh()
	}
}

func (h *SplitterHandle) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button == desktop.MouseButtonPrimary {
		h.model.Release()
		h.Refresh()
	}
}

// Dragged forwards pointer movement to the model. The model notifies
// the engine synchronously, so the whole layout has moved by the time
// this returns.
func (h *SplitterHandle) Dragged(ev *fyne.DragEvent) {
	if !h.model.Pressed() {
		// Drag may start without a MouseDown when the primary button
		// went down outside fyne's double-click window.
		h.model.Press(0)
		h.dragZ = 0
	}
	if h.model.Orientation() == split.Horizontal {
		h.dragZ += ev.Dragged.DX
	} else {
		h.dragZ += ev.Dragged.DY
	}
	h.model.DragTo(int(math.Round(float64(h.dragZ))))
}

func (h *SplitterHandle) DragEnd() {
	h.model.Release()
	h.Refresh()
}

type handleRenderer struct {
	handle *SplitterHandle
	band   *canvas.Rectangle
}

func (r *handleRenderer) Layout(fyne.Size) {
	m := r.handle.model
	grab := m.GrabRect()
	hl := m.HighlightRect()
	// The handle widget occupies the grab rect; the band sits at the
	// highlight rect's offset inside it.
	r.band.Move(fyne.NewPos(float32(hl.X-grab.X), float32(hl.Y-grab.Y)))
	r.band.Resize(fyne.NewSize(float32(hl.Width), float32(hl.Height)))
}

func (r *handleRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *handleRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.band}
}

func (r *handleRenderer) Refresh() {
	m := r.handle.model
	if m.Hovered() || m.Pressed() {
		r.band.FillColor = m.HighlightColor()
	} else {
		r.band.FillColor = color.Transparent
	}
	r.Layout(r.handle.Size())
	r.band.Refresh()
}

func (r *handleRenderer) Destroy() {}
