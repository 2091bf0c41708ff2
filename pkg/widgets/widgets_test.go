package widgets

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"quadsplit/pkg/split"
)

func newTestCentral() *CentralWidget {
	viewer := canvas.NewRectangle(color.White)
	toolbar := canvas.NewRectangle(color.White)
	console := canvas.NewRectangle(color.White)
	panel := canvas.NewRectangle(color.White)
	return NewCentralWidget(viewer, toolbar, console, panel)
}

func TestHandleCursor_PerSplitterRole(t *testing.T) {
	test.NewApp()
	cw := newTestCentral()

	if got := cw.Handle(0).Cursor(); got != desktop.DefaultCursor {
		t.Errorf("toolbar handle cursor: got %v, want default", got)
	}
	if got := cw.Handle(1).Cursor(); got != desktop.HResizeCursor {
		t.Errorf("panel handle cursor: got %v, want h-resize", got)
	}
	if got := cw.Handle(2).Cursor(); got != desktop.VResizeCursor {
		t.Errorf("console handle cursor: got %v, want v-resize", got)
	}
}

func TestCentralWidget_MinSizeFollowsEngineHint(t *testing.T) {
	test.NewApp()
	viewer := canvas.NewRectangle(color.White)
	viewer.SetMinSize(fyne.NewSize(160, 120))
	cw := NewCentralWidget(viewer,
		canvas.NewRectangle(color.White),
		canvas.NewRectangle(color.White),
		canvas.NewRectangle(color.White))

	r := test.WidgetRenderer(cw)
	want := fyne.NewSize(160+68+200, 120+50)
	if got := r.MinSize(); got != want {
		t.Errorf("min size: got %v, want %v", got, want)
	}

	cw.Engine().Panel().SetVisible(false)
	want = fyne.NewSize(160+68, 120+50)
	if got := r.MinSize(); got != want {
		t.Errorf("min size with panel hidden: got %v, want %v", got, want)
	}
}

func TestCentralWidget_LayoutPlacesContent(t *testing.T) {
	test.NewApp()
	cw := newTestCentral()
	r := test.WidgetRenderer(cw)
	r.Layout(fyne.NewSize(1000, 800))

	viewer := cw.content[split.Viewer]
	if got := viewer.Position(); got != fyne.NewPos(68, 0) {
		t.Errorf("viewer position: got %v, want (68, 0)", got)
	}
	if got := viewer.Size(); got != fyne.NewSize(732, 600) {
		t.Errorf("viewer size: got %v, want (732, 600)", got)
	}

	panelHandle := cw.Handle(1)
	if got := panelHandle.Position(); got != fyne.NewPos(795, 0) {
		t.Errorf("panel handle position: got %v, want (795, 0)", got)
	}
	// The toolbar splitter is fixed: no on-screen handle.
	if cw.Handle(0).Visible() {
		t.Error("toolbar handle should be hidden")
	}
}

func TestCentralWidget_DragMovesBoundary(t *testing.T) {
	test.NewApp()
	cw := newTestCentral()
	r := test.WidgetRenderer(cw)
	r.Layout(fyne.NewSize(1000, 800))

	h := cw.Handle(1)
	h.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: -50}})

	if got := cw.Engine().PanelSplitter().Length(); got != 250 {
		t.Fatalf("panel length after drag: got %d, want 250", got)
	}
	panel := cw.content[split.Panel]
	if got := panel.Position(); got != fyne.NewPos(750, 0) {
		t.Errorf("panel position after drag: got %v, want (750, 0)", got)
	}
	if got := h.Position(); got != fyne.NewPos(745, 0) {
		t.Errorf("handle position after drag: got %v, want (745, 0)", got)
	}

	h.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: 50}})
	h.DragEnd()
	if got := cw.Engine().PanelSplitter().Length(); got != 200 {
		t.Errorf("panel length after reversed drag: got %d, want 200", got)
	}
}

func TestCentralWidget_ToggleHidesContent(t *testing.T) {
	test.NewApp()
	cw := newTestCentral()
	r := test.WidgetRenderer(cw)
	r.Layout(fyne.NewSize(1000, 800))

	item := NewToggleViewItem("Console", cw.Engine().Console())
	if !item.Checked {
		t.Fatal("toggle item should start checked")
	}
	item.Action()
	if item.Checked {
		t.Error("toggle item still checked after hiding")
	}
	if cw.content[split.Console].Visible() {
		t.Error("console content still visible after toggle")
	}
	if got := cw.content[split.Viewer].Size(); got != fyne.NewSize(732, 800) {
		t.Errorf("viewer size with console hidden: got %v, want (732, 800)", got)
	}

	item.Action()
	if !cw.content[split.Console].Visible() {
		t.Error("console content not restored")
	}
}

func TestToggleViewItem_ViewerStaysVisible(t *testing.T) {
	test.NewApp()
	cw := newTestCentral()
	item := NewToggleViewItem("Viewer", cw.Engine().Viewer())
	item.Action()
	if !item.Checked || !cw.Engine().Viewer().Visible() {
		t.Error("viewer toggled off")
	}
}
