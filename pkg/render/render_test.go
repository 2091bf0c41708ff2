package render

import (
	"image"
	"image/color"
	"testing"

	"quadsplit/pkg/split"
)

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestRender_RegionFills(t *testing.T) {
	e := split.NewEngine()
	e.Toolbar().SetVisible(false)
	e.SetContainerSize(1000, 800)

	r := NewRenderer(1000, 800)
	r.Render(e)
	img := r.Image()

	palette := DefaultPalette()
	probes := []struct {
		name string
		at   image.Point
		want color.Color
	}{
		{"viewer center", image.Point{X: 400, Y: 300}, palette.Regions[split.Viewer]},
		{"panel center", image.Point{X: 900, Y: 400}, palette.Regions[split.Panel]},
		{"console center", image.Point{X: 400, Y: 700}, palette.Regions[split.Console]},
		{"panel splitter band", image.Point{X: 799, Y: 100}, palette.Splitter},
		{"console splitter band", image.Point{X: 400, Y: 599}, palette.Splitter},
	}
	for _, p := range probes {
		if got := img.At(p.at.X, p.at.Y); !sameColor(got, p.want) {
			t.Errorf("%s at %v: got %v, want %v", p.name, p.at, got, p.want)
		}
	}
}

func TestRender_HiddenRegionShowsBackground(t *testing.T) {
	e := split.NewEngine()
	e.Toolbar().SetVisible(false)
	e.Panel().SetVisible(false)
	e.Console().SetVisible(false)
	e.SetContainerSize(400, 300)

	r := NewRenderer(400, 300)
	r.Render(e)
	img := r.Image()

	palette := DefaultPalette()
	// With every satellite hidden the viewer covers the whole frame.
	if got := img.At(395, 295); !sameColor(got, palette.Regions[split.Viewer]) {
		t.Errorf("corner: got %v, want viewer fill %v", got, palette.Regions[split.Viewer])
	}
}

func TestRender_MarginShowsBackground(t *testing.T) {
	e := split.NewEngine()
	e.Toolbar().SetVisible(false)
	e.Panel().SetVisible(false)
	e.Console().SetVisible(false)
	e.SetMargin(10)
	e.SetContainerSize(400, 300)

	r := NewRenderer(400, 300)
	r.Render(e)
	img := r.Image()

	palette := DefaultPalette()
	if got := img.At(2, 2); !sameColor(got, palette.Background) {
		t.Errorf("margin pixel: got %v, want background %v", got, palette.Background)
	}
	if got := img.At(200, 150); !sameColor(got, palette.Regions[split.Viewer]) {
		t.Errorf("center pixel: got %v, want viewer fill %v", got, palette.Regions[split.Viewer])
	}
}
