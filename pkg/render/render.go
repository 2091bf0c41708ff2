// Package render rasterizes a computed workspace layout into an image,
// for headless inspection of the geometry the engine produced.
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"quadsplit/pkg/geometry"
	"quadsplit/pkg/split"
)

// Palette holds the fill colors used for each slot.
type Palette struct {
	Background color.Color
	Regions    map[split.RegionKind]color.Color
	Splitter   color.Color
}

// DefaultPalette uses muted fills so splitter bands stay readable.
func DefaultPalette() Palette {
	return Palette{
		Background: color.White,
		Regions: map[split.RegionKind]color.Color{
			split.Viewer:  color.RGBA{R: 0xe8, G: 0xe8, B: 0xf0, A: 0xff},
			split.Toolbar: color.RGBA{R: 0xd0, G: 0xd8, B: 0xd0, A: 0xff},
			split.Console: color.RGBA{R: 0xd8, G: 0xd0, B: 0xc8, A: 0xff},
			split.Panel:   color.RGBA{R: 0xc8, G: 0xd0, B: 0xd8, A: 0xff},
		},
		Splitter: color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff},
	}
}

type Renderer struct {
	context *gg.Context
	palette Palette
}

// NewRenderer creates a renderer targeting a width x height image.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		context: gg.NewContext(width, height),
		palette: DefaultPalette(),
	}
}

// SetPalette overrides the default colors.
func (r *Renderer) SetPalette(p Palette) {
	r.palette = p
}

// Render draws the engine's current rects: background, visible region
// fills, then splitter bands on top.
func (r *Renderer) Render(e *split.Engine) {
	r.context.SetColor(r.palette.Background)
	r.context.Clear()

	for kind := split.Viewer; kind <= split.Panel; kind++ {
		region := e.Region(kind)
		if !region.Visible() || region.Rect().IsEmpty() {
			continue
		}
		r.fillRect(region.Rect(), r.palette.Regions[kind])
	}

	for _, s := range e.Splitters() {
		band := s.HighlightRect()
		if band.IsEmpty() {
			continue
		}
		c := r.palette.Splitter
		// A hovered splitter draws its own highlight color when one
		// is configured, matching the interactive widget.
		if s.Hovered() {
			if _, _, _, a := s.HighlightColor().RGBA(); a > 0 {
				c = s.HighlightColor()
			}
		}
		r.fillRect(band, c)
	}
}

func (r *Renderer) fillRect(rect geometry.Rect, c color.Color) {
	if c == nil {
		return
	}
	r.context.SetColor(c)
	r.context.DrawRectangle(float64(rect.X), float64(rect.Y), float64(rect.Width), float64(rect.Height))
	r.context.Fill()
}

// Image returns the rendered frame.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}
