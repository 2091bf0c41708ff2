// quadsplit-snap computes a workspace layout headlessly and writes it
// to a PNG, for inspecting the geometry without a display.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"strings"

	"quadsplit/pkg/render"
	"quadsplit/pkg/split"
)

func main() {
	width := flag.Int("w", 1000, "container width in pixels")
	height := flag.Int("h", 800, "container height in pixels")
	margin := flag.Int("margin", 0, "gap around and between regions")
	panelLen := flag.Int("panel", 0, "panel length override (0 keeps the default)")
	consoleLen := flag.Int("console", 0, "console length override (0 keeps the default)")
	hide := flag.String("hide", "", "comma-separated regions to hide: toolbar,panel,console")
	output := flag.String("o", "layout.png", "output PNG file path")
	flag.Parse()

	e := split.NewEngine()
	e.SetMargin(*margin)
	for _, name := range strings.Split(*hide, ",") {
		switch strings.TrimSpace(name) {
		case "":
		case "toolbar":
			e.Toolbar().SetVisible(false)
		case "panel":
			e.Panel().SetVisible(false)
		case "console":
			e.Console().SetVisible(false)
		default:
			fmt.Fprintf(os.Stderr, "unknown region %q\n", name)
			os.Exit(1)
		}
	}
	if *panelLen > 0 {
		e.PanelSplitter().SetLength(*panelLen)
	}
	if *consoleLen > 0 {
		e.ConsoleSplitter().SetLength(*consoleLen)
	}
	e.SetContainerSize(*width, *height)

	for kind := split.Viewer; kind <= split.Panel; kind++ {
		region := e.Region(kind)
		fmt.Fprintf(os.Stderr, "%-8s visible=%-5v rect=%+v\n", kind, region.Visible(), region.Rect())
	}

	r := render.NewRenderer(*width, *height)
	r.Render(e)

	f, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, r.Image()); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Saved to %s\n", *output)
}
