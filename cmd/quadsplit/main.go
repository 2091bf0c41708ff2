package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"quadsplit/pkg/widgets"
)

// slot builds a labelled colored area standing in for real content.
func slot(label string, fill color.Color) fyne.CanvasObject {
	rect := canvas.NewRectangle(fill)
	text := widget.NewLabel(label)
	return container.NewStack(rect, container.NewCenter(text))
}

func main() {
	a := app.New()
	w := a.NewWindow("quadsplit workspace")

	viewer := slot("viewer", color.RGBA{R: 0xe8, G: 0xe8, B: 0xf0, A: 0xff})
	toolbar := slot("tools", color.RGBA{R: 0xd0, G: 0xd8, B: 0xd0, A: 0xff})
	console := slot("console", color.RGBA{R: 0xd8, G: 0xd0, B: 0xc8, A: 0xff})
	panel := slot("panel", color.RGBA{R: 0xc8, G: 0xd0, B: 0xd8, A: 0xff})

	central := widgets.NewCentralWidget(viewer, toolbar, console, panel)
	engine := central.Engine()
	engine.PanelSplitter().SetHighlightColor(color.RGBA{R: 0x4a, G: 0x90, B: 0xd9, A: 0xa0})
	engine.ConsoleSplitter().SetHighlightColor(color.RGBA{R: 0x4a, G: 0x90, B: 0xd9, A: 0xa0})

	viewMenu := fyne.NewMenu("View",
		widgets.NewToggleViewItem("Console", engine.Console()),
		widgets.NewToggleViewItem("Panel", engine.Panel()),
		widgets.NewToggleViewItem("Toolbar", engine.Toolbar()),
	)
	w.SetMainMenu(fyne.NewMainMenu(viewMenu))

	w.SetContent(central)
	w.Resize(fyne.NewSize(1024, 768))
	w.ShowAndRun()
}
