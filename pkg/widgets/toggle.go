package widgets

import (
	"fyne.io/fyne/v2"

	"quadsplit/pkg/split"
)

// NewToggleViewItem returns a checkable menu item bound to a region's
// visibility. Activating it flips the region, which synchronously
// relayouts the workspace.
func NewToggleViewItem(label string, region *split.Region) *fyne.MenuItem {
	item := fyne.NewMenuItem(label, nil)
	item.Checked = region.Visible()
	item.Action = func() {
		region.SetVisible(!region.Visible())
		item.Checked = region.Visible()
	}
	return item
}
