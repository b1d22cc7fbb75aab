// Package ui draws the HUD panel and the pause screens over the world view.
package ui

import "image"

const (
	panelPadding   = 12
	lineHeight     = 18
	headerBaseline = 18
	groupGap       = 10

	buttonWidth  = 120
	buttonHeight = 28
	buttonGap    = 10

	slotSize = 40
	slotGap  = 6
	slotCols = 5
)

// MenuButtons lays out n buttons in a column centred in a w x h area.
func MenuButtons(w, h, n int) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	total := n*buttonHeight + (n-1)*buttonGap
	x := (w - buttonWidth) / 2
	y := (h - total) / 2
	out := make([]image.Rectangle, n)
	for i := range out {
		top := y + i*(buttonHeight+buttonGap)
		out[i] = image.Rect(x, top, x+buttonWidth, top+buttonHeight)
	}
	return out
}

// InventorySlots lays out a grid of slots centred in a w x h area.
func InventorySlots(w, h, slots int) []image.Rectangle {
	if slots <= 0 {
		return nil
	}
	cols := min(slots, slotCols)
	rows := (slots + cols - 1) / cols
	gridW := cols*slotSize + (cols-1)*slotGap
	gridH := rows*slotSize + (rows-1)*slotGap
	x0 := (w - gridW) / 2
	y0 := (h - gridH) / 2
	out := make([]image.Rectangle, slots)
	for i := range out {
		cx, cy := i%cols, i/cols
		x := x0 + cx*(slotSize+slotGap)
		y := y0 + cy*(slotSize+slotGap)
		out[i] = image.Rect(x, y, x+slotSize, y+slotSize)
	}
	return out
}

// HitTest returns the index of the rectangle containing (x, y), or -1.
func HitTest(rects []image.Rectangle, x, y int) int {
	for i, r := range rects {
		if pointInRect(x, y, r) {
			return i
		}
	}
	return -1
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
