package grid

import "image"

// Layout describes the fixed inventory grid for one screen resolution:
// the resolution it was calibrated against and the top-left origin of
// every slot. Region sizes are not part of the layout because each
// extraction is sized to the reference image it is compared against.
type Layout struct {
	Width   int
	Height  int
	Origins []image.Point
}

// SlotCount returns the number of slots in the layout.
func (l Layout) SlotCount() int {
	return len(l.Origins)
}

// DefaultLayout is the 4x4 inventory grid calibrated to 1920x1080.
// Screenshots at any other resolution are an explicit non-goal; there
// is no scaling or normalization.
func DefaultLayout() Layout {
	return Layout{
		Width:  1920,
		Height: 1080,
		Origins: []image.Point{
			// First inventory row
			{X: 1580, Y: 688},
			{X: 1663, Y: 688},
			{X: 1746, Y: 688},
			{X: 1829, Y: 688},
			// Second
			{X: 1580, Y: 771},
			{X: 1663, Y: 771},
			{X: 1746, Y: 771},
			{X: 1829, Y: 771},
			// Third
			{X: 1580, Y: 913},
			{X: 1663, Y: 913},
			{X: 1746, Y: 913},
			{X: 1829, Y: 913},
			// Fourth
			{X: 1580, Y: 996},
			{X: 1663, Y: 996},
			{X: 1746, Y: 996},
			{X: 1829, Y: 996},
		},
	}
}
