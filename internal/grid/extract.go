package grid

import (
	"fmt"
	"image"

	"github.com/lootgrid/lootgrid/internal/domain"
	"github.com/lootgrid/lootgrid/internal/imaging"
)

// ExtractRegion copies a width x height region of the screenshot
// starting at origin into a new buffer.
// Returns domain.ErrOutOfBounds when the region does not fit inside
// the screenshot; callers treat that as "no match" for the pair and
// keep sweeping.
func ExtractRegion(screenshot *imaging.PixelBuffer, origin image.Point, width, height int) (*imaging.PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: non-positive region %dx%d", domain.ErrInvalidInput, width, height)
	}
	if origin.X < 0 || origin.Y < 0 ||
		origin.X+width > screenshot.Width || origin.Y+height > screenshot.Height {
		return nil, fmt.Errorf("%w: region %dx%d at (%d,%d) exceeds screenshot %dx%d",
			domain.ErrOutOfBounds, width, height, origin.X, origin.Y, screenshot.Width, screenshot.Height)
	}

	region := imaging.NewPixelBuffer(width, height)
	for y := 0; y < height; y++ {
		srcStart := ((origin.Y+y)*screenshot.Width + origin.X) * 4
		dstStart := y * width * 4
		copy(region.Pix[dstStart:dstStart+width*4], screenshot.Pix[srcStart:srcStart+width*4])
	}

	return region, nil
}

// ExtractSlot extracts the region of the given slot sized to the
// reference dimensions.
func ExtractSlot(screenshot *imaging.PixelBuffer, layout Layout, slotIndex, width, height int) (*imaging.PixelBuffer, error) {
	if slotIndex < 0 || slotIndex >= layout.SlotCount() {
		return nil, fmt.Errorf("%w: slot index %d outside layout of %d slots",
			domain.ErrInvalidInput, slotIndex, layout.SlotCount())
	}
	return ExtractRegion(screenshot, layout.Origins[slotIndex], width, height)
}
