package imaging

import (
	"image"
	"image/draw"
)

// PixelBuffer is a decoded image as row-major RGBA bytes.
// Pix holds 4 bytes per pixel, Width*Height*4 total.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewPixelBuffer allocates a zeroed buffer of the given dimensions.
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// FromImage converts any decoded image into a PixelBuffer.
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return &PixelBuffer{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    rgba.Pix,
	}
}

// PixelCount returns the number of pixels in the buffer.
func (b *PixelBuffer) PixelCount() int {
	return b.Width * b.Height
}

// RGBAAt returns the four channel bytes of the pixel at (x, y).
// Callers must keep coordinates in bounds.
func (b *PixelBuffer) RGBAAt(x, y int) (r, g, bl, a byte) {
	i := (y*b.Width + x) * 4
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]
}

// SetRGBA writes the four channel bytes of the pixel at (x, y).
func (b *PixelBuffer) SetRGBA(x, y int, r, g, bl, a byte) {
	i := (y*b.Width + x) * 4
	b.Pix[i] = r
	b.Pix[i+1] = g
	b.Pix[i+2] = bl
	b.Pix[i+3] = a
}
