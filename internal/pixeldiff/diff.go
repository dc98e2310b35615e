// Package pixeldiff counts perceptually different pixels between two
// equal-sized RGBA buffers. The color metric is the YIQ distance used
// by pixelmatch, so antialiasing and compression noise below the
// tolerance band is ignored.
package pixeldiff

import (
	"fmt"

	"github.com/lootgrid/lootgrid/internal/domain"
	"github.com/lootgrid/lootgrid/internal/imaging"
)

// DefaultTolerance matches the threshold the matcher was tuned with.
const DefaultTolerance = 0.1

// maxYIQDelta is the largest possible YIQ color distance (white vs
// black); tolerance scales against it.
const maxYIQDelta = 35215.0

// Diff returns the number of pixels of a and b that differ beyond the
// tolerance band. tolerance is a fraction in [0,1]; 0 demands exact
// channel equality. Pure function of its inputs.
// Returns domain.ErrDimensionMismatch unless a and b have identical
// width and height.
func Diff(a, b *imaging.PixelBuffer, tolerance float64) (int, error) {
	if a.Width != b.Width || a.Height != b.Height {
		return 0, fmt.Errorf("%w: %dx%d vs %dx%d",
			domain.ErrDimensionMismatch, a.Width, a.Height, b.Width, b.Height)
	}

	maxDelta := maxYIQDelta * tolerance * tolerance

	count := 0
	for i := 0; i < len(a.Pix); i += 4 {
		if a.Pix[i] == b.Pix[i] && a.Pix[i+1] == b.Pix[i+1] &&
			a.Pix[i+2] == b.Pix[i+2] && a.Pix[i+3] == b.Pix[i+3] {
			continue
		}
		if colorDelta(a.Pix[i:i+4], b.Pix[i:i+4]) > maxDelta {
			count++
		}
	}

	return count, nil
}

// colorDelta is the squared YIQ distance between two RGBA pixels,
// blended over a white background when not fully opaque.
func colorDelta(p1, p2 []byte) float64 {
	r1, g1, b1 := blendWhite(p1)
	r2, g2, b2 := blendWhite(p2)

	y := rgb2y(r1, g1, b1) - rgb2y(r2, g2, b2)
	i := rgb2i(r1, g1, b1) - rgb2i(r2, g2, b2)
	q := rgb2q(r1, g1, b1) - rgb2q(r2, g2, b2)

	return 0.5053*y*y + 0.299*i*i + 0.1957*q*q
}

func blendWhite(p []byte) (r, g, b float64) {
	r = float64(p[0])
	g = float64(p[1])
	b = float64(p[2])

	if p[3] < 255 {
		a := float64(p[3]) / 255
		r = 255 + (r-255)*a
		g = 255 + (g-255)*a
		b = 255 + (b-255)*a
	}

	return r, g, b
}

func rgb2y(r, g, b float64) float64 {
	return r*0.29889531 + g*0.58662247 + b*0.11448223
}

func rgb2i(r, g, b float64) float64 {
	return r*0.59597799 - g*0.27417610 - b*0.32180189
}

func rgb2q(r, g, b float64) float64 {
	return r*0.21147017 - g*0.52261711 + b*0.31114694
}
