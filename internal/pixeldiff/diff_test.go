package pixeldiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lootgrid/lootgrid/internal/domain"
	"github.com/lootgrid/lootgrid/internal/imaging"
)

func solidBuffer(w, h int, r, g, b, a byte) *imaging.PixelBuffer {
	buf := imaging.NewPixelBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf.SetRGBA(x, y, r, g, b, a)
		}
	}
	return buf
}

func TestDiffIdenticalImages(t *testing.T) {
	a := solidBuffer(16, 16, 120, 80, 40, 255)

	count, err := Diff(a, a, DefaultTolerance)
	require.NoError(t, err)
	assert.Zero(t, count, "an image diffed against itself has no differing pixels")
}

func TestDiffIdenticalWithZeroTolerance(t *testing.T) {
	a := solidBuffer(8, 8, 0, 0, 0, 255)
	b := solidBuffer(8, 8, 0, 0, 0, 255)

	count, err := Diff(a, b, 0)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDiffEveryPixelDiffers(t *testing.T) {
	white := solidBuffer(10, 10, 255, 255, 255, 255)
	black := solidBuffer(10, 10, 0, 0, 0, 255)

	count, err := Diff(white, black, DefaultTolerance)
	require.NoError(t, err)
	assert.Equal(t, 100, count, "white vs black differs in every pixel")
}

func TestDiffToleranceAbsorbsNoise(t *testing.T) {
	a := solidBuffer(10, 10, 128, 128, 128, 255)
	b := solidBuffer(10, 10, 131, 131, 131, 255) // 3 channel levels apart

	count, err := Diff(a, b, DefaultTolerance)
	require.NoError(t, err)
	assert.Zero(t, count, "small channel drift stays inside the tolerance band")

	count, err = Diff(a, b, 0)
	require.NoError(t, err)
	assert.Equal(t, 100, count, "zero tolerance counts any inequality")
}

func TestDiffPartialDifference(t *testing.T) {
	a := solidBuffer(4, 4, 255, 255, 255, 255)
	b := solidBuffer(4, 4, 255, 255, 255, 255)
	b.SetRGBA(1, 1, 0, 0, 0, 255)
	b.SetRGBA(2, 3, 0, 0, 0, 255)

	count, err := Diff(a, b, DefaultTolerance)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestDiffAlphaBlendsOverWhite(t *testing.T) {
	// Fully transparent black blends to white, so it is equal to opaque white.
	white := solidBuffer(4, 4, 255, 255, 255, 255)
	transparent := solidBuffer(4, 4, 0, 0, 0, 0)

	count, err := Diff(white, transparent, DefaultTolerance)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDiffDimensionMismatch(t *testing.T) {
	a := solidBuffer(4, 4, 0, 0, 0, 255)
	b := solidBuffer(4, 5, 0, 0, 0, 255)

	_, err := Diff(a, b, DefaultTolerance)
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)

	c := solidBuffer(5, 4, 0, 0, 0, 255)
	_, err = Diff(a, c, DefaultTolerance)
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
}

func TestDiffIsDeterministic(t *testing.T) {
	a := solidBuffer(12, 12, 10, 200, 90, 255)
	b := solidBuffer(12, 12, 12, 190, 95, 255)

	first, err := Diff(a, b, DefaultTolerance)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Diff(a, b, DefaultTolerance)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
