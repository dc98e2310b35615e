package imaging

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLoader struct {
	calls int
}

func (c *countingLoader) Load(ctx context.Context, ref string) (*PixelBuffer, error) {
	c.calls++
	return NewPixelBuffer(2, 2), nil
}

func TestCachedLoaderDecodesOnce(t *testing.T) {
	inner := &countingLoader{}
	loader := NewCachedLoader(inner, 16, time.Hour)

	ctx := context.Background()
	first, err := loader.Load(ctx, "items/sword.png")
	require.NoError(t, err)

	second, err := loader.Load(ctx, "items/sword.png")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls, "repeated loads of the same reference must hit the cache")
	assert.Same(t, first, second)
}

func TestCachedLoaderDistinctRefs(t *testing.T) {
	inner := &countingLoader{}
	loader := NewCachedLoader(inner, 16, time.Hour)

	ctx := context.Background()
	_, err := loader.Load(ctx, "items/sword.png")
	require.NoError(t, err)
	_, err = loader.Load(ctx, "items/shield.png")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}
