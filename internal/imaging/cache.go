package imaging

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Reference images are read once per incoming screenshot for every
// catalog item, so decoded buffers are cached for the process lifetime
// of the catalog snapshot. Screenshots themselves are single-use and
// bypass this layer.
type cachedLoader struct {
	inner Loader
	lru   *expirable.LRU[string, *PixelBuffer]
}

// NewCachedLoader wraps a Loader with an LRU of decoded buffers.
// size: maximum number of cached images
// ttl: time-to-live for cached entries (zero means no expiry)
func NewCachedLoader(inner Loader, size int, ttl time.Duration) Loader {
	return &cachedLoader{
		inner: inner,
		lru:   expirable.NewLRU[string, *PixelBuffer](size, nil, ttl),
	}
}

func (c *cachedLoader) Load(ctx context.Context, ref string) (*PixelBuffer, error) {
	if buf, ok := c.lru.Get(ref); ok {
		return buf, nil
	}

	buf, err := c.inner.Load(ctx, ref)
	if err != nil {
		return nil, err
	}

	c.lru.Add(ref, buf)
	return buf, nil
}
