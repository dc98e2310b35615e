package imaging

import (
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	// Register decoders for the formats Discord serves for attachments.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/lootgrid/lootgrid/internal/domain"
)

// DefaultFetchTimeout bounds a single attachment download.
const DefaultFetchTimeout = 10 * time.Second

// MaxImageBytes caps how much image data we are willing to read.
// Discord attachments are well under this; anything larger is rejected
// before decode.
const MaxImageBytes = 32 << 20

// Loader decodes an image reference (URL or local path) into a
// PixelBuffer.
type Loader interface {
	Load(ctx context.Context, ref string) (*PixelBuffer, error)
}

type loader struct {
	client *http.Client
}

// NewLoader creates a Loader with the given fetch timeout.
// A zero timeout falls back to DefaultFetchTimeout.
func NewLoader(timeout time.Duration) Loader {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &loader{
		client: &http.Client{Timeout: timeout},
	}
}

// Load fetches and decodes the referenced image.
// Returns domain.ErrImageFetch on network/IO failure and
// domain.ErrImageDecode on corrupt or unsupported data.
func (l *loader) Load(ctx context.Context, ref string) (*PixelBuffer, error) {
	var (
		rc  io.ReadCloser
		err error
	)

	if isURL(ref) {
		rc, err = l.fetch(ctx, ref)
	} else {
		rc, err = l.open(ref)
	}
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, _, err := image.Decode(io.LimitReader(rc, MaxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrImageDecode, ref, err)
	}

	return FromImage(img), nil
}

func (l *loader) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImageFetch, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImageFetch, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: unexpected status %d for %s", domain.ErrImageFetch, resp.StatusCode, url)
	}

	return resp.Body, nil
}

func (l *loader) open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImageFetch, err)
	}
	return f, nil
}

func isURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
