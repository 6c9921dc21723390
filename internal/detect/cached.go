package detect

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/kozaktomas/makeup-tryon/internal/face"
	"github.com/kozaktomas/makeup-tryon/internal/imageio"
)

// Cached memoizes another detector by the image's encoded bytes. "No face"
// results are cached too; errors are not.
type Cached struct {
	next  Detector
	cache *cache.Cache
}

// cachedResult wraps the face so a cached nil can be told from a miss.
type cachedResult struct {
	face *face.Face
}

// NewCached wraps next with a cache whose entries live for ttl.
func NewCached(next Detector, ttl time.Duration) *Cached {
	return &Cached{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *Cached) Detect(ctx context.Context, img *imageio.Image) (*face.Face, error) {
	key := cacheKey(img.Encoded)
	if v, ok := c.cache.Get(key); ok {
		return copyFace(v.(cachedResult).face), nil
	}

	f, err := c.next.Detect(ctx, img)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, cachedResult{face: copyFace(f)})
	return f, nil
}

// Len returns the number of cached entries.
func (c *Cached) Len() int {
	return c.cache.ItemCount()
}

// Flush drops every cached entry.
func (c *Cached) Flush() {
	c.cache.Flush()
}

func cacheKey(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func copyFace(f *face.Face) *face.Face {
	if f == nil {
		return nil
	}
	cp := *f
	return &cp
}
