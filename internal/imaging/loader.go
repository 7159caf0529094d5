package imaging

import (
	"fmt"
	"image"
	"os"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// ImageCache provides thread-safe caching of decoded images keyed by path.
//
// Once an image is loaded, subsequent Load calls for the same path return the
// cached copy without disk I/O. Cached images stay in memory until removed
// with Evict or Clear.
//
//	cache := imaging.NewImageCache()
//	img, err := cache.Load("/path/to/scene.jpg")
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates an empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache or decodes it from disk.
//
// Supported formats are JPEG, PNG, GIF, BMP and TIFF. JPEG files are rotated
// according to their EXIF orientation tag. The cache key is the exact path
// string, so relative and absolute paths to one file are cached separately.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes the image cached under path. Unknown paths are ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is derived from the file extension: "jpeg", "png", "gif",
	// "bmp", "tiff" or "unknown".
	Format string `json:"format"`

	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through cache and describes it.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = strings.ToLower(f.String())
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}
