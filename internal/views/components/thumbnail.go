package components

import (
	"image"
	"image/color"
	"sync"
)

// ThumbnailLoader produces a preview no larger than the requested square.
type ThumbnailLoader func(path string, size int) (image.Image, error)

// ThumbnailCache loads previews off the UI goroutine and remembers them per
// path. A failed load is remembered as the placeholder.
type ThumbnailCache struct {
	mu          sync.Mutex
	size        int
	load        ThumbnailLoader
	images      map[string]image.Image
	pending     map[string]bool
	placeholder image.Image
}

func NewThumbnailCache(size int, load ThumbnailLoader) *ThumbnailCache {
	return &ThumbnailCache{
		size:        size,
		load:        load,
		images:      make(map[string]image.Image),
		pending:     make(map[string]bool),
		placeholder: createPlaceholderImage(size),
	}
}

// Get returns the cached preview, or the placeholder while a load started
// here is in flight. ready runs on the loading goroutine once it finishes.
func (c *ThumbnailCache) Get(path string, ready func()) image.Image {
	c.mu.Lock()
	defer c.mu.Unlock()

	if img, ok := c.images[path]; ok {
		return img
	}
	if c.load == nil || c.pending[path] {
		return c.placeholder
	}

	c.pending[path] = true
	go func() {
		img, err := c.load(path, c.size)
		if err != nil || img == nil {
			img = c.placeholder
		}

		c.mu.Lock()
		delete(c.pending, path)
		c.images[path] = img
		c.mu.Unlock()

		if ready != nil {
			ready()
		}
	}()
	return c.placeholder
}

// Forget drops a cached preview so the next Get reloads it.
func (c *ThumbnailCache) Forget(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.images, path)
}

func (c *ThumbnailCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.images = make(map[string]image.Image)
}

func (c *ThumbnailCache) Placeholder() image.Image {
	return c.placeholder
}

func createPlaceholderImage(size int) image.Image {
	if size < 2 {
		size = 2
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	lightGray := color.RGBA{R: 240, G: 240, B: 240, A: 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, lightGray)
		}
	}

	borderColor := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	for i := 0; i < size; i++ {
		img.Set(i, 0, borderColor)
		img.Set(i, size-1, borderColor)
		img.Set(0, i, borderColor)
		img.Set(size-1, i, borderColor)
	}
	return img
}
