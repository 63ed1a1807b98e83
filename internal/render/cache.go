package render

// Cache memoizes rendered surfaces by key. A surface is built on the first
// Get for its key and reused until the owner calls Reset.
type Cache[K comparable] struct {
	items  map[K]Image
	misses int
}

// NewCache returns an empty cache.
func NewCache[K comparable]() *Cache[K] {
	return &Cache[K]{items: make(map[K]Image)}
}

// Get returns the surface stored under key, calling build to create it on a miss.
func (c *Cache[K]) Get(key K, build func() Image) Image {
	if img, ok := c.items[key]; ok {
		return img
	}
	img := build()
	c.items[key] = img
	c.misses++
	return img
}

// Len returns the number of distinct surfaces held.
func (c *Cache[K]) Len() int {
	return len(c.items)
}

// Misses returns how many surfaces have been built since construction.
func (c *Cache[K]) Misses() int {
	return c.misses
}

// Reset disposes every surface and empties the cache.
func (c *Cache[K]) Reset() {
	for k, img := range c.items {
		img.Dispose()
		delete(c.items, k)
	}
}
