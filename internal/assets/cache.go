// Package assets loads and caches texture images. Loads are asynchronous
// and deduplicated by path: however many callers ask for the same texture
// while it is still loading, the underlying loader runs once.
package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
)

// Texture is a decoded, CPU-side image handle. Backends upload it to the GPU
// themselves and use Gen to notice when a hot reload replaced the pixels.
type Texture struct {
	Name  string
	Image *image.RGBA
	Gen   int
}

// Loader resolves a texture path to decoded pixels.
type Loader interface {
	Load(path string) (*image.RGBA, error)
}

// LoadError reports which texture failed and why.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load texture %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

var ErrDisposed = errors.New("texture cache disposed")

// Pending is a handle to a texture load that may still be in flight.
type Pending struct {
	done chan struct{}
	tex  *Texture
	err  error
}

// Wait blocks until the load finishes or ctx is cancelled.
func (p *Pending) Wait(ctx context.Context) (*Texture, error) {
	select {
	case <-p.done:
		return p.tex, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func resolved(tex *Texture, err error) *Pending {
	p := &Pending{done: make(chan struct{}), tex: tex, err: err}
	close(p.done)
	return p
}

type Cache struct {
	mu       sync.Mutex
	loader   Loader
	loaded   map[string]*Texture
	inflight map[string]*Pending
	disposed bool
}

func NewCache(loader Loader) *Cache {
	return &Cache{
		loader:   loader,
		loaded:   make(map[string]*Texture),
		inflight: make(map[string]*Pending),
	}
}

// Get returns a handle for the texture at path. A completed load resolves
// immediately, an in-flight load is joined, and otherwise a new load starts.
// Failed loads are not cached, so a later Get retries.
func (c *Cache) Get(path string) *Pending {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return resolved(nil, &LoadError{Path: path, Err: ErrDisposed})
	}
	if tex, ok := c.loaded[path]; ok {
		return resolved(tex, nil)
	}
	if p, ok := c.inflight[path]; ok {
		return p
	}

	p := &Pending{done: make(chan struct{})}
	c.inflight[path] = p
	go c.load(path, p)
	return p
}

func (c *Cache) load(path string, p *Pending) {
	img, err := c.loader.Load(path)

	c.mu.Lock()
	delete(c.inflight, path)
	if err != nil {
		p.err = &LoadError{Path: path, Err: err}
	} else {
		p.tex = &Texture{Name: path, Image: img}
		// A load finishing after Dispose hands its result to waiters but
		// is not re-cached for a torn-down scene.
		if !c.disposed {
			c.loaded[path] = p.tex
		}
	}
	c.mu.Unlock()

	close(p.done)
}

// Reload re-runs the loader for an already cached path and bumps the
// texture's generation so backends re-upload it. Missing or failing paths
// leave the cached texture untouched.
func (c *Cache) Reload(path string) error {
	c.mu.Lock()
	tex, ok := c.loaded[path]
	c.mu.Unlock()
	if !ok {
		return nil
	}

	img, err := c.loader.Load(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}

	c.mu.Lock()
	tex.Image = img
	tex.Gen++
	c.mu.Unlock()
	return nil
}

// Len returns the number of completed cached textures.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.loaded)
}

// Dispose drops every cached texture and marks the cache dead. Idempotent.
func (c *Cache) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposed = true
	c.loaded = make(map[string]*Texture)
}
