// Package mainloop hands work from background goroutines to the UI loop.
package mainloop

import (
	"sync"
	"time"
)

// Poster schedules fn to run later, typically on the UI loop.
type Poster func(fn func())

// Coalescer collapses repeated posts under one key into a single run of the
// most recently posted function.
type Coalescer struct {
	mu      sync.Mutex
	latest  map[string]func()
	post    Poster
	stopped bool
}

func NewCoalescer(post Poster) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: nil poster")
	}
	return &Coalescer{latest: make(map[string]func()), post: post}
}

// AfterDelay returns a Poster that runs fn on its own goroutine once d has
// elapsed. Combined with a Coalescer it settles event bursts.
func AfterDelay(d time.Duration) Poster {
	return func(fn func()) { time.AfterFunc(d, fn) }
}

// Post records fn as the pending work for key. Only the first post of a burst
// schedules a run; later posts replace the function that run will call.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	_, scheduled := c.latest[key]
	c.latest[key] = fn
	c.mu.Unlock()

	if scheduled {
		return
	}
	c.post(func() { c.run(key) })
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn, ok := c.latest[key]
	delete(c.latest, key)
	stopped := c.stopped
	c.mu.Unlock()

	if ok && !stopped {
		fn()
	}
}

// Stop drops pending work and ignores further posts.
func (c *Coalescer) Stop() {
	c.mu.Lock()
	c.stopped = true
	clear(c.latest)
	c.mu.Unlock()
}
