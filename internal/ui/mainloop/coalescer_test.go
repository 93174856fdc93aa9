package mainloop

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queue struct{ fns []func() }

func (q *queue) post(fn func()) { q.fns = append(q.fns, fn) }

func (q *queue) drain() {
	fns := q.fns
	q.fns = nil
	for _, fn := range fns {
		fn()
	}
}

func TestCoalescer_BurstRunsLatestOnce(t *testing.T) {
	q := &queue{}
	c := NewCoalescer(q.post)

	got := 0
	for i := 1; i <= 5; i++ {
		c.Post("config", func() { got = i })
	}

	require.Len(t, q.fns, 1)
	q.drain()
	assert.Equal(t, 5, got)

	c.Post("config", func() { got = 6 })
	require.Len(t, q.fns, 1)
	q.drain()
	assert.Equal(t, 6, got)
}

func TestCoalescer_KeysAreIndependent(t *testing.T) {
	q := &queue{}
	c := NewCoalescer(q.post)

	var ran []string
	c.Post("a", func() { ran = append(ran, "a") })
	c.Post("b", func() { ran = append(ran, "b") })
	c.Post("", func() { ran = append(ran, "empty") })

	q.drain()
	assert.Equal(t, []string{"a", "b"}, ran)
}

func TestCoalescer_StopDropsPending(t *testing.T) {
	q := &queue{}
	c := NewCoalescer(q.post)

	ran := false
	c.Post("config", func() { ran = true })
	c.Stop()
	q.drain()
	assert.False(t, ran)

	c.Post("config", func() { ran = true })
	assert.Empty(t, q.fns)
}

func TestCoalescer_AfterDelay(t *testing.T) {
	c := NewCoalescer(AfterDelay(100 * time.Millisecond))

	var runs, last atomic.Int32
	for i := int32(1); i <= 3; i++ {
		c.Post("config", func() {
			runs.Add(1)
			last.Store(i)
		})
	}

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(3), last.Load())
}

func TestNewCoalescer_NilPosterPanics(t *testing.T) {
	assert.Panics(t, func() { NewCoalescer(nil) })
}
