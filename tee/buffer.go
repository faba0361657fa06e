package tee

import (
	"iter"
	"runtime"

	"github.com/eapache/queue"
)

// slot boxes an element so that nil interface values survive the round trip
// through the untyped ring buffer.
type slot[T any] struct {
	val T
}

// puller owns the pull side of the source. It is kept apart from Buffer so a cleanup
// can stop the pull once the buffer becomes unreachable.
type puller[T any] struct {
	source iter.Seq[T]
	next   func() (T, bool)
	stop   func()
	done   bool
}

func (p *puller[T]) pull() (val T, ok bool) {
	if p.done {
		return val, false
	}
	if p.next == nil {
		p.next, p.stop = iter.Pull(p.source)
		p.source = nil
	}
	val, ok = p.next()
	if !ok {
		p.halt()
	}
	return val, ok
}

func (p *puller[T]) halt() {
	if p.done {
		return
	}
	p.done = true
	p.source = nil
	if p.stop != nil {
		p.stop()
	}
}

// Buffer is the arena shared by sibling cursors.
// It holds the elements pulled from the source that some live cursor has not passed yet.
type Buffer[T any] struct {
	items   *queue.Queue // ring of slot[T]
	base    int          // absolute offset of items.Get(0)
	src     *puller[T]
	cursors map[*Cursor[T]]struct{}
}

func newBuffer[T any](seq iter.Seq[T]) *Buffer[T] {
	b := &Buffer[T]{
		items:   queue.New(),
		src:     &puller[T]{source: seq},
		cursors: make(map[*Cursor[T]]struct{}),
	}
	runtime.AddCleanup(b, func(p *puller[T]) { p.halt() }, b.src)
	return b
}

// end is the absolute offset one past the last buffered element.
func (b *Buffer[T]) end() int {
	return b.base + b.items.Length()
}

// at returns the element at absolute offset off, pulling from the source until it is buffered.
func (b *Buffer[T]) at(off int) (val T, ok bool) {
	if off < b.base {
		return val, false
	}
	for off >= b.end() {
		v, ok := b.src.pull()
		if !ok {
			return val, false
		}
		b.items.Add(slot[T]{val: v})
	}
	return b.items.Get(off - b.base).(slot[T]).val, true
}

func (b *Buffer[T]) attach(off int) *Cursor[T] {
	c := &Cursor[T]{buf: b, off: off}
	b.cursors[c] = struct{}{}
	return c
}

func (b *Buffer[T]) detach(c *Cursor[T]) {
	delete(b.cursors, c)
	if len(b.cursors) == 0 {
		b.src.halt()
		for b.items.Length() > 0 {
			b.items.Remove()
			b.base++
		}
		return
	}
	b.trim()
}

// trim releases every element that all live cursors have passed.
func (b *Buffer[T]) trim() {
	low := b.end()
	for c := range b.cursors {
		low = min(low, c.off)
	}
	for b.base < low {
		b.items.Remove()
		b.base++
	}
}

// Len reports how many elements are currently retained.
func (b *Buffer[T]) Len() int {
	return b.items.Length()
}

// Cursors reports how many live cursors share the buffer.
func (b *Buffer[T]) Cursors() int {
	return len(b.cursors)
}
