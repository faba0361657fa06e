package tee

import (
	"fmt"
	"iter"
)

// Cursor is a read position over a shared Buffer.
type Cursor[T any] struct {
	buf    *Buffer[T]
	off    int
	closed bool
}

// New duplicates seq into n sibling cursors, all positioned at the first element.
// Nothing is pulled from seq until one of the cursors is read.
// seq is ranged at most once, no matter how many cursors read it.
func New[T any](seq iter.Seq[T], n int) []*Cursor[T] {
	if n <= 0 {
		return nil
	}
	b := newBuffer(seq)
	cursors := make([]*Cursor[T], n)
	for i := range cursors {
		cursors[i] = b.attach(0)
	}
	return cursors
}

// Pair duplicates seq into two sibling cursors.
func Pair[T any](seq iter.Seq[T]) (*Cursor[T], *Cursor[T]) {
	cursors := New(seq, 2)
	return cursors[0], cursors[1]
}

// Next returns the element at the cursor position and advances the cursor.
// It returns false once the source is exhausted or the cursor has been closed.
func (c *Cursor[T]) Next() (val T, ok bool) {
	if c.closed {
		return val, false
	}
	val, ok = c.buf.at(c.off)
	if !ok {
		return val, false
	}
	prev := c.off
	c.off++
	// only the cursor that was at the front of the buffer can free anything
	if prev == c.buf.base {
		c.buf.trim()
	}
	return val, true
}

// Peek returns the element at the cursor position without advancing.
func (c *Cursor[T]) Peek() (val T, ok bool) {
	if c.closed {
		return val, false
	}
	return c.buf.at(c.off)
}

// Advance skips up to k elements and returns how many were skipped.
func (c *Cursor[T]) Advance(k int) int {
	n := 0
	for n < k {
		if _, ok := c.Next(); !ok {
			break
		}
		n++
	}
	return n
}

// Clone returns a sibling cursor at the same position.
// Cloning a closed cursor returns a closed cursor.
func (c *Cursor[T]) Clone() *Cursor[T] {
	if c.closed {
		return &Cursor[T]{buf: c.buf, off: c.off, closed: true}
	}
	return c.buf.attach(c.off)
}

// Seq returns a sequence that reads the cursor from its current position.
// Ranging the sequence advances the cursor.
func (c *Cursor[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Offset returns the absolute position of the cursor.
func (c *Cursor[T]) Offset() int {
	return c.off
}

// Buffer returns the buffer the cursor reads from.
func (c *Cursor[T]) Buffer() *Buffer[T] {
	return c.buf
}

// Buffered reports how many elements the shared buffer currently retains.
func (c *Cursor[T]) Buffered() int {
	return c.buf.Len()
}

// Closed reports whether Close has been called.
func (c *Cursor[T]) Closed() bool {
	return c.closed
}

// Close detaches the cursor from its buffer. Elements only this cursor still needed are released.
// Closing the last cursor of a buffer stops the source.
func (c *Cursor[T]) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.buf.detach(c)
}

func (c *Cursor[T]) String() string {
	if c.closed {
		return "Cursor[closed]"
	}
	return fmt.Sprintf("Cursor[%d]", c.off)
}
