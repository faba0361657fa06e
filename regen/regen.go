package regen

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"sequin/tee"
)

// ErrIndexOutOfRange reports an At position outside the sequence.
var ErrIndexOutOfRange = errors.New("index out of range")

// Regenerator is a self-replenishing sequence: it can be ranged any number of times
// although its source is read only once.
//
// The zero value is not usable; construct with New, FromFunc or Of.
type Regenerator[T any] struct {
	baseline *tee.Cursor[T] // never advanced; every traversal clones it
	active   *tee.Cursor[T] // advanced by Next and by the latest All loop
	loops    map[*tee.Cursor[T]]struct{}
}

// New wraps seq. seq is not read until the first traversal and is ranged at most once.
func New[T any](seq iter.Seq[T]) *Regenerator[T] {
	baseline, active := tee.Pair(seq)
	return &Regenerator[T]{
		baseline: baseline,
		active:   active,
		loops:    make(map[*tee.Cursor[T]]struct{}),
	}
}

// FromFunc calls fn with args once to obtain the source.
//
//	r := regen.FromFunc(seqs.Range, 0, 10, 2)
func FromFunc[T, A any](fn func(...A) iter.Seq[T], args ...A) *Regenerator[T] {
	return New(fn(args...))
}

// Of returns a Regenerator over values.
func Of[T any](values ...T) *Regenerator[T] {
	return New(slices.Values(values))
}

// swap makes c the active cursor. The previous one is closed unless an All loop is still reading it.
func (r *Regenerator[T]) swap(c *tee.Cursor[T]) {
	if prev := r.active; prev != nil {
		if _, busy := r.loops[prev]; !busy {
			prev.Close()
		}
	}
	r.active = c
}

// snapshot returns a multi-pass sequence over the current baseline.
// Later mutation of r does not affect it.
func (r *Regenerator[T]) snapshot() iter.Seq[T] {
	base := r.baseline
	return func(yield func(T) bool) {
		c := base.Clone()
		defer c.Close()
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// All returns the sequence from its first element.
// Each ranging starts a fresh traversal and makes it the active one, so Next continues
// where the most recent loop stopped.
func (r *Regenerator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := r.baseline.Clone()
		r.swap(c)
		r.loops[c] = struct{}{}
		defer func() {
			delete(r.loops, c)
			if r.active != c {
				c.Close()
			}
		}()
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Next advances the active traversal by one element.
// It returns false when the traversal is exhausted; it never restarts on its own.
func (r *Regenerator[T]) Next() (T, bool) {
	return r.active.Next()
}

// Reset starts a new active traversal without ranging it.
func (r *Regenerator[T]) Reset() {
	r.swap(r.baseline.Clone())
}

// Collect materializes one traversal. The sequence must be finite.
func (r *Regenerator[T]) Collect() []T {
	return slices.Collect(r.snapshot())
}

// At returns the i-th element (0-based).
// A negative i counts from the end and requires a finite sequence.
func (r *Regenerator[T]) At(i int) (val T, err error) {
	idx := i
	if idx < 0 {
		idx += r.Len()
		if idx < 0 {
			return val, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
		}
	}

	c := r.baseline.Clone()
	defer c.Close()
	if c.Advance(idx) < idx {
		return val, fmt.Errorf("%w: sequence has fewer than %d elements", ErrIndexOutOfRange, idx+1)
	}
	val, ok := c.Next()
	if !ok {
		return val, fmt.Errorf("%w: sequence has fewer than %d elements", ErrIndexOutOfRange, idx+1)
	}
	return val, nil
}

// Truthy reports whether the sequence has at least one element.
// Neither the baseline nor the active traversal is disturbed.
func (r *Regenerator[T]) Truthy() bool {
	c := r.baseline.Clone()
	defer c.Close()
	_, ok := c.Peek()
	return ok
}

// Len counts the elements. It never returns for an unbounded sequence.
func (r *Regenerator[T]) Len() int {
	n := 0
	for range r.snapshot() {
		n++
	}
	return n
}
