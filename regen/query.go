package regen

import (
	"sequin/seqs"
)

// Count returns how many elements equal v. The sequence must be finite.
func Count[T comparable](r *Regenerator[T], v T) int {
	n := 0
	for x := range r.snapshot() {
		if x == v {
			n++
		}
	}
	return n
}

// Positions returns a Regenerator over every position whose element equals v.
// Positions are counted from shift.
func Positions[T comparable](r *Regenerator[T], v T, shift int) *Regenerator[int] {
	src := r.snapshot()
	return New(func(yield func(int) bool) {
		i := shift
		for x := range src {
			if x == v && !yield(i) {
				return
			}
			i++
		}
	})
}

// Sample draws size elements at random, with replacement. The sequence must be finite.
func (r *Regenerator[T]) Sample(size int) []T {
	return seqs.Sample(r.snapshot(), size)
}

// Shuffle returns the elements in a random order. The sequence must be finite.
func (r *Regenerator[T]) Shuffle() []T {
	return seqs.Shuffle(r.snapshot())
}
