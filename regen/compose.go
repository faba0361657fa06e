package regen

import (
	"iter"
	"slices"

	"sequin/seqs"
)

// Select returns a Regenerator over the elements at the given positions.
// Elements come out in sequence order, each position at most once, and the source is not
// read past the highest requested position, so Select is safe on unbounded sequences.
//
//	regen.Of(1, 2, 3, 4).Select(3, 0) // 1, 4
func (r *Regenerator[T]) Select(indices ...int) *Regenerator[T] {
	return New(seqs.Choose(r.snapshot(), indices...))
}

// SelectGroups flattens groups of positions and selects them.
func (r *Regenerator[T]) SelectGroups(groups ...[]int) *Regenerator[T] {
	return r.Select(slices.Concat(groups...)...)
}

// Concat returns a Regenerator over r followed by others.
func (r *Regenerator[T]) Concat(others ...iter.Seq[T]) *Regenerator[T] {
	parts := append([]iter.Seq[T]{r.snapshot()}, others...)
	return New(seqs.Concat(parts...))
}

// Plus returns a Regenerator over r followed by values as trailing elements.
func (r *Regenerator[T]) Plus(values ...T) *Regenerator[T] {
	return r.Concat(slices.Values(values))
}

// Prepend returns a Regenerator over others followed by r.
func (r *Regenerator[T]) Prepend(others ...iter.Seq[T]) *Regenerator[T] {
	parts := slices.Concat(others, []iter.Seq[T]{r.snapshot()})
	return New(seqs.Concat(parts...))
}

// Repeat returns r concatenated with itself n times in total.
// n == 1 replays r unchanged; n <= 0 is empty.
func (r *Regenerator[T]) Repeat(n int) *Regenerator[T] {
	src := r.snapshot()
	return New(func(yield func(T) bool) {
		for range n {
			for v := range src {
				if !yield(v) {
					return
				}
			}
		}
	})
}

// Power returns the n-fold Cartesian product of r with itself, in lexicographic order of positions.
// r must be finite; it is materialized once per traversal.
// n == 0 yields a single empty tuple.
func Power[T any](r *Regenerator[T], n int) *Regenerator[[]T] {
	src := r.snapshot()
	return New(func(yield func([]T) bool) {
		if n < 0 {
			return
		}
		pool := slices.Collect(src)
		if n > 0 && len(pool) == 0 {
			return
		}

		odometer := make([]int, n)
		for {
			tuple := make([]T, n)
			for k, j := range odometer {
				tuple[k] = pool[j]
			}
			if !yield(tuple) {
				return
			}

			k := n - 1
			for ; k >= 0; k-- {
				odometer[k]++
				if odometer[k] < len(pool) {
					break
				}
				odometer[k] = 0
			}
			if k < 0 {
				return
			}
		}
	})
}

// Product returns the Cartesian product of r and other.
// other must be finite and is materialized once per traversal; r is streamed, so it may be unbounded.
func Product[T, U any](r *Regenerator[T], other iter.Seq[U]) *Regenerator[seqs.Pair[T, U]] {
	src := r.snapshot()
	return New(func(yield func(seqs.Pair[T, U]) bool) {
		pool := slices.Collect(other)
		if len(pool) == 0 {
			return
		}
		for a := range src {
			for _, b := range pool {
				if !yield(seqs.Pair[T, U]{V1: a, V2: b}) {
					return
				}
			}
		}
	})
}
