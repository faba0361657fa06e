package seqs

import (
	"iter"
	"slices"
)

// Map applies transform to each element of seq.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// Filter yields only the elements of seq that satisfy predicate.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) && !yield(v) {
				return
			}
		}
	}
}

func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Zip pairs the elements of seq1 and seq2 and stops at the end of the shorter one.
func Zip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(Pair[T1, T2]{v1, v2}) {
				return
			}
		}
	}
}

func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

// FlatMap maps every element of source to a sequence and yields their elements in order.
func FlatMap[S any, T any](source iter.Seq[S], f func(S) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := range source {
			for t := range f(s) {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// Distinct yields the first occurrence of every element.
// Memory grows with the number of distinct elements seen.
func Distinct[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range seq {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// Unique is Distinct with some values treated as already seen.
//
//	Unique(slices.Values([]int{3, 1, 3, 2}), 1) // 3 2
func Unique[T comparable](seq iter.Seq[T], seen ...T) iter.Seq[T] {
	if len(seen) == 0 {
		return Distinct(seq)
	}
	return Distinct(Filter(seq, func(v T) bool { return !slices.Contains(seen, v) }))
}

// Peek calls action on every element as it passes through.
func Peek[T any](seq iter.Seq[T], action func(T)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			action(v)
			if !yield(v) {
				return
			}
		}
	}
}

// Scan yields the accumulated result after every element.
//
//	Scan(Range(1, 4, 1), 0, func(acc, v int) int { return acc + v }) // 1 3 6
func Scan[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		acc := initial
		for v := range seq {
			acc = reducer(acc, v)
			if !yield(acc) {
				return
			}
		}
	}
}

// FlattenSeqs yields the elements of every inner sequence in order.
func FlattenSeqs[T any](seq iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return FlatMap(seq, func(inner iter.Seq[T]) iter.Seq[T] { return inner })
}

// FlattenSlices yields the elements of every inner slice in order.
func FlattenSlices[T any](seq iter.Seq[[]T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for inner := range seq {
			for _, v := range inner {
				if !yield(v) {
					return
				}
			}
		}
	}
}
