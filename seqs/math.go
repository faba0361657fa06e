package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Scalable types support multiplication.
type Scalable interface {
	Number | constraints.Complex
}

// Addable types support +, strings included.
type Addable interface {
	Scalable | ~string
}

func Sum[T Addable](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

// Cumsum yields the running totals of seq. With first set, a leading zero is yielded before them.
//
//	Cumsum(Range(0, 4, 1), true)  // 0 0 1 3 6
//	Cumsum(Range(0, 4, 1), false) // 0 1 3 6
func Cumsum[T Addable](seq iter.Seq[T], first bool) iter.Seq[T] {
	var zero T
	sums := Scan(seq, zero, func(acc, v T) T { return acc + v })
	if !first {
		return sums
	}
	return Concat(Repeat(zero, 1), sums)
}

// Diffs yields the difference between each element and its predecessor.
// With flip the predecessor minus the element is yielded instead.
func Diffs[T Number](seq iter.Seq[T], flip bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		var last T
		started := false
		for v := range seq {
			if !started {
				last, started = v, true
				continue
			}
			d := v - last
			if flip {
				d = last - v
			}
			if !yield(d) {
				return
			}
			last = v
		}
	}
}

// Nopes yields the positions of the zero elements of seq, or of the non-zero ones with yeps.
//
//	Nopes(slices.Values([]int{0, 3, 0, 1}), false) // 0 2
func Nopes[T Number](seq iter.Seq[T], yeps bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		var zero T
		i := 0
		for v := range seq {
			if (v != zero) == yeps && !yield(i) {
				return
			}
			i++
		}
	}
}
