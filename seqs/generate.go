package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Naturals yields 0, 1, 2, ... without end.
func Naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// Interval yields start, start+step, ... while below stop. A non-positive step yields nothing.
func Interval[F constraints.Float](start, stop, step F) iter.Seq[F] {
	return func(yield func(F) bool) {
		if step <= 0 {
			return
		}
		for x := start; x < stop; x += step {
			if !yield(x) {
				return
			}
		}
	}
}

func Repeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for range count {
			if !yield(value) {
				return
			}
		}
	}
}

// Chars yields every rune of s as a one-rune string.
func Chars(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, r := range s {
			if !yield(string(r)) {
				return
			}
		}
	}
}
