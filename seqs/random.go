package seqs

import (
	"iter"
	"math/rand/v2"
	"slices"
)

// Shuffle returns the elements of a finite seq in a random order.
func Shuffle[T any](seq iter.Seq[T]) []T {
	pool := slices.Collect(seq)
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool
}

// Sample draws size elements from a finite seq at random. Unlike Shuffle the same element may
// be drawn more than once. An empty seq gives an empty sample.
func Sample[T any](seq iter.Seq[T], size int) []T {
	pool := slices.Collect(seq)
	if len(pool) == 0 || size <= 0 {
		return nil
	}
	out := make([]T, size)
	for i := range out {
		out[i] = pool[rand.IntN(len(pool))]
	}
	return out
}

// Roll reads a finite seq as a cycle and returns the elements at positions start,
// start+step, ... below stop+start.
//
//	Roll(Chars("boris"), 6, 0, 1) // b o r i s b
//	Roll(Chars("boris"), 6, 1, 1) // o r i s b o
func Roll[T any](seq iter.Seq[T], stop, start, step int) []T {
	pool := slices.Collect(seq)
	if len(pool) == 0 || step <= 0 {
		return nil
	}
	var out []T
	for i := 0; i < stop+start; i += step {
		if i >= start {
			out = append(out, pool[i%len(pool)])
		}
	}
	return out
}

// Powerset yields every subset of a finite seq, smallest first, each size in lexicographic
// order of positions. The empty subset comes first.
func Powerset[T any](seq iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		pool := slices.Collect(seq)
		n := len(pool)
		for size := 0; size <= n; size++ {
			idx := make([]int, size)
			for i := range idx {
				idx[i] = i
			}
			for {
				subset := make([]T, size)
				for k, j := range idx {
					subset[k] = pool[j]
				}
				if !yield(subset) {
					return
				}

				// rightmost index that can still move
				k := size - 1
				for k >= 0 && idx[k] == n-size+k {
					k--
				}
				if k < 0 {
					break
				}
				idx[k]++
				for m := k + 1; m < size; m++ {
					idx[m] = idx[m-1] + 1
				}
			}
		}
	}
}
