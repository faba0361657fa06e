package seqs

import (
	"fmt"
	"iter"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}

// Drop discards the first n elements and yields the rest.
func Drop[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		dropped := 0
		for v := range seq {
			if dropped < n {
				dropped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// indexSet collects the non-negative indices and the largest of them (-1 if none).
// Indices beyond math.MaxInt are clamped to it.
func indexSet[I constraints.Integer](indices []I) (map[int]struct{}, int) {
	set := make(map[int]struct{}, len(indices))
	last := -1
	for _, i := range indices {
		if i < 0 {
			continue
		}
		idx := math.MaxInt
		if uint64(i) <= math.MaxInt {
			idx = int(i)
		}
		set[idx] = struct{}{}
		last = max(last, idx)
	}
	return set, last
}

// Choose yields the elements at the given positions, in the order they occur in seq.
// Each position is produced once however often it is requested; negative positions are ignored.
// seq is not read past the highest requested position.
//
//	Choose(slices.Values([]int{1, 2, 3, 4, 5}), 3, 0) // 1, 4
func Choose[T any, I constraints.Integer](seq iter.Seq[T], indices ...I) iter.Seq[T] {
	want, last := indexSet(indices)
	return func(yield func(T) bool) {
		if last < 0 {
			return
		}
		i := 0
		for v := range seq {
			if _, ok := want[i]; ok && !yield(v) {
				return
			}
			if i == last {
				return
			}
			i++
		}
	}
}

// Skip yields every element whose position is not among indices.
// It has to read all of seq.
func Skip[T any, I constraints.Integer](seq iter.Seq[T], indices ...I) iter.Seq[T] {
	drop, _ := indexSet(indices)
	return func(yield func(T) bool) {
		i := 0
		for v := range seq {
			if _, ok := drop[i]; !ok && !yield(v) {
				return
			}
			i++
		}
	}
}

// Indices flattens nested index arguments into a single list.
// Arguments may be integers or (nested) slices and arrays of integers.
//
//	Indices(0, []int{3, 5}, [][]int{{7}}) // [0 3 5 7]
func Indices(args ...any) ([]int, error) {
	var out []int
	for v := range Flat(args) {
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n := rv.Int()
			if n < math.MinInt || n > math.MaxInt {
				return nil, fmt.Errorf("%w: index %d overflows int", ErrInvalidArgument, n)
			}
			out = append(out, int(n))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			n := rv.Uint()
			if n > math.MaxInt {
				return nil, fmt.Errorf("%w: index %d overflows int", ErrInvalidArgument, n)
			}
			out = append(out, int(n))
		default:
			return nil, fmt.Errorf("%w: %v (%T)", ErrNotInteger, v, v)
		}
	}
	return out, nil
}
