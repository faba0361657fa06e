package seqs

import (
	"fmt"
	"iter"
	"slices"

	"sequin/tee"
)

// Walks yields every window of length consecutive elements, each starting one element after the
// previous one:
//
//	Walks(Naturals(), 2) // [0 1] [1 2] [2 3] ...
//
// seq is ranged once per traversal and split into length cursors read in lock-step, so at most
// length elements are buffered and unbounded inputs are fine. A sequence shorter than length
// yields nothing.
func Walks[T any](seq iter.Seq[T], length int) (iter.Seq[[]T], error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: window length %d", ErrInvalidArgument, length)
	}
	return func(yield func([]T) bool) {
		cursors := tee.New(seq, length)
		defer func() {
			for _, c := range cursors {
				c.Close()
			}
		}()

		// cursor k starts k elements ahead
		for k, c := range cursors {
			if c.Advance(k) < k {
				return
			}
		}

		for {
			window := make([]T, length)
			for k, c := range cursors {
				v, ok := c.Next()
				if !ok {
					return
				}
				window[k] = v
			}
			if !yield(window) {
				return
			}
		}
	}, nil
}

// Slices yields adjacent, non-overlapping windows of length elements.
// The last window is right-padded with fill, so n elements give ceil(n/length) windows.
//
//	Slices(Chars("abc"), 2, "") // [a b] [c ""]
func Slices[T any](seq iter.Seq[T], length int, fill T) (iter.Seq[[]T], error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: window length %d", ErrInvalidArgument, length)
	}
	return func(yield func([]T) bool) {
		window := make([]T, 0, length)
		for v := range seq {
			window = append(window, v)
			if len(window) < length {
				continue
			}
			if !yield(window) {
				return
			}
			window = make([]T, 0, length)
		}

		if len(window) == 0 {
			return
		}
		for len(window) < length {
			window = append(window, fill)
		}
		yield(window)
	}, nil
}

// Chunk yields adjacent windows of size elements. Unlike Slices the last window is not padded
// and may be shorter. size <= 0 yields nothing.
func Chunk[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size <= 0 {
			return
		}
		batch := make([]T, 0, size)
		for v := range seq {
			batch = append(batch, v)
			if len(batch) < size {
				continue
			}
			if !yield(batch) {
				return
			}
			batch = make([]T, 0, size)
		}
		if len(batch) > 0 {
			yield(batch)
		}
	}
}

// Window yields windows of size elements, each starting step elements after the previous one.
// step < size overlaps the windows, step == size is Chunk without the short tail, and
// step > size leaves gaps. Window(seq, n, 1) matches Walks(seq, n).
// A non-positive size or step yields nothing.
func Window[T any](seq iter.Seq[T], size, step int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size <= 0 || step <= 0 {
			return
		}
		buf := make([]T, 0, size)
		gap := 0
		for v := range seq {
			if gap > 0 {
				gap--
				continue
			}
			buf = append(buf, v)
			if len(buf) < size {
				continue
			}
			if !yield(slices.Clone(buf)) {
				return
			}
			if step < size {
				buf = append(buf[:0], buf[step:]...)
			} else {
				buf = buf[:0]
				gap = step - size
			}
		}
	}
}

// Split cuts seq into len(cuts)+1 buckets. Bucket j holds the elements at positions
// [cut[j-1], cut[j]), with cut[-1] = 0; the last bucket holds everything after the final cut.
//
// Without cumulative the cuts are absolute positions and are sorted first. With cumulative
// they are successive lengths: 3, 3, 2 is the same as the absolute cuts 3, 6, 8.
//
// Buckets are never padded: when seq runs out early the remaining buckets are short or empty.
// A negative cut returns ErrInvalidArgument.
func Split[T any](seq iter.Seq[T], cuts []int, cumulative bool) (iter.Seq[[]T], error) {
	bounds := make([]int, len(cuts))
	sum := 0
	for i, c := range cuts {
		if c < 0 {
			return nil, fmt.Errorf("%w: cut point %d", ErrInvalidArgument, c)
		}
		if cumulative {
			sum += c
			bounds[i] = sum
		} else {
			bounds[i] = c
		}
	}
	if !cumulative {
		slices.Sort(bounds)
	}

	return func(yield func([]T) bool) {
		bucket, j, pos := []T{}, 0, 0
		for v := range seq {
			// a repeated cut closes an empty bucket
			for j < len(bounds) && pos >= bounds[j] {
				if !yield(bucket) {
					return
				}
				bucket = []T{}
				j++
			}
			bucket = append(bucket, v)
			pos++
		}

		for ; j <= len(bounds); j++ {
			if !yield(bucket) {
				return
			}
			bucket = []T{}
		}
	}, nil
}

// SplitAt is Split at absolute cut points.
func SplitAt[T any](seq iter.Seq[T], cuts ...int) (iter.Seq[[]T], error) {
	return Split(seq, cuts, false)
}

// SplitCumulative is Split at the running sums of lengths.
func SplitCumulative[T any](seq iter.Seq[T], lengths ...int) (iter.Seq[[]T], error) {
	return Split(seq, lengths, true)
}
