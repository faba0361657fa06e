package regen

import (
	"iter"
	"slices"

	"sequin/seqs"
	"sequin/tee"
)

// rebase replaces the baseline with seq. The active traversal keeps reading the old data.
func (r *Regenerator[T]) rebase(seq iter.Seq[T]) *Regenerator[T] {
	r.baseline = tee.New(seq, 1)[0]
	return r
}

// Map replaces every element with fn(element), in place.
func (r *Regenerator[T]) Map(fn func(T) T) *Regenerator[T] {
	return r.rebase(seqs.Map(r.snapshot(), fn))
}

// Filter keeps only the elements satisfying pred, in place.
func (r *Regenerator[T]) Filter(pred func(T) bool) *Regenerator[T] {
	return r.rebase(seqs.Filter(r.snapshot(), pred))
}

// Append adds v as the last element, in place.
func (r *Regenerator[T]) Append(v T) *Regenerator[T] {
	return r.rebase(seqs.Concat(r.snapshot(), slices.Values([]T{v})))
}

// Inject adds the elements of seq to the end, in place.
func (r *Regenerator[T]) Inject(seq iter.Seq[T]) *Regenerator[T] {
	return r.rebase(seqs.Concat(r.snapshot(), seq))
}

// Scale multiplies every element by v, in place.
func Scale[T seqs.Scalable](r *Regenerator[T], v T) *Regenerator[T] {
	return r.Map(func(x T) T { return x * v })
}

// Boost adds v to every element, in place.
func Boost[T seqs.Addable](r *Regenerator[T], v T) *Regenerator[T] {
	return r.Map(func(x T) T { return x + v })
}
