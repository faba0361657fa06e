package regen_test

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sequin/regen"
	"sequin/seqs"
)

// once is a genuinely single-pass source: a second ranging yields nothing.
func once[T any](values ...T) (iter.Seq[T], *int) {
	ranged := 0
	return func(yield func(T) bool) {
		ranged++
		if ranged > 1 {
			return
		}
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}, &ranged
}

// naturals is an unbounded single-pass source that counts how far it was read.
func naturals(highest *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			*highest = i
			if !yield(i) {
				return
			}
		}
	}
}

func TestRegenerator_Replay(t *testing.T) {
	src, ranged := once(1, 2, 3)
	r := regen.New(src)

	first := slices.Collect(r.All())
	second := slices.Collect(r.All())
	require.True(t, r.Truthy())
	third := slices.Collect(r.All())

	assert.Equal(t, []int{1, 2, 3}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, first, third)
	assert.Equal(t, 1, *ranged)
}

func TestRegenerator_PartialTraversalRestarts(t *testing.T) {
	r := regen.New(seqs.Range(0, 5, 1))

	for v := range r.All() {
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, slices.Collect(r.All()))
}

func TestRegenerator_NestedLoops(t *testing.T) {
	src, _ := once("a", "b")
	r := regen.New(src)

	var pairs []string
	for x := range r.All() {
		for y := range r.All() {
			pairs = append(pairs, x+y)
		}
	}
	assert.Equal(t, []string{"aa", "ab", "ba", "bb"}, pairs)
}

func TestRegenerator_Next(t *testing.T) {
	src, _ := once(10, 20, 30)
	r := regen.New(src)

	v, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, 10, v)

	// the loop becomes the active traversal
	for v := range r.All() {
		if v == 20 {
			break
		}
	}
	v, ok = r.Next()
	require.True(t, ok)
	assert.Equal(t, 30, v)

	_, ok = r.Next()
	assert.False(t, ok)
	_, ok = r.Next()
	assert.False(t, ok, "the active traversal does not restart by itself")

	r.Reset()
	v, _ = r.Next()
	assert.Equal(t, 10, v)
}

func TestRegenerator_FromFunc(t *testing.T) {
	r := regen.FromFunc(func(bounds ...int) iter.Seq[int] {
		return seqs.Range(bounds[0], bounds[1], 1)
	}, 3, 6)
	assert.Equal(t, []int{3, 4, 5}, r.Collect())
	assert.Equal(t, []int{3, 4, 5}, r.Collect())
}

func TestRegenerator_At(t *testing.T) {
	src, _ := once("a", "b", "c")
	r := regen.New(src)

	tests := []struct {
		index int
		want  string
	}{
		{0, "a"}, {2, "c"}, {-1, "c"}, {-3, "a"}, {1, "b"},
	}
	for _, tt := range tests {
		got, err := r.At(tt.index)
		require.NoError(t, err, "index %d", tt.index)
		assert.Equal(t, tt.want, got, "index %d", tt.index)
	}

	for _, i := range []int{3, 10, -4} {
		_, err := r.At(i)
		assert.True(t, errors.Is(err, regen.ErrIndexOutOfRange), "index %d", i)
	}

	assert.Equal(t, []string{"a", "b", "c"}, r.Collect(), "indexing does not consume")
}

func TestRegenerator_AtUnbounded(t *testing.T) {
	highest := -1
	r := regen.New(naturals(&highest))

	v, err := r.At(100)
	require.NoError(t, err)
	assert.Equal(t, 100, v)
	assert.Equal(t, 100, highest)
}

func TestRegenerator_TruthyLen(t *testing.T) {
	empty := regen.Of[int]()
	assert.False(t, empty.Truthy())
	assert.Zero(t, empty.Len())

	src, _ := once(1, 2)
	r := regen.New(src)
	r.Next()
	assert.True(t, r.Truthy())
	assert.Equal(t, 2, r.Len())

	v, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, 2, v, "Truthy and Len leave the active traversal alone")
}

func TestRegenerator_TruthyUnbounded(t *testing.T) {
	highest := -1
	r := regen.New(naturals(&highest))
	assert.True(t, r.Truthy())
	assert.Equal(t, 0, highest)
}

func TestRegenerator_AsRanger(t *testing.T) {
	r := regen.Of[any](1, []int{2, 3})
	assert.Equal(t, seqs.KindSequence, seqs.KindOf(r))
	assert.Equal(t, []any{0, 1, 2, 3}, slices.Collect(seqs.Flat([]any{0, r})))
}
