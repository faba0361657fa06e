package seqs_test

import (
	"errors"
	"iter"
	"math"
	"slices"
	"testing"

	"github.com/matryer/is"

	"sequin/seqs"
)

// tracked yields 0, 1, 2, ... and records the highest position handed out.
func tracked(highest *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			*highest = i
			if !yield(i) {
				return
			}
		}
	}
}

func oneToNine() iter.Seq[int] {
	return seqs.Range(1, 10, 1)
}

func TestChoose(t *testing.T) {
	tests := []struct {
		name    string
		indices []int
		want    []int
	}{
		{"in order", []int{0, 3}, []int{1, 4}},
		{"reversed arguments", []int{3, 0}, []int{1, 4}},
		{"duplicates", []int{3, 3, 0, 0}, []int{1, 4}},
		{"beyond the end", []int{1, 2, 30}, []int{2, 3}},
		{"negative ignored", []int{-1, 2}, []int{3}},
		{"none", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			got := slices.Collect(seqs.Choose(oneToNine(), tt.indices...))
			is.Equal(got, tt.want)
		})
	}
}

func TestChoose_NestedIndices(t *testing.T) {
	is := is.New(t)

	indices, err := seqs.Indices([]int{0, 3})
	is.NoErr(err)
	is.Equal(slices.Collect(seqs.Choose(oneToNine(), indices...)), []int{1, 4})
}

func TestChoose_StopsAtHighestIndex(t *testing.T) {
	is := is.New(t)

	highest := -1
	got := slices.Collect(seqs.Choose(tracked(&highest), 2, 7, 4))
	is.Equal(got, []int{2, 4, 7})
	is.Equal(highest, 7) // nothing past position 7 was produced
}

func TestChoose_UnsignedIndices(t *testing.T) {
	is := is.New(t)
	got := slices.Collect(seqs.Choose(oneToNine(), uint8(8), uint8(0)))
	is.Equal(got, []int{1, 9})
}

func TestChoose_HugeUnsignedIndex(t *testing.T) {
	is := is.New(t)

	got := slices.Collect(seqs.Choose(oneToNine(), uint64(0), uint64(math.MaxUint64)))
	is.Equal(got, []int{1})

	got = slices.Collect(seqs.Skip(oneToNine(), uint64(math.MaxUint64), uint64(1)))
	is.Equal(got, []int{1, 3, 4, 5, 6, 7, 8, 9})
}

func TestChoose_Replays(t *testing.T) {
	is := is.New(t)
	chosen := seqs.Choose(oneToNine(), 1, 2)
	is.Equal(slices.Collect(chosen), slices.Collect(chosen))
}

func TestSkip(t *testing.T) {
	is := is.New(t)
	got := slices.Collect(seqs.Skip(oneToNine(), 0, 3, 8, 42))
	is.Equal(got, []int{2, 3, 5, 6, 7, 8})
}

func TestChooseSkip_Complement(t *testing.T) {
	input := []string{"a", "b", "c", "d", "e", "f"}
	sets := [][]int{{}, {0}, {5}, {1, 3}, {0, 1, 2, 3, 4, 5}, {4, 4, 9}}

	for _, set := range sets {
		is := is.New(t)

		chosen := slices.Collect(seqs.Choose(slices.Values(input), set...))
		skipped := slices.Collect(seqs.Skip(slices.Values(input), set...))
		is.Equal(len(chosen)+len(skipped), len(input))

		// rebuild by position
		rebuilt := make([]string, 0, len(input))
		c, s := 0, 0
		for i := range input {
			if slices.Contains(set, i) {
				rebuilt = append(rebuilt, chosen[c])
				c++
			} else {
				rebuilt = append(rebuilt, skipped[s])
				s++
			}
		}
		is.Equal(rebuilt, input)
	}
}

func TestIndices(t *testing.T) {
	is := is.New(t)

	got, err := seqs.Indices(0, []int{3, 5}, [][]int{{7}, {8, 9}}, [2]uint{1, 2})
	is.NoErr(err)
	is.Equal(got, []int{0, 3, 5, 7, 8, 9, 1, 2})

	_, err = seqs.Indices(1, []any{2, "three"})
	is.True(errors.Is(err, seqs.ErrNotInteger))

	_, err = seqs.Indices(1.5)
	is.True(errors.Is(err, seqs.ErrNotInteger))

	_, err = seqs.Indices(2, []uint64{math.MaxUint64})
	is.True(errors.Is(err, seqs.ErrInvalidArgument))
}

func TestTakeDrop(t *testing.T) {
	is := is.New(t)
	is.Equal(slices.Collect(seqs.Take(seqs.Naturals(), 3)), []int{0, 1, 2})
	is.Equal(slices.Collect(seqs.Drop(oneToNine(), 6)), []int{7, 8, 9})
	is.Equal(slices.Collect(seqs.Take(oneToNine(), 0)), []int(nil))
}

func TestFirstCount(t *testing.T) {
	is := is.New(t)

	v, ok := seqs.First(seqs.Naturals())
	is.True(ok)
	is.Equal(v, 0)

	_, ok = seqs.First(seqs.Range(0, 0, 1))
	is.True(!ok)

	is.Equal(seqs.Count(oneToNine()), 9)
}
