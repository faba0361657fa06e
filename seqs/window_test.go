package seqs_test

import (
	"errors"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/matryer/is"

	"sequin/seqs"
)

func collectWindows[T any](t *testing.T, seq iter.Seq[[]T], err error) [][]T {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return slices.Collect(seq)
}

func joined(buckets [][]string) []string {
	out := make([]string, len(buckets))
	for i, b := range buckets {
		out[i] = strings.Join(b, "")
	}
	return out
}

func TestWalks(t *testing.T) {
	is := is.New(t)

	walks, err := seqs.Walks(seqs.Range(1, 6, 1), 3)
	got := collectWindows(t, walks, err)
	is.Equal(got, [][]int{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}})

	// replays
	is.Equal(slices.Collect(walks), got)
}

func TestWalks_Naturals(t *testing.T) {
	is := is.New(t)

	walks, err := seqs.Walks(seqs.Naturals(), 2)
	is.NoErr(err)

	want := [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}
	is.Equal(slices.Collect(seqs.Take(walks, 4)), want)

	// far into the sequence the windows still line up
	n := 0
	for w := range walks {
		is.Equal(w[1], w[0]+1)
		if n++; n == 50_000 {
			break
		}
	}
}

func TestWalks_ShortInput(t *testing.T) {
	is := is.New(t)

	walks, err := seqs.Walks(seqs.Range(0, 2, 1), 3)
	is.NoErr(err)
	is.Equal(len(slices.Collect(walks)), 0)

	walks, err = seqs.Walks(seqs.Range(0, 3, 1), 1)
	is.NoErr(err)
	is.Equal(slices.Collect(walks), [][]int{{0}, {1}, {2}})
}

func TestWalks_InvalidLength(t *testing.T) {
	is := is.New(t)
	for _, length := range []int{0, -2} {
		walks, err := seqs.Walks(seqs.Naturals(), length)
		is.True(errors.Is(err, seqs.ErrInvalidArgument))
		is.True(walks == nil)
	}
}

func TestSlices(t *testing.T) {
	is := is.New(t)

	chunks, err := seqs.Slices(seqs.Map(seqs.Chars("abc"), func(s string) any { return s }), 2, nil)
	got := collectWindows(t, chunks, err)
	is.Equal(got, [][]any{{"a", "b"}, {"c", nil}})

	full := slices.Collect(seqs.Filter(slices.Values(got), func(w []any) bool {
		return seqs.All(slices.Values(w), func(v any) bool { return v != nil })
	}))
	is.Equal(full, [][]any{{"a", "b"}})
}

func TestSlices_Count(t *testing.T) {
	for n := 0; n <= 10; n++ {
		is := is.New(t)
		chunks, err := seqs.Slices(seqs.Range(0, n, 1), 3, -1)
		got := collectWindows(t, chunks, err)
		is.Equal(len(got), (n+2)/3)
		for _, w := range got {
			is.Equal(len(w), 3)
		}
	}
}

func TestSlices_InvalidLength(t *testing.T) {
	is := is.New(t)
	_, err := seqs.Slices(seqs.Naturals(), 0, 0)
	is.True(errors.Is(err, seqs.ErrInvalidArgument))
}

func TestSplit(t *testing.T) {
	want := []string{"gra", "vit", "at", "ion"}

	tests := []struct {
		name       string
		cuts       []int
		cumulative bool
		want       []string
	}{
		{"absolute", []int{3, 6, 8}, false, want},
		{"absolute unsorted", []int{8, 3, 6}, false, want},
		{"cumulative", []int{3, 3, 2}, true, want},
		{"no cuts", nil, false, []string{"gravitation"}},
		{"cut at zero", []int{0, 4}, false, []string{"", "grav", "itation"}},
		{"repeated cut", []int{3, 3}, false, []string{"gra", "", "vitation"}},
		{"past the end", []int{5, 20, 30}, false, []string{"gravi", "tation", "", ""}},
		{"cumulative past the end", []int{10, 10}, true, []string{"gravitatio", "n", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			buckets, err := seqs.Split(seqs.Chars("gravitation"), tt.cuts, tt.cumulative)
			got := collectWindows(t, buckets, err)
			is.Equal(len(got), len(tt.cuts)+1)
			is.Equal(joined(got), tt.want)
		})
	}
}

func TestSplit_Buckets(t *testing.T) {
	is := is.New(t)

	buckets, err := seqs.SplitAt(seqs.Chars("gravitation"), 3, 6, 8)
	got := collectWindows(t, buckets, err)
	is.Equal(got, [][]string{{"g", "r", "a"}, {"v", "i", "t"}, {"a", "t"}, {"i", "o", "n"}})

	cumulative, err := seqs.SplitCumulative(seqs.Chars("gravitation"), 3, 3, 2)
	is.Equal(collectWindows(t, cumulative, err), got)
}

func TestSplit_UnboundedHead(t *testing.T) {
	is := is.New(t)

	buckets, err := seqs.SplitAt(seqs.Naturals(), 2, 5)
	is.NoErr(err)
	got := slices.Collect(seqs.Take(buckets, 2))
	is.Equal(got, [][]int{{0, 1}, {2, 3, 4}})
}

func TestSplit_NegativeCut(t *testing.T) {
	is := is.New(t)
	_, err := seqs.SplitAt(seqs.Naturals(), 3, -1)
	is.True(errors.Is(err, seqs.ErrInvalidArgument))
	_, err = seqs.SplitCumulative(seqs.Naturals(), -3)
	is.True(errors.Is(err, seqs.ErrInvalidArgument))
}

func TestChunk(t *testing.T) {
	is := is.New(t)

	is.Equal(slices.Collect(seqs.Chunk(seqs.Range(0, 7, 1), 3)), [][]int{{0, 1, 2}, {3, 4, 5}, {6}})
	is.Equal(len(slices.Collect(seqs.Chunk(seqs.Range(0, 7, 1), 0))), 0)
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		size, step int
		want       [][]int
	}{
		{"overlapping", 3, 1, [][]int{{0, 1, 2}, {1, 2, 3}, {2, 3, 4}}},
		{"stride two", 2, 2, [][]int{{0, 1}, {2, 3}}},
		{"gapped", 2, 3, [][]int{{0, 1}, {3, 4}}},
		{"overlap by one", 3, 2, [][]int{{0, 1, 2}, {2, 3, 4}}},
		{"invalid step", 2, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(slices.Collect(seqs.Window(seqs.Range(0, 5, 1), tt.size, tt.step)), tt.want)
		})
	}
}

func TestWindow_MatchesWalks(t *testing.T) {
	is := is.New(t)

	walks, err := seqs.Walks(seqs.Range(0, 20, 1), 4)
	is.NoErr(err)
	is.Equal(slices.Collect(seqs.Window(seqs.Range(0, 20, 1), 4, 1)), slices.Collect(walks))
}
