package main

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sequin/regen"
	"sequin/seqs"
)

// elements is the replayable input of a subcommand. consumed counts the elements pulled from
// the source so far. err is set once stdin has been read to the end and failed.
type elements struct {
	*regen.Regenerator[string]
	consumed int
	err      error
}

func fromStdin(args []string) bool {
	return len(args) == 0 || len(args) == 1 && args[0] == "-"
}

func (a *app) elements(cmd *cobra.Command, args []string) *elements {
	in := &elements{}

	var seq iter.Seq[string]
	if fromStdin(args) {
		seq = scanLines(cmd.InOrStdin(), &in.err)
	} else {
		seq = slices.Values(args)
	}
	if a.chars {
		seq = seqs.FlatMap(seq, seqs.Chars)
	}

	in.Regenerator = regen.New(seqs.Peek(seq, func(string) { in.consumed++ }))
	return in
}

// done reports how much input was read and returns the read error, if any.
// Commands that stop early leave the rest of stdin unread.
func (a *app) done(in *elements) error {
	a.logger.Debug("input consumed", zap.Int("elements", in.consumed))
	if in.err != nil {
		return fmt.Errorf("failed to read from stdin: %w", in.err)
	}
	return nil
}

func scanLines(r io.Reader, errp *error) iter.Seq[string] {
	return func(yield func(string) bool) {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			if !yield(sc.Text()) {
				return
			}
		}
		*errp = sc.Err()
	}
}

func printAll(w io.Writer, seq iter.Seq[string]) {
	for v := range seq {
		fmt.Fprintln(w, v)
	}
}

func printWindows(w io.Writer, seq iter.Seq[[]string]) {
	for window := range seq {
		fmt.Fprintln(w, strings.Join(window, " "))
	}
}

// format renders a decoded JSON leaf.
func format(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
