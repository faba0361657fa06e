package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"sequin/seqs"
)

// windowLength returns the --length flag when given, the configured default otherwise.
func (a *app) windowLength(cmd *cobra.Command, length int) int {
	if cmd.Flags().Changed("length") {
		return length
	}
	return a.cfg.Window.Length
}

func (a *app) walksCmd() *cobra.Command {
	var length int
	cmd := &cobra.Command{
		Use:   "walks [element...]",
		Short: "Print every window of consecutive elements",
		Long: `Print every window of --length consecutive elements, each starting one element
after the previous one. Input shorter than the window prints nothing.

Examples:
  sequin walks --chars --length 2 abcd   # a b / b c / c d`,
	}
	cmd.Flags().IntVar(&length, "length", 0, "window length (default window.length from config)")
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		in := a.elements(cmd, args)
		windows, err := seqs.Walks(in.All(), a.windowLength(cmd, length))
		if err != nil {
			return err
		}
		printWindows(cmd.OutOrStdout(), windows)
		return a.done(in)
	})
	return cmd
}

func (a *app) slicesCmd() *cobra.Command {
	var (
		length int
		fill   string
	)
	cmd := &cobra.Command{
		Use:   "slices [element...]",
		Short: "Print adjacent windows, padding the last one",
		Long: `Print adjacent, non-overlapping windows of --length elements. The last window is
padded with --fill.

Examples:
  sequin slices --chars --length 2 --fill _ abc   # a b / c _`,
	}
	cmd.Flags().IntVar(&length, "length", 0, "window length (default window.length from config)")
	cmd.Flags().StringVar(&fill, "fill", "", "padding for the last window (default window.fill from config)")
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("fill") {
			fill = a.cfg.Window.Fill
		}
		in := a.elements(cmd, args)
		windows, err := seqs.Slices(in.All(), a.windowLength(cmd, length), fill)
		if err != nil {
			return err
		}
		printWindows(cmd.OutOrStdout(), windows)
		return a.done(in)
	})
	return cmd
}

func (a *app) splitCmd() *cobra.Command {
	var (
		cuts       []int
		cumulative bool
	)
	cmd := &cobra.Command{
		Use:   "split [element...]",
		Short: "Cut the input into buckets",
		Long: `Cut the input at the positions given by --cuts. With --cumulative the values are
bucket lengths instead of absolute positions. One bucket is printed per line, so n
cuts always print n+1 lines.

Examples:
  sequin split --chars --cuts 3,6,8 abcdefghijk          # a b c / d e f / g h / i j k
  sequin split --chars --cuts 2,3 --cumulative abcdefg   # a b / c d e / f g`,
	}
	cmd.Flags().IntSliceVar(&cuts, "cuts", nil, "cut positions, or bucket lengths with --cumulative")
	cmd.Flags().BoolVar(&cumulative, "cumulative", false, "read --cuts as bucket lengths")
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		in := a.elements(cmd, args)
		buckets, err := seqs.Split(in.All(), cuts, cumulative)
		if err != nil {
			return err
		}
		printWindows(cmd.OutOrStdout(), buckets)
		return a.done(in)
	})
	return cmd
}

func (a *app) chooseCmd() *cobra.Command {
	var indices []int
	cmd := &cobra.Command{
		Use:   "choose [element...]",
		Short: "Print the elements at the given positions",
		Long: `Print the elements at the positions given by --index, in input order. Repeated
positions print once and negative positions are ignored.

Examples:
  sequin choose --chars --index 4,0,2 abcdef   # a / c / e`,
	}
	cmd.Flags().IntSliceVar(&indices, "index", nil, "zero-based positions to keep")
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		in := a.elements(cmd, args)
		printAll(cmd.OutOrStdout(), seqs.Choose(in.All(), indices...))
		return a.done(in)
	})
	return cmd
}

func (a *app) skipCmd() *cobra.Command {
	var indices []int
	cmd := &cobra.Command{
		Use:   "skip [element...]",
		Short: "Print every element except those at the given positions",
		Long: `Print every element except those at the positions given by --index.

Examples:
  sequin skip --chars --index 1,3 abcde   # a / c / e`,
	}
	cmd.Flags().IntSliceVar(&indices, "index", nil, "zero-based positions to drop")
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		in := a.elements(cmd, args)
		printAll(cmd.OutOrStdout(), seqs.Skip(in.All(), indices...))
		return a.done(in)
	})
	return cmd
}

func (a *app) flatCmd() *cobra.Command {
	var keys, expandText bool
	cmd := &cobra.Command{
		Use:   "flat [json]",
		Short: "Flatten a JSON value into its leaves",
		Long: `Flatten a JSON value read from the arguments or stdin and print one leaf per line.
Objects contribute their values in key order, or their keys with --keys. Strings are
leaves unless --expand-text is given.

Examples:
  sequin flat '[1, [2, [3]], {"b": 4, "a": 5}]'   # 1 / 2 / 3 / 5 / 4`,
	}
	cmd.Flags().BoolVar(&keys, "keys", false, "yield object keys instead of values")
	cmd.Flags().BoolVar(&expandText, "expand-text", false, "split strings into characters")
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		var content []byte
		if fromStdin(args) {
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read from stdin: %w", err)
			}
			content = b
		} else {
			content = []byte(strings.Join(args, " "))
		}
		if len(strings.TrimSpace(string(content))) == 0 {
			return errors.New("no JSON value to flatten")
		}

		var value any
		if err := json.Unmarshal(content, &value); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}

		var opts []seqs.FlatOption
		if keys {
			opts = append(opts, seqs.WithKeys())
		}
		if expandText {
			opts = append(opts, seqs.WithExpandText())
		}

		out := cmd.OutOrStdout()
		for leaf := range seqs.Flat(value, opts...) {
			fmt.Fprintln(out, format(leaf))
		}
		return nil
	})
	return cmd
}

func (a *app) shuffleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shuffle [element...]",
		Short: "Print the input in random order",
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		in := a.elements(cmd, args)
		out := cmd.OutOrStdout()
		for _, v := range in.Shuffle() {
			fmt.Fprintln(out, v)
		}
		return a.done(in)
	})
	return cmd
}
