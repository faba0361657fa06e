// Package main implements the sequin CLI, which runs the windowing and selection combinators
// over lines of text or the characters of words.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sequin/internal/config"
	"sequin/internal/logging"
)

// version information
var version = "dev"

func main() {
	if err := newApp().rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the state shared by all subcommands once the root command has set it up.
type app struct {
	configPath string
	chars      bool

	cfg    *config.Config
	logger *zap.Logger
}

func newApp() *app {
	return &app{}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sequin",
		Short: "Slide, slice, split and select over sequences of text",
		Long: `sequin runs sequence combinators over its input.

Elements come from the positional arguments, or one per line from stdin when no
arguments (or a single "-") are given. With --chars every element is broken into
its characters first.

Examples:
  # Sliding windows of three characters
  sequin walks --chars --length 3 abcdef

  # Cut stdin lines at absolute positions
  seq 1 10 | sequin split --cuts 3,6,8`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVar(&a.chars, "chars", false, "split every input element into its characters")

	root.AddCommand(
		a.walksCmd(),
		a.slicesCmd(),
		a.splitCmd(),
		a.chooseCmd(),
		a.skipCmd(),
		a.flatCmd(),
		a.shuffleCmd(),
	)
	return root
}

// setup loads the configuration and builds the logger unless one was injected.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	if a.logger == nil {
		logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		a.logger = logger
	}
	return nil
}

// run wraps a subcommand body with start, finish and failure logging.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log := a.logger.With(zap.String("command", cmd.Name()))
		log.Debug("command started", zap.Strings("args", args))

		if err := fn(cmd, args); err != nil {
			log.Error("command failed", zap.Error(err))
			return err
		}

		log.Debug("command finished")
		return nil
	}
}
