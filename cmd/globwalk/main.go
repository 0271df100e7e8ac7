// globwalk - print the files of a directory tree selected by glob patterns
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	globwalk "github.com/armn3t/go-globwalk"
	"github.com/armn3t/go-globwalk/sandbox"
)

// Version is set at build time via ldflags
var Version = "dev"

type flags struct {
	includes   []string
	excludes   []string
	rulesFiles []string
	ignoreCase bool
	stem       bool
	parallel   bool
	jobs       int
	sandboxed  bool
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "globwalk [dir]",
		Short: "Print files selected by include/exclude globs",
		Long: `Walk a directory tree once and print every file matched by at least
one include pattern and by no exclude pattern. Excluded directories are
never read.

Patterns:
  *        - any run of characters within one path component
  **       - zero or more path components
  .  ..    - current and parent directory

Examples:
  globwalk -i "**/*.go" -e "**/vendor/**"
  globwalk src -i "**/*.cs" -e "**/bin/**" -e "**/obj/**"
  globwalk --rules globwalk.yaml --stem`,
		Args:          cobra.MaximumNArgs(1),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			err := run(cmd, root, f)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			return err
		},
	}

	fl := cmd.Flags()
	fl.StringArrayVarP(&f.includes, "include", "i", nil, "include glob (repeatable)")
	fl.StringArrayVarP(&f.excludes, "exclude", "e", nil, "exclude glob (repeatable)")
	fl.StringArrayVarP(&f.rulesFiles, "rules", "r", nil, "YAML rules file (repeatable)")
	fl.BoolVar(&f.ignoreCase, "ignore-case", false, "compare names case-insensitively")
	fl.BoolVar(&f.stem, "stem", false, "print the stem of each match after a tab")
	fl.BoolVar(&f.parallel, "parallel", false, "walk top-level subdirectories concurrently")
	fl.IntVarP(&f.jobs, "jobs", "j", 0, "concurrent subtrees with --parallel (default: number of CPUs)")
	fl.BoolVar(&f.sandboxed, "sandbox", false, "read directories through the WASI sandbox layer")
	fl.StringVar(&f.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")

	return cmd
}

func run(cmd *cobra.Command, root string, f flags) error {
	level, err := zerolog.ParseLevel(f.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	rules := &globwalk.Rules{
		Include:         f.includes,
		Exclude:         f.excludes,
		CaseInsensitive: f.ignoreCase,
	}
	for _, path := range f.rulesFiles {
		r, err := globwalk.LoadRules(path)
		if err != nil {
			return err
		}
		rules.Merge(r)
	}
	if len(rules.Include) == 0 {
		rules.Include = []string{"**"}
	}

	m, err := rules.Matcher(globwalk.WithLogger(logger), globwalk.WithParallelism(f.jobs))
	if err != nil {
		return err
	}

	var src globwalk.Source = globwalk.Dir(root)
	if f.sandboxed {
		s, err := sandbox.New(root)
		if err != nil {
			return err
		}
		src = s
	}

	logger.Debug().
		Str("root", root).
		Strs("include", rules.Include).
		Strs("exclude", rules.Exclude).
		Bool("parallel", f.parallel).
		Msg("starting walk")

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if f.stem {
		matches, err := m.ExecuteMatches(ctx, src)
		if err != nil {
			return err
		}
		for _, match := range matches {
			fmt.Fprintf(out, "%s\t%s\n", match.Path, match.Stem)
		}
		return nil
	}

	var paths []string
	if f.parallel {
		paths, err = m.ExecuteParallel(ctx, src)
	} else {
		paths, err = m.ExecuteContext(ctx, src)
	}
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(out, p)
	}
	logger.Info().Int("matches", len(paths)).Msg("walk finished")
	return nil
}
