package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/cyclejson/internal/decycle"
	"github.com/roach88/cyclejson/internal/jsonenc"
)

// CyclesOptions holds flags for the cycles command.
type CyclesOptions struct {
	*RootOptions
	InputFormat string
	SortKeys    bool
	FailOnCycle bool
}

// CyclesResult is the JSON payload of the cycles command.
type CyclesResult struct {
	Source string          `json:"source"`
	Count  int             `json:"count"`
	Cycles []decycle.Cycle `json:"cycles"`
}

// NewCyclesCommand creates the cycles command.
func NewCyclesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CyclesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "cycles <file>",
		Short: "List the cycles in a document",
		Long: `List every reference that re-enters an enclosing object or array.

Each cycle is reported with the key that closes it, the path label of the
re-entered node (the same label encode puts in its markers) and the depth
at which it was found, in traversal order.

Exit codes:
  0 - Success (cycles or not)
  1 - Cycles found and --fail-on-cycle was given
  2 - Command error (input not found, parse failure)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCycles(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.InputFormat, "input-format", "auto", "input format (auto|json|yaml|cue|toml)")
	cmd.Flags().BoolVar(&opts.SortKeys, "sort-keys", false, "walk object keys in canonical order")
	cmd.Flags().BoolVar(&opts.FailOnCycle, "fail-on-cycle", false, "exit with code 1 when a cycle is found")

	return cmd
}

func runCycles(opts *CyclesOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	v, err := readInput(cmd, path, opts.InputFormat)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	var encOpts []jsonenc.Option
	if opts.SortKeys {
		encOpts = append(encOpts, jsonenc.WithSortKeys())
	}
	cycles, err := decycle.Inspect(v, encOpts...)
	if err != nil {
		return outputEncodeError(formatter, err)
	}
	if cycles == nil {
		cycles = []decycle.Cycle{}
	}

	result := CyclesResult{Source: sourceName(path), Count: len(cycles), Cycles: cycles}
	if formatter.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		outputCyclesText(formatter, result)
	}

	if opts.FailOnCycle && len(cycles) > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d cycle(s) found in %s", len(cycles), result.Source))
	}
	return nil
}

// outputCyclesText prints one line per cycle.
func outputCyclesText(formatter *OutputFormatter, result CyclesResult) {
	w := formatter.Writer
	if result.Count == 0 {
		fmt.Fprintf(w, "No cycles found in %s\n", result.Source)
		return
	}

	fmt.Fprintf(w, "Found %d cycle(s) in %s\n", result.Count, result.Source)
	for _, c := range result.Cycles {
		fmt.Fprintf(w, "  %s -> %s (depth %d)\n", c.Key, c.Path, c.Depth)
	}
}
