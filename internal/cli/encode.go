package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/cyclejson/internal/config"
	"github.com/roach88/cyclejson/internal/decycle"
	"github.com/roach88/cyclejson/internal/ir"
	"github.com/roach88/cyclejson/internal/store"
)

// EncodeOptions holds flags for the encode command.
type EncodeOptions struct {
	*RootOptions
	InputFormat string
	Indent      string
	Allow       []string
	SortKeys    bool
	NFC         bool
	OnCycle     string
	Database    string
	ConfigPath  string

	// IDGenerator allows overriding the snapshot ID generator (for testing).
	// If nil, the store uses UUIDv7Generator.
	IDGenerator store.IDGenerator
}

// EncodeResult is the JSON payload of a successful encode.
type EncodeResult struct {
	Output      string          `json:"output"`
	ContentHash string          `json:"content_hash"`
	Cycles      []decycle.Cycle `json:"cycles"`
	SnapshotID  string          `json:"snapshot_id,omitempty"`
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	return newEncodeCommand(&EncodeOptions{RootOptions: rootOpts})
}

func newEncodeCommand(opts *EncodeOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <file>",
		Short: "Encode a document as cycle-safe JSON",
		Long: `Encode a JSON, YAML, CUE or TOML document as JSON text.

References that re-enter an enclosing object or array are replaced
according to --on-cycle:
  marker - "[Circular ~]" for the root, "[Circular ~.a.b]" otherwise
  null   - null
  omit   - drop the member (null inside arrays)
  error  - fail with exit code 1

Use "-" to read from stdin. Settings may come from a TOML file given with
--config; flags override it.

Example:
  cyclejson encode graph.yaml --indent 2
  cyclejson encode data.json --allow name --allow child --on-cycle null
  cat data.json | cyclejson encode - --db snapshots.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.InputFormat, "input-format", "auto", "input format (auto|json|yaml|cue|toml)")
	cmd.Flags().StringVar(&opts.Indent, "indent", "", `indentation: number of spaces or literal string ("\t" for tab)`)
	cmd.Flags().StringArrayVar(&opts.Allow, "allow", nil, "keep only members with this key (repeatable)")
	cmd.Flags().BoolVar(&opts.SortKeys, "sort-keys", false, "emit object keys in canonical order")
	cmd.Flags().BoolVar(&opts.NFC, "nfc", false, "normalize strings to Unicode NFC")
	cmd.Flags().StringVar(&opts.OnCycle, "on-cycle", "marker", "cycle handling (marker|null|omit|error)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the output in this SQLite snapshot log")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "TOML config file")

	return cmd
}

func runEncode(opts *EncodeOptions, path string, cmd *cobra.Command) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	formatter := newFormatter(opts.RootOptions, cmd)

	cfg, err := resolveConfig(opts, cmd)
	if err != nil {
		return outputError(formatter, ExitCommandError, ErrCodeConfig, err.Error(), nil)
	}

	v, err := readInput(cmd, path, opts.InputFormat)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	resolver, err := cfg.Resolver()
	if err != nil {
		return outputError(formatter, ExitCommandError, ErrCodeConfig, err.Error(), nil)
	}

	out, cycles, err := decycle.EncodeReport(v, cfg.Replacer(), cfg.Indent, resolver, cfg.EncoderOptions()...)
	if err != nil {
		return outputEncodeError(formatter, err)
	}
	logger.Debug("encoded", "bytes", len(out), "cycles", len(cycles))
	formatter.VerboseLog("Replaced %d cycle(s)", len(cycles))

	if cycles == nil {
		cycles = []decycle.Cycle{}
	}
	result := EncodeResult{
		Output:      out,
		ContentHash: ir.ContentHash(out),
		Cycles:      cycles,
	}

	if cfg.DB != "" {
		snap, err := recordSnapshot(ctx, cfg.DB, opts.IDGenerator, sourceName(path), out, cycles)
		if err != nil {
			return outputError(formatter, ExitCommandError, ErrCodeDatabase, err.Error(), nil)
		}
		logger.Info("snapshot recorded", "id", snap.ID, "seq", snap.Seq, "db", cfg.DB)
		result.SnapshotID = snap.ID
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintln(formatter.Writer, out)
	return nil
}

// resolveConfig loads the config file and applies the flags that were set
// on the command line.
func resolveConfig(opts *EncodeOptions, cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("indent") {
		cfg.Indent = config.ParseIndent(opts.Indent)
	}
	if flags.Changed("allow") {
		cfg.Allow = opts.Allow
	}
	if flags.Changed("sort-keys") {
		cfg.SortKeys = opts.SortKeys
	}
	if flags.Changed("nfc") {
		cfg.NFC = opts.NFC
	}
	if flags.Changed("on-cycle") {
		cfg.OnCycle = opts.OnCycle
	}
	if flags.Changed("db") {
		cfg.DB = opts.Database
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// recordSnapshot appends one snapshot to the log at dbPath.
func recordSnapshot(ctx context.Context, dbPath string, ids store.IDGenerator, source, out string, cycles []decycle.Cycle) (store.Snapshot, error) {
	var storeOpts []store.Option
	if ids != nil {
		storeOpts = append(storeOpts, store.WithIDGenerator(ids))
	}

	st, err := store.Open(dbPath, storeOpts...)
	if err != nil {
		return store.Snapshot{}, err
	}
	defer st.Close()

	return st.WriteSnapshot(ctx, source, out, cycles)
}
