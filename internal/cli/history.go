package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/cyclejson/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
	Hash     string
	ID       string
}

// HistoryResult is the JSON payload of the history command.
type HistoryResult struct {
	Snapshots []store.Snapshot `json:"snapshots"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded snapshots",
		Long: `List snapshots recorded by "cyclejson encode --db".

Snapshots are listed newest first. --hash lists every snapshot with the
given content hash, oldest first. --id prints the output of one snapshot.

Example:
  cyclejson history --db snapshots.db --limit 5
  cyclejson history --db snapshots.db --id 01929c1e-...`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of snapshots to list (0 for all)")
	cmd.Flags().StringVar(&opts.Hash, "hash", "", "list snapshots with this content hash")
	cmd.Flags().StringVar(&opts.ID, "id", "", "show the snapshot with this ID")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	formatter := newFormatter(opts.RootOptions, cmd)

	// Reading never creates a database
	if _, err := os.Stat(opts.Database); err != nil {
		return outputError(formatter, ExitCommandError, ErrCodeNotFound,
			fmt.Sprintf("database not found: %s", opts.Database), nil)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return outputError(formatter, ExitCommandError, ErrCodeDatabase, err.Error(), nil)
	}
	defer st.Close()

	var snaps []store.Snapshot
	switch {
	case opts.ID != "":
		snap, err := st.GetSnapshot(ctx, opts.ID)
		if errors.Is(err, store.ErrNotFound) {
			return outputError(formatter, ExitCommandError, ErrCodeNotFound, err.Error(), nil)
		}
		if err != nil {
			return outputError(formatter, ExitCommandError, ErrCodeDatabase, err.Error(), nil)
		}
		if formatter.Format != "json" {
			fmt.Fprintln(formatter.Writer, snap.Output)
			return nil
		}
		snaps = []store.Snapshot{snap}
	case opts.Hash != "":
		snaps, err = st.SnapshotsByHash(ctx, opts.Hash)
	default:
		snaps, err = st.ListSnapshots(ctx, opts.Limit)
	}
	if err != nil {
		return outputError(formatter, ExitCommandError, ErrCodeDatabase, err.Error(), nil)
	}

	if formatter.Format == "json" {
		return formatter.Success(HistoryResult{Snapshots: snaps})
	}
	outputHistoryText(formatter, snaps)
	return nil
}

// outputHistoryText prints one line per snapshot.
func outputHistoryText(formatter *OutputFormatter, snaps []store.Snapshot) {
	w := formatter.Writer
	if len(snaps) == 0 {
		fmt.Fprintln(w, "No snapshots recorded")
		return
	}

	for _, s := range snaps {
		fmt.Fprintf(w, "#%d  %s  %s  %s  %d cycle(s)\n",
			s.Seq, s.ID, truncateHash(s.ContentHash), s.Source, len(s.Cycles))
	}
}

// truncateHash shortens a content hash for display.
func truncateHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
