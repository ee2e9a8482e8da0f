package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/roach88/cyclejson/internal/decycle"
	"github.com/roach88/cyclejson/internal/ir"
)

// ErrNotFound is returned when no snapshot matches a lookup.
var ErrNotFound = errors.New("snapshot not found")

// Snapshot is one recorded encoding.
type Snapshot struct {
	Seq         int64           `json:"seq"`
	ID          string          `json:"id"`
	ContentHash string          `json:"content_hash"`
	Source      string          `json:"source"`
	Output      string          `json:"output"`
	Cycles      []decycle.Cycle `json:"cycles"`
}

// WriteSnapshot appends a snapshot of output, encoded from source, and
// returns it with its assigned seq, ID and content hash.
func (s *Store) WriteSnapshot(ctx context.Context, source, output string, cycles []decycle.Cycle) (Snapshot, error) {
	if cycles == nil {
		cycles = []decycle.Cycle{}
	}
	cyclesJSON, err := json.Marshal(cycles)
	if err != nil {
		return Snapshot{}, fmt.Errorf("write snapshot: marshal cycles: %w", err)
	}

	snap := Snapshot{
		ID:          s.ids.Generate(),
		ContentHash: ir.ContentHash(output),
		Source:      source,
		Output:      output,
		Cycles:      cycles,
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, content_hash, source, output, cycles)
		VALUES (?, ?, ?, ?, ?)
	`, snap.ID, snap.ContentHash, snap.Source, snap.Output, string(cyclesJSON))
	if err != nil {
		return Snapshot{}, fmt.Errorf("write snapshot: %w", err)
	}

	snap.Seq, err = res.LastInsertId()
	if err != nil {
		return Snapshot{}, fmt.Errorf("write snapshot: read seq: %w", err)
	}
	return snap, nil
}

// ListSnapshots returns the most recent snapshots, newest first.
// A limit of zero or less returns all of them.
//
// Returns an empty slice (not nil) if the log is empty.
func (s *Store) ListSnapshots(ctx context.Context, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, id, content_hash, source, output, cycles
		FROM snapshots
		ORDER BY seq DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	return scanSnapshots(rows)
}

// SnapshotsByHash returns every snapshot whose output hashes to hash,
// oldest first.
func (s *Store) SnapshotsByHash(ctx context.Context, hash string) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, id, content_hash, source, output, cycles
		FROM snapshots
		WHERE content_hash = ?
		ORDER BY seq ASC
	`, hash)
	if err != nil {
		return nil, fmt.Errorf("query snapshots by hash: %w", err)
	}
	return scanSnapshots(rows)
}

// GetSnapshot returns the snapshot with the given ID, or ErrNotFound.
func (s *Store) GetSnapshot(ctx context.Context, id string) (Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT seq, id, content_hash, source, output, cycles
		FROM snapshots
		WHERE id = ?
	`, id)

	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return snap, err
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (Snapshot, error) {
	var (
		snap       Snapshot
		cyclesJSON string
	)
	if err := row.Scan(&snap.Seq, &snap.ID, &snap.ContentHash, &snap.Source, &snap.Output, &cyclesJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, err
		}
		return Snapshot{}, fmt.Errorf("scan snapshot: %w", err)
	}
	if err := json.Unmarshal([]byte(cyclesJSON), &snap.Cycles); err != nil {
		return Snapshot{}, fmt.Errorf("unmarshal cycles of %s: %w", snap.ID, err)
	}
	return snap, nil
}

func scanSnapshots(rows *sql.Rows) ([]Snapshot, error) {
	defer rows.Close()

	snaps := []Snapshot{}
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}
	return snaps, nil
}
