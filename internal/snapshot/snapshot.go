// Package snapshot loads a locally stored stake program snapshot into
// memory. The document is a JSON object whose result key holds the account
// array returned by getProgramAccounts.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/solana-pools/stake-aggregator/internal/observability/metrics"
	"github.com/solana-pools/stake-aggregator/internal/types"
)

// ErrMissingResult indicates a well-formed JSON document without the
// top-level result array.
var ErrMissingResult = errors.New("snapshot document has no top-level result array")

// Snapshot holds the decoded account records of one input document.
type Snapshot struct {
	// Records are the entries that decoded cleanly. Records here may still
	// lack a stake delegation; that is decided downstream.
	Records []types.AccountEntry
	// Skipped counts entries that failed element-level decoding. Skipping
	// them is the intended behavior, not an error: the snapshot contains
	// heterogeneous account types.
	Skipped int
}

// Load reads and decodes the snapshot at path. An unreadable file, invalid
// JSON, or a missing result array is fatal; a malformed individual entry is
// skipped and counted.
func Load(ctx context.Context, path string) (*Snapshot, error) {
	log := log.Ctx(ctx)

	startTime := time.Now()
	snapshot, err := load(path)
	metrics.RecordSnapshotLoad(time.Since(startTime), lenRecords(snapshot), lenSkipped(snapshot), err != nil)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("path", path).
		Int("records", len(snapshot.Records)).
		Int("skipped", snapshot.Skipped).
		Dur("load_duration", time.Since(startTime)).
		Msg("Snapshot loaded")

	return snapshot, nil
}

func load(path string) (*Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", path, err)
	}

	// Entries are kept raw here and decoded one by one below so a single
	// malformed record cannot poison the whole run.
	var doc struct {
		Result *[]json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file %s: %w", path, err)
	}
	if doc.Result == nil {
		return nil, fmt.Errorf("invalid snapshot file %s: %w", path, ErrMissingResult)
	}

	snapshot := &Snapshot{
		Records: make([]types.AccountEntry, 0, len(*doc.Result)),
	}
	for _, rawEntry := range *doc.Result {
		var entry types.AccountEntry
		if err := json.Unmarshal(rawEntry, &entry); err != nil {
			snapshot.Skipped++
			continue
		}
		snapshot.Records = append(snapshot.Records, entry)
	}

	return snapshot, nil
}

func lenRecords(s *Snapshot) int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}

func lenSkipped(s *Snapshot) int {
	if s == nil {
		return 0
	}
	return s.Skipped
}
