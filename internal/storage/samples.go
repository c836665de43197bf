package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SampleRow is a persisted health sample: the typed value's wire payload plus
// the metadata needed for querying and deduplication.
type SampleRow struct {
	ID         uuid.UUID       `json:"id"`
	Kind       string          `json:"kind"`
	Hash       string          `json:"hash"`
	Platform   string          `json:"platform"`
	Payload    json.RawMessage `json:"payload"`
	ReceivedAt time.Time       `json:"received_at"`
}

// KindCount is the number of stored samples for one kind.
type KindCount struct {
	Kind  string `json:"kind"`
	Count int64  `json:"count"`
}

// InsertSamples batch-inserts sample rows. Duplicates are detected by the
// value hash and silently skipped; returns the number actually inserted.
func (db *DB) InsertSamples(ctx context.Context, rows []SampleRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	query := `INSERT INTO samples (id, kind, hash, platform, payload, received_at)
VALUES `
	args := make([]any, 0, len(rows)*6)
	valueStrings := make([]string, 0, len(rows))

	for i, r := range rows {
		base := i * 6
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6,
		))
		args = append(args, r.ID, r.Kind, r.Hash, r.Platform, r.Payload, r.ReceivedAt)
	}

	query += strings.Join(valueStrings, ",") + " ON CONFLICT (hash) DO NOTHING"

	tag, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("inserting samples: %w", err)
	}
	return tag.RowsAffected(), nil
}

// QuerySamples retrieves samples of one kind within a time range.
func (db *DB) QuerySamples(ctx context.Context, kind string, start, end time.Time) ([]SampleRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, kind, hash, platform, payload, received_at
		 FROM samples
		 WHERE kind = $1 AND received_at >= $2 AND received_at < $3
		 ORDER BY received_at ASC`,
		kind, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying samples: %w", err)
	}
	defer rows.Close()

	return scanSampleRows(rows)
}

// LatestSamples returns the most recently received sample for each kind.
func (db *DB) LatestSamples(ctx context.Context) ([]SampleRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT DISTINCT ON (kind) id, kind, hash, platform, payload, received_at
		 FROM samples
		 ORDER BY kind, received_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying latest samples: %w", err)
	}
	defer rows.Close()

	return scanSampleRows(rows)
}

// KindCounts returns per-kind sample counts, ordered by kind.
func (db *DB) KindCounts(ctx context.Context) ([]KindCount, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT kind, COUNT(*) FROM samples GROUP BY kind ORDER BY kind`)
	if err != nil {
		return nil, fmt.Errorf("querying kind counts: %w", err)
	}
	defer rows.Close()

	var result []KindCount
	for rows.Next() {
		var c KindCount
		if err := rows.Scan(&c.Kind, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning kind count: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func scanSampleRows(rows pgx.Rows) ([]SampleRow, error) {
	var result []SampleRow
	for rows.Next() {
		var r SampleRow
		if err := rows.Scan(&r.ID, &r.Kind, &r.Hash, &r.Platform, &r.Payload, &r.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scanning sample row: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
