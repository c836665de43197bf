// Package replay re-sends archived native export files to a VitalBridge
// server, tracking progress in a local SQLite database so interrupted runs
// resume where they left off.
package replay

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Stats tracks replay progress.
type Stats struct {
	FilesTotal   int
	FilesSent    int
	FilesSkipped int
	FilesErrored int
}

// Replayer walks an export directory and POSTs each unseen .json file to
// the server's ingest endpoint.
type Replayer struct {
	client *Client
	state  *StateDB
	dir    string
	dryRun bool
	log    *slog.Logger
	stats  Stats
}

// New creates a new Replayer.
func New(client *Client, state *StateDB, dir string, dryRun bool, log *slog.Logger) *Replayer {
	return &Replayer{
		client: client,
		state:  state,
		dir:    dir,
		dryRun: dryRun,
		log:    log,
	}
}

// Run executes the replay pipeline. Files that fail to send are counted and
// logged but do not stop the run.
func (r *Replayer) Run() (*Stats, error) {
	files, err := listExportFiles(r.dir)
	if err != nil {
		return &r.stats, err
	}
	r.stats.FilesTotal = len(files)

	for _, path := range files {
		if err := r.replayFile(path); err != nil {
			r.log.Error("replay failed", "file", path, "error", err)
			r.stats.FilesErrored++
		}
	}

	return &r.stats, nil
}

func (r *Replayer) replayFile(path string) error {
	relPath, err := filepath.Rel(r.dir, path)
	if err != nil {
		relPath = path
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}
	hash, err := HashFile(path)
	if err != nil {
		return fmt.Errorf("hashing: %w", err)
	}

	sent, err := r.state.IsSent(relPath, info.Size(), hash)
	if err != nil {
		return fmt.Errorf("checking state: %w", err)
	}
	if sent {
		r.stats.FilesSkipped++
		return nil
	}

	if r.dryRun {
		r.log.Info("dry-run: would send", "file", relPath, "size", info.Size())
		r.stats.FilesSent++
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading: %w", err)
	}
	if err := r.client.SendPayload(data); err != nil {
		return err
	}

	if err := r.state.MarkSent(relPath, info.Size(), hash); err != nil {
		return fmt.Errorf("marking sent: %w", err)
	}

	r.log.Info("sent", "file", relPath, "size", info.Size())
	r.stats.FilesSent++
	return nil
}

// listExportFiles returns all .json files under dir, sorted by path so
// replays are deterministic.
func listExportFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	return files, nil
}
