package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/meltforce/vitalbridge/internal/replay"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "VitalBridge server URL (e.g. https://vitalbridge.tail1234.ts.net)")
	dir := flag.String("dir", "", "directory of exported .json payloads to replay")
	apiKey := flag.String("api-key", "", "API key for the ingest endpoint")
	dryRun := flag.Bool("dry-run", false, "list what would be sent without sending")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("vitalbridge-replay", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *dir == "" {
		fmt.Fprintf(os.Stderr, "Usage: vitalbridge-replay -server <URL> -api-key <KEY> -dir <export dir> [-dry-run]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if (*serverURL == "" || *apiKey == "") && !*dryRun {
		fmt.Fprintf(os.Stderr, "Error: -server and -api-key are required (or use -dry-run)\n")
		os.Exit(1)
	}

	*serverURL = strings.TrimRight(*serverURL, "/")

	info, err := os.Stat(*dir)
	if err != nil || !info.IsDir() {
		log.Error("export directory not found", "path", *dir)
		os.Exit(1)
	}

	// Open state database
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Error("failed to get home directory", "error", err)
		os.Exit(1)
	}
	stateDir := filepath.Join(homeDir, ".vitalbridge-replay")

	state, err := replay.OpenStateDB(stateDir)
	if err != nil {
		log.Error("failed to open state database", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	client := replay.NewClient(*serverURL, *apiKey)

	if *dryRun {
		log.Info("DRY RUN mode — files will be listed but not sent")
	}

	r := replay.New(client, state, *dir, *dryRun, log)
	stats, err := r.Run()
	if err != nil {
		log.Error("replay failed", "error", err)
		printStats(stats)
		os.Exit(1)
	}

	printStats(stats)
	log.Info("replay complete")
}

func printStats(stats *replay.Stats) {
	fmt.Println()
	fmt.Println("=== Replay Summary ===")
	fmt.Printf("  Files total:   %d\n", stats.FilesTotal)
	fmt.Printf("  Files sent:    %d\n", stats.FilesSent)
	fmt.Printf("  Files skipped: %d (already sent)\n", stats.FilesSkipped)
	fmt.Printf("  Files errored: %d\n", stats.FilesErrored)
	fmt.Println()
}
