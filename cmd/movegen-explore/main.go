// movegen-explore expands the game tree from the initial position and
// records every distinct position reached in a SQLite database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/config"
	"github.com/lgbarn/movegen-go/internal/explore"
	"github.com/lgbarn/movegen-go/internal/store"
)

var (
	depth     = flag.Int("depth", 0, "Maximum depth in half-moves (default 4)")
	workers   = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	dbPath    = flag.String("db", "", "SQLite database path (default ./positions.db)")
	batchSize = flag.Int("batch", 0, "Worker result buffer size (default 100)")
	maxBytes  = flag.Int64("max-db-bytes", 0, "Stop when the database reaches this size (0 = unlimited)")
	help      = flag.Bool("h", false, "Show help")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	st, err := store.Open(cfg.DBPath, cfg.MaxDBBytes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	explorer := explore.New(st, cfg)
	stats, err := explorer.Run(ctx, chess.NewGame())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	reportStats(stats)
}

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	if *depth > 0 {
		cfg.Depth = *depth
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *batchSize > 0 {
		cfg.BatchSize = *batchSize
	}
	if *maxBytes > 0 {
		cfg.MaxDBBytes = *maxBytes
	}
}

func reportStats(stats *explore.Stats) {
	for d, n := range stats.Levels {
		fmt.Printf("depth %d: %d new positions\n", d, n)
	}
	fmt.Printf("total: %d distinct positions\n", stats.Total)
	if stats.Truncated {
		fmt.Println("stopped early (size limit or interrupt)")
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `movegen-explore - breadth-first game tree explorer

Usage: movegen-explore [options]

Options:
`)
	flag.PrintDefaults()
}
