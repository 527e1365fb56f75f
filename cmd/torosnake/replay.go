package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/toroarcade/torosnake/internal/config"
	"github.com/toroarcade/torosnake/internal/replay"
	"github.com/toroarcade/torosnake/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <session-id>",
	Short: "Re-run a recorded session",
	Long: `Re-run a recorded session headlessly and print its final frame.

The simulation is deterministic given the recorded seed and inputs, so the
replay reproduces the original game tick for tick. Colors come from the
current config; everything else comes from the recording.

Examples:
  torosnake replay 7
  torosnake replay 7 --config ./my-colors.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	sessionID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: session id must be a number, got %q\n", args[0])
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	result, err := replay.Run(store, cfg, sessionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying session: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(result.Screen.String())

	duration := time.Duration(result.Session.Ticks/uint64(result.Session.FPS)) * time.Second
	fmt.Printf("Session %d: score %d, %s after %d ticks (%s at %d ticks/s)\n",
		result.Session.ID,
		result.Snapshot.Score,
		result.Snapshot.Phase,
		result.Session.Ticks,
		duration,
		result.Session.FPS,
	)
}
