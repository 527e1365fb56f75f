package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toroarcade/torosnake/internal/storage"
)

var flagSessionLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded sessions",
	Long: `Display the most recently recorded game sessions.

Each local game is recorded to the session database: the seed, the field
dimensions, and every input with the tick it was consumed on. Any listed
session can be re-run with 'torosnake replay <id>'.

Examples:
  torosnake sessions
  torosnake sessions --limit 50`,
	Run: runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagSessionLimit, "limit", 20, "Maximum number of sessions to list")
}

func runSessions(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sessions, err := store.Sessions(flagSessionLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'torosnake play 800 600' to record the first one!")
		return
	}

	fmt.Printf("  %-6s  %-9s  %-8s  %-10s  %s\n", "ID", "Field", "Ticks", "Ended", "Date")
	fmt.Printf("  %-6s  %-9s  %-8s  %-10s  %s\n", "--", "-----", "-----", "-----", "----")

	for _, sess := range sessions {
		field := fmt.Sprintf("%dx%d",
			int(sess.PixelW/sess.EntitySize),
			int(sess.PixelH/sess.EntitySize),
		)
		ended := sess.EndReason
		if ended == "" {
			ended = "unfinished"
		}
		dateStr := sess.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-6d  %-9s  %-8d  %-10s  %s\n", sess.ID, field, sess.Ticks, ended, dateStr)
	}
}
