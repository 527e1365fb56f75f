// torosnake is a snake game on a torus: the playfield wraps around at the
// edges instead of killing the snake.
//
// Usage:
//
//	torosnake play <width> <height>  - Play on a <width>x<height> pixel field
//	torosnake serve                  - Start SSH server for remote play
//	torosnake sessions               - List recorded sessions
//	torosnake replay <session-id>    - Re-run a recorded session headlessly
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--db <path>      - Session database path (default: ~/.torosnake/sessions.db)
//	--seed <value>   - RNG seed for reproducible gameplay (0 = time-based)
//	--mute           - Disable audio
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   int64
	flagMute   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "torosnake",
	Short: "Torosnake - snake on a torus, in your terminal",
	Long: `Torosnake is a terminal snake game played on a toroidal field:
running off one edge brings the snake back in on the opposite side.
The only way to lose is to bite yourself.

Available commands:
  play      - Play on a field of the given pixel size
  serve     - Start SSH server for remote play
  sessions  - List recorded sessions
  replay    - Re-run a recorded session

Examples:
  torosnake play 800 600
  torosnake play 800 600 --seed 42 --mute
  torosnake serve --ssh :2222
  torosnake sessions
  torosnake replay 7`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.torosnake/sessions.db", "Path to session database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(replayCmd)
}
