package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/toroarcade/torosnake/internal/audio"
	"github.com/toroarcade/torosnake/internal/config"
	"github.com/toroarcade/torosnake/internal/core"
	"github.com/toroarcade/torosnake/internal/platform/tui"
	"github.com/toroarcade/torosnake/internal/snake"
	"github.com/toroarcade/torosnake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <width> <height>",
	Short: "Play on a field of the given pixel size",
	Long: `Start a game on a playfield of <width> by <height> pixels.
Dimensions are truncated to whole grid cells (one cell per entity size,
40 pixels by default), so 800x600 gives a 20x15 cell field.

Controls:
  WASD/Arrows - Steer the snake (also resumes from pause and game over)
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Examples:
  torosnake play 800 600
  torosnake play 1200 400 --seed 42
  torosnake play 800 600 --config ./my-colors.yaml`,
	Args: cobra.ExactArgs(2),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	pixelW := parseDimension(args[0], "width")
	pixelH := parseDimension(args[1], "height")

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	opts := snake.Options{
		PixelW:      pixelW,
		PixelH:      pixelH,
		EntitySize:  float64(cfg.Grid.EntitySize),
		SnakeColor:  core.ParseColor(cfg.Colors.Snake),
		FoodColor:   core.ParseColor(cfg.Colors.Food),
		TextColor:   core.ParseColor(cfg.Colors.Text),
		BorderColor: core.ParseColor(cfg.Colors.Border),
	}
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size; one row is reserved for the help line
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height - 1,
		FPS:     cfg.Timing.FPS,
		Seed:    seed,
	}

	// Audio initialization failure is fatal: a requested device that cannot
	// be opened should surface, not silently degrade. Use --mute to opt out.
	var player audio.Player = audio.Nop{}
	if !flagMute && cfg.Audio.Enabled {
		system, audioErr := audio.NewSystem()
		if audioErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", audioErr)
			os.Exit(1)
		}
		player = system
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		// Continue without recording - game still works
		store = nil
	}

	var sessionID int64
	if store != nil {
		sessionID, err = store.StartSession(storage.Session{
			Seed:       seed,
			PixelW:     pixelW,
			PixelH:     pixelH,
			EntitySize: opts.EntitySize,
			ScreenW:    rt.ScreenW,
			ScreenH:    rt.ScreenH,
			FPS:        rt.FPS,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not start session recording: %v\n", err)
			store.Close()
			store = nil
		}
	}

	// Run the game
	runErr := tui.Run(snake.New(opts), store, sessionID, player, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// parseDimension parses a positive pixel dimension from a CLI argument,
// exiting with a descriptive message on bad input.
func parseDimension(arg, name string) float64 {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s must be a number, got %q\n", name, arg)
		os.Exit(1)
	}
	if v <= 0 {
		fmt.Fprintf(os.Stderr, "Error: %s must be positive, got %v\n", name, v)
		os.Exit(1)
	}
	return v
}
