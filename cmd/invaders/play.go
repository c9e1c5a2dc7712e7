package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var flagHoldFrames int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD  - Move (diagonal lanes)
  Space/Click  - Fire
  Enter        - Play / Play again
  G            - Settings
  M            - Back to menu (after game over)
  Esc/B        - Back (settings)
  ?            - Full help
  Q/Ctrl+C     - Quit

The mouse works on every button.

Difficulty options:
  easy   - Fast enemies appear more slowly
  normal - Reference wave scaling
  hard   - Fast enemies take over sooner
  fixed  - Wave composition never changes

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --seed 42 --log-file invaders.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldFrames, "hold", tui.DefaultHoldFrames, "Ticks a key stays held after its last repeat (fire is capped at 3)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Logs would corrupt the alternate screen unless they go to a file.
	logger, closeLog, err := newLogger("invaders", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := invaders.New(cfg)
	if runErr := tui.Run(game, runtime, tui.Options{Logger: logger, HoldFrames: flagHoldFrames}); runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
