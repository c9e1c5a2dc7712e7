package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var (
	flagWaveCount int
	flagPlain     bool
)

var wavesCmd = &cobra.Command{
	Use:   "waves",
	Short: "Preview generated waves",
	Long: `Generate the first waves of a run and show their composition.

The preview uses the same seeded generator as the game: a run started
with the same --seed meets exactly these waves. The interactive view
lets you flip between difficulty presets.

Examples:
  invaders waves
  invaders waves --seed 42 --count 20
  invaders waves --difficulty hard --plain`,
	Args: cobra.NoArgs,
	Run:  runWaves,
}

func init() {
	wavesCmd.Flags().IntVar(&flagWaveCount, "count", 12, "Number of waves to generate")
	wavesCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the current config's table and exit")
}

func runWaves(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagWaveCount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --count must be positive")
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if flagPlain {
		printWaves(cfg.Waves, seed)
		return
	}

	previews := []tui.WavePreview{
		{Name: "current", Waves: invaders.PreviewWaves(cfg.Waves, seed, flagWaveCount)},
	}
	for _, preset := range []config.DifficultyPreset{
		config.DifficultyEasy,
		config.DifficultyNormal,
		config.DifficultyHard,
		config.DifficultyFixed,
	} {
		waves := cfg.Waves
		waves.Scaling = config.ScalingForPreset(preset)
		previews = append(previews, tui.WavePreview{
			Name:  string(preset),
			Waves: invaders.PreviewWaves(waves, seed, flagWaveCount),
		})
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunWaves(previews, 0, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printWaves writes a static table for pipes and scripts.
func printWaves(cfg config.WaveConfig, seed int64) {
	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	t := tui.NewWaveTable(flagWaveCount+2, false)
	t.SetRows(tui.WaveRows(invaders.PreviewWaves(cfg, seed, flagWaveCount)))

	fmt.Println(heading.Render(fmt.Sprintf("Waves (seed %d)", seed)))
	fmt.Println(t.View())

	if sat := cfg.Scaling.SaturationWave(); sat >= 0 {
		fmt.Printf("Every enemy is Fast from wave %d on.\n", sat)
	} else {
		fmt.Println("Wave odds never change.")
	}
}
