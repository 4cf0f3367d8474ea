// grido is a falling-block tile chemistry puzzle for the terminal.
//
// Usage:
//
//	grido menu              - Logo menu: play, help, session scores
//	grido play [variant]    - Play a game directly (grido, grido_small)
//	grido tiles             - Show the tile catalog and controls
//	grido list              - List game variants
//
// Global flags:
//
//	--fps <rate>        - Tick rate (default: 50)
//	--seed <value>      - RNG seed for reproducible games
//	--rng <kind>        - Random source: math or lfsr
//	--backend <name>    - Terminal backend: tea or tcell
//	--config <path>     - Custom grido.yaml
//	--difficulty <name> - Difficulty preset
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/grido/internal/config"
	"github.com/vovakirdan/grido/internal/core"
	"github.com/vovakirdan/grido/internal/games/grido"
	"github.com/vovakirdan/grido/internal/games/grido/random"
	"github.com/vovakirdan/grido/internal/logging"
)

const (
	backendTea   = "tea"
	backendTcell = "tcell"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagRNG        string
	flagBackend    string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string

	logger    = logging.Discard()
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// closeLog flushes and closes the log file, if one was opened.
func closeLog() {
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
}

var rootCmd = &cobra.Command{
	Use:   "grido",
	Short: "Grido - a tile chemistry puzzle in your terminal",
	Long: `Grido is a falling-block puzzle. Steer a block of tiles over the
playfield and drop it; every 3x3 of plain tiles explodes for points.
Special tiles pick, kill, shield, spill acid or glue and change your
score multiplier.

Available commands:
  menu     - Logo menu with play, help and session scores
  play     - Play a game variant directly
  tiles    - Tile catalog and controls
  list     - Show game variants

Examples:
  grido menu
  grido play
  grido play grido_small --difficulty hard
  grido play --rng lfsr --seed 42 --backend tcell`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 50, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagRNG, "rng", random.KindMath, "Random source: math or lfsr")
	pf.StringVar(&flagBackend, "backend", backendTea, "Terminal backend: tea or tcell")
	pf.StringVar(&flagConfig, "config", "", "Path to custom grido.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tilesCmd)
	rootCmd.AddCommand(listCmd)
}

// setup validates the global flags and wires logging and game settings.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := random.New(flagRNG, 1); err != nil {
		return err
	}
	switch flagBackend {
	case backendTea, backendTcell:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", flagBackend, backendTea, backendTcell)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	l, closer, err := logging.New(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	logger, logCloser = l, closer

	grido.SetLogger(logger)
	grido.SetConfigPath(flagConfig)
	grido.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig builds the game runtime config from the flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		RNG:      flagRNG,
	}
}
