package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grido/internal/core"
	"github.com/vovakirdan/grido/internal/games/grido"
	"github.com/vovakirdan/grido/internal/platform/cell"
	"github.com/vovakirdan/grido/internal/platform/tui"
	"github.com/vovakirdan/grido/internal/registry"
	"github.com/vovakirdan/grido/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing the given variant (default: grido).

Controls:
  Arrows/hjkl - Move the block
  Tab         - Rotate
  Enter       - Drop
  Backspace   - Swap with the next block
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Drop timer starts slow and speeds up with the score
  normal - Starts at 30% speed-up
  hard   - Starts at 70% speed-up
  fixed  - No progression, stays at config's initial level

Examples:
  grido play
  grido play grido_small
  grido play --difficulty hard
  grido play --config ./my-grido.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := grido.Classic.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'grido list' to see available variants", gameID)
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("running without a scoreboard", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := playGame(gameID, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// playGame runs one game on the selected backend until the player quits.
func playGame(gameID string, store *storage.Store, cfg core.RuntimeConfig) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	switch flagBackend {
	case backendTcell:
		return cell.Run(game, store, logger, cfg)
	default:
		return tui.Run(game, store, logger, cfg)
	}
}
