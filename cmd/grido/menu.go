package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grido/internal/platform/tui"
	"github.com/vovakirdan/grido/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the logo menu",
	Long: `Start grido in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select, or press an entry's
hotkey. After a game ends you return to the menu. Scores of finished games
are kept until you quit.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  p/m/h/s      - Play, Play small, Help, Scores
  Q            - Quit

Examples:
  grido menu
  grido menu --fps 30`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store, err := storage.Open()
	if err != nil {
		logger.Warn("running without a scoreboard", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch result.Choice {
		case tui.ChoicePlay:
			if err := playGame(result.GameID, store, cfg); err != nil {
				return fmt.Errorf("running game: %w", err)
			}

		case tui.ChoiceHelp:
			if err := tui.RunHelp(cfg.ScreenW, cfg.ScreenH); err != nil {
				return err
			}

		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
