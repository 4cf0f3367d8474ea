package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/grido/internal/platform/tui"
)

var tilesCmd = &cobra.Command{
	Use:     "tiles",
	Aliases: []string{"guide"},
	Short:   "Show the tile catalog and controls",
	Long: `Page through the in-game help: every tile with what it does, then
the controls. Any key turns the page; Esc goes back.`,
	Args: cobra.NoArgs,
	RunE: runTiles,
}

func runTiles(_ *cobra.Command, _ []string) error {
	cfg := runtimeConfig()
	return tui.RunHelp(cfg.ScreenW, cfg.ScreenH)
}
