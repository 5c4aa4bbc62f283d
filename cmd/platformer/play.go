package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level in the terminal",
	Long: `Start playing the specified level (default: checkpoints).

Controls:
  Left/A, Right/D  - Walk; the world scrolls at the screen thresholds
  Up/W/Space       - Jump (hold to keep rising)
  Enter            - Start
  R                - Restart
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Terminals only report key presses, so a held key counts as released when
its auto-repeat stops.

Examples:
  platformer play
  platformer play classic
  platformer play --level-file ./levels/mine.yaml
  platformer play sunset --log-file play.log --verbose`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	settings, err := loadSettings()
	if err != nil {
		fail(err)
	}
	level, err := resolveLevel(args)
	if err != nil {
		fail(err)
	}
	logger, closeLog, err := newLogger(true)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	game, err := platformer.NewGame(level, platformer.ParamsFromConfig(settings))
	if err != nil {
		fail(err)
	}

	logger.Debug("starting", "level", level.ID, "fps", flagFPS)
	state, err := tui.Run(game, tui.Options{
		Runtime:  runtimeConfig(settings),
		Settings: settings,
		Logger:   logger,
	})
	if err != nil {
		fail(err)
	}

	if state.Total > 0 {
		fmt.Printf("%s: %d/%d checkpoints\n", game.Title(), state.Claimed, state.Total)
	}
}
