package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window [level]",
	Short: "Play a level in a window",
	Long: `Open a window and play the specified level (default: checkpoints).
The window reports real key releases, so movement stops exactly when a key
is let go. Window size comes from the window section of the config.

Controls:
  Left/A, Right/D  - Walk
  Up/W/Space       - Jump
  Enter            - Start
  R                - Restart
  Esc/Q            - Quit

Examples:
  platformer window
  platformer window sunset --fps 120`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, args []string) {
	settings, err := loadSettings()
	if err != nil {
		fail(err)
	}
	level, err := resolveLevel(args)
	if err != nil {
		fail(err)
	}
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	logger.Debug("opening window", "level", level.ID, "width", settings.Window.Width, "height", settings.Window.Height)
	if err := window.Run(level, window.Options{
		TickRate: flagFPS,
		Settings: settings,
		Logger:   logger,
	}); err != nil {
		fail(err)
	}
}
