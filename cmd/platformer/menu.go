package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a level picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a level.
After quitting a level, you return to the menu.

Examples:
  platformer menu
  platformer menu --fps 30
  platformer menu --levels-dir ./levels`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	settings, err := loadSettings()
	if err != nil {
		fail(err)
	}
	logger, closeLog, err := newLogger(true)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	items, err := menuItems()
	if err != nil {
		fail(err)
	}
	cfg := runtimeConfig(settings)

	for {
		result, err := tui.RunMenu(items, cfg)
		if err != nil {
			fail(err)
		}
		cfg = result.Config
		if result.Quit {
			return
		}

		level, err := levelByID(result.LevelID)
		if err != nil {
			logger.Error("loading level", "level", result.LevelID, "err", err)
			continue
		}
		game, err := platformer.NewGame(level, platformer.ParamsFromConfig(settings))
		if err != nil {
			logger.Error("creating game", "level", result.LevelID, "err", err)
			continue
		}

		if _, err := tui.Run(game, tui.Options{Runtime: cfg, Settings: settings, Logger: logger}); err != nil {
			fail(err)
		}
	}
}

// menuItems lists the registered levels followed by any in --levels-dir
// that do not shadow a registered ID.
func menuItems() ([]tui.MenuItem, error) {
	items := tui.RegistryItems()
	if flagLevelsDir == "" {
		return items, nil
	}

	seen := make(map[string]bool, len(items))
	for _, it := range items {
		seen[it.LevelID] = true
	}

	lvls, err := levelsInDir(flagLevelsDir)
	if err != nil {
		return nil, err
	}
	for _, l := range lvls {
		if seen[l.ID] {
			continue
		}
		title := l.Name
		if title == "" {
			title = l.ID
		}
		items = append(items, tui.MenuItem{LevelID: l.ID, Title: title, Detail: l.FilePath})
	}
	return items, nil
}
