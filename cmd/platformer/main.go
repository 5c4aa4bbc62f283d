// platformer is a side-scrolling platformer that runs in the terminal or in
// a window.
//
// Usage:
//
//	platformer list                - List available levels
//	platformer play [level]        - Play a level in the terminal
//	platformer menu                - Pick levels interactively
//	platformer window [level]      - Play a level in a window
//	platformer check <file>...     - Validate level files
//	platformer export <level>      - Print a level as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Custom platformer config YAML
//	--level-file <path>   - Play a level file instead of a named level
//	--levels-dir <path>   - Directory of additional level files
//	--log-file <path>     - Write logs to a file
//	--verbose             - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var (
	// Global flags
	flagFPS       int
	flagConfig    string
	flagLevelFile string
	flagLevelsDir string
	flagLogFile   string
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - run, jump and reach the checkpoints",
	Long: `Platformer is a side-scrolling platform game. Move with the arrow keys,
jump with Up or Space and reach every checkpoint in order.

Available commands:
  list     - Show all available levels
  play     - Play a level in the terminal
  menu     - Interactive level picker
  window   - Play a level in a window
  check    - Validate level files
  export   - Print a level as YAML

Examples:
  platformer list
  platformer play
  platformer play sunset --fps 30
  platformer play --level-file ./my-level.toml
  platformer window checkpoints`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelFile, "level-file", "", "Play a level file (.yaml, .yml, .toml)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of additional level files")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(exportCmd)
}

// fail reports err on stderr and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// newLogger builds the command logger. Interactive terminal commands own the
// screen, so without --log-file they log nowhere.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	var (
		w       io.Writer = os.Stderr
		closeFn           = func() {}
	)
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadSettings loads the platformer config honoring --config.
func loadSettings() (config.PlatformerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.PlatformerConfig{}, err
	}
	return cfg, nil
}

// resolveLevel picks the level to play: --level-file wins, then a registered
// level, then a level in --levels-dir.
func resolveLevel(args []string) (platformer.LevelDefinition, error) {
	if flagLevelFile != "" {
		lvl, err := levels.LoadFile(flagLevelFile)
		if err != nil {
			return platformer.LevelDefinition{}, err
		}
		return lvl.LevelDefinition, nil
	}

	id := levels.DefaultLevelID
	if len(args) > 0 {
		id = args[0]
	}
	return levelByID(id)
}

func levelByID(id string) (platformer.LevelDefinition, error) {
	if registry.Exists(id) {
		return registry.Definition(id)
	}
	if flagLevelsDir != "" {
		lvl, err := levels.NewLoader(flagLevelsDir).LoadByID(id)
		if err == nil {
			return lvl.LevelDefinition, nil
		}
	}
	return platformer.LevelDefinition{}, fmt.Errorf("unknown level %q (run 'platformer list' to see available levels)", id)
}

// runtimeConfig sizes the terminal playfield.
func runtimeConfig(settings config.PlatformerConfig) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.CellW = settings.Terminal.CellWidth
	cfg.CellH = settings.Terminal.CellHeight
	return cfg
}
