package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/levels/formats"
)

var exportCmd = &cobra.Command{
	Use:   "export [level]",
	Short: "Print a level as YAML",
	Long: `Print a level definition as YAML, as a starting point for a custom
level file.

Examples:
  platformer export checkpoints > mine.yaml
  platformer export --level-file mine.toml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runExport,
}

func runExport(_ *cobra.Command, args []string) {
	level, err := resolveLevel(args)
	if err != nil {
		fail(err)
	}
	data, err := formats.EncodeYAML(level)
	if err != nil {
		fail(err)
	}
	os.Stdout.Write(data)
}
