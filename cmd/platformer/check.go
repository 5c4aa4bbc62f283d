package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate level files",
	Long: `Parse and validate each level file. Prints one line per file and
exits non-zero if any file is invalid.

Examples:
  platformer check levels/*.yaml
  platformer check mine.toml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	failed := 0
	for _, path := range args {
		lvl, err := levels.LoadFile(path)
		if err != nil {
			failed++
			var ve *platformer.ValidationError
			if errors.As(err, &ve) {
				fmt.Printf("FAIL  %s  %s: %s\n", path, ve.Code, ve.Message)
			} else {
				fmt.Printf("FAIL  %s  %v\n", path, err)
			}
			continue
		}
		fmt.Printf("ok    %s  %s (%d platforms, %d checkpoints)\n", path, lvl.ID, len(lvl.Platforms), len(lvl.Checkpoints))
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d level files invalid\n", failed, len(args))
		os.Exit(1)
	}
}
