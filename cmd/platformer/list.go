package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long: `Shows the builtin levels and, with --levels-dir, every valid level
file found in that directory.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

type listRow struct {
	id, title, scheme, checkpoints, source string
}

func runList(_ *cobra.Command, _ []string) {
	var rows []listRow
	for _, l := range registry.List() {
		rows = append(rows, listRow{l.ID, l.Title, l.Scheme.String(), fmt.Sprint(l.Checkpoints), "builtin"})
	}

	if flagLevelsDir != "" {
		lvls, err := levelsInDir(flagLevelsDir)
		if err != nil {
			fail(err)
		}
		for _, l := range lvls {
			rows = append(rows, listRow{l.ID, l.Name, l.Scheme.String(), fmt.Sprint(len(l.Checkpoints)), l.FilePath})
		}
	}

	if len(rows) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	idW, titleW := len("ID"), len("Title")
	for _, r := range rows {
		idW = max(idW, len(r.id))
		titleW = max(titleW, len(r.title))
	}

	fmt.Printf("  %-*s  %-*s  %-6s  %-11s  %s\n", idW, "ID", titleW, "Title", "Camera", "Checkpoints", "Source")
	fmt.Printf("  %-*s  %-*s  %-6s  %-11s  %s\n", idW, "--", titleW, "-----", "------", "-----------", "------")
	for _, r := range rows {
		fmt.Printf("  %-*s  %-*s  %-6s  %-11s  %s\n", idW, r.id, titleW, r.title, r.scheme, r.checkpoints, r.source)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to play a level.")
}

// levelsInDir loads every valid level under dir and warns about the rest.
func levelsInDir(dir string) ([]levels.Level, error) {
	lvls, bad, err := levels.NewLoader(dir).LoadAllStrict()
	if err != nil {
		return nil, err
	}
	for _, e := range bad {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", e)
	}
	return lvls, nil
}
