package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// DefaultLevelID is played when no level is named.
const DefaultLevelID = "checkpoints"

//go:embed builtin
var builtinFS embed.FS

// Builtin returns the levels shipped with the binary, sorted by ID.
func Builtin() ([]Level, error) {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("levels: builtin: %w", err)
	}
	levels, bad, err := newFSLoader(sub, "builtin").LoadAllStrict()
	if err != nil {
		return nil, err
	}
	if len(bad) > 0 {
		return nil, fmt.Errorf("levels: builtin: %w", bad[0])
	}
	return levels, nil
}

func init() {
	levels, err := Builtin()
	if err != nil {
		panic(err)
	}
	for _, l := range levels {
		def := l.LevelDefinition
		registry.Register(def.ID, func() platformer.LevelDefinition {
			d := def
			d.Platforms = slices.Clone(def.Platforms)
			d.Checkpoints = slices.Clone(def.Checkpoints)
			return d
		})
	}
}
