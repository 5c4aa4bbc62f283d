package formats

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// ParseTOML parses a TOML level file. Platforms and checkpoints are arrays
// of tables ([[platforms]], [[checkpoints]]). Unknown keys are rejected.
func ParseTOML(data []byte) (platformer.LevelDefinition, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return platformer.LevelDefinition{}, fmt.Errorf("toml decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return platformer.LevelDefinition{}, fmt.Errorf("toml decode: unknown keys %s", strings.Join(keys, ", "))
	}
	return doc.Definition()
}
