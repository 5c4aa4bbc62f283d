// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// Document is the on-disk shape of a level, shared by every format.
type Document struct {
	ID            string          `yaml:"id" toml:"id"`
	Name          string          `yaml:"name" toml:"name"`
	Scheme        string          `yaml:"scheme" toml:"scheme"`
	PlatformColor string          `yaml:"platform_color,omitempty" toml:"platform_color"`
	Spawn         SpawnDoc        `yaml:"spawn,omitempty" toml:"spawn"`
	Platforms     []PlatformDoc   `yaml:"platforms" toml:"platforms"`
	Checkpoints   []CheckpointDoc `yaml:"checkpoints,omitempty" toml:"checkpoints"`
}

// SpawnDoc is the actor spawn block.
type SpawnDoc struct {
	X    float64 `yaml:"x" toml:"x"`
	Y    float64 `yaml:"y" toml:"y"`
	Size float64 `yaml:"size,omitempty" toml:"size"`
}

// PlatformDoc is one platform entry.
type PlatformDoc struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
	W float64 `yaml:"w,omitempty" toml:"w"`
	H float64 `yaml:"h,omitempty" toml:"h"`
}

// CheckpointDoc is one checkpoint entry.
type CheckpointDoc struct {
	X       float64 `yaml:"x" toml:"x"`
	Y       float64 `yaml:"y" toml:"y"`
	W       float64 `yaml:"w,omitempty" toml:"w"`
	H       float64 `yaml:"h,omitempty" toml:"h"`
	Order   int     `yaml:"order" toml:"order"`
	Message string  `yaml:"message,omitempty" toml:"message"`
}

// Definition converts the document into a validated level definition.
func (d Document) Definition() (platformer.LevelDefinition, error) {
	scheme, err := platformer.ParseControlScheme(d.Scheme)
	if err != nil {
		return platformer.LevelDefinition{}, err
	}

	def := platformer.LevelDefinition{
		ID:            d.ID,
		Name:          d.Name,
		Scheme:        scheme,
		PlatformColor: d.PlatformColor,
		Spawn:         platformer.SpawnSpec{X: d.Spawn.X, Y: d.Spawn.Y, Size: d.Spawn.Size},
		Platforms:     make([]platformer.PlatformSpec, 0, len(d.Platforms)),
		Checkpoints:   make([]platformer.CheckpointSpec, 0, len(d.Checkpoints)),
	}
	for _, p := range d.Platforms {
		def.Platforms = append(def.Platforms, platformer.PlatformSpec{X: p.X, Y: p.Y, W: p.W, H: p.H})
	}
	for _, c := range d.Checkpoints {
		def.Checkpoints = append(def.Checkpoints, platformer.CheckpointSpec{
			X: c.X, Y: c.Y, W: c.W, H: c.H,
			Order:   c.Order,
			Message: c.Message,
		})
	}

	if err := def.Validate(); err != nil {
		return platformer.LevelDefinition{}, err
	}
	return def, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// Parse routes data to the parser for the file extension.
func Parse(data []byte, ext string) (platformer.LevelDefinition, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return platformer.LevelDefinition{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// FromDefinition converts a level definition into its document form.
func FromDefinition(def platformer.LevelDefinition) Document {
	d := Document{
		ID:            def.ID,
		Name:          def.Name,
		Scheme:        def.Scheme.String(),
		PlatformColor: def.PlatformColor,
		Spawn:         SpawnDoc{X: def.Spawn.X, Y: def.Spawn.Y, Size: def.Spawn.Size},
		Platforms:     make([]PlatformDoc, 0, len(def.Platforms)),
	}
	for _, p := range def.Platforms {
		d.Platforms = append(d.Platforms, PlatformDoc{X: p.X, Y: p.Y, W: p.W, H: p.H})
	}
	for _, c := range def.Checkpoints {
		d.Checkpoints = append(d.Checkpoints, CheckpointDoc{
			X: c.X, Y: c.Y, W: c.W, H: c.H,
			Order:   c.Order,
			Message: c.Message,
		})
	}
	return d
}
