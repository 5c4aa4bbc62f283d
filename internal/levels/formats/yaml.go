package formats

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// ParseYAML parses a YAML level file. Unknown keys are rejected.
func ParseYAML(data []byte) (platformer.LevelDefinition, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return platformer.LevelDefinition{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return doc.Definition()
}

// EncodeYAML writes a level definition back to YAML.
func EncodeYAML(def platformer.LevelDefinition) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(FromDefinition(def)); err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return buf.Bytes(), nil
}
