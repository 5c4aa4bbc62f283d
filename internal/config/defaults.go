package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: Physics{
			Gravity:     0.5,
			JumpImpulse: 8,
			KeyImpulse:  8,
			WalkSpeed:   5,
			ScrollStep:  5,
		},
		Camera: Camera{
			ThresholdLeft:    100,
			ThresholdRight:   400,
			ProportionalBase: 500,
		},
		Overlay: Overlay{
			CheckpointDismiss: 2000 * time.Millisecond,
		},
		Terminal: Terminal{
			CellWidth:   10,
			CellHeight:  20,
			HoldInitial: 500 * time.Millisecond,
			HoldRepeat:  120 * time.Millisecond,
		},
		Window: Window{
			Width:  1280,
			Height: 720,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
