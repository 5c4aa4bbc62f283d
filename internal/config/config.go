// Package config provides YAML-based configuration loading for the platformer.
package config

import (
	"fmt"
	"time"
)

// PlatformerConfig contains all tunables of the simulation and its drivers.
type PlatformerConfig struct {
	Physics  Physics  `yaml:"physics"`
	Camera   Camera   `yaml:"camera"`
	Overlay  Overlay  `yaml:"overlay"`
	Terminal Terminal `yaml:"terminal"`
	Window   Window   `yaml:"window"`
}

// Physics defines per-tick motion constants, in canvas pixels.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Subtracted from vertical velocity per jump key-down
	KeyImpulse  float64 `yaml:"key_impulse"`  // Added to horizontal velocity per arrow key-down
	WalkSpeed   float64 `yaml:"walk_speed"`   // Horizontal speed derived from held keys each tick
	ScrollStep  float64 `yaml:"scroll_step"`  // World translation per tick while scrolling
}

// Camera defines the screen-relative scroll thresholds.
type Camera struct {
	ThresholdLeft    float64 `yaml:"threshold_left"`
	ThresholdRight   float64 `yaml:"threshold_right"`
	ProportionalBase float64 `yaml:"proportional_base"` // Viewport height below which sizes scale down
}

// Overlay configures the checkpoint message overlay.
type Overlay struct {
	CheckpointDismiss time.Duration `yaml:"checkpoint_dismiss"`
}

// Terminal configures the bubbletea driver.
type Terminal struct {
	CellWidth  float64 `yaml:"cell_width"`  // Canvas pixels per terminal column
	CellHeight float64 `yaml:"cell_height"` // Canvas pixels per terminal row

	// Terminals report presses only. A held key is assumed released when no
	// auto-repeat arrives within HoldInitial after the first press, or within
	// HoldRepeat after a repeat.
	HoldInitial time.Duration `yaml:"hold_initial"`
	HoldRepeat  time.Duration `yaml:"hold_repeat"`
}

// Window configures the ebiten driver.
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Validate rejects values the simulation cannot run with.
func (c PlatformerConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"physics.gravity", c.Physics.Gravity > 0},
		{"physics.jump_impulse", c.Physics.JumpImpulse >= 0},
		{"physics.key_impulse", c.Physics.KeyImpulse >= 0},
		{"physics.walk_speed", c.Physics.WalkSpeed > 0},
		{"physics.scroll_step", c.Physics.ScrollStep > 0},
		{"camera.threshold_left", c.Camera.ThresholdLeft >= 0},
		{"camera.threshold_right", c.Camera.ThresholdRight >= c.Camera.ThresholdLeft},
		{"camera.proportional_base", c.Camera.ProportionalBase > 0},
		{"overlay.checkpoint_dismiss", c.Overlay.CheckpointDismiss > 0},
		{"terminal.cell_width", c.Terminal.CellWidth > 0},
		{"terminal.cell_height", c.Terminal.CellHeight > 0},
		{"terminal.hold_initial", c.Terminal.HoldInitial > 0},
		{"terminal.hold_repeat", c.Terminal.HoldRepeat > 0},
		{"window.width", c.Window.Width > 0},
		{"window.height", c.Window.Height > 0},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: invalid value for %s", chk.name)
		}
	}
	return nil
}
