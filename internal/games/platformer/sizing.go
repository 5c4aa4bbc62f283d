package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// ProportionalSize scales a level constant for short viewports:
// below base pixels of height, sizes shrink in proportion.
func ProportionalSize(size, viewportH, base float64) float64 {
	if viewportH < base {
		return math.Ceil((size / base) * viewportH)
	}
	return size
}

// Geometry describes the canvas the simulation runs on.
type Geometry struct {
	CanvasW   float64 // Right bound for the horizontal clamp
	CanvasH   float64 // The floor
	ViewportH float64 // Input to proportional sizing; usually CanvasH
}

// Params holds the motion constants of one simulation.
type Params struct {
	Gravity     float64
	JumpImpulse float64
	KeyImpulse  float64
	WalkSpeed   float64
	ScrollStep  float64

	ThresholdLeft    float64
	ThresholdRight   float64
	ProportionalBase float64
}

// DefaultParams returns the constants of the default configuration.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultPlatformerConfig())
}

// ParamsFromConfig extracts simulation constants from the loaded config.
func ParamsFromConfig(cfg config.PlatformerConfig) Params {
	return Params{
		Gravity:          cfg.Physics.Gravity,
		JumpImpulse:      cfg.Physics.JumpImpulse,
		KeyImpulse:       cfg.Physics.KeyImpulse,
		WalkSpeed:        cfg.Physics.WalkSpeed,
		ScrollStep:       cfg.Physics.ScrollStep,
		ThresholdLeft:    cfg.Camera.ThresholdLeft,
		ThresholdRight:   cfg.Camera.ThresholdRight,
		ProportionalBase: cfg.Camera.ProportionalBase,
	}
}

// scaler applies proportional sizing for one geometry.
type scaler struct {
	viewportH float64
	base      float64
}

func (s scaler) size(v float64) float64 {
	return ProportionalSize(v, s.viewportH, s.base)
}
