package platformer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Fixed entity colors.
const (
	ColorActor      = "#99c9ff"
	ColorPlatform   = "#acd157"
	ColorSunset     = "#ffcc99"
	ColorCheckpoint = "#f1be32"
)

// Default checkpoint messages.
const (
	MessageCheckpoint      = "You reached a checkpoint!"
	MessageFinalCheckpoint = "You reached the final checkpoint!"
)

// Literal sizes used when level data omits them.
const (
	DefaultPlatformWidth    = 200
	DefaultPlatformHeight   = 40
	DefaultCheckpointWidth  = 40
	DefaultCheckpointHeight = 70
	DefaultActorSize        = 40
	DefaultSpawnX           = 10
	DefaultSpawnY           = 400
)

// ControlScheme selects how held keys move the view.
type ControlScheme int

const (
	// ScrollCamera pins the actor at the thresholds and scrolls the world.
	ScrollCamera ControlScheme = iota
	// FixedCamera never moves the world; the actor stops at the thresholds.
	FixedCamera
)

// String returns the level-file name of the scheme.
func (s ControlScheme) String() string {
	switch s {
	case ScrollCamera:
		return "scroll"
	case FixedCamera:
		return "fixed"
	default:
		return "unknown"
	}
}

// ParseControlScheme parses a level-file scheme name. Empty means scroll.
func ParseControlScheme(s string) (ControlScheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "scroll":
		return ScrollCamera, nil
	case "fixed":
		return FixedCamera, nil
	default:
		return 0, &ValidationError{Code: "INVALID_SCHEME", Message: fmt.Sprintf("unknown control scheme %q", s)}
	}
}

// PlatformSpec is a platform as written in level data, before sizing.
type PlatformSpec struct {
	X, Y float64
	W, H float64 // Zero means the default size
}

// CheckpointSpec is a checkpoint as written in level data, before sizing.
type CheckpointSpec struct {
	X, Y    float64
	W, H    float64 // Zero means the default size
	Order   int
	Message string // Empty means the default message
}

// SpawnSpec places the actor at start and after a reset.
type SpawnSpec struct {
	X, Y float64
	Size float64 // Zero means DefaultActorSize
}

// LevelDefinition parameterizes one simulation: its geometry, its control
// scheme and its palette.
type LevelDefinition struct {
	ID            string
	Name          string
	Scheme        ControlScheme
	PlatformColor string
	Spawn         SpawnSpec
	Platforms     []PlatformSpec
	Checkpoints   []CheckpointSpec
}

// ValidationError describes malformed level data.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks the level for precondition violations. It is called before
// any simulation is built so the tick loop never sees malformed data.
func (l LevelDefinition) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return &ValidationError{Code: "MISSING_ID", Message: "level has no id"}
	}
	if l.Scheme != ScrollCamera && l.Scheme != FixedCamera {
		return &ValidationError{Code: "INVALID_SCHEME", Message: fmt.Sprintf("level %s: unknown control scheme %d", l.ID, l.Scheme)}
	}
	if l.PlatformColor != "" {
		if _, err := colorful.Hex(l.PlatformColor); err != nil {
			return &ValidationError{Code: "INVALID_COLOR", Message: fmt.Sprintf("level %s: platform color %q is not #rrggbb", l.ID, l.PlatformColor)}
		}
	}
	if !finite(l.Spawn.X, l.Spawn.Y, l.Spawn.Size) {
		return &ValidationError{Code: "INVALID_NUMBER", Message: fmt.Sprintf("level %s: spawn is not finite", l.ID)}
	}
	if l.Spawn.Size < 0 {
		return &ValidationError{Code: "INVALID_SIZE", Message: fmt.Sprintf("level %s: negative actor size", l.ID)}
	}

	for i, p := range l.Platforms {
		if !finite(p.X, p.Y, p.W, p.H) {
			return &ValidationError{Code: "INVALID_NUMBER", Message: fmt.Sprintf("level %s: platform %d is not finite", l.ID, i)}
		}
		if p.W < 0 || p.H < 0 {
			return &ValidationError{Code: "INVALID_SIZE", Message: fmt.Sprintf("level %s: platform %d has negative size", l.ID, i)}
		}
	}

	actor := orDefault(l.Spawn.Size, DefaultActorSize)
	seen := make(map[int]bool, len(l.Checkpoints))
	for i, c := range l.Checkpoints {
		if !finite(c.X, c.Y, c.W, c.H) {
			return &ValidationError{Code: "INVALID_NUMBER", Message: fmt.Sprintf("level %s: checkpoint %d is not finite", l.ID, i)}
		}
		if c.W < 0 || c.H < 0 {
			return &ValidationError{Code: "INVALID_SIZE", Message: fmt.Sprintf("level %s: checkpoint %d has negative size", l.ID, i)}
		}
		// The actor must fit vertically inside the trigger volume.
		if h := orDefault(c.H, DefaultCheckpointHeight); h < actor {
			return &ValidationError{Code: "INVALID_SIZE", Message: fmt.Sprintf("level %s: checkpoint %d is %v tall, shorter than the %v actor", l.ID, i, h, actor)}
		}
		if c.Order < 1 {
			return &ValidationError{Code: "INVALID_ORDER", Message: fmt.Sprintf("level %s: checkpoint %d has order %d, expected >= 1", l.ID, i, c.Order)}
		}
		if seen[c.Order] {
			return &ValidationError{Code: "DUPLICATE_ORDER", Message: fmt.Sprintf("level %s: checkpoint order %d used twice", l.ID, c.Order)}
		}
		seen[c.Order] = true
	}
	for o := 1; o <= len(l.Checkpoints); o++ {
		if !seen[o] {
			return &ValidationError{Code: "INVALID_ORDER", Message: fmt.Sprintf("level %s: checkpoint order %d is missing", l.ID, o)}
		}
	}
	return nil
}

// sortedCheckpoints returns the checkpoints in ascending order.
func (l LevelDefinition) sortedCheckpoints() []CheckpointSpec {
	out := make([]CheckpointSpec, len(l.Checkpoints))
	copy(out, l.Checkpoints)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// finite reports whether every value is a real number.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
