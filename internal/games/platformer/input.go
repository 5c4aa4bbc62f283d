package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Key identifies a physical key the simulation understands.
type Key string

// Keys understood by the simulation; values match browser key names.
const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeySpace      Key = " "
)

// KeyForAction maps a driver action to the simulation key it stands for.
func KeyForAction(a core.Action) (Key, bool) {
	switch a {
	case core.ActionLeft:
		return KeyArrowLeft, true
	case core.ActionRight:
		return KeyArrowRight, true
	case core.ActionJump:
		return KeyArrowUp, true
	default:
		return "", false
	}
}

// InputState is the held state of the horizontal keys.
type InputState struct {
	Left  bool
	Right bool
}

// KeyDown handles a key-down event, including auto-repeats.
//
// While the world is inactive every key event just stops the actor. Arrow
// keys set the held flag and add a one-off horizontal impulse. The jump key
// subtracts the jump impulse on every key-down, so holding it keeps pushing
// the actor upward while the terminal or OS repeats the key.
func (s *Simulation) KeyDown(k Key) {
	if !s.world.Active {
		s.world.Actor.stop()
		return
	}

	a := &s.world.Actor
	switch k {
	case KeyArrowLeft:
		s.input.Left = true
		a.Vel.X -= s.params.KeyImpulse
	case KeyArrowRight:
		s.input.Right = true
		a.Vel.X += s.params.KeyImpulse
	case KeyArrowUp, KeySpace:
		a.Vel.Y -= s.params.JumpImpulse
	}
}

// KeyUp handles a key-up event.
func (s *Simulation) KeyUp(k Key) {
	if !s.world.Active {
		s.world.Actor.stop()
		return
	}

	switch k {
	case KeyArrowLeft:
		s.input.Left = false
		s.world.Actor.Vel.X = 0
	case KeyArrowRight:
		s.input.Right = false
		s.world.Actor.Vel.X = 0
	}
}

// applyIntent derives horizontal velocity from the held keys and, when the
// actor is pinned at a threshold, scrolls the world instead.
func (s *Simulation) applyIntent() {
	a := &s.world.Actor
	p := s.params

	switch {
	case s.input.Right && a.Pos.X < s.thresholdRight:
		a.Vel.X = p.WalkSpeed
	case s.input.Left && a.Pos.X > s.thresholdLeft:
		a.Vel.X = -p.WalkSpeed
	default:
		a.Vel.X = 0
		if s.world.scheme != ScrollCamera || !s.world.Active {
			return
		}
		if s.input.Right {
			s.world.scroll(-p.ScrollStep)
		} else if s.input.Left {
			s.world.scroll(p.ScrollStep)
		}
	}
}
