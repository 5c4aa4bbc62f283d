package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// withinLandingSlack reports whether the actor is horizontally over the body,
// with half an actor width of slack on the left edge and a third on the right.
func withinLandingSlack(a, b core.Box) bool {
	return a.X >= b.X-a.W/2 &&
		a.X <= b.Right()-a.W/3
}

// resolveCollisions runs the two per-body rules in level order.
//
// Rule 1 stops vertical motion when the actor's feet are at or above the
// platform top and the next step would reach it. Rule 2, tried only when rule 1
// did not match that body, fires when the actor overlaps the platform and
// places its top one actor height below the platform top with one tick of
// gravity. The offset is asymmetric on purpose; it is the observed behavior.
// A match on one body does not end the pass: later bodies are still tested
// against the updated actor.
func resolveCollisions(a *Actor, bodies []StaticBody, gravity float64) {
	for _, body := range bodies {
		ab, bb := a.Box(), body.Box()
		if !withinLandingSlack(ab, bb) {
			continue
		}

		bottom := ab.Bottom()
		if bottom <= bb.Y && bottom+a.Vel.Y >= bb.Y {
			a.Vel.Y = 0
			continue
		}

		if bottom >= bb.Y && ab.Y <= bb.Bottom() {
			a.Pos.Y = bb.Y + a.H
			a.Vel.Y = gravity
		}
	}
}
