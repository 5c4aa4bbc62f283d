package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Actor is the player-controlled rectangle.
type Actor struct {
	Pos core.Vec2
	Vel core.Vec2
	W   float64
	H   float64

	spawn core.Vec2
}

func newActor(spawn core.Vec2, w, h float64) Actor {
	return Actor{Pos: spawn, W: w, H: h, spawn: spawn}
}

// Box returns the actor's bounding box.
func (a *Actor) Box() core.Box {
	return core.NewBox(a.Pos.X, a.Pos.Y, a.W, a.H)
}

// Bottom returns the y-coordinate of the actor's feet.
func (a *Actor) Bottom() float64 {
	return a.Box().Bottom()
}

// reset restores the spawn position and zero velocity.
func (a *Actor) reset() {
	a.Pos = a.spawn
	a.Vel = core.Vec2{}
}

// stop zeroes both velocity components.
func (a *Actor) stop() {
	a.Vel = core.Vec2{}
}

// Integrate draws the actor, moves it by its velocity and applies gravity.
//
// Gravity accumulates only while the next step stays above the floor;
// otherwise vertical velocity is pinned to 0. An actor above the top edge is
// put back at 0 with one tick of downward velocity before accumulation, so it
// leaves the edge at 2*gravity. The horizontal clamp is a hard wall.
func (a *Actor) Integrate(r Renderer, g Geometry, gravity float64) {
	r.DrawRect(a.Pos.X, a.Pos.Y, a.W, a.H, ColorActor)

	a.Pos = a.Pos.Add(a.Vel)

	if a.Pos.Y+a.H+a.Vel.Y <= g.CanvasH {
		if a.Pos.Y < 0 {
			a.Pos.Y = 0
			a.Vel.Y = gravity
		}
		a.Vel.Y += gravity
	} else {
		a.Vel.Y = 0
	}

	if a.Pos.X < a.W {
		a.Pos.X = a.W
	}
	if a.Pos.X >= g.CanvasW-a.W*2 {
		a.Pos.X = g.CanvasW - a.W*2
	}
}

// enforceFloor keeps the actor's feet at or above the floor.
func (a *Actor) enforceFloor(floor float64) {
	if a.Pos.Y+a.H > floor {
		a.Pos.Y = floor - a.H
		a.Vel.Y = 0
	}
}
