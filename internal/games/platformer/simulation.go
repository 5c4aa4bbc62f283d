// Package platformer implements the side-scrolling platformer simulation:
// an actor under gravity, static platforms, scrolling and checkpoints.
// It is pure logic; drivers supply key events and a Renderer.
package platformer

import "fmt"

// Simulation owns one run of a level. It is not safe for concurrent use;
// drivers call every method from a single goroutine.
type Simulation struct {
	level  LevelDefinition
	params Params
	geom   Geometry

	world World
	input InputState

	thresholdLeft  float64
	thresholdRight float64

	started   bool
	ticks     int
	listeners []Listener
}

// New validates the level and builds a simulation for the geometry.
// The run does not advance until Start is called.
func New(level LevelDefinition, params Params, geom Geometry) (*Simulation, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}
	if geom.CanvasW <= 0 || geom.CanvasH <= 0 {
		return nil, fmt.Errorf("platformer: invalid canvas %vx%v", geom.CanvasW, geom.CanvasH)
	}
	return newSimulation(level, params, geom), nil
}

// newSimulation builds from an already validated level.
func newSimulation(level LevelDefinition, params Params, geom Geometry) *Simulation {
	if geom.ViewportH <= 0 {
		geom.ViewportH = geom.CanvasH
	}
	if params.ProportionalBase <= 0 {
		params.ProportionalBase = DefaultParams().ProportionalBase
	}
	sc := scaler{viewportH: geom.ViewportH, base: params.ProportionalBase}

	s := &Simulation{
		level:          level,
		params:         params,
		geom:           geom,
		thresholdLeft:  sc.size(params.ThresholdLeft),
		thresholdRight: sc.size(params.ThresholdRight),
	}
	s.world = buildWorld(level, geom, params.ProportionalBase)
	return s
}

// Subscribe registers a listener for every event the simulation emits.
func (s *Simulation) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Simulation) emit(events []Event) []Event {
	for _, e := range events {
		for _, l := range s.listeners {
			l(e)
		}
	}
	return events
}

// Start begins the run. Calling it again has no effect.
func (s *Simulation) Start() []Event {
	if s.started {
		return nil
	}
	s.started = true
	return s.emit([]Event{GameStarted{}})
}

// Reset rebuilds the world from the level data, returns the actor to its
// spawn point and releases all keys. A started run stays started.
func (s *Simulation) Reset() []Event {
	s.world = buildWorld(s.level, s.geom, s.params.ProportionalBase)
	s.input = InputState{}
	s.ticks = 0
	return s.emit([]Event{GameReset{}})
}

// Tick advances the run by one frame and returns the events it produced.
//
// The frame draws the level and the actor at their pre-step positions,
// integrates the actor, maps held keys to velocity (scrolling the world at
// the thresholds), resolves platform collisions, keeps the actor above the
// floor, then tests checkpoints.
func (s *Simulation) Tick(r Renderer) []Event {
	if !s.started {
		return nil
	}
	if r == nil {
		r = Discard
	}
	s.ticks++

	s.world.draw(r)
	s.world.Actor.Integrate(r, s.geom, s.params.Gravity)
	s.applyIntent()
	resolveCollisions(&s.world.Actor, s.world.Bodies, s.params.Gravity)
	s.world.Actor.enforceFloor(s.geom.CanvasH)

	return s.emit(s.world.triggerCheckpoints())
}

// Draw renders the current state without advancing it.
func (s *Simulation) Draw(r Renderer) {
	s.world.draw(r)
	a := &s.world.Actor
	r.DrawRect(a.Pos.X, a.Pos.Y, a.W, a.H, ColorActor)
}

// Actor returns a copy of the actor.
func (s *Simulation) Actor() Actor {
	return s.world.Actor
}

// Bodies returns a copy of the platforms.
func (s *Simulation) Bodies() []StaticBody {
	out := make([]StaticBody, len(s.world.Bodies))
	copy(out, s.world.Bodies)
	return out
}

// Checkpoints returns a copy of the checkpoints in ascending order.
func (s *Simulation) Checkpoints() []Checkpoint {
	out := make([]Checkpoint, len(s.world.Checkpoints))
	copy(out, s.world.Checkpoints)
	return out
}

// Input returns the held key state.
func (s *Simulation) Input() InputState {
	return s.input
}

// Active reports whether collision detection, scrolling and input are live.
func (s *Simulation) Active() bool {
	return s.world.Active
}

// Started reports whether Start has been called.
func (s *Simulation) Started() bool {
	return s.started
}

// Ticks returns the number of frames since start or the last reset.
func (s *Simulation) Ticks() int {
	return s.ticks
}

// Level returns the level this simulation runs.
func (s *Simulation) Level() LevelDefinition {
	return s.level
}

// Geometry returns the canvas the simulation runs on.
func (s *Simulation) Geometry() Geometry {
	return s.geom
}
