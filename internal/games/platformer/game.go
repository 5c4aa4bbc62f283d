package platformer

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ColorHUD is the color of the checkpoint counter and title.
const ColorHUD = core.ColorWhite

// State summarizes a run for drivers.
type State struct {
	Started  bool
	Finished bool // The final checkpoint was claimed
	Claimed  int
	Total    int
	Ticks    int
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State  State
	Events []Event
}

// Game wraps a Simulation for frame drivers: it turns input frames into key
// events and renders onto a cell screen.
type Game struct {
	level   LevelDefinition
	params  Params
	runtime core.RuntimeConfig
	sim     *Simulation
}

// NewGame validates the level. Call Reset before the first Step.
func NewGame(level LevelDefinition, params Params) (*Game, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}
	return &Game{level: level, params: params}, nil
}

// ID returns the level identifier.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the level's display name.
func (g *Game) Title() string {
	if g.level.Name != "" {
		return g.level.Name
	}
	return g.level.ID
}

// Reset builds a fresh, not yet started simulation sized for the runtime.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	w, h := runtime.CanvasSize()
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g.sim = newSimulation(g.level, g.params, Geometry{CanvasW: w, CanvasH: h, ViewportH: h})
}

// Simulation exposes the underlying run, mostly for listeners and tests.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Step applies the frame's key events in order, then advances one tick.
func (g *Game) Step(in core.InputFrame) StepResult {
	var events []Event

	for _, e := range in.Events {
		switch e.Action {
		case core.ActionStart:
			if e.Pressed {
				events = append(events, g.sim.Start()...)
			}
		case core.ActionRestart:
			if e.Pressed && g.sim.Started() {
				events = append(events, g.sim.Reset()...)
			}
		default:
			k, ok := KeyForAction(e.Action)
			if !ok || !g.sim.Started() {
				continue
			}
			if e.Pressed {
				g.sim.KeyDown(k)
			} else {
				g.sim.KeyUp(k)
			}
		}
	}

	events = append(events, g.sim.Tick(Discard)...)
	return StepResult{State: g.State(), Events: events}
}

// Render draws the world and the HUD line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	canvas := core.NewCanvas(dst, g.runtime.CellW, g.runtime.CellH)
	g.sim.Draw(canvas)

	st := g.State()
	if st.Total > 0 {
		dst.DrawText(2, 0, fmt.Sprintf(" Checkpoints: %d/%d ", st.Claimed, st.Total), ColorHUD)
	}
	title := fmt.Sprintf(" %s ", g.Title())
	dst.DrawText(dst.Width()-len([]rune(title))-2, 0, title, ColorHUD)
}

// State returns the current run summary.
func (g *Game) State() State {
	return State{
		Started:  g.sim.Started(),
		Finished: !g.sim.Active(),
		Claimed:  g.sim.world.claimedCount(),
		Total:    len(g.sim.world.Checkpoints),
		Ticks:    g.sim.Ticks(),
	}
}
