package platformer

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func newTestGame(t *testing.T, level LevelDefinition) *Game {
	t.Helper()
	g, err := NewGame(level, DefaultParams())
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	g.Reset(core.DefaultConfig())
	return g
}

func frame(events ...core.KeyEvent) core.InputFrame {
	return core.InputFrame{Events: events}
}

func TestGameWaitsForStart(t *testing.T) {
	g := newTestGame(t, LevelDefinition{ID: "g"})
	spawn := g.Simulation().Actor().Pos

	res := g.Step(frame(core.KeyEvent{Action: core.ActionRight, Pressed: true}))
	if res.State.Started {
		t.Fatal("game started without a start action")
	}
	if g.Simulation().Actor().Pos != spawn || g.Simulation().Input().Right {
		t.Error("keys were applied before start")
	}

	res = g.Step(frame(core.KeyEvent{Action: core.ActionStart, Pressed: true}))
	if !res.State.Started {
		t.Fatal("start action did not start the game")
	}
	if len(res.Events) != 1 {
		t.Fatalf("expected GameStarted, got %v", res.Events)
	}
	if _, ok := res.Events[0].(GameStarted); !ok {
		t.Errorf("expected GameStarted, got %T", res.Events[0])
	}
}

func TestGameForwardsKeys(t *testing.T) {
	g := newTestGame(t, LevelDefinition{ID: "g"})
	g.Step(frame(core.KeyEvent{Action: core.ActionStart, Pressed: true}))

	g.Step(frame(core.KeyEvent{Action: core.ActionRight, Pressed: true}))
	if !g.Simulation().Input().Right {
		t.Fatal("right press not forwarded")
	}

	g.Step(frame(core.KeyEvent{Action: core.ActionRight, Pressed: false}))
	if g.Simulation().Input().Right {
		t.Error("right release not forwarded")
	}

	vy := g.Simulation().Actor().Vel.Y
	g.Step(frame(core.KeyEvent{Action: core.ActionJump, Pressed: true}))
	if got := g.Simulation().Actor().Vel.Y; got >= vy {
		t.Errorf("jump did not push the actor up: vy %v -> %v", vy, got)
	}
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(t, LevelDefinition{ID: "g"})
	g.Step(frame(core.KeyEvent{Action: core.ActionStart, Pressed: true}))
	for i := 0; i < 30; i++ {
		g.Step(core.InputFrame{})
	}

	res := g.Step(frame(core.KeyEvent{Action: core.ActionRestart, Pressed: true}))

	if len(res.Events) != 1 {
		t.Fatalf("expected GameReset, got %v", res.Events)
	}
	if _, ok := res.Events[0].(GameReset); !ok {
		t.Errorf("expected GameReset, got %T", res.Events[0])
	}
	if res.State.Ticks != 1 {
		t.Errorf("ticks = %d, expected 1 after restart", res.State.Ticks)
	}
	if !res.State.Started {
		t.Error("restart should keep the run started")
	}
}

func TestGameRender(t *testing.T) {
	level := LevelDefinition{
		ID:          "render",
		Name:        "Render Test",
		Platforms:   []PlatformSpec{{X: 100, Y: 300}},
		Checkpoints: []CheckpointSpec{{X: 600, Y: 80, Order: 1}},
	}
	g := newTestGame(t, level)
	cfg := core.DefaultConfig()
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)

	g.Render(screen)

	counts := make(map[core.Color]int)
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if c := screen.GetCell(x, y); c.Rune == core.BlockChar {
				counts[c.Color]++
			}
		}
	}
	for _, color := range []string{ColorActor, ColorPlatform, ColorCheckpoint} {
		if counts[core.Color(color)] == 0 {
			t.Errorf("nothing drawn in %s", color)
		}
	}

	var hud strings.Builder
	for x := 0; x < screen.Width(); x++ {
		hud.WriteRune(screen.GetCell(x, 0).Rune)
	}
	row := hud.String()
	for _, want := range []string{"Checkpoints: 0/1", "Render Test"} {
		if !strings.Contains(row, want) {
			t.Errorf("HUD row %q missing %q", row, want)
		}
	}
}

func TestGameState(t *testing.T) {
	g := newTestGame(t, LevelDefinition{ID: "s", Checkpoints: []CheckpointSpec{{X: 500, Y: 80, Order: 1}, {X: 900, Y: 80, Order: 2}}})

	st := g.State()
	if st.Started || st.Finished || st.Claimed != 0 || st.Total != 2 {
		t.Errorf("unexpected initial state %+v", st)
	}
}
