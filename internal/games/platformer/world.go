package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// StaticBody is an immovable platform. Only Pos.X changes, when the world scrolls.
type StaticBody struct {
	Pos core.Vec2
	W   float64
	H   float64
}

// Box returns the platform's bounding box.
func (b StaticBody) Box() core.Box {
	return core.NewBox(b.Pos.X, b.Pos.Y, b.W, b.H)
}

// Checkpoint is a trigger volume claimable exactly once.
type Checkpoint struct {
	Pos     core.Vec2
	W       float64
	H       float64
	Claimed bool
	Order   int
	Message string
}

// Box returns the checkpoint's bounding box.
func (c Checkpoint) Box() core.Box {
	return core.NewBox(c.Pos.X, c.Pos.Y, c.W, c.H)
}

// claim marks the checkpoint and retires this instance out of play.
func (c *Checkpoint) claim() {
	c.W = 0
	c.H = 0
	c.Pos.Y = math.Inf(1)
	c.Claimed = true
}

// World owns the actor and the level geometry.
type World struct {
	Actor       Actor
	Bodies      []StaticBody
	Checkpoints []Checkpoint // Ascending Order

	// Active gates scrolling, checkpoint triggers and key input. It is
	// cleared when the final checkpoint is claimed.
	Active bool

	geom          Geometry
	scheme        ControlScheme
	platformColor string
}

// buildWorld sizes the level data for the geometry. The level must be valid.
func buildWorld(l LevelDefinition, g Geometry, base float64) World {
	sc := scaler{viewportH: g.ViewportH, base: base}

	size := sc.size(orDefault(l.Spawn.Size, DefaultActorSize))
	spawn := core.Vec2{
		X: sc.size(orDefault(l.Spawn.X, DefaultSpawnX)),
		Y: sc.size(orDefault(l.Spawn.Y, DefaultSpawnY)),
	}

	w := World{
		Actor:         newActor(spawn, size, size),
		Bodies:        make([]StaticBody, 0, len(l.Platforms)),
		Checkpoints:   make([]Checkpoint, 0, len(l.Checkpoints)),
		Active:        true,
		geom:          g,
		scheme:        l.Scheme,
		platformColor: l.PlatformColor,
	}
	if w.platformColor == "" {
		w.platformColor = ColorPlatform
	}

	// Platform width and all x positions are literal; the rest scales.
	for _, p := range l.Platforms {
		w.Bodies = append(w.Bodies, StaticBody{
			Pos: core.Vec2{X: p.X, Y: sc.size(p.Y)},
			W:   orDefault(p.W, DefaultPlatformWidth),
			H:   sc.size(orDefault(p.H, DefaultPlatformHeight)),
		})
	}

	specs := l.sortedCheckpoints()
	for i, c := range specs {
		msg := c.Message
		if msg == "" {
			msg = MessageCheckpoint
			if i == len(specs)-1 {
				msg = MessageFinalCheckpoint
			}
		}
		w.Checkpoints = append(w.Checkpoints, Checkpoint{
			Pos:     core.Vec2{X: c.X, Y: sc.size(c.Y)},
			W:       sc.size(orDefault(c.W, DefaultCheckpointWidth)),
			H:       sc.size(orDefault(c.H, DefaultCheckpointHeight)),
			Order:   c.Order,
			Message: msg,
		})
	}
	return w
}

// scroll translates every platform and checkpoint by dx in the same tick.
func (w *World) scroll(dx float64) {
	for i := range w.Bodies {
		w.Bodies[i].Pos.X += dx
	}
	for i := range w.Checkpoints {
		w.Checkpoints[i].Pos.X += dx
	}
}

// draw emits one DrawRect per visible platform and checkpoint.
func (w *World) draw(r Renderer) {
	for _, b := range w.Bodies {
		r.DrawRect(b.Pos.X, b.Pos.Y, b.W, b.H, w.platformColor)
	}
	for _, c := range w.Checkpoints {
		if c.Claimed {
			continue
		}
		r.DrawRect(c.Pos.X, c.Pos.Y, c.W, c.H, ColorCheckpoint)
	}
}
