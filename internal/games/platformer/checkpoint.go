package platformer

// checkpointReached tests the actor against one checkpoint's trigger volume.
// The actor must sit fully inside it vertically.
func checkpointReached(a *Actor, c *Checkpoint) bool {
	ab, cb := a.Box(), c.Box()
	return ab.X >= cb.X &&
		ab.Y >= cb.Y &&
		ab.Bottom() <= cb.Bottom() &&
		ab.X-ab.W <= cb.X-cb.W+ab.W*0.9
}

// triggerCheckpoints claims every checkpoint the actor reached this tick, in
// ascending order. A checkpoint is only eligible once its predecessor has
// been claimed. Claiming the last one deactivates the world and stops the actor.
func (w *World) triggerCheckpoints() []Event {
	var events []Event
	for i := range w.Checkpoints {
		if !w.Active {
			break
		}
		c := &w.Checkpoints[i]
		if c.Claimed {
			continue
		}
		if i > 0 && !w.Checkpoints[i-1].Claimed {
			break
		}
		if !checkpointReached(&w.Actor, c) {
			continue
		}

		c.claim()
		final := i == len(w.Checkpoints)-1
		if final {
			w.Active = false
			w.Actor.stop()
		}
		events = append(events, CheckpointReached{
			Order:   c.Order,
			Message: c.Message,
			Final:   final,
		})
	}
	return events
}

// claimedCount returns how many checkpoints have been claimed.
func (w *World) claimedCount() int {
	n := 0
	for _, c := range w.Checkpoints {
		if c.Claimed {
			n++
		}
	}
	return n
}
