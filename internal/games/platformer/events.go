package platformer

// Event is a lifecycle notification produced by the simulation.
type Event interface {
	simEvent()
}

// GameStarted is emitted once when the start screen is dismissed.
type GameStarted struct{}

func (GameStarted) simEvent() {}

// GameReset is emitted when the run is restarted from the level data.
type GameReset struct{}

func (GameReset) simEvent() {}

// CheckpointReached is emitted when a checkpoint is claimed.
type CheckpointReached struct {
	Order   int
	Message string
	Final   bool // The run is over and the world is frozen
}

func (CheckpointReached) simEvent() {}

// Listener receives events synchronously on the simulation goroutine.
type Listener func(Event)
