package core

// RuntimeConfig contains configuration passed to the simulation at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters (or pixels for the window driver)
	ScreenH  int // Screen height in characters (or pixels for the window driver)
	TickRate int // Simulation ticks per second (default 60)

	// CellW and CellH give the canvas pixel size of one screen unit. The
	// terminal uses roughly 1:2 cells; the window driver uses 1x1.
	CellW float64
	CellH float64
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		CellW:    10,
		CellH:    20,
	}
}

// CanvasSize returns the simulated canvas dimensions in pixels.
func (c RuntimeConfig) CanvasSize() (w, h float64) {
	cw, ch := c.CellW, c.CellH
	if cw <= 0 {
		cw = 1
	}
	if ch <= 0 {
		ch = 1
	}
	return float64(c.ScreenW) * cw, float64(c.ScreenH) * ch
}
