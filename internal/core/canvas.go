package core

// BlockChar fills cells covered by a drawn rectangle.
const BlockChar = '█'

// Canvas adapts pixel-space DrawRect calls onto a cell Screen.
// One cell covers CellW x CellH canvas pixels.
type Canvas struct {
	screen *Screen
	cellW  float64
	cellH  float64
}

// NewCanvas wraps a screen with the given pixel size per cell.
func NewCanvas(s *Screen, cellW, cellH float64) *Canvas {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &Canvas{screen: s, cellW: cellW, cellH: cellH}
}

// DrawRect fills every cell touched by the pixel rectangle.
// Empty and off-field rectangles draw nothing.
func (c *Canvas) DrawRect(x, y, w, h float64, color string) {
	b := NewBox(x, y, w, h)
	if b.Empty() {
		return
	}
	c.screen.DrawRect(b.Cells(c.cellW, c.cellH), BlockChar, Color(color))
}
