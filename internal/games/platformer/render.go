package platformer

// Renderer is the draw sink the simulation emits rectangles to.
type Renderer interface {
	DrawRect(x, y, w, h float64, color string)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(x, y, w, h float64, color string)

// DrawRect calls f.
func (f RendererFunc) DrawRect(x, y, w, h float64, color string) {
	f(x, y, w, h, color)
}

// Discard is a Renderer that draws nothing.
var Discard Renderer = RendererFunc(func(_, _, _, _ float64, _ string) {})
