package tui

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayStart
	overlayCheckpoint
	overlayFinal
)

// overlay is the message box drawn over the playfield. seq identifies one
// showing so a stale dismiss timer cannot hide a newer message.
type overlay struct {
	kind     overlayKind
	title    string
	subtitle string
	seq      int
}

// next replaces the overlay, advancing the sequence.
func (o overlay) next(kind overlayKind, title, subtitle string) overlay {
	return overlay{kind: kind, title: title, subtitle: subtitle, seq: o.seq + 1}
}

func (o overlay) draw(dst *core.Screen) {
	if o.kind == overlayNone {
		return
	}
	color := core.ColorYellow
	if o.kind == overlayStart {
		color = core.ColorWhite
	}
	drawCenteredMessage(dst, o.title, o.subtitle, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, color core.Color) {
	w := dst.Width()
	h := dst.Height()

	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))

	boxW := core.Clamp(core.Max(titleW, subtitleW)+4, 0, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)

	dst.DrawText(boxX+(boxW-titleW)/2, boxY+1, title, color)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle, core.ColorGray)
}
