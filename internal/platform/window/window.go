// Package window provides the ebiten driver: a real window with pixel
// rendering and true key-down/key-up events.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// Options configures a window run.
type Options struct {
	TickRate int
	Settings config.PlatformerConfig
	Logger   *log.Logger
}

// binding maps physical keys to one action.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

var bindings = []binding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionJump, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace}},
}

var (
	backgroundColor = color.RGBA{0x0a, 0x0a, 0x23, 0xff}
	overlayColor    = color.RGBA{0x1b, 0x1b, 0x32, 0xe0}
	fallbackColor   = color.White
)

// Driver runs one level in a window. It implements ebiten.Game.
type Driver struct {
	sim    *platformer.Simulation
	opts   Options
	logger *log.Logger
	width  int
	height int

	repeatDelay    int // Ticks before a held key starts repeating
	repeatInterval int
	dismissTicks   int

	palette map[string]color.Color

	message      string
	messageTicks int // Remaining ticks; negative keeps the message up
}

// New builds a driver for the level on a canvas of the configured window size.
func New(level platformer.LevelDefinition, opts Options) (*Driver, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := opts.Settings.Window.Width, opts.Settings.Window.Height
	sim, err := platformer.New(level, platformer.ParamsFromConfig(opts.Settings), platformer.Geometry{
		CanvasW:   float64(w),
		CanvasH:   float64(h),
		ViewportH: float64(h),
	})
	if err != nil {
		return nil, err
	}

	d := &Driver{
		sim:            sim,
		opts:           opts,
		logger:         logger,
		width:          w,
		height:         h,
		repeatDelay:    durationTicks(opts.Settings.Terminal.HoldInitial, opts.TickRate),
		repeatInterval: durationTicks(opts.Settings.Terminal.HoldRepeat, opts.TickRate),
		dismissTicks:   durationTicks(opts.Settings.Overlay.CheckpointDismiss, opts.TickRate),
		palette:        make(map[string]color.Color),
		message:        "Press Enter to start",
		messageTicks:   -1,
	}
	sim.Subscribe(d.onEvent)
	return d, nil
}

// durationTicks converts a duration to a whole number of ticks, at least one.
func durationTicks(d time.Duration, tickRate int) int {
	n := int(math.Round(d.Seconds() * float64(tickRate)))
	if n < 1 {
		return 1
	}
	return n
}

// onEvent logs simulation events and updates the message overlay.
func (d *Driver) onEvent(e platformer.Event) {
	level := d.sim.Level().ID
	switch e := e.(type) {
	case platformer.GameStarted:
		d.logger.Info("game started", "level", level, "driver", "window")
		d.message = ""
	case platformer.GameReset:
		d.logger.Info("game reset", "level", level)
		d.message = ""
	case platformer.CheckpointReached:
		d.logger.Info("checkpoint reached", "level", level, "order", e.Order, "final", e.Final)
		d.message = e.Message
		d.messageTicks = d.dismissTicks
		if e.Final {
			d.message += "  Press R to play again"
			d.messageTicks = -1
		}
	}
}

// Update polls the keyboard, then advances the simulation one tick.
func (d *Driver) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		d.sim.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && d.sim.Started() {
		d.sim.Reset()
	}

	if d.sim.Started() {
		d.pollKeys()
	}

	d.sim.Tick(platformer.Discard)

	if d.messageTicks > 0 {
		d.messageTicks--
		if d.messageTicks == 0 {
			d.message = ""
		}
	}
	return nil
}

// pollKeys turns ebiten key state into simulation key events, repeating
// held keys like a browser does.
func (d *Driver) pollKeys() {
	for _, b := range bindings {
		k, _ := platformer.KeyForAction(b.action)
		for _, key := range b.keys {
			if inpututil.IsKeyJustReleased(key) {
				d.sim.KeyUp(k)
			}
			if core.RepeatDue(inpututil.KeyPressDuration(key), d.repeatDelay, d.repeatInterval) {
				d.sim.KeyDown(k)
			}
		}
	}
}

// Draw renders the level, the actor and any message.
func (d *Driver) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	d.sim.Draw(platformer.RendererFunc(func(x, y, w, h float64, c string) {
		d.fillRect(screen, x, y, w, h, d.color(c))
	}))

	claimed, total := 0, 0
	for _, c := range d.sim.Checkpoints() {
		total++
		if c.Claimed {
			claimed++
		}
	}
	if total > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Checkpoints: %d/%d", claimed, total), 8, 8)
	}

	if d.message != "" {
		d.drawMessage(screen, d.message)
	}
}

func (d *Driver) fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	b := core.NewBox(x, y, w, h)
	if b.Empty() {
		return
	}
	vector.FillRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// color resolves a level hex color, caching the parse.
func (d *Driver) color(hex string) color.Color {
	if c, ok := d.palette[hex]; ok {
		return c
	}
	var c color.Color = fallbackColor
	if rgb, err := core.Color(hex).RGB(); err == nil {
		c = rgb
	} else {
		d.logger.Warn("unparseable color", "color", hex)
	}
	d.palette[hex] = c
	return c
}

// drawMessage draws a centered box with one line of debug-font text.
func (d *Driver) drawMessage(dst *ebiten.Image, msg string) {
	const charW, charH, pad = 6, 16, 16

	w := len(msg)*charW + pad*2
	h := charH + pad*2
	x := (d.width - w) / 2
	y := (d.height - h) / 3

	d.fillRect(dst, float64(x), float64(y), float64(w), float64(h), overlayColor)
	ebitenutil.DebugPrintAt(dst, msg, x+pad, y+pad)
}

// Layout keeps the canvas at the configured size; ebiten scales the window.
func (d *Driver) Layout(_, _ int) (int, int) {
	return d.width, d.height
}

// Run opens the window and blocks until it is closed.
func Run(level platformer.LevelDefinition, opts Options) error {
	d, err := New(level, opts)
	if err != nil {
		return err
	}

	title := level.Name
	if title == "" {
		title = level.ID
	}
	ebiten.SetWindowSize(d.width, d.height)
	ebiten.SetWindowTitle("Platformer - " + title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(d.opts.TickRate)

	if err := ebiten.RunGame(d); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
