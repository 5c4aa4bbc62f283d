package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// helpRows is the terminal height reserved below the playfield.
const helpRows = 1

// Options configures a driver run.
type Options struct {
	Runtime  core.RuntimeConfig
	Settings config.PlatformerConfig
	Logger   *log.Logger
}

// Model is the Bubble Tea model for running one level.
type Model struct {
	game     *platformer.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	settings config.PlatformerConfig
	keys     KeyMap
	help     help.Model
	showHelp bool
	latch    *KeyLatch
	frame    core.InputFrame
	overlay  overlay
	state    platformer.State
	logger   *log.Logger
	now      func() time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *platformer.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:   cfg,
		settings: opts.Settings,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		showHelp: true,
		latch:    NewKeyLatch(opts.Settings.Terminal.HoldInitial, opts.Settings.Terminal.HoldRepeat),
		frame:    core.NewInputFrame(),
		overlay:  overlay{}.next(overlayStart, game.Title(), "Press Enter to start"),
		logger:   logger,
		now:      time.Now,
	}
}

// Init builds the first run and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case dismissMsg:
		if m.overlay.kind == overlayCheckpoint && m.overlay.seq == msg.seq {
			m.overlay = m.overlay.next(overlayNone, "", "")
		}
		return m, nil
	}

	return m, nil
}

// handleKey turns a key press into frame events. Left and right are latched
// so a release is synthesized later; pressing one releases the other.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.showHelp = !m.showHelp

	case core.ActionLeft, core.ActionRight:
		other := core.ActionLeft
		if action == core.ActionLeft {
			other = core.ActionRight
		}
		if m.latch.Release(other) {
			m.frame.Release(other)
		}
		m.latch.Press(action, m.now())
		m.frame.Press(action)

	case core.ActionJump:
		m.frame.Press(action)

	case core.ActionStart, core.ActionRestart:
		// At most one per tick.
		if !m.frame.Has(action) {
			m.frame.Press(action)
		}
	}

	return m, nil
}

// handleResize rebuilds the run for the new canvas. A run in progress
// restarts from the level data without going back to the start screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = core.Max(msg.Height-helpRows, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	w, h := m.config.CanvasSize()
	m.logger.Debug("resized", "cols", msg.Width, "rows", msg.Height, "canvas_w", w, "canvas_h", h)

	started := m.state.Started
	m.game.Reset(m.config)
	m.latch.ReleaseAll()
	m.frame.Clear()
	if started {
		m.frame.Press(core.ActionStart)
	}
	return m, nil
}

// handleTick releases expired keys, steps the game and reacts to its events.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, a := range m.latch.Expire(now) {
		m.frame.Release(a)
	}

	result := m.game.Step(m.frame)
	m.state = result.State
	m.frame.Clear()

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	for _, e := range result.Events {
		if cmd := m.handleEvent(e); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// handleEvent logs a simulation event and updates the overlay.
func (m *Model) handleEvent(e platformer.Event) tea.Cmd {
	switch e := e.(type) {
	case platformer.GameStarted:
		m.logger.Info("game started", "level", m.game.ID())
		m.overlay = m.overlay.next(overlayNone, "", "")

	case platformer.GameReset:
		m.logger.Info("game reset", "level", m.game.ID())
		m.latch.ReleaseAll()
		m.overlay = m.overlay.next(overlayNone, "", "")

	case platformer.CheckpointReached:
		m.logger.Info("checkpoint reached", "level", m.game.ID(), "order", e.Order, "final", e.Final)
		if e.Final {
			m.overlay = m.overlay.next(overlayFinal, e.Message, "Press R to play again")
			return nil
		}
		m.overlay = m.overlay.next(overlayCheckpoint, e.Message, fmt.Sprintf("Checkpoint %d", e.Order))
		return dismissCmd(m.settings.Overlay.CheckpointDismiss, m.overlay.seq)
	}
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.overlay.draw(m.screen)

	out := RenderScreen(m.screen)
	if m.showHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// State returns the last observed run summary.
func (m Model) State() platformer.State {
	return m.state
}

// Run starts the Bubble Tea program for the game and blocks until the
// player quits.
func Run(game *platformer.Game, opts Options) (platformer.State, error) {
	opts.Runtime.ScreenH = core.Max(opts.Runtime.ScreenH-helpRows, 1)
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return platformer.State{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return platformer.State{}, nil
}
