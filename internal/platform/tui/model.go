package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/BlueyDragon/mdn-breakout-game/internal/core"
	"github.com/BlueyDragon/mdn-breakout-game/internal/games/breakout"
	"github.com/BlueyDragon/mdn-breakout-game/internal/logging"
	"github.com/BlueyDragon/mdn-breakout-game/internal/registry"
)

// Model is the Bubble Tea model for a breakout session.
// Terminals only report key presses, so held directions are emulated with
// a KeyHold renewed by key repeat.
type Model struct {
	opts     registry.Options
	interval time.Duration
	logger   *log.Logger

	game     *breakout.Game
	hold     *core.KeyHold
	renderer *breakout.ScreenRenderer
	style    *lipgloss.Renderer

	keys     KeyMap
	help     help.Model
	games    int  // Sessions started, including the current one
	ticking  bool // A tick is scheduled
	quitting bool
}

// NewModel creates a model and starts the first game.
func NewModel(opts registry.Options, style *lipgloss.Renderer) Model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if style == nil {
		style = lipgloss.DefaultRenderer()
	}

	w, h := opts.Runtime.ScreenW, opts.Runtime.ScreenH
	m := Model{
		opts:     opts,
		interval: opts.Runtime.TickInterval(opts.Config.Loop.Interval()),
		logger:   opts.Logger,
		renderer: breakout.NewScreenRenderer(w, max(h-1, 1)),
		style:    style,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		ticking:  true, // Init schedules the first tick
	}
	m.newGame()
	return m
}

// newGame replaces the current game with a fresh one and draws it.
func (m *Model) newGame() {
	m.games++
	seed := m.opts.Runtime.SessionSeed(m.games)

	input := core.NewInputState()
	m.game = breakout.New(m.opts.Config, input, core.NewRandomColorSource(seed))
	m.hold = core.NewKeyHold(input, m.opts.Config.Input.HoldTicks)

	logger := m.logger
	game := m.games
	m.game.OnGameOver(func(snap breakout.Snapshot) {
		logger.Info("game over", "game", game, "tick", snap.Tick, "bricks_left", len(snap.Bricks))
	})

	m.logger.Info("game started", "game", m.games, "seed", seed)
	m.renderer.Draw(m.game.Snapshot())
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.renderer.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionLeft, core.ActionRight:
		m.hold.Press(action)

	case core.ActionPause:
		m.hold.Release()
		state := m.game.TogglePause()
		m.logger.Debug("pause toggled", "state", state)
		m.renderer.Draw(m.game.Snapshot())

	case core.ActionRestart:
		if m.game.State() != breakout.StateGameOver {
			return m, nil
		}
		m.newGame()
		if !m.ticking {
			m.ticking = true
			return m, tickCmd(m.interval)
		}
	}

	return m, nil
}

// handleTick advances the game one step. Ticking stops at game over and
// resumes on restart.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.game.State() == breakout.StateGameOver {
		m.ticking = false
		return m, nil
	}

	state := m.game.Step()
	m.hold.Tick()
	m.renderer.Draw(m.game.Snapshot())

	if state == breakout.StateGameOver {
		m.ticking = false
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.interval)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}

	dir := filepath.Join(home, ".breakout", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("breakout_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.renderer.Screen().String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.renderer.Screen(), m.style) + "\n" + m.help.View(m.keys)
}

// Game returns the game currently being played.
func (m Model) Game() *breakout.Game {
	return m.game
}

// Frontend runs breakout in the local terminal with Bubble Tea.
type Frontend struct{}

// Name returns the registry name.
func (Frontend) Name() string {
	return "tui"
}

// Description returns a one-line summary.
func (Frontend) Description() string {
	return "Bubble Tea terminal UI with truecolor cells"
}

// Run starts the Bubble Tea program and blocks until the user quits.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	model := NewModel(opts, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func init() {
	registry.Register("tui", func() registry.Frontend {
		return Frontend{}
	})
}
