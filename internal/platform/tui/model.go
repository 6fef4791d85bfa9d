package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-drops/internal/core"
	"github.com/vovakirdan/tui-drops/internal/registry"
	"github.com/vovakirdan/tui-drops/internal/storage"
)

// footerRows is the space below the game screen for the help bar.
const footerRows = 1

// resizer is implemented by games that can follow a terminal resize
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	log    *log.Logger

	keys    KeyMap
	help    help.Model
	palette *Palette
	chain   int64
	hold  *holdTracker
	frame core.InputFrame
	state core.GameState

	width    int
	embedded bool // inside an SSH session; Back returns to the menu
	quitting bool
	back     bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg holds the full terminal size.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	screenCfg := cfg
	screenCfg.ScreenH = core.Max(cfg.ScreenH-footerRows, 0)

	return Model{
		game:   game,
		screen: core.NewScreen(screenCfg.ScreenW, screenCfg.ScreenH),
		store:  store,
		config: screenCfg,
		log:    logger.With("game", game.ID()),
		keys:    DefaultKeyMap(),
		help:    h,
		palette: NewPalette(nil),
		chain:   nextChain(),
		hold:    newHoldTracker(),
		frame:   core.NewInputFrame(),
		width:   cfg.ScreenW,
	}
}

// WithPalette draws with p instead of the process terminal's palette.
func (m Model) WithPalette(p *Palette) Model {
	if p != nil {
		m.palette = p
	}
	return m
}

// WithActions queues actions for the first tick, such as a difficulty
// picked in the menu.
func (m Model) WithActions(actions ...core.Action) Model {
	for _, a := range actions {
		m.frame.Push(a)
	}
	return m
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.chain)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.frame.Push(core.PointerDown(float64(msg.X), float64(msg.Y)))
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.chain != m.chain {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, held := m.keys.Translate(msg)
	if held != core.KeyNone {
		for _, a := range m.hold.press(held, time.Now()) {
			m.frame.Push(a)
		}
		return m, nil
	}

	switch action.Kind {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.state.Phase == "title" || m.state.GameOver || m.state.Paused {
			m.releaseKeys()
			m.back = true
			if !m.embedded {
				return m, tea.Quit
			}
		}
		return m, nil

	case core.ActionPause:
		m.releaseKeys()
	}

	m.frame.Push(action)
	return m, nil
}

// releaseKeys lets go of every held key so movement does not carry over a
// pause, a resize or a return to the menu.
func (m *Model) releaseKeys() {
	for _, a := range m.hold.releaseAll() {
		m.frame.Push(a)
	}
}

// handleResize follows the terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.config.ScreenW = msg.Width
	m.config.ScreenH = core.Max(msg.Height-footerRows, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	m.releaseKeys()

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.state.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick releases expired keys and advances the game one tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, a := range m.hold.expire(now) {
		m.frame.Push(a)
	}

	result := m.game.Step(m.frame)
	m.state = result.State
	if m.state.Result != nil {
		m.saveRun(*m.state.Result)
	}

	m.frame.Clear()
	return m, tickCmd(m.config.TickRate, m.chain)
}

// saveRun records a finished run. Failures are logged and play goes on.
func (m Model) saveRun(r core.RunResult) {
	if m.store == nil {
		return
	}
	run, err := m.store.SaveRun(context.Background(), storage.Run{
		GameID:         m.game.ID(),
		Score:          r.Score,
		CleanCollected: r.CleanCollected,
		BestStreak:     r.BestStreak,
		FactsSeen:      r.FactsSeen,
		Character:      r.Character,
		Difficulty:     r.Difficulty,
		Outcome:        r.Outcome,
	})
	if err != nil {
		m.log.Warn("could not save run", "err", err)
		return
	}
	m.log.Debug("run saved", "id", run.ID, "score", run.Score)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".drops", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("could not create screenshot directory", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("could not save screenshot", "err", err)
	}
}

// View renders the game and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpLine := m.palette.Dim(" " + m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, m.palette.Render(m.screen), helpLine)
}

// IsQuitting reports whether the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run plays one game in the local terminal until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
