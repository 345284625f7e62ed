package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordsnow/internal/config"
	"github.com/vovakirdan/wordsnow/internal/core"
	"github.com/vovakirdan/wordsnow/internal/games/wordsnow"
	"github.com/vovakirdan/wordsnow/internal/words"
)

// Options configures a play session.
type Options struct {
	Config  *config.GameConfig
	Catalog *words.Catalog
	Logger  *log.Logger

	// Category skips the picker and starts on this category.
	Category string

	Runtime core.RuntimeConfig
}

// SessionModel manages the full play flow: picker -> game -> picker.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	opts      Options
	config    core.RuntimeConfig
	picker    PickerModel
	gameModel *Model
	inGame    bool
	quitting  bool
	err       error
}

// NewSessionModel creates a new session model. When opts.Category is set
// the game starts immediately and the picker is never shown.
func NewSessionModel(opts Options) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	m := SessionModel{
		opts:   opts,
		config: opts.Runtime,
	}
	if opts.Category == "" {
		m.picker = NewPickerModel(opts.Catalog, m.config.ScreenW, m.config.ScreenH, "")
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.opts.Category != "" {
		// Value receiver: the started game lives in the first Update.
		return func() tea.Msg { return startMsg{category: m.opts.Category} }
	}
	return m.picker.Init()
}

// startMsg starts a game on a category.
type startMsg struct {
	category string
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if start, ok := msg.(startMsg); ok {
		return m.startGame(start.category)
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updatePicker(msg)
}

// updatePicker handles updates while the picker is shown.
func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPicker, cmd := m.picker.Update(msg)
	if picker, ok := newPicker.(PickerModel); ok {
		m.picker = picker
	}

	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.picker.Selected(); selected != nil {
		return m.startGame(*selected)
	}

	return m, cmd
}

// startGame creates a game on category and hands control to it.
func (m SessionModel) startGame(category string) (tea.Model, tea.Cmd) {
	game, err := wordsnow.New(m.opts.Config, m.opts.Catalog,
		wordsnow.WithLogger(m.opts.Logger),
		wordsnow.WithCategory(category),
	)
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	rt := m.config
	if m.opts.Runtime.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	gameModel := NewModel(game, rt, m.opts.Category == "")
	m.gameModel = &gameModel
	m.inGame = true

	return m, m.gameModel.Init()
}

// updateGame handles updates while a game is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		current := m.gameModel.Category()
		m.inGame = false
		m.gameModel = nil
		m.picker = NewPickerModel(m.opts.Catalog, m.config.ScreenW, m.config.ScreenH, current)
		return m, m.picker.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}

	return m.picker.View()
}

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for a local play session.
func Run(opts Options) error {
	model := NewSessionModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(SessionModel); ok {
		return m.Err()
	}
	return nil
}
