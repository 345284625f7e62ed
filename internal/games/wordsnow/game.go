// Package wordsnow implements the falling-letters spelling game: letters
// fall toward a row of gaps spelling a target word, and the player pushes
// or drags them into place. The package holds pure game logic; input
// mapping, timing and terminal output live in the platform layer.
package wordsnow

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordsnow/internal/config"
	"github.com/vovakirdan/wordsnow/internal/core"
	"github.com/vovakirdan/wordsnow/internal/words"
)

// Game adapts a Session to the fixed-tick platform loop.
type Game struct {
	cfg      *config.GameConfig
	catalog  *words.Catalog
	logger   *log.Logger
	category string

	session *Session
	rt      core.RuntimeConfig
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger handed to every session.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithCategory sets the category the first round is drawn from.
func WithCategory(name string) Option {
	return func(g *Game) {
		g.category = name
	}
}

// New creates a game over a validated configuration and a sanitized
// catalog.
func New(cfg *config.GameConfig, catalog *words.Catalog, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		cfg:     cfg,
		catalog: catalog,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.category != "" && !catalog.Has(g.category) {
		return nil, fmt.Errorf("%w: %q", words.ErrUnknownCategory, g.category)
	}
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "wordsnow"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Words Snow"
}

// Reset starts a fresh session sized to the runtime screen.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	s, err := NewSession(g.cfg, g.catalog, SessionOptions{
		Logger: g.logger,
		Layout: RowLayout(g.cfg.Layout),
		Seed:   rt.Seed,
	})
	if err != nil {
		g.logger.Error("cannot create session", "err", err)
		g.session = nil
		return
	}
	s.Resize(float64(rt.ScreenW), float64(rt.ScreenH))
	if err := s.Start(g.category); err != nil {
		g.logger.Warn("cannot start category", "category", g.category, "err", err)
		_ = s.Start("")
	}
	g.session = s
}

// Resize changes the screen size without resetting the round.
func (g *Game) Resize(w, h int) {
	g.rt.ScreenW = w
	g.rt.ScreenH = h
	if g.session != nil {
		g.session.Resize(float64(w), float64(h))
	}
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	rate := g.rt.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return g.StepDelta(time.Second/time.Duration(rate), in)
}

// StepDelta advances the simulation by the real time elapsed since the
// previous frame. The session caps the delta.
func (g *Game) StepDelta(elapsed time.Duration, in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}
	rep := g.session.Step(elapsed, in)
	return core.StepResult{
		State:    g.State(),
		Snapped:  rep.Snapped,
		RoundWon: rep.Completed,
		Advanced: rep.Advanced,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	if s == nil {
		return core.GameState{Unplayable: true}
	}
	st := core.GameState{
		Category:   s.Category(),
		Profile:    s.Profile().Title,
		Paused:     s.Paused(),
		Unplayable: s.Unplayable() != nil,
	}
	if r := s.Round(); r != nil {
		st.Word = r.Word
		st.Filled = r.Filled()
		st.Gaps = r.Len()
		st.Won = r.Won()
	}
	return st
}

// Session returns the running session, or nil before Reset.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot returns the session snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{State: StateUnplayable}
	}
	return g.session.Snapshot()
}
