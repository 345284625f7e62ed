package wordsnow

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordsnow/internal/config"
	"github.com/vovakirdan/wordsnow/internal/core"
	"github.com/vovakirdan/wordsnow/internal/words"
)

// LayoutFunc computes one box per gap for a world of size w x h.
type LayoutFunc func(gaps int, w, h float64) []core.Rect

// commandOrder fixes the order in which commands of one frame apply.
var commandOrder = []core.Action{
	core.ActionPause,
	core.ActionToggleMode,
	core.ActionCycleDifficulty,
	core.ActionNextCategory,
	core.ActionPrevCategory,
	core.ActionResetCategory,
	core.ActionNextWord,
}

// pendingAdvance is the one-shot deferred move to the next word.
type pendingAdvance struct {
	roundID uint64
	due     time.Duration
}

// Report describes what happened during one Session.Step.
type Report struct {
	Snapped   int  // Gap commits this frame
	Completed bool // This frame filled the last gap
	Advanced  bool // A new round started this frame
	Spawned   bool
	Recycled  int
}

// Session owns all mutable game state: the word queue, the current round,
// the letter pool and the pointer controller. It is stepped from a single
// goroutine.
type Session struct {
	cfg    *config.GameConfig
	logger *log.Logger
	folder *words.Folder
	queue  *words.Queue
	pool   *Pool
	match  MatchEngine
	input  *InputController
	clock  *SimulationClock
	layout LayoutFunc

	profile     config.Profile
	round       *Round
	lastRoundID uint64
	pending     *pendingAdvance
	lastSpawn   time.Duration
	winFlash    float64
	paused      bool
	unplayable  error

	width  float64
	height float64
}

// SessionOptions configures optional collaborators of a Session.
type SessionOptions struct {
	Logger *log.Logger
	Layout LayoutFunc
	Seed   int64
}

// NewSession creates a session over a sanitized catalog. The round does
// not start until Start is called.
func NewSession(cfg *config.GameConfig, catalog *words.Catalog, opts SessionOptions) (*Session, error) {
	profile, err := cfg.Profile(cfg.DefaultProfile)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	layout := opts.Layout
	if layout == nil {
		layout = RowLayout(cfg.Layout)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	return &Session{
		cfg:     cfg,
		logger:  logger,
		folder:  words.NewFolder(cfg.Locale),
		queue:   words.NewQueue(catalog, rng),
		pool:    NewPool(cfg.Letters, rng),
		match:   NewMatchEngine(cfg.Match, cfg.Letters.Size),
		input:   NewInputController(cfg.Input, cfg.Letters.Size),
		clock:   NewSimulationClock(MaxFrameDelta),
		layout:  layout,
		profile: profile,
	}, nil
}

// Start selects category (the first one when empty) and begins a round.
func (s *Session) Start(category string) error {
	if category != "" {
		if err := s.queue.Select(category); err != nil {
			return err
		}
	}
	s.logger.Info("session started", "category", s.queue.Active(), "profile", s.profile.Name, "mode", s.input.Mode())
	s.advance("start")
	return nil
}

// Resize updates the world size and re-runs the gap layout. Round state
// and letters in flight are kept.
func (s *Session) Resize(w, h float64) {
	s.width = w
	s.height = h
	s.pool.SetBounds(w, h)
	s.relayout()
}

// Layout assigns gap boxes supplied by an external layout provider.
// Snapped letters follow their gaps.
func (s *Session) Layout(boxes []core.Rect) {
	if s.round == nil {
		return
	}
	s.round.Layout(boxes)
	for _, l := range s.pool.Letters() {
		if l.Locked && l.Gap >= 0 && l.Gap < s.round.Len() && s.round.Gaps[l.Gap].HasBox {
			l.Pos = s.round.Gaps[l.Gap].Box.Center()
		}
	}
}

func (s *Session) relayout() {
	if s.round != nil {
		s.Layout(s.layout(s.round.Len(), s.width, s.height))
	}
}

// Step runs one frame: commands, pointer events, the deferred advance,
// the spawn decision, physics, matching and recycling, in that order.
func (s *Session) Step(elapsed time.Duration, in core.InputFrame) Report {
	var rep Report

	for _, a := range commandOrder {
		if in.Has(a) {
			rep.Advanced = s.apply(a) || rep.Advanced
		}
	}
	if s.paused {
		return rep
	}

	for _, ev := range in.Pointer {
		if l := s.input.Handle(ev, s.pool); l != nil {
			s.dropped(l, &rep)
		}
	}

	dt := s.clock.Advance(elapsed)
	now := s.clock.Now()
	s.winFlash = max(0, s.winFlash-s.cfg.Match.WinFlashDecay)

	if p := s.pending; p != nil && now >= p.due {
		s.pending = nil
		if s.round != nil && s.round.ID == p.roundID {
			s.advance("won")
			rep.Advanced = true
		}
	}

	if s.round != nil && s.round.Len() > 0 &&
		now-s.lastSpawn > time.Duration(s.profile.SpawnIntervalMs)*time.Millisecond {
		s.lastSpawn = now
		if s.pool.Unlocked() < s.pool.Cap(s.round.Remaining()) {
			rep.Spawned = s.pool.Spawn(s.round, s.profile) != nil
		}
	}

	s.pool.Step(dt.Seconds(), s.profile)

	snapped, completed := s.match.Run(s.pool, s.round)
	rep.Snapped += snapped
	if completed {
		s.won()
		rep.Completed = true
	}

	rep.Recycled = s.pool.RecycleFallen(s.profile)
	return rep
}

// dropped snap-tests a letter released by a drag at its drop position.
func (s *Session) dropped(l *FallingLetter, rep *Report) {
	if s.round == nil || s.round.Won() {
		return
	}
	if s.match.TrySnap(l, s.round) {
		rep.Snapped++
		if s.round.Won() {
			s.won()
			rep.Completed = true
		}
	}
}

// apply runs one command and reports whether it started a new round.
func (s *Session) apply(a core.Action) bool {
	switch a {
	case core.ActionPause:
		s.paused = !s.paused
		s.input.Release()
		s.logger.Debug("pause toggled", "paused", s.paused)
	case core.ActionToggleMode:
		s.input.SetMode(s.input.Mode().Toggle())
		s.logger.Info("interaction mode changed", "mode", s.input.Mode())
	case core.ActionCycleDifficulty:
		s.profile = s.cfg.NextProfile(s.profile.Name)
		s.logger.Info("difficulty changed", "profile", s.profile.Name)
	case core.ActionNextCategory, core.ActionPrevCategory:
		delta := 1
		if a == core.ActionPrevCategory {
			delta = -1
		}
		name, err := s.queue.Cycle(delta)
		if err != nil {
			s.logger.Warn("cannot change category", "err", err)
			return false
		}
		s.logger.Info("category changed", "category", name)
		return s.advance("category")
	case core.ActionResetCategory:
		if err := s.queue.Refill(); err != nil && !errors.Is(err, words.ErrEmptyCategory) {
			s.logger.Warn("cannot reset category", "err", err)
		}
		return s.advance("reset")
	case core.ActionNextWord:
		return s.advance("skip")
	}
	return false
}

// SetProfile switches difficulty by name. Letters in flight are kept.
func (s *Session) SetProfile(name string) error {
	p, err := s.cfg.Profile(name)
	if err != nil {
		return err
	}
	s.profile = p
	return nil
}

// SelectCategory makes category active and starts a new round from it.
func (s *Session) SelectCategory(category string) error {
	if err := s.queue.Select(category); err != nil {
		return err
	}
	s.advance("category")
	return nil
}

// advance replaces the current round with the next word of the queue.
// It reports whether a round was started.
func (s *Session) advance(reason string) bool {
	s.pool.Clear()
	s.input.Release()
	s.winFlash = 0

	word, err := s.queue.Next()
	if err != nil {
		s.round = nil
		s.unplayable = err
		s.logger.Warn("no playable word", "category", s.queue.Active(), "err", err)
		return false
	}

	s.unplayable = nil
	s.lastRoundID++
	s.round = NewRound(s.lastRoundID, word, s.folder)
	s.relayout()
	s.logger.Debug("round started", "round", s.round.ID, "word", word, "gaps", s.round.Len(), "reason", reason)

	if s.round.Won() {
		s.won()
	}
	return true
}

// won schedules the deferred advance for the current round.
func (s *Session) won() {
	s.winFlash = 1.0
	s.pending = &pendingAdvance{
		roundID: s.round.ID,
		due:     s.clock.Now() + time.Duration(s.cfg.Match.WinDelayMs)*time.Millisecond,
	}
	s.logger.Info("round won", "round", s.round.ID, "word", s.round.Word)
}

// Round returns the current round, or nil when the session is unplayable.
func (s *Session) Round() *Round {
	return s.round
}

// Pool returns the letter pool.
func (s *Session) Pool() *Pool {
	return s.pool
}

// Category returns the active category.
func (s *Session) Category() string {
	return s.queue.Active()
}

// Categories returns every category name in catalog order.
func (s *Session) Categories() []string {
	return s.queue.Catalog().Categories()
}

// Profile returns the active difficulty profile.
func (s *Session) Profile() config.Profile {
	return s.profile
}

// Mode returns the active interaction mode.
func (s *Session) Mode() config.InteractionMode {
	return s.input.Mode()
}

// Paused reports whether the session is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// WinFlash returns the win highlight intensity in [0, 1].
func (s *Session) WinFlash() float64 {
	return s.winFlash
}

// AdvancePending reports whether a deferred advance for the current round
// is scheduled.
func (s *Session) AdvancePending() bool {
	return s.pending != nil && s.round != nil && s.pending.roundID == s.round.ID
}

// Unplayable returns the reason no round is running, or nil.
func (s *Session) Unplayable() error {
	return s.unplayable
}

// Clock returns the simulation clock.
func (s *Session) Clock() *SimulationClock {
	return s.clock
}
