package wordsnow

import (
	"time"

	"github.com/vovakirdan/wordsnow/internal/config"
	"github.com/vovakirdan/wordsnow/internal/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying    GameStateType = "playing"
	StateWon        GameStateType = "won"
	StatePaused     GameStateType = "paused"
	StateUnplayable GameStateType = "unplayable"
)

// LetterView is a read-only copy of one falling letter.
type LetterView struct {
	ID     int
	Char   rune
	Pos    core.Vec2
	Angle  float64
	Locked bool
	Held   bool
}

// GapView is a read-only copy of one gap.
type GapView struct {
	Char   rune
	Box    core.Rect
	HasBox bool
	Filled bool
}

// Snapshot captures the game state for rendering and determinism testing.
type Snapshot struct {
	Frame    uint64
	Elapsed  time.Duration
	RoundID  uint64
	Category string
	Word     string
	Profile  string
	Mode     config.InteractionMode
	Gaps     []GapView
	Letters  []LetterView
	Filled   int
	WinFlash float64
	Pending  bool // Deferred advance scheduled for this round
	State    GameStateType
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case s.unplayable != nil:
		state = StateUnplayable
	case s.paused:
		state = StatePaused
	case s.round != nil && s.round.Won():
		state = StateWon
	}

	snap := Snapshot{
		Frame:    s.clock.Frames(),
		Elapsed:  s.clock.Now(),
		Category: s.queue.Active(),
		Profile:  s.profile.Name,
		Mode:     s.input.Mode(),
		WinFlash: s.winFlash,
		Pending:  s.AdvancePending(),
		State:    state,
	}

	if r := s.round; r != nil {
		snap.RoundID = r.ID
		snap.Word = r.Word
		snap.Filled = r.Filled()
		snap.Gaps = make([]GapView, len(r.Gaps))
		for i, g := range r.Gaps {
			snap.Gaps[i] = GapView(g)
		}
	}

	letters := s.pool.Letters()
	snap.Letters = make([]LetterView, len(letters))
	for i, l := range letters {
		snap.Letters[i] = LetterView{
			ID:     l.ID,
			Char:   l.Char,
			Pos:    l.Pos,
			Angle:  l.Angle,
			Locked: l.Locked,
			Held:   l.Held,
		}
	}
	return snap
}
