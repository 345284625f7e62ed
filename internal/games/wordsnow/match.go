package wordsnow

import (
	"math"

	"github.com/vovakirdan/wordsnow/internal/config"
)

// MatchEngine tests letters against open gaps and commits snaps.
type MatchEngine struct {
	margin    float64 // Inward horizontal margin in world units
	tolerance float64 // Vertical tolerance as a fraction of gap height
}

// NewMatchEngine derives the snap thresholds from configuration.
func NewMatchEngine(cfg config.MatchConfig, letterSize float64) MatchEngine {
	return MatchEngine{
		margin:    cfg.MarginRatio * letterSize,
		tolerance: cfg.ToleranceRatio,
	}
}

// Find returns the index of the first unfilled gap, in gap order, that
// letter l currently satisfies, or -1. Gaps without a box are skipped.
func (m MatchEngine) Find(l *FallingLetter, r *Round) int {
	if r == nil || l.Locked {
		return -1
	}
	for i := range r.Gaps {
		g := &r.Gaps[i]
		if g.Filled || !g.HasBox || g.Char != l.Char {
			continue
		}
		insideX := l.Pos.X > g.Box.X+m.margin && l.Pos.X < g.Box.Right()-m.margin
		nearY := math.Abs(g.Box.Center().Y-l.Pos.Y) < g.Box.H*m.tolerance
		if insideX && nearY {
			return i
		}
	}
	return -1
}

// Commit snaps l into gap i: the letter locks at the gap center with zero
// velocity and the gap is filled. It returns false if the gap was already
// filled, leaving both untouched.
func (m MatchEngine) Commit(l *FallingLetter, r *Round, i int) bool {
	if !r.fill(i) {
		return false
	}
	l.Locked = true
	l.Held = false
	l.Gap = i
	l.Pos = r.Gaps[i].Box.Center()
	l.Vel.X, l.Vel.Y = 0, 0
	return true
}

// TrySnap runs Find and Commit for one letter.
func (m MatchEngine) TrySnap(l *FallingLetter, r *Round) bool {
	i := m.Find(l, r)
	if i < 0 {
		return false
	}
	return m.Commit(l, r, i)
}

// Run snap-tests every free-moving letter of the pool against the round.
// It returns the number of commits and whether this pass completed the
// round. Completion is reported only on the pass that fills the last gap.
func (m MatchEngine) Run(p *Pool, r *Round) (snapped int, completed bool) {
	if r == nil || r.Won() {
		return 0, false
	}
	for _, l := range p.Letters() {
		if l.Held {
			continue
		}
		if m.TrySnap(l, r) {
			snapped++
			if r.Won() {
				return snapped, true
			}
		}
	}
	return snapped, false
}
