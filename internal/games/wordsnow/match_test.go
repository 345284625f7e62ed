package wordsnow

import (
	"testing"

	"github.com/vovakirdan/wordsnow/internal/config"
	"github.com/vovakirdan/wordsnow/internal/core"
)

// newLaidOutRound returns a round with default terminal boxes on 80x24.
func newLaidOutRound(id uint64, word string) *Round {
	r := NewRound(id, word, testFolder)
	r.Layout(RowLayout(config.Default().Layout)(r.Len(), 80, 24))
	return r
}

func newTestMatch() MatchEngine {
	cfg := config.Default()
	return NewMatchEngine(cfg.Match, cfg.Letters.Size)
}

// place spawns a letter and puts it at pos with no velocity.
func place(p *Pool, r *Round, prof config.Profile, ch rune, pos core.Vec2) *FallingLetter {
	l := p.Spawn(r, prof)
	l.Char = ch
	l.Pos = pos
	l.Vel = core.Vec2{}
	return l
}

func TestMatchSOLScenario(t *testing.T) {
	p, prof := newTestPool(t, nil)
	m := newTestMatch()
	r := newLaidOutRound(1, "sol")

	s := place(p, r, prof, 'S', r.Gaps[0].Box.Center())
	snapped, completed := m.Run(p, r)

	if snapped != 1 || completed {
		t.Fatalf("Run() = %d, %v; expected 1, false", snapped, completed)
	}
	if !r.Gaps[0].Filled || r.Gaps[1].Filled || r.Gaps[2].Filled {
		t.Error("only gap 0 should be filled")
	}
	if !s.Locked || s.Gap != 0 || s.Pos != r.Gaps[0].Box.Center() || s.Vel != (core.Vec2{}) {
		t.Errorf("snapped letter state wrong: %+v", s)
	}

	place(p, r, prof, 'O', r.Gaps[1].Box.Center())
	place(p, r, prof, 'L', r.Gaps[2].Box.Center())
	snapped, completed = m.Run(p, r)

	if snapped != 2 || !completed {
		t.Fatalf("Run() = %d, %v; expected 2, true", snapped, completed)
	}
	if r.Filled() != 3 || !r.Won() {
		t.Error("round should be complete after three commits")
	}

	// Completion is reported once
	place(p, r, prof, 'S', r.Gaps[0].Box.Center())
	if snapped, completed = m.Run(p, r); snapped != 0 || completed {
		t.Errorf("won round must not commit or complete again, got %d, %v", snapped, completed)
	}
	if r.Filled() != 3 {
		t.Errorf("filled count changed after completion: %d", r.Filled())
	}
}

func TestMatchThresholds(t *testing.T) {
	m := newTestMatch()
	r := newLaidOutRound(1, "sol")
	box := r.Gaps[0].Box
	center := box.Center()

	tests := []struct {
		name   string
		char   rune
		pos    core.Vec2
		expect bool
	}{
		{"center", 'S', center, true},
		{"inside margin", 'S', core.V(box.X+0.4, center.Y), true},
		{"left edge flicker", 'S', core.V(box.X+0.2, center.Y), false},
		{"right edge flicker", 'S', core.V(box.Right()-0.2, center.Y), false},
		{"within tolerance", 'S', core.V(center.X, center.Y+1.3), true},
		{"above tolerance", 'S', core.V(center.X, center.Y-1.4), false},
		{"wrong letter", 'O', center, false},
		{"lower case never matches", 's', center, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := &FallingLetter{Char: tc.char, Pos: tc.pos, Gap: -1}
			if got := m.Find(l, r) == 0; got != tc.expect {
				t.Errorf("Find() matched=%v, expected %v", got, tc.expect)
			}
		})
	}
}

func TestMatchDuplicateLetters(t *testing.T) {
	p, prof := newTestPool(t, nil)
	m := newTestMatch()
	r := newLaidOutRound(1, "oso")

	first := place(p, r, prof, 'O', r.Gaps[2].Box.Center())
	m.Run(p, r)
	if !first.Locked || first.Gap != 2 {
		t.Fatalf("O over gap 2 should fill gap 2, got gap %d", first.Gap)
	}

	// Same spot again: gap 2 is taken, the letter stays free
	second := place(p, r, prof, 'O', r.Gaps[2].Box.Center())
	if snapped, _ := m.Run(p, r); snapped != 0 || second.Locked {
		t.Error("a filled gap must not accept a second letter")
	}
	if r.Filled() != 1 {
		t.Errorf("Filled() = %d, expected 1", r.Filled())
	}
}

func TestMatchSkipsHeldLetters(t *testing.T) {
	p, prof := newTestPool(t, nil)
	m := newTestMatch()
	r := newLaidOutRound(1, "sol")

	l := place(p, r, prof, 'S', r.Gaps[0].Box.Center())
	l.Held = true
	if snapped, _ := m.Run(p, r); snapped != 0 {
		t.Error("held letters are only snap-tested on release")
	}
}

func TestCommitRejectsFilledGap(t *testing.T) {
	m := newTestMatch()
	r := newLaidOutRound(1, "sol")
	a := &FallingLetter{Char: 'S', Gap: -1}
	b := &FallingLetter{Char: 'S', Gap: -1}

	if !m.Commit(a, r, 0) {
		t.Fatal("first commit should succeed")
	}
	if m.Commit(b, r, 0) {
		t.Error("second commit to the same gap should fail")
	}
	if b.Locked || r.Filled() != 1 {
		t.Error("failed commit must leave letter and round untouched")
	}
}
