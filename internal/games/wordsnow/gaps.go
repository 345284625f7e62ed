package wordsnow

import (
	"github.com/vovakirdan/wordsnow/internal/core"
	"github.com/vovakirdan/wordsnow/internal/words"
)

// Gap is a single-letter slot of the target word.
type Gap struct {
	Char   rune      // Expected upper-case letter
	Box    core.Rect // Bounding box from the last layout
	HasBox bool      // False until a layout assigned a box to this gap
	Filled bool      // Set once by the match engine, never cleared
}

// Decompose turns a word into one unfilled gap per retained letter,
// in reading order.
func Decompose(word string, f *words.Folder) []Gap {
	letters := f.Letters(word)
	gaps := make([]Gap, len(letters))
	for i, r := range letters {
		gaps[i] = Gap{Char: r}
	}
	return gaps
}

// Round is the current target word and its gaps.
// A Round is replaced wholesale on advance, skip or reset.
type Round struct {
	ID     uint64
	Word   string
	Gaps   []Gap
	filled int
}

// NewRound decomposes word into a fresh round.
func NewRound(id uint64, word string, f *words.Folder) *Round {
	return &Round{
		ID:   id,
		Word: word,
		Gaps: Decompose(word, f),
	}
}

// Layout assigns bounding boxes to gaps in order. Filled state and gap
// identity are untouched. When the counts differ, the first min(len)
// gaps get boxes and the rest are skipped by the snap test until the
// next layout call.
func (r *Round) Layout(boxes []core.Rect) {
	for i := range r.Gaps {
		if i < len(boxes) {
			r.Gaps[i].Box = boxes[i]
			r.Gaps[i].HasBox = true
		} else {
			r.Gaps[i].Box = core.Rect{}
			r.Gaps[i].HasBox = false
		}
	}
}

// Filled returns the number of filled gaps.
func (r *Round) Filled() int {
	return r.filled
}

// Len returns the number of gaps.
func (r *Round) Len() int {
	return len(r.Gaps)
}

// Remaining returns the number of unfilled gaps.
func (r *Round) Remaining() int {
	return len(r.Gaps) - r.filled
}

// Won reports whether every gap is filled. A round without gaps is won.
func (r *Round) Won() bool {
	return r.filled == len(r.Gaps)
}

// fill marks gap i filled. It returns false if the gap was already filled
// or does not exist, so filled can never be counted twice.
func (r *Round) fill(i int) bool {
	if i < 0 || i >= len(r.Gaps) || r.Gaps[i].Filled {
		return false
	}
	r.Gaps[i].Filled = true
	r.filled++
	return true
}

// needed returns the expected letters of unfilled gaps, one per gap.
func (r *Round) needed() []rune {
	out := make([]rune, 0, r.Remaining())
	for _, g := range r.Gaps {
		if !g.Filled {
			out = append(out, g.Char)
		}
	}
	return out
}

// distinct returns each expected letter once, in first-seen order.
func (r *Round) distinct() []rune {
	seen := make(map[rune]bool, len(r.Gaps))
	out := make([]rune, 0, len(r.Gaps))
	for _, g := range r.Gaps {
		if !seen[g.Char] {
			seen[g.Char] = true
			out = append(out, g.Char)
		}
	}
	return out
}
