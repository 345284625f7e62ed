package wordsnow

import (
	"testing"
	"unicode"

	"github.com/vovakirdan/wordsnow/internal/config"
	"github.com/vovakirdan/wordsnow/internal/core"
	"github.com/vovakirdan/wordsnow/internal/words"
)

var testFolder = words.NewFolder("es")

func TestDecomposeSOL(t *testing.T) {
	gaps := Decompose("sol", testFolder)

	if len(gaps) != 3 {
		t.Fatalf("Expected 3 gaps, got %d", len(gaps))
	}
	for i, want := range []rune{'S', 'O', 'L'} {
		if gaps[i].Char != want {
			t.Errorf("gap %d: expected %q, got %q", i, want, gaps[i].Char)
		}
		if gaps[i].Filled || gaps[i].HasBox {
			t.Errorf("gap %d should start unfilled and without a box", i)
		}
	}
}

func TestDecomposeKeepsAccents(t *testing.T) {
	gaps := Decompose("árbol", testFolder)

	if len(gaps) != 5 {
		t.Fatalf("Expected 5 gaps, got %d", len(gaps))
	}
	if gaps[0].Char != 'Á' {
		t.Errorf("Expected first gap Á, got %q", gaps[0].Char)
	}
}

func TestDecomposeOnlyLetters(t *testing.T) {
	for _, w := range []string{"arco iris", "co-op", "año 2000", "¿qué?", "...", "Ñandú"} {
		gaps := Decompose(w, testFolder)
		if len(gaps) > len([]rune(w)) {
			t.Errorf("%q: more gaps than characters", w)
		}
		for _, g := range gaps {
			if !unicode.IsLetter(g.Char) || unicode.IsLower(g.Char) {
				t.Errorf("%q: unexpected gap char %q", w, g.Char)
			}
		}
	}
}

func TestRoundFillIsMonotonic(t *testing.T) {
	r := NewRound(1, "oso", testFolder)

	if !r.fill(1) {
		t.Fatal("first fill should succeed")
	}
	if r.fill(1) {
		t.Error("second fill of the same gap should be rejected")
	}
	if r.fill(-1) || r.fill(3) {
		t.Error("out of range fill should be rejected")
	}
	if r.Filled() != 1 || r.Remaining() != 2 {
		t.Errorf("Filled=%d Remaining=%d, expected 1 and 2", r.Filled(), r.Remaining())
	}
	if r.Won() {
		t.Error("round should not be won")
	}

	r.fill(0)
	r.fill(2)
	if !r.Won() || r.Filled() != r.Len() {
		t.Error("round should be won once every gap is filled")
	}
}

func TestZeroGapRoundIsWon(t *testing.T) {
	r := NewRound(1, "123", testFolder)
	if r.Len() != 0 || !r.Won() {
		t.Errorf("zero-letter round: Len=%d Won=%v", r.Len(), r.Won())
	}
}

func TestLayoutKeepsFilledState(t *testing.T) {
	r := NewRound(1, "sol", testFolder)
	layout := RowLayout(config.Default().Layout)

	r.Layout(layout(3, 80, 24))
	r.fill(0)
	before := r.Gaps[0].Box

	r.Layout(layout(3, 100, 30))

	if !r.Gaps[0].Filled || r.Filled() != 1 {
		t.Error("relayout must not reset filled state")
	}
	if r.Gaps[0].Box == before {
		t.Error("relayout should move the gap box")
	}
	if r.Gaps[0].Char != 'S' {
		t.Error("relayout must not change gap identity")
	}
}

func TestLayoutMismatch(t *testing.T) {
	r := NewRound(1, "sol", testFolder)
	layout := RowLayout(config.Default().Layout)
	boxes := layout(3, 80, 24)

	r.Layout(boxes[:2])
	if !r.Gaps[0].HasBox || !r.Gaps[1].HasBox || r.Gaps[2].HasBox {
		t.Fatal("only the first two gaps should have boxes")
	}

	m := NewMatchEngine(config.Default().Match, config.Default().Letters.Size)
	l := &FallingLetter{Char: 'L', Pos: boxes[2].Center(), Gap: -1}
	if m.TrySnap(l, r) {
		t.Error("gap without a box must be skipped")
	}

	r.Layout(boxes)
	if !m.TrySnap(l, r) {
		t.Error("gap should accept the letter once the layout is corrected")
	}

	// Extra boxes are ignored
	r.Layout(append(boxes, core.NewRect(0, 0, 3, 3)))
	if r.Len() != 3 {
		t.Error("extra boxes must not add gaps")
	}
}

func TestRowLayout(t *testing.T) {
	layout := RowLayout(config.LayoutConfig{GapWidth: 3, GapHeight: 3, GapSpacing: 1, BottomOffset: 3})

	boxes := layout(3, 80, 24)
	if len(boxes) != 3 {
		t.Fatalf("Expected 3 boxes, got %d", len(boxes))
	}
	for i, want := range []float64{34, 38, 42} {
		if boxes[i].X != want || boxes[i].Y != 18 || boxes[i].W != 3 || boxes[i].H != 3 {
			t.Errorf("box %d = %+v", i, boxes[i])
		}
	}

	// Too wide: spacing drops, then width shrinks
	boxes = layout(10, 20, 24)
	if boxes[0].X != 0 || boxes[0].W != 2 || boxes[9].X != 18 {
		t.Errorf("narrow layout: first=%+v last=%+v", boxes[0], boxes[9])
	}

	if layout(0, 80, 24) != nil {
		t.Error("no gaps should yield no boxes")
	}
}
