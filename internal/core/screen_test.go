package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	if strings.Trim(s.String(), " \n") != "" {
		t.Error("new screen should contain only spaces")
	}
}

func TestScreenCellsAndBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(1, 1, 'Á', ColorBrightGreen)
	if cell := s.GetCell(1, 1); cell.Rune != 'Á' || cell.Color != ColorBrightGreen {
		t.Errorf("GetCell(1, 1) = %+v, expected bright green 'Á'", cell)
	}

	// Letters above the top edge or past the walls are simply not drawn
	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 10}} {
		s.SetColored(p[0], p[1], 'X', ColorRed)
		if s.Get(p[0], p[1]) != ' ' || s.GetCell(p[0], p[1]).Color != ColorDefault {
			t.Errorf("out of bounds cell %v should read blank", p)
		}
	}

	s.Clear()
	if s.GetCell(1, 1) != blankCell {
		t.Error("Clear should reset cells to blank")
	}
}

func TestScreenDrawTextClipsAndCountsRunes(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ÁRBOL", ColorWhite)

	// One rune per cell regardless of UTF-8 length
	if s.Row(0)[:len("ÁRBOL")] != "ÁRBOL" || s.Get(4, 0) != 'L' {
		t.Errorf("multibyte text misplaced: %q", s.Row(0))
	}

	s.DrawTextColored(8, 1, "ÑANDÚ", ColorWhite)
	if s.Get(8, 1) != 'Ñ' || s.Get(9, 1) != 'A' {
		t.Errorf("clipped text misplaced: %q", s.Row(1))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "★ SOL ★", ColorSky)

	x := (20 - 7) / 2
	if s.Get(x, 2) != '★' || s.Get(x+2, 2) != 'S' {
		t.Errorf("DrawTextCentered misplaced text, row = %q", s.Row(2))
	}
	if s.GetCell(x+2, 2).Color != ColorSky {
		t.Error("DrawTextCentered should apply the color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	// A 3x3 gap box
	s.DrawBox(2, 3, 3, 3, ColorGray)

	want := []string{"┌─┐", "│ │", "└─┘"}
	for i, line := range want {
		if got := []rune(s.Row(3 + i))[2:5]; string(got) != line {
			t.Errorf("row %d = %q, expected %q", 3+i, string(got), line)
		}
	}
	if s.GetCell(2, 3).Color != ColorGray {
		t.Error("DrawBox should apply the color")
	}

	// Degenerate boxes draw nothing
	empty := NewScreen(4, 4)
	empty.DrawBox(0, 0, 1, 3, ColorGray)
	if empty.Get(0, 0) != ' ' {
		t.Error("1-wide box should not be drawn")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawHLine(0, 2, 100, '▁', ColorDim)

	if s.Row(2) != "▁▁▁▁▁▁" {
		t.Errorf("ground line = %q", s.Row(2))
	}
	if s.GetCell(5, 2).Color != ColorDim {
		t.Error("DrawHLine should apply the color")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawTextColored(0, 0, "SOL", ColorDefault)
	s.DrawTextColored(1, 2, "é", ColorDefault)

	if got, want := s.String(), "SOL\n   \n é "; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
	if s.Row(-1) != "   " {
		t.Errorf("out of bounds row should be spaces, got %q", s.Row(-1))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hola", ColorGreen)
	s.DrawTextColored(0, 5, "Mundo", ColorGreen)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hola") || s.GetCell(0, 0).Color != ColorGreen {
		t.Errorf("top-left content should survive shrinking, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hola") {
		t.Errorf("content should survive enlarging, row 0 = %q", s.Row(0))
	}
	if strings.TrimSpace(s.Row(5)) != "" {
		t.Error("rows cut by the shrink should come back blank")
	}

	// Negative sizes clamp to zero instead of panicking
	s.Resize(-3, -3)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative resize should clamp to 0x0, got %dx%d", s.Width(), s.Height())
	}
}
