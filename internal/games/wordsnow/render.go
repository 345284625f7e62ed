package wordsnow

import (
	"fmt"
	"math"

	"github.com/vovakirdan/wordsnow/internal/core"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	s := g.session
	if s == nil {
		dst.DrawTextCentered(dst.Height()/2, "No session", core.ColorRed)
		return
	}
	snap := s.Snapshot()

	g.renderGround(dst)
	g.renderGaps(dst, snap)
	g.renderLetters(dst, snap)
	g.renderHUD(dst, snap)
	g.renderOverlays(dst, snap)
}

// renderHUD draws category, difficulty, mode and progress.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	left := fmt.Sprintf(" %s  ·  %s", snap.Category, g.session.Profile().Title)
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf("%d/%d  [%s] ", snap.Filled, len(snap.Gaps), snap.Mode)
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorCyan)
}

// renderGround marks the floor line letters recycle at.
func (g *Game) renderGround(dst *core.Screen) {
	y := dst.Height() - 1
	dst.DrawHLine(0, y, dst.Width(), '▁', core.ColorDim)
}

// renderGaps draws each gap box with its ghost or filled letter.
func (g *Game) renderGaps(dst *core.Screen, snap Snapshot) {
	border := core.ColorGray
	if snap.WinFlash > 0 {
		border = core.ColorSky
	}
	for _, gap := range snap.Gaps {
		if !gap.HasBox {
			continue
		}
		x, y := cell(gap.Box.X), cell(gap.Box.Y)
		w, h := int(gap.Box.W), int(gap.Box.H)
		c := border
		if gap.Filled {
			c = core.ColorGreen
		}
		dst.DrawBox(x, y, w, h, c)

		center := gap.Box.Center()
		if !gap.Filled {
			dst.SetColored(cell(center.X), cell(center.Y), gap.Char, core.ColorDim)
		}
	}
}

// renderLetters draws every live letter at its cell.
func (g *Game) renderLetters(dst *core.Screen, snap Snapshot) {
	for _, l := range snap.Letters {
		x, y := cell(l.Pos.X), cell(l.Pos.Y)
		c := core.ColorBrightWhite
		switch {
		case l.Locked:
			c = core.ColorBrightGreen
		case l.Held:
			c = core.ColorYellow
		}
		dst.SetColored(x, y, l.Char, c)
	}
}

// renderOverlays draws win, pause and unplayable messages.
func (g *Game) renderOverlays(dst *core.Screen, snap Snapshot) {
	mid := dst.Height() / 2
	switch snap.State {
	case StateUnplayable:
		dst.DrawTextCentered(mid-1, fmt.Sprintf("No playable words in %q", snap.Category), core.ColorRed)
		dst.DrawTextCentered(mid+1, "tab: next category  q: quit", core.ColorDim)
	case StatePaused:
		dst.DrawTextCentered(mid, "PAUSED", core.ColorYellow)
		dst.DrawTextCentered(mid+1, "p to resume", core.ColorDim)
	case StateWon:
		c := core.ColorBrightCyan
		if snap.WinFlash > 0.5 {
			c = core.ColorSky
		}
		dst.DrawTextCentered(mid, fmt.Sprintf("★ %s ★", snap.Word), c)
	}
}

// cell maps a world coordinate to the terminal cell containing it.
func cell(v float64) int {
	return int(math.Floor(v))
}
