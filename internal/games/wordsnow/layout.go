package wordsnow

import (
	"github.com/vovakirdan/wordsnow/internal/config"
	"github.com/vovakirdan/wordsnow/internal/core"
)

// RowLayout returns the terminal layout provider: one row of gap boxes,
// centered horizontally, BottomOffset rows above the bottom edge.
// Spacing and then box width shrink when the word does not fit.
func RowLayout(cfg config.LayoutConfig) LayoutFunc {
	return func(n int, w, h float64) []core.Rect {
		if n <= 0 {
			return nil
		}
		screenW := int(w)
		gw, sp := cfg.GapWidth, cfg.GapSpacing

		total := n*gw + (n-1)*sp
		if total > screenW {
			sp = 0
			gw = max(1, screenW/n)
			total = n * gw
		}

		x0 := (screenW - total) / 2
		y := int(h) - cfg.BottomOffset - cfg.GapHeight
		boxes := make([]core.Rect, n)
		for i := range boxes {
			x := x0 + i*(gw+sp)
			boxes[i] = core.NewRect(float64(x), float64(y), float64(gw), float64(cfg.GapHeight))
		}
		return boxes
	}
}
