package wordsnow

import (
	"github.com/vovakirdan/wordsnow/internal/config"
	"github.com/vovakirdan/wordsnow/internal/core"
)

// InputController applies pointer events to the letter pool in either
// repel or drag mode.
type InputController struct {
	mode         config.InteractionMode
	repelRadius  float64
	repelImpulse float64
	dragRadius   float64

	pressed bool
	held    *FallingLetter
}

// NewInputController derives radii from the letter size.
func NewInputController(cfg config.InputConfig, letterSize float64) *InputController {
	return &InputController{
		mode:         cfg.Mode,
		repelRadius:  cfg.RepelRadiusRatio * letterSize,
		repelImpulse: cfg.RepelImpulse,
		dragRadius:   cfg.DragRadiusRatio * letterSize,
	}
}

// Mode returns the active interaction mode.
func (c *InputController) Mode() config.InteractionMode {
	return c.mode
}

// SetMode switches interaction mode, dropping any held letter.
func (c *InputController) SetMode(m config.InteractionMode) {
	c.Release()
	c.pressed = false
	c.mode = m
}

// Held returns the letter being dragged, or nil.
func (c *InputController) Held() *FallingLetter {
	return c.held
}

// Release drops the held letter without a snap test. Used when the pool
// is cleared under the pointer.
func (c *InputController) Release() {
	if c.held != nil {
		c.held.Held = false
		c.held = nil
	}
}

// Normalize maps touch events to their pointer equivalents.
func Normalize(k core.PointerKind) core.PointerKind {
	switch k {
	case core.TouchStart:
		return core.PointerDown
	case core.TouchMove:
		return core.PointerMove
	case core.TouchEnd:
		return core.PointerUp
	case core.TouchCancel:
		return core.PointerCancel
	default:
		return k
	}
}

// Handle applies one pointer event. It returns the letter released by a
// drag, if any, so the caller can snap-test it at its drop position.
func (c *InputController) Handle(ev core.PointerEvent, p *Pool) *FallingLetter {
	switch Normalize(ev.Kind) {
	case core.PointerDown:
		c.pressed = true
		if c.mode == config.ModeDrag {
			c.grab(ev.Pos, p)
		} else {
			c.repel(ev.Pos, p)
		}
	case core.PointerMove:
		if !c.pressed {
			return nil
		}
		if c.mode == config.ModeDrag {
			if c.held != nil {
				c.held.Pos = ev.Pos
			}
		} else {
			c.repel(ev.Pos, p)
		}
	case core.PointerUp, core.PointerCancel, core.PointerLeave:
		c.pressed = false
		if l := c.held; l != nil {
			c.Release()
			return l
		}
	}
	return nil
}

func (c *InputController) grab(pos core.Vec2, p *Pool) {
	c.Release()
	l := p.Nearest(pos, c.dragRadius)
	if l == nil {
		return
	}
	l.Held = true
	l.Vel = core.Vec2{}
	l.Pos = pos
	c.held = l
}

// repel pushes every free-moving letter within the radius away from pos.
func (c *InputController) repel(pos core.Vec2, p *Pool) {
	r2 := c.repelRadius * c.repelRadius
	for _, l := range p.Letters() {
		if l.Locked || l.Held {
			continue
		}
		d := l.Pos.Sub(pos)
		if d.LenSq() >= r2 {
			continue
		}
		l.Vel = l.Vel.Add(d.Normalize().Scale(c.repelImpulse))
	}
}
