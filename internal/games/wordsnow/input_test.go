package wordsnow

import (
	"testing"

	"github.com/vovakirdan/wordsnow/internal/config"
	"github.com/vovakirdan/wordsnow/internal/core"
)

func newTestInput(mode config.InteractionMode) *InputController {
	cfg := config.Default()
	cfg.Input.Mode = mode
	return NewInputController(cfg.Input, cfg.Letters.Size)
}

func pointer(kind core.PointerKind, x, y float64) core.PointerEvent {
	return core.PointerEvent{Kind: kind, Pos: core.V(x, y)}
}

func TestRepelPushesNearbyLetters(t *testing.T) {
	p, prof := newTestPool(t, nil)
	r := NewRound(1, "sol", testFolder)
	c := newTestInput(config.ModeRepel)

	near := place(p, r, prof, 'S', core.V(11, 10))
	far := place(p, r, prof, 'O', core.V(20, 10))
	locked := place(p, r, prof, 'L', core.V(10, 11))
	locked.Locked = true

	c.Handle(pointer(core.PointerDown, 10, 10), p)

	if near.Vel.X != 4.5 || near.Vel.Y != 0 {
		t.Errorf("near letter should be pushed right by 4.5, vel=%+v", near.Vel)
	}
	if far.Vel != (core.Vec2{}) {
		t.Error("letters outside the radius must not move")
	}
	if locked.Vel != (core.Vec2{}) {
		t.Error("locked letters must not be pushed")
	}
}

func TestRepelMoveRequiresPress(t *testing.T) {
	p, prof := newTestPool(t, nil)
	r := NewRound(1, "sol", testFolder)
	c := newTestInput(config.ModeRepel)
	l := place(p, r, prof, 'S', core.V(11, 10))

	c.Handle(pointer(core.PointerMove, 10, 10), p)
	if l.Vel != (core.Vec2{}) {
		t.Fatal("hover without press must not push")
	}

	c.Handle(pointer(core.PointerDown, 30, 10), p)
	c.Handle(pointer(core.PointerMove, 10, 10), p)
	if l.Vel.X <= 0 {
		t.Error("move while pressed should push")
	}

	l.Vel = core.Vec2{}
	c.Handle(pointer(core.PointerLeave, 10, 10), p)
	c.Handle(pointer(core.PointerMove, 10, 10), p)
	if l.Vel != (core.Vec2{}) {
		t.Error("pointer leave should end the press")
	}
}

func TestTouchFallback(t *testing.T) {
	tests := []struct {
		in  core.PointerKind
		out core.PointerKind
	}{
		{core.TouchStart, core.PointerDown},
		{core.TouchMove, core.PointerMove},
		{core.TouchEnd, core.PointerUp},
		{core.TouchCancel, core.PointerCancel},
		{core.PointerLeave, core.PointerLeave},
	}
	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.out {
			t.Errorf("Normalize(%v) = %v, expected %v", tc.in, got, tc.out)
		}
	}

	p, prof := newTestPool(t, nil)
	r := NewRound(1, "sol", testFolder)
	c := newTestInput(config.ModeDrag)
	l := place(p, r, prof, 'S', core.V(10, 10))

	c.Handle(pointer(core.TouchStart, 10, 10), p)
	c.Handle(pointer(core.TouchMove, 15, 12), p)
	if !l.Held || l.Pos != core.V(15, 12) {
		t.Errorf("touch drag should hold and move the letter, pos=%+v", l.Pos)
	}
	if released := c.Handle(pointer(core.TouchEnd, 15, 12), p); released != l {
		t.Error("touch end should release the held letter")
	}
}

func TestDragGrabMoveRelease(t *testing.T) {
	p, prof := newTestPool(t, nil)
	r := NewRound(1, "sol", testFolder)
	c := newTestInput(config.ModeDrag)

	l := place(p, r, prof, 'S', core.V(10, 10))
	l.Vel = core.V(1, 3)

	c.Handle(pointer(core.PointerDown, 10.5, 10), p)
	if c.Held() != l || !l.Held {
		t.Fatal("pointer down near a letter should hold it")
	}
	if l.Vel != (core.Vec2{}) {
		t.Error("held letter velocity should be zero")
	}

	c.Handle(pointer(core.PointerMove, 40, 5), p)
	if l.Pos != core.V(40, 5) || l.Vel != (core.Vec2{}) {
		t.Errorf("held letter should follow the pointer, pos=%+v vel=%+v", l.Pos, l.Vel)
	}

	released := c.Handle(pointer(core.PointerUp, 40, 5), p)
	if released != l || l.Held || c.Held() != nil {
		t.Error("pointer up should release the letter")
	}
}

func TestDragCaptureRadius(t *testing.T) {
	p, prof := newTestPool(t, nil)
	r := NewRound(1, "sol", testFolder)
	c := newTestInput(config.ModeDrag)

	l := place(p, r, prof, 'S', core.V(10, 10))
	c.Handle(pointer(core.PointerDown, 12, 10), p)

	if c.Held() != nil || l.Held {
		t.Error("letters beyond the capture radius must not be grabbed")
	}
	if released := c.Handle(pointer(core.PointerUp, 12, 10), p); released != nil {
		t.Error("nothing should be released")
	}
}

func TestSetModeDropsHeldLetter(t *testing.T) {
	p, prof := newTestPool(t, nil)
	r := NewRound(1, "sol", testFolder)
	c := newTestInput(config.ModeDrag)

	l := place(p, r, prof, 'S', core.V(10, 10))
	c.Handle(pointer(core.PointerDown, 10, 10), p)
	c.SetMode(config.ModeRepel)

	if l.Held || c.Held() != nil {
		t.Error("switching mode should release the held letter")
	}
	if c.Mode() != config.ModeRepel {
		t.Errorf("Mode() = %s, expected repel", c.Mode())
	}
}
