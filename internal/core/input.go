package core

// Action represents a semantic game command, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone            Action = iota
	ActionNextWord               // N - skip to the next word
	ActionResetCategory          // R - reshuffle the category and restart
	ActionNextCategory           // Tab - switch to the next category
	ActionPrevCategory           // Shift+Tab - switch to the previous category
	ActionCycleDifficulty        // D - switch to the next difficulty profile
	ActionToggleMode             // M - toggle repel/drag interaction
	ActionPause                  // P - pause/unpause
	ActionQuit                   // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNextWord:
		return "NextWord"
	case ActionResetCategory:
		return "ResetCategory"
	case ActionNextCategory:
		return "NextCategory"
	case ActionPrevCategory:
		return "PrevCategory"
	case ActionCycleDifficulty:
		return "CycleDifficulty"
	case ActionToggleMode:
		return "ToggleMode"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind identifies a pointer or touch event type.
// Touch kinds are fallbacks for input sources that do not deliver pointer
// events reliably; the game normalizes them to their pointer equivalents.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
	PointerLeave
	TouchStart
	TouchMove
	TouchEnd
	TouchCancel
)

// String returns a human-readable name for the pointer kind.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	case PointerCancel:
		return "pointercancel"
	case PointerLeave:
		return "pointerleave"
	case TouchStart:
		return "touchstart"
	case TouchMove:
		return "touchmove"
	case TouchEnd:
		return "touchend"
	case TouchCancel:
		return "touchcancel"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer or touch sample in world coordinates.
type PointerEvent struct {
	Kind PointerKind
	Pos  Vec2
}

// InputFrame represents the input collected during one simulation tick.
// Commands and pointer events are consumed once, in arrival order, before
// physics runs.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer holds pointer/touch events in arrival order.
	Pointer []PointerEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddPointer appends a pointer event to this frame.
func (f *InputFrame) AddPointer(kind PointerKind, x, y float64) {
	f.Pointer = append(f.Pointer, PointerEvent{Kind: kind, Pos: V(x, y)})
}

// Clear resets all actions and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = append(clone.Pointer, f.Pointer...)
	return clone
}
