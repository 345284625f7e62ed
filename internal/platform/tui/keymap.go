package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordsnow/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	NextWord   key.Binding
	Reset      key.Binding
	NextCat    key.Binding
	PrevCat    key.Binding
	Difficulty key.Binding
	Mode       key.Binding
	Pause      key.Binding
	Help       key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextWord, k.NextCat, k.Mode, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextWord, k.Reset, k.NextCat, k.PrevCat},
		{k.Difficulty, k.Mode, k.Pause},
		{k.Help, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextWord: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next word"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reshuffle"),
		),
		NextCat: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next category"),
		),
		PrevCat: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev category"),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "difficulty"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "repel/drag"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "categories"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Keys that are handled by the platform (help, back, quit) yield ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.NextWord):
		return core.ActionNextWord
	case key.Matches(msg, k.Reset):
		return core.ActionResetCategory
	case key.Matches(msg, k.NextCat):
		return core.ActionNextCategory
	case key.Matches(msg, k.PrevCat):
		return core.ActionPrevCategory
	case key.Matches(msg, k.Difficulty):
		return core.ActionCycleDifficulty
	case key.Matches(msg, k.Mode):
		return core.ActionToggleMode
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// PointerFromMouse maps a Bubble Tea mouse message to a pointer event in
// world coordinates. Cell (x, y) maps to its centre. Wheel and other
// buttons are ignored.
func PointerFromMouse(msg tea.MouseMsg) (core.PointerEvent, bool) {
	pos := core.V(float64(msg.X)+0.5, float64(msg.Y)+0.5)

	var kind core.PointerKind
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return core.PointerEvent{}, false
		}
		kind = core.PointerDown
	case tea.MouseActionMotion:
		kind = core.PointerMove
	case tea.MouseActionRelease:
		kind = core.PointerUp
	default:
		return core.PointerEvent{}, false
	}
	return core.PointerEvent{Kind: kind, Pos: pos}, true
}
